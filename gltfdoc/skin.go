package gltfdoc

// SkinDef is one entry of json.skins.
type SkinDef struct {
	Common

	InverseBindMatrices *uint32  `json:"inverseBindMatrices,omitempty"`
	Skeleton            *uint32  `json:"skeleton,omitempty"`
	Joints              []uint32 `json:"joints"`
}
