package gltfdoc

// NodeDef is one entry of json.nodes, filled in two passes per spec
// §4.5/§9: translation/rotation/scale/weights first, then mesh/camera/
// skin/children once those tables exist.
type NodeDef struct {
	Common

	Translation *[3]float64 `json:"translation,omitempty"`
	Rotation    *[4]float64 `json:"rotation,omitempty"`
	Scale       *[3]float64 `json:"scale,omitempty"`
	Weights     []float64   `json:"weights,omitempty"`

	Mesh     *uint32  `json:"mesh,omitempty"`
	Camera   *uint32  `json:"camera,omitempty"`
	Skin     *uint32  `json:"skin,omitempty"`
	Children []uint32 `json:"children,omitempty"`
}
