package gltfdoc

// PrimitiveDef is one entry of a MeshDef's primitives array.
type PrimitiveDef struct {
	Attributes map[string]uint32   `json:"attributes"`
	Indices    *uint32             `json:"indices,omitempty"`
	Material   *uint32             `json:"material,omitempty"`
	Mode       *uint32             `json:"mode,omitempty"`
	Targets    []map[string]uint32 `json:"targets,omitempty"`
}

// MeshDef is one entry of json.meshes.
type MeshDef struct {
	Common

	Primitives []*PrimitiveDef `json:"primitives"`
	Weights    []float64       `json:"weights,omitempty"`
}
