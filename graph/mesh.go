package graph

// Mesh is a named collection of Primitives plus optional morph weights.
type Mesh struct {
	Common

	Primitives []*Primitive
	Weights    []float64

	handle Handle
}

func (m *Mesh) Handle() Handle { return m.handle }

// NewMesh allocates a mesh and appends it to Root.Meshes.
func (r *Root) NewMesh(name string) *Mesh {
	m := &Mesh{Common: Common{Name: name}}
	m.handle = Handle{Kind: KindMesh, Index: uint32(len(r.Meshes))}
	r.Meshes = append(r.Meshes, m)
	return m
}
