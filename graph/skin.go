package graph

// Skin binds a list of joint Nodes to a Mesh via an optional
// inverse-bind-matrix accessor.
type Skin struct {
	Common

	InverseBindMatrices *Accessor // classified "other", not "attribute" (spec §3)
	Skeleton            *Node
	Joints              []*Node

	handle Handle
}

func (s *Skin) Handle() Handle { return s.handle }

// NewSkin allocates a skin and appends it to Root.Skins.
func (r *Root) NewSkin(name string, joints []*Node) *Skin {
	s := &Skin{Common: Common{Name: name}, Joints: joints}
	s.handle = Handle{Kind: KindSkin, Index: uint32(len(r.Skins))}
	r.Skins = append(r.Skins, s)
	return s
}

// SetInverseBindMatrices binds acc to s and records the generic Link
// the partitioner needs to classify acc as "other".
func (r *Root) SetInverseBindMatrices(s *Skin, acc *Accessor) {
	s.InverseBindMatrices = acc
	r.link(LinkGeneric, s.handle, acc.handle)
}
