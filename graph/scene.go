package graph

// Scene is a named list of root nodes.
type Scene struct {
	Common

	Nodes []*Node

	handle Handle
}

func (s *Scene) Handle() Handle { return s.handle }

// NewScene allocates a scene and appends it to Root.Scenes.
func (r *Root) NewScene(name string) *Scene {
	s := &Scene{Common: Common{Name: name}}
	s.handle = Handle{Kind: KindScene, Index: uint32(len(r.Scenes))}
	r.Scenes = append(r.Scenes, s)
	return s
}
