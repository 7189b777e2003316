package graph

// Node is a standard glTF scene-graph node: TRS transform plus optional
// mesh/camera/skin attachments and child nodes.
type Node struct {
	Common

	Translation [3]float64
	Rotation    [4]float64
	Scale       [3]float64
	Weights     []float64

	Mesh     *Mesh
	Camera   *Camera
	Skin     *Skin
	Children []*Node

	handle Handle
}

func (n *Node) Handle() Handle { return n.handle }

// NewNode allocates a node with the default (identity) transform and
// appends it to Root.Nodes.
func (r *Root) NewNode(name string) *Node {
	n := &Node{
		Common:   Common{Name: name},
		Rotation: [4]float64{0, 0, 0, 1},
		Scale:    [3]float64{1, 1, 1},
	}
	n.handle = Handle{Kind: KindNode, Index: uint32(len(r.Nodes))}
	r.Nodes = append(r.Nodes, n)
	return n
}
