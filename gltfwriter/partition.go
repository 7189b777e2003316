package gltfwriter

import "github.com/scenekit/gltfwriter/graph"

// bufferPartition is one Buffer's accessors sorted into the three roles
// the packer understands (spec §4.2).
type bufferPartition struct {
	indices    []*graph.Accessor
	primitives []*graph.Primitive // attribute-bearing primitives, discovery order
	other      []*graph.Accessor
}

type accessorRoles struct {
	attribute bool
	index     bool
	other     bool
}

func (r accessorRoles) count() int {
	n := 0
	if r.attribute {
		n++
	}
	if r.index {
		n++
	}
	if r.other {
		n++
	}
	return n
}

// partitionBuffer classifies every accessor owned by buf by inspecting
// the graph's links. An accessor classified into more than one role is
// a fatal input error (spec §4.2).
func partitionBuffer(root *graph.Root, buf *graph.Buffer) (*bufferPartition, error) {
	owned := root.AccessorsOf(buf)
	isOwned := make(map[*graph.Accessor]bool, len(owned))
	for _, a := range owned {
		isOwned[a] = true
	}

	roles := make(map[*graph.Accessor]*accessorRoles, len(owned))
	for _, a := range owned {
		roles[a] = &accessorRoles{}
	}

	var primOrder []*graph.Primitive
	seenPrim := make(map[*graph.Primitive]bool)

	for _, link := range root.Links() {
		acc := root.Accessor(link.Child)
		if acc == nil || !isOwned[acc] {
			continue
		}
		rl := roles[acc]
		switch link.Kind {
		case graph.LinkAttribute:
			rl.attribute = true
			if p := root.Primitive(link.Parent); p != nil && !seenPrim[p] {
				seenPrim[p] = true
				primOrder = append(primOrder, p)
			}
		case graph.LinkIndex:
			rl.index = true
		default:
			rl.other = true
		}
	}

	part := &bufferPartition{primitives: primOrder}
	for _, a := range owned {
		rl := roles[a]
		if rl.count() > 1 {
			return nil, fatalInvalidGraph("attribute or index accessors must be used only for that purpose: %q", a.Name)
		}
		switch {
		case rl.index:
			part.indices = append(part.indices, a)
		case rl.attribute:
			// collected via primOrder/Primitive.Attributes() at pack time.
		default:
			part.other = append(part.other, a)
		}
	}
	return part, nil
}
