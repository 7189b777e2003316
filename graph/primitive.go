package graph

// AttributeLink records one semantic -> accessor binding in the order it
// was added; a plain map would lose that order, and the packer's vertex
// stride layout must be deterministic (spec §4.2).
type AttributeLink struct {
	Semantic string
	Accessor *Accessor
}

// Primitive is one draw call's worth of geometry within a Mesh.
type Primitive struct {
	Material *Material
	Mode     uint32 // glTF primitive mode, e.g. 4 == TRIANGLES

	attributes  []AttributeLink
	indices     *Accessor
	targets     []map[string]*Accessor
	targetNames []string

	handle Handle
}

func (p *Primitive) Handle() Handle { return p.handle }

// Attributes returns the semantic->accessor bindings in discovery order.
func (p *Primitive) Attributes() []AttributeLink { return p.attributes }

// Indices returns the primitive's index accessor, or nil.
func (p *Primitive) Indices() *Accessor { return p.indices }

// Targets returns the morph target maps in the order they were added.
func (p *Primitive) Targets() []map[string]*Accessor { return p.targets }

// TargetNames returns the caller-supplied name for each morph target, in
// the same order as Targets; an entry is "" if AddTarget was called
// without a name. Only the mesh's first primitive's names are used by
// the writer (spec §4.5).
func (p *Primitive) TargetNames() []string { return p.targetNames }

// NewPrimitive allocates a primitive and appends it to mesh.Primitives.
func (r *Root) NewPrimitive(mesh *Mesh, material *Material, mode uint32) *Primitive {
	p := &Primitive{Material: material, Mode: mode}
	p.handle = Handle{Kind: KindPrimitive, Index: r.primitives.add(p)}
	mesh.Primitives = append(mesh.Primitives, p)
	return p
}

// SetAttribute binds acc as semantic on p and records an attribute Link.
// Binding the same accessor under the same semantic on more than one
// primitive is valid (the teacher's own mqoToGltf.ConvertObject shares
// one attribute set across every primitive of a multi-material object);
// the packer only packs each accessor's bytes once.
func (r *Root) SetAttribute(p *Primitive, semantic string, acc *Accessor) {
	p.attributes = append(p.attributes, AttributeLink{Semantic: semantic, Accessor: acc})
	r.link(LinkAttribute, p.handle, acc.handle)
}

// SetIndices binds acc as p's index accessor and records an index Link.
func (r *Root) SetIndices(p *Primitive, acc *Accessor) {
	p.indices = acc
	r.link(LinkIndex, p.handle, acc.handle)
}

// AddTarget appends a morph target map to p, labeled name (may be
// empty). Target accessors are classified "other" per spec §3, not
// "attribute" — they are never interleaved with the primitive's base
// attributes.
func (r *Root) AddTarget(p *Primitive, name string, target map[string]*Accessor) {
	p.targets = append(p.targets, target)
	p.targetNames = append(p.targetNames, name)
	for _, acc := range target {
		r.link(LinkGeneric, p.handle, acc.handle)
	}
}
