package graph

// AnimationSampler is one interpolation curve: timestamps (Input) mapped
// to values (Output). Both accessors are classified "other" per spec §3.
type AnimationSampler struct {
	Input         *Accessor
	Output        *Accessor
	Interpolation string // "LINEAR", "STEP", "CUBICSPLINE"

	handle Handle
}

func (s *AnimationSampler) Handle() Handle { return s.handle }

// AnimationChannel drives one Node property from one AnimationSampler.
type AnimationChannel struct {
	Sampler *AnimationSampler
	Target  *Node
	Path    string // "translation", "rotation", "scale", "weights"
}

// Animation is a named set of channels and the samplers they reference.
type Animation struct {
	Common

	Samplers []*AnimationSampler
	Channels []*AnimationChannel

	handle Handle
}

func (a *Animation) Handle() Handle { return a.handle }

// NewAnimation allocates an animation and appends it to Root.Animations.
func (r *Root) NewAnimation(name string) *Animation {
	a := &Animation{Common: Common{Name: name}}
	a.handle = Handle{Kind: KindAnimation, Index: uint32(len(r.Animations))}
	r.Animations = append(r.Animations, a)
	return a
}

// AddSampler allocates a sampler on a, binding input/output accessors
// and recording the generic Links the partitioner needs.
func (r *Root) AddSampler(a *Animation, input, output *Accessor, interpolation string) *AnimationSampler {
	s := &AnimationSampler{Input: input, Output: output, Interpolation: interpolation}
	s.handle = Handle{Kind: KindAnimationSampler, Index: r.animSamplers.add(s)}
	r.link(LinkGeneric, s.handle, input.handle)
	r.link(LinkGeneric, s.handle, output.handle)
	a.Samplers = append(a.Samplers, s)
	return s
}

// AddChannel appends a channel driving target's path from sampler.
func (r *Root) AddChannel(a *Animation, sampler *AnimationSampler, target *Node, path string) *AnimationChannel {
	c := &AnimationChannel{Sampler: sampler, Target: target, Path: path}
	a.Channels = append(a.Channels, c)
	return c
}
