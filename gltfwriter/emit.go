package gltfwriter

import (
	"github.com/qmuntal/gltf"

	"github.com/scenekit/gltfwriter/gltfdoc"
	"github.com/scenekit/gltfwriter/graph"
)

func commonOf(c graph.Common) gltfdoc.Common {
	return gltfdoc.Common{Name: c.Name, Extras: c.Extras, Extensions: c.Extensions}
}

// emitMaterial implements spec §4.5's Material rules.
func (w *writeState) emitMaterial(m *graph.Material) *gltfdoc.MaterialDef {
	def := &gltfdoc.MaterialDef{
		Common: commonOf(m.Common),
		PBRMetallicRoughness: &gltfdoc.PBRMetallicRoughnessDef{
			BaseColorFactor: [4]float64{
				float64(m.BaseColorFactor[0]), float64(m.BaseColorFactor[1]),
				float64(m.BaseColorFactor[2]), float64(m.BaseColorFactor[3]),
			},
			MetallicFactor:           float64(m.MetallicFactor),
			RoughnessFactor:          float64(m.RoughnessFactor),
			BaseColorTexture:         w.textureInfoFor(m.BaseColor),
			MetallicRoughnessTexture: w.textureInfoFor(m.MetallicRoughness),
		},
		EmissiveFactor: [3]float64{
			float64(m.EmissiveFactor[0]), float64(m.EmissiveFactor[1]), float64(m.EmissiveFactor[2]),
		},
		AlphaMode:   string(m.AlphaMode),
		DoubleSided: m.DoubleSided,
	}
	if m.AlphaMode == "MASK" {
		cutoff := float64(m.AlphaCutoff)
		def.AlphaCutoff = &cutoff
	}
	if info := w.textureInfoFor(m.Normal); info != nil {
		nt := &gltfdoc.NormalTextureDef{Index: info.Index, TexCoord: info.TexCoord}
		if m.NormalScale != 1 {
			s := float64(m.NormalScale)
			nt.Scale = &s
		}
		def.NormalTexture = nt
	}
	if info := w.textureInfoFor(m.Occlusion); info != nil {
		ot := &gltfdoc.OcclusionTextureDef{Index: info.Index, TexCoord: info.TexCoord}
		if m.OcclusionStrength != 1 {
			s := float64(m.OcclusionStrength)
			ot.Strength = &s
		}
		def.OcclusionTexture = ot
	}
	def.EmissiveTexture = w.textureInfoFor(m.Emissive)
	return def
}

// emitMesh implements spec §4.5's Mesh rules, including deriving
// extras.targetNames from the first primitive when any primitive
// carries morph targets.
func (w *writeState) emitMesh(mesh *graph.Mesh) *gltfdoc.MeshDef {
	def := &gltfdoc.MeshDef{Common: commonOf(mesh.Common), Weights: mesh.Weights}
	hasTargets := false
	for _, p := range mesh.Primitives {
		pd := &gltfdoc.PrimitiveDef{Attributes: map[string]uint32{}}
		for _, al := range p.Attributes() {
			pd.Attributes[al.Semantic] = w.accessorIndex[al.Accessor]
		}
		pd.Mode = gltf.Index(p.Mode)
		if idx := p.Indices(); idx != nil {
			pd.Indices = gltf.Index(w.accessorIndex[idx])
		}
		if p.Material != nil {
			pd.Material = gltf.Index(w.materialIndex[p.Material])
		}
		for _, target := range p.Targets() {
			hasTargets = true
			t := make(map[string]uint32, len(target))
			for semantic, acc := range target {
				t[semantic] = w.accessorIndex[acc]
			}
			pd.Targets = append(pd.Targets, t)
		}
		def.Primitives = append(def.Primitives, pd)
	}
	if hasTargets {
		if names := mesh.Primitives[0].TargetNames(); len(names) > 0 {
			def.Extras = mergeTargetNames(def.Extras, names)
		}
	}
	return def
}

// mergeTargetNames injects a "targetNames" key into extras without
// disturbing the rest of a caller-supplied extras map. extras that
// aren't nil or map[string]interface{} are left as-is: there's no safe
// way to inject a key into an opaque caller type.
func mergeTargetNames(extras interface{}, names []string) interface{} {
	switch e := extras.(type) {
	case nil:
		return map[string]interface{}{"targetNames": names}
	case map[string]interface{}:
		merged := make(map[string]interface{}, len(e)+1)
		for k, v := range e {
			merged[k] = v
		}
		merged["targetNames"] = names
		return merged
	default:
		return extras
	}
}

// emitCamera implements spec §4.5's Camera rules.
func (w *writeState) emitCamera(c *graph.Camera) *gltfdoc.CameraDef {
	def := &gltfdoc.CameraDef{Common: commonOf(c.Common), Type: string(c.Type)}
	switch c.Type {
	case graph.CameraPerspective:
		p := &gltfdoc.PerspectiveDef{YFov: c.YFov, ZNear: c.ZNear}
		if c.AspectRatio != 0 {
			ar := c.AspectRatio
			p.AspectRatio = &ar
		}
		if c.ZFar != 0 {
			zf := c.ZFar
			p.ZFar = &zf
		}
		def.Perspective = p
	case graph.CameraOrthographic:
		def.Orthographic = &gltfdoc.OrthographicDef{
			XMag: c.XMag, YMag: c.YMag, ZNear: c.ZNear, ZFar: c.ZFar,
		}
	}
	return def
}

// emitNodePass1 fills the TRS/weights half of spec §4.5's two-pass Node
// rule; the default transform (identity rotation/scale, zero
// translation) is omitted entirely.
func (w *writeState) emitNodePass1(n *graph.Node) *gltfdoc.NodeDef {
	def := &gltfdoc.NodeDef{Common: commonOf(n.Common), Weights: n.Weights}
	if n.Translation != [3]float64{0, 0, 0} {
		t := n.Translation
		def.Translation = &t
	}
	if n.Rotation != [4]float64{0, 0, 0, 1} {
		r := n.Rotation
		def.Rotation = &r
	}
	if n.Scale != [3]float64{1, 1, 1} {
		s := n.Scale
		def.Scale = &s
	}
	return def
}

// emitNodePass2 fills mesh/camera/skin/children once those tables are
// populated (spec §4.5, §9 "single-pass node emission").
func (w *writeState) emitNodePass2(n *graph.Node, def *gltfdoc.NodeDef) {
	if n.Mesh != nil {
		def.Mesh = gltf.Index(w.meshIndex[n.Mesh])
	}
	if n.Camera != nil {
		def.Camera = gltf.Index(w.cameraIndex[n.Camera])
	}
	if n.Skin != nil {
		def.Skin = gltf.Index(w.skinIndex[n.Skin])
	}
	for _, c := range n.Children {
		def.Children = append(def.Children, w.nodeIndex[c])
	}
}

// emitSkin implements spec §4.5's Skin rules.
func (w *writeState) emitSkin(s *graph.Skin) *gltfdoc.SkinDef {
	def := &gltfdoc.SkinDef{Common: commonOf(s.Common)}
	if s.InverseBindMatrices != nil {
		def.InverseBindMatrices = gltf.Index(w.accessorIndex[s.InverseBindMatrices])
	}
	if s.Skeleton != nil {
		def.Skeleton = gltf.Index(w.nodeIndex[s.Skeleton])
	}
	for _, j := range s.Joints {
		def.Joints = append(def.Joints, w.nodeIndex[j])
	}
	return def
}

// emitAnimation implements spec §4.5's Animation rules: samplers first
// so channels can reference a sampler's local index.
func (w *writeState) emitAnimation(a *graph.Animation) *gltfdoc.AnimationDef {
	def := &gltfdoc.AnimationDef{Common: commonOf(a.Common)}
	localSampler := make(map[*graph.AnimationSampler]uint32, len(a.Samplers))
	for _, s := range a.Samplers {
		sd := &gltfdoc.AnimationSamplerDef{
			Input:         w.accessorIndex[s.Input],
			Output:        w.accessorIndex[s.Output],
			Interpolation: s.Interpolation,
		}
		localSampler[s] = uint32(len(def.Samplers))
		def.Samplers = append(def.Samplers, sd)
	}
	for _, c := range a.Channels {
		cd := &gltfdoc.AnimationChannelDef{
			Sampler: localSampler[c.Sampler],
			Target:  gltfdoc.AnimationChannelTargetDef{Path: c.Path},
		}
		if c.Target != nil {
			cd.Target.Node = gltf.Index(w.nodeIndex[c.Target])
		}
		def.Channels = append(def.Channels, cd)
	}
	return def
}

// emitScene implements spec §4.5's Scene rule.
func (w *writeState) emitScene(s *graph.Scene) *gltfdoc.SceneDef {
	def := &gltfdoc.SceneDef{Common: commonOf(s.Common)}
	for _, n := range s.Nodes {
		def.Nodes = append(def.Nodes, w.nodeIndex[n])
	}
	return def
}
