package graph

// TextureSlot is the (Texture, TextureInfo, TextureSampler) triple a
// Material carries per texture use site (spec §3). Texture is nil when
// the slot is unused.
type TextureSlot struct {
	Texture *Texture
	Info    TextureInfo
	Sampler TextureSampler
}

// AlphaMode mirrors glTF's three alpha modes; kept as a plain string so
// callers can use gltf.AlphaOpaque/AlphaMask/AlphaBlend directly.
type AlphaMode string

// Material is the full set of factors and texture slots one glTF
// material carries.
type Material struct {
	Common

	BaseColorFactor [4]float32
	MetallicFactor  float32
	RoughnessFactor float32
	EmissiveFactor  [3]float32

	AlphaMode   AlphaMode
	AlphaCutoff float32 // meaningful only when AlphaMode == "MASK"
	DoubleSided bool

	// NormalScale/OcclusionStrength are ignored unless their texture
	// slot is populated; spec §8 requires they be omitted from the
	// JSON when exactly 1.
	NormalScale       float32
	OcclusionStrength float32

	BaseColor         TextureSlot
	MetallicRoughness TextureSlot
	Normal            TextureSlot
	Occlusion         TextureSlot
	Emissive          TextureSlot

	handle Handle
}

func (m *Material) Handle() Handle { return m.handle }

// NewMaterial allocates a material with glTF's documented defaults
// (metallic=1, roughness=1, normal scale=1, occlusion strength=1,
// alpha mode=OPAQUE) and appends it to Root.Materials.
func (r *Root) NewMaterial(name string) *Material {
	m := &Material{
		Common:            Common{Name: name},
		BaseColorFactor:   [4]float32{1, 1, 1, 1},
		MetallicFactor:    1,
		RoughnessFactor:   1,
		NormalScale:       1,
		OcclusionStrength: 1,
		AlphaMode:         "OPAQUE",
	}
	m.handle = Handle{Kind: KindMaterial, Index: uint32(len(r.Materials))}
	r.Materials = append(r.Materials, m)
	return m
}
