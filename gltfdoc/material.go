package gltfdoc

// TextureInfoDef is the {index, texCoord} pair wired at every material
// texture slot.
type TextureInfoDef struct {
	Index    uint32 `json:"index"`
	TexCoord uint32 `json:"texCoord,omitempty"`
}

// NormalTextureDef adds Scale, omitted iff exactly 1 (spec §8).
type NormalTextureDef struct {
	Index    uint32   `json:"index"`
	TexCoord uint32   `json:"texCoord,omitempty"`
	Scale    *float64 `json:"scale,omitempty"`
}

// OcclusionTextureDef adds Strength, omitted iff exactly 1 (spec §8).
type OcclusionTextureDef struct {
	Index    uint32   `json:"index"`
	TexCoord uint32   `json:"texCoord,omitempty"`
	Strength *float64 `json:"strength,omitempty"`
}

// PBRMetallicRoughnessDef is always present on MaterialDef (spec §4.5);
// only its two texture slots are optional.
type PBRMetallicRoughnessDef struct {
	BaseColorFactor          [4]float64      `json:"baseColorFactor"`
	MetallicFactor           float64         `json:"metallicFactor"`
	RoughnessFactor          float64         `json:"roughnessFactor"`
	BaseColorTexture         *TextureInfoDef `json:"baseColorTexture,omitempty"`
	MetallicRoughnessTexture *TextureInfoDef `json:"metallicRoughnessTexture,omitempty"`
}

// MaterialDef is one entry of json.materials.
type MaterialDef struct {
	Common

	PBRMetallicRoughness *PBRMetallicRoughnessDef `json:"pbrMetallicRoughness,omitempty"`
	NormalTexture        *NormalTextureDef        `json:"normalTexture,omitempty"`
	OcclusionTexture     *OcclusionTextureDef     `json:"occlusionTexture,omitempty"`
	EmissiveTexture      *TextureInfoDef          `json:"emissiveTexture,omitempty"`
	EmissiveFactor       [3]float64               `json:"emissiveFactor"`
	AlphaMode            string                   `json:"alphaMode"`
	AlphaCutoff          *float64                 `json:"alphaCutoff,omitempty"`
	DoubleSided          bool                     `json:"doubleSided"`
}
