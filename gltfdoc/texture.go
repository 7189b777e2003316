package gltfdoc

// TextureDef is one entry of json.textures.
type TextureDef struct {
	Source  *uint32 `json:"source,omitempty"`
	Sampler *uint32 `json:"sampler,omitempty"`
}

// SamplerDef is one entry of json.samplers. MinFilter/MagFilter are
// pointers so 0 ("unset", per spec §9) can be told apart from a real
// filter enum value of 0 would not otherwise exist in glTF — but the
// truthiness bug the spec calls out treated any 0 as absent, so we keep
// the explicit-unset contract at the graph level instead (see
// graph.TextureSampler) and simply omit nil here.
type SamplerDef struct {
	WrapS     uint32  `json:"wrapS,omitempty"`
	WrapT     uint32  `json:"wrapT,omitempty"`
	MinFilter *uint32 `json:"minFilter,omitempty"`
	MagFilter *uint32 `json:"magFilter,omitempty"`
}

// ImageDef is one entry of json.images. Exactly one of URI/BufferView is
// set, per packaging mode (spec §6.3).
type ImageDef struct {
	Common

	URI        string  `json:"uri,omitempty"`
	MimeType   string  `json:"mimeType,omitempty"`
	BufferView *uint32 `json:"bufferView,omitempty"`
}
