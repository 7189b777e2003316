package graph

// Texture holds finished image bytes plus their MIME type. The writer
// never decodes or re-encodes them (see package texutil for an optional
// pre-write recompression helper).
type Texture struct {
	Common

	Data     []byte
	MimeType string // "image/png" or "image/jpeg"

	// URI, if non-empty, is a caller-pinned resource name (spec §4.6).
	URI string

	handle Handle
}

func (t *Texture) Handle() Handle { return t.handle }

// NewTexture allocates a texture and appends it to Root.Textures.
func (r *Root) NewTexture(name string, data []byte, mimeType string) *Texture {
	t := &Texture{Common: Common{Name: name}, Data: data, MimeType: mimeType}
	t.handle = Handle{Kind: KindTexture, Index: uint32(len(r.Textures))}
	r.Textures = append(r.Textures, t)
	return t
}

// TextureSampler carries the filtering/wrapping configuration of one
// material texture slot. A zero wrap mode is left out of the JSON, so
// glTF's default (REPEAT=10497) applies; zero also means "unset" for
// the two filter fields per spec §9.
type TextureSampler struct {
	WrapS     uint32
	WrapT     uint32
	MinFilter uint32 // 0 == unset
	MagFilter uint32 // 0 == unset
}

// TextureInfo carries the per-use-site data of one material texture
// slot beyond the sampler: which UV set to read.
type TextureInfo struct {
	TexCoord uint32
}
