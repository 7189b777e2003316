package gltfwriter

import (
	"github.com/scenekit/gltfwriter/gltfdoc"
)

func imageExtension(mimeType string) string {
	if mimeType == "image/png" {
		return "png"
	}
	return "jpeg"
}

// packExternalImages implements the external-mode half of spec §4.4:
// one resource entry and one images[] def per Texture, named by the
// image URI generator.
func (w *writeState) packExternalImages() {
	for _, t := range w.root.Textures {
		uri := w.imageURIGen.URI(t.URI, imageExtension(t.MimeType))
		w.resources[uri] = t.Data
		idx := uint32(len(w.imageDefs))
		w.imageDefs = append(w.imageDefs, &gltfdoc.ImageDef{
			Common:   gltfdoc.Common{Name: t.Name, Extras: t.Extras, Extensions: t.Extensions},
			URI:      uri,
			MimeType: t.MimeType,
		})
		w.imageIndex[t] = idx
	}
}

// packInlineImages implements the GLB/embedded half of spec §4.4: each
// texture's bytes are appended (4-byte padded) to buffer 0 and
// referenced by bufferView instead of URI. The returned pointers are
// the images' local bufferView indices; the caller must add the final
// viewBase once localViews have been committed to the global table.
func (w *writeState) packInlineImages(bytesOut *[]byte, localViews *[]*gltfdoc.BufferViewDef) []*uint32 {
	var pending []*uint32
	for _, t := range w.root.Textures {
		offset := uint32(len(*bytesOut))
		*bytesOut = append(*bytesOut, t.Data...)
		for len(*bytesOut)%4 != 0 {
			*bytesOut = append(*bytesOut, 0)
		}
		bv := uint32(len(*localViews))
		*localViews = append(*localViews, &gltfdoc.BufferViewDef{
			ByteOffset: offset,
			ByteLength: uint32(len(t.Data)),
		})

		idx := uint32(len(w.imageDefs))
		w.imageDefs = append(w.imageDefs, &gltfdoc.ImageDef{
			Common:     gltfdoc.Common{Name: t.Name, Extras: t.Extras, Extensions: t.Extensions},
			MimeType:   t.MimeType,
			BufferView: &bv,
		})
		w.imageIndex[t] = idx
		pending = append(pending, &bv)
	}
	return pending
}
