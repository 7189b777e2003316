package gltfwriter

import (
	"fmt"
	"hash/maphash"

	"github.com/qmuntal/gltf"

	"github.com/scenekit/gltfwriter/gltfdoc"
	"github.com/scenekit/gltfwriter/graph"
)

// samplerKey builds the canonical string spec §4.4/§9 describes:
// fields emitted in a fixed order, zero filters coerced to "undefined"
// rather than the literal value 0.
func samplerKey(s graph.TextureSampler) string {
	minF := "undefined"
	if s.MinFilter != 0 {
		minF = fmt.Sprint(s.MinFilter)
	}
	magF := "undefined"
	if s.MagFilter != 0 {
		magF = fmt.Sprint(s.MagFilter)
	}
	return fmt.Sprintf("%d|%d|%s|%s", s.WrapS, s.WrapT, minF, magF)
}

func (w *writeState) hash(key string) uint64 {
	var h maphash.Hash
	h.SetSeed(w.hashSeed)
	h.WriteString(key)
	return h.Sum64()
}

// samplerFor returns s's output sampler index, deduping by canonical
// key (spec §4.4 rule 1, §8 testable property 6).
func (w *writeState) samplerFor(s graph.TextureSampler) uint32 {
	key := w.hash(samplerKey(s))
	if idx, ok := w.samplerByKey[key]; ok {
		return idx
	}
	def := &gltfdoc.SamplerDef{WrapS: s.WrapS, WrapT: s.WrapT}
	if s.MinFilter != 0 {
		def.MinFilter = gltf.Index(s.MinFilter)
	}
	if s.MagFilter != 0 {
		def.MagFilter = gltf.Index(s.MagFilter)
	}
	idx := uint32(len(w.samplerDefs))
	w.samplerDefs = append(w.samplerDefs, def)
	w.samplerByKey[key] = idx
	return idx
}

// textureFor returns the output texture index for (imageIdx, samplerIdx),
// deduping identical pairs (spec §4.4 rule 2, §8 testable property 7).
func (w *writeState) textureFor(imageIdx, samplerIdx uint32) uint32 {
	key := w.hash(fmt.Sprintf("%d|%d", imageIdx, samplerIdx))
	if idx, ok := w.textureByKey[key]; ok {
		return idx
	}
	def := &gltfdoc.TextureDef{Source: gltf.Index(imageIdx), Sampler: gltf.Index(samplerIdx)}
	idx := uint32(len(w.textureDefs))
	w.textureDefs = append(w.textureDefs, def)
	w.textureByKey[key] = idx
	return idx
}

// textureInfoFor resolves a material texture slot into the wired
// {index, texCoord} pair an emitter embeds, or nil when the slot is
// unused (spec §4.4 rule 3).
func (w *writeState) textureInfoFor(slot graph.TextureSlot) *gltfdoc.TextureInfoDef {
	if slot.Texture == nil {
		return nil
	}
	imageIdx, ok := w.imageIndex[slot.Texture]
	if !ok {
		return nil
	}
	samplerIdx := w.samplerFor(slot.Sampler)
	texIdx := w.textureFor(imageIdx, samplerIdx)
	return &gltfdoc.TextureInfoDef{Index: texIdx, TexCoord: slot.Info.TexCoord}
}
