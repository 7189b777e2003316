package gltfwriter

import (
	"testing"

	"github.com/scenekit/gltfwriter/gltfdoc"
	"github.com/scenekit/gltfwriter/graph"
)

func TestWriteMinimalMaterial(t *testing.T) {
	r := graph.NewRoot()
	r.NewMaterial("default")

	doc, err := Write(r, Options{Basename: "scene"})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	mats, ok := doc.JSON["materials"].([]*gltfdoc.MaterialDef)
	if !ok || len(mats) != 1 {
		t.Fatalf("materials = %v, want one MaterialDef", doc.JSON["materials"])
	}
	if mats[0].AlphaMode != "OPAQUE" {
		t.Errorf("AlphaMode = %q, want OPAQUE", mats[0].AlphaMode)
	}
	if mats[0].AlphaCutoff != nil {
		t.Error("AlphaCutoff should be omitted outside MASK mode")
	}
	if mats[0].NormalTexture != nil || mats[0].OcclusionTexture != nil {
		t.Error("unused texture slots should stay nil")
	}
	if _, hasBuffers := doc.JSON["buffers"]; hasBuffers {
		t.Error("post-processor should have dropped the empty buffers key")
	}
}

func TestWriteSharedSamplerDedups(t *testing.T) {
	r := graph.NewRoot()
	tex := r.NewTexture("albedo", []byte{0xFF}, "image/png")
	sampler := graph.TextureSampler{WrapS: 10497, WrapT: 10497}

	m1 := r.NewMaterial("m1")
	m1.BaseColor = graph.TextureSlot{Texture: tex, Sampler: sampler}
	m2 := r.NewMaterial("m2")
	m2.BaseColor = graph.TextureSlot{Texture: tex, Sampler: sampler}

	doc, err := Write(r, Options{Basename: "scene"})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	samplers := doc.JSON["samplers"].([]*gltfdoc.SamplerDef)
	textures := doc.JSON["textures"].([]*gltfdoc.TextureDef)
	if len(samplers) != 1 {
		t.Errorf("len(samplers) = %d, want 1 (shared across both materials)", len(samplers))
	}
	if len(textures) != 1 {
		t.Errorf("len(textures) = %d, want 1 (same image+sampler pair)", len(textures))
	}
}

func TestWriteInterleavedPrimitive(t *testing.T) {
	r := graph.NewRoot()
	buf := r.NewBuffer("buf")
	mesh := r.NewMesh("mesh")
	mat := r.NewMaterial("mat")
	p := r.NewPrimitive(mesh, mat, 4)

	pos := r.NewAccessor(buf, graph.ComponentFloat, graph.AccessorVec3, 3, make([]float64, 9))
	nrm := r.NewAccessor(buf, graph.ComponentFloat, graph.AccessorVec3, 3, make([]float64, 9))
	idx := r.NewAccessor(buf, graph.ComponentUshort, graph.AccessorScalar, 3, []float64{0, 1, 2})
	r.SetAttribute(p, "POSITION", pos)
	r.SetAttribute(p, "NORMAL", nrm)
	r.SetIndices(p, idx)

	doc, err := Write(r, Options{Basename: "scene"})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	views := doc.JSON["bufferViews"].([]*gltfdoc.BufferViewDef)
	if len(views) != 2 {
		t.Fatalf("len(bufferViews) = %d, want 2 (indices + interleaved attributes)", len(views))
	}
	if views[0].Target != targetElementArrayBuffer {
		t.Errorf("views[0].Target = %d, want indices target (indices pack first)", views[0].Target)
	}
	if views[1].Target != targetArrayBuffer || views[1].ByteStride == 0 {
		t.Errorf("views[1] = %+v, want strided attribute view", views[1])
	}
	meshes := doc.JSON["meshes"].([]*gltfdoc.MeshDef)
	prim := meshes[0].Primitives[0]
	if len(prim.Attributes) != 2 {
		t.Errorf("len(Attributes) = %d, want 2", len(prim.Attributes))
	}
	if prim.Indices == nil {
		t.Error("Indices should be set")
	}
}

func TestWriteGLBSingleBuffer(t *testing.T) {
	r := graph.NewRoot()
	buf := r.NewBuffer("buf")
	r.NewAccessor(buf, graph.ComponentFloat, graph.AccessorScalar, 1, []float64{1})
	tex := r.NewTexture("t", []byte{1, 2, 3}, "image/png")
	mat := r.NewMaterial("m")
	mat.BaseColor = graph.TextureSlot{Texture: tex}

	doc, err := Write(r, Options{Basename: "scene", IsGLB: true})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if _, ok := doc.Resources[glbSentinel]; !ok {
		t.Error("GLB mode should place buffer bytes under the @glb.bin sentinel")
	}
	bufDefs := doc.JSON["buffers"].([]*gltfdoc.BufferDef)
	if len(bufDefs) != 1 || bufDefs[0].URI != "" {
		t.Errorf("buffers = %+v, want one BufferDef with empty URI in GLB mode", bufDefs)
	}
	images := doc.JSON["images"].([]*gltfdoc.ImageDef)
	if len(images) != 1 || images[0].BufferView == nil || images[0].URI != "" {
		t.Errorf("images = %+v, want one ImageDef referencing a bufferView, no URI", images)
	}
}

func TestWriteExternalMultiBufferNaming(t *testing.T) {
	r := graph.NewRoot()
	buf0 := r.NewBuffer("")
	buf1 := r.NewBuffer("")
	r.NewAccessor(buf0, graph.ComponentFloat, graph.AccessorScalar, 1, []float64{1})
	r.NewAccessor(buf1, graph.ComponentFloat, graph.AccessorScalar, 1, []float64{2})

	doc, err := Write(r, Options{Basename: "scene"})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	bufDefs := doc.JSON["buffers"].([]*gltfdoc.BufferDef)
	if len(bufDefs) != 2 {
		t.Fatalf("len(buffers) = %d, want 2", len(bufDefs))
	}
	if bufDefs[0].URI == bufDefs[1].URI {
		t.Errorf("multi-buffer URIs collided: %q", bufDefs[0].URI)
	}
	if bufDefs[0].URI != "scene_1.bin" || bufDefs[1].URI != "scene_2.bin" {
		t.Errorf("buffer URIs = %q, %q, want scene_1.bin, scene_2.bin", bufDefs[0].URI, bufDefs[1].URI)
	}
}

func TestWriteSkipsEmptyBuffer(t *testing.T) {
	r := graph.NewRoot()
	r.NewBuffer("unused")

	doc, err := Write(r, Options{Basename: "scene"})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if _, ok := doc.JSON["buffers"]; ok {
		t.Error("an empty buffer should be skipped entirely, leaving buffers empty/omitted")
	}
}
