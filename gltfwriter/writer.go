package gltfwriter

import (
	"encoding/base64"
	"hash/maphash"

	"github.com/qmuntal/gltf"

	"github.com/scenekit/gltfwriter/gltfdoc"
	"github.com/scenekit/gltfwriter/graph"
)

// writeState holds every lookup table and intermediate buffer one Write
// call needs; it is discarded when Write returns (spec §3 "Lifecycles").
type writeState struct {
	root *graph.Root
	opts Options

	hashSeed     maphash.Seed
	bufferURIGen *uriGenerator
	imageURIGen  *uriGenerator

	accessorIndex map[*graph.Accessor]uint32
	bufferIndex   map[*graph.Buffer]uint32
	imageIndex    map[*graph.Texture]uint32
	materialIndex map[*graph.Material]uint32
	meshIndex     map[*graph.Mesh]uint32
	cameraIndex   map[*graph.Camera]uint32
	nodeIndex     map[*graph.Node]uint32
	skinIndex     map[*graph.Skin]uint32
	animIndex     map[*graph.Animation]uint32
	sceneIndex    map[*graph.Scene]uint32

	samplerByKey map[uint64]uint32
	textureByKey map[uint64]uint32

	accessorBufferView  map[*graph.Accessor]*uint32
	accessorLocalOffset map[*graph.Accessor]uint32

	accessorDefs   []*gltfdoc.AccessorDef
	bufferViewDefs []*gltfdoc.BufferViewDef
	bufferDefs     []*gltfdoc.BufferDef
	imageDefs      []*gltfdoc.ImageDef
	samplerDefs    []*gltfdoc.SamplerDef
	textureDefs    []*gltfdoc.TextureDef
	materialDefs   []*gltfdoc.MaterialDef
	meshDefs       []*gltfdoc.MeshDef
	cameraDefs     []*gltfdoc.CameraDef
	nodeDefs       []*gltfdoc.NodeDef
	skinDefs       []*gltfdoc.SkinDef
	animDefs       []*gltfdoc.AnimationDef
	sceneDefs      []*gltfdoc.SceneDef

	resources map[string][]byte
}

// Write is the writer driver (spec §4.1): it allocates the ten lookup
// tables, invokes every sub-writer in the dataflow order of spec §2, runs
// the post-processor, and returns the native document. A non-nil error
// is always a *WriteError and no document is returned alongside it.
func Write(root *graph.Root, opts Options) (*NativeDocument, error) {
	w := &writeState{
		root:                root,
		opts:                opts,
		hashSeed:            maphash.MakeSeed(),
		bufferURIGen:        newURIGenerator(opts.Basename, len(root.Buffers) > 1),
		imageURIGen:         newURIGenerator(opts.Basename, len(root.Textures) > 1),
		accessorIndex:       map[*graph.Accessor]uint32{},
		bufferIndex:         map[*graph.Buffer]uint32{},
		imageIndex:          map[*graph.Texture]uint32{},
		materialIndex:       map[*graph.Material]uint32{},
		meshIndex:           map[*graph.Mesh]uint32{},
		cameraIndex:         map[*graph.Camera]uint32{},
		nodeIndex:           map[*graph.Node]uint32{},
		skinIndex:           map[*graph.Skin]uint32{},
		animIndex:           map[*graph.Animation]uint32{},
		sceneIndex:          map[*graph.Scene]uint32{},
		samplerByKey:        map[uint64]uint32{},
		textureByKey:        map[uint64]uint32{},
		accessorBufferView:  map[*graph.Accessor]*uint32{},
		accessorLocalOffset: map[*graph.Accessor]uint32{},
		resources:           map[string][]byte{},
	}

	if !opts.IsGLB && !opts.Embedded {
		w.packExternalImages()
	}
	if err := w.packBuffers(); err != nil {
		return nil, err
	}

	for i, m := range root.Materials {
		w.materialIndex[m] = uint32(i)
	}
	for _, m := range root.Materials {
		w.materialDefs = append(w.materialDefs, w.emitMaterial(m))
	}

	for i, m := range root.Meshes {
		w.meshIndex[m] = uint32(i)
	}
	for _, m := range root.Meshes {
		w.meshDefs = append(w.meshDefs, w.emitMesh(m))
	}

	for i, c := range root.Cameras {
		w.cameraIndex[c] = uint32(i)
	}
	for _, c := range root.Cameras {
		w.cameraDefs = append(w.cameraDefs, w.emitCamera(c))
	}

	for i, n := range root.Nodes {
		w.nodeIndex[n] = uint32(i)
	}
	for _, n := range root.Nodes {
		w.nodeDefs = append(w.nodeDefs, w.emitNodePass1(n))
	}

	for i, s := range root.Skins {
		w.skinIndex[s] = uint32(i)
	}

	for i, n := range root.Nodes {
		w.emitNodePass2(n, w.nodeDefs[i])
	}

	for _, s := range root.Skins {
		w.skinDefs = append(w.skinDefs, w.emitSkin(s))
	}

	for i, a := range root.Animations {
		w.animIndex[a] = uint32(i)
	}
	for _, a := range root.Animations {
		w.animDefs = append(w.animDefs, w.emitAnimation(a))
	}

	for i, s := range root.Scenes {
		w.sceneIndex[s] = uint32(i)
	}
	for _, s := range root.Scenes {
		w.sceneDefs = append(w.sceneDefs, w.emitScene(s))
	}

	doc := map[string]interface{}{
		"asset":       gltfdoc.Asset{Version: "2.0", Generator: "gltfwriter"},
		"accessors":   w.accessorDefs,
		"bufferViews": w.bufferViewDefs,
		"buffers":     w.bufferDefs,
		"images":      w.imageDefs,
		"samplers":    w.samplerDefs,
		"textures":    w.textureDefs,
		"materials":   w.materialDefs,
		"meshes":      w.meshDefs,
		"cameras":     w.cameraDefs,
		"nodes":       w.nodeDefs,
		"skins":       w.skinDefs,
		"animations":  w.animDefs,
		"scenes":      w.sceneDefs,
	}
	postProcess(doc)

	return &NativeDocument{JSON: doc, Resources: w.resources}, nil
}

// packBuffers implements the per-buffer pipeline of spec §4.3.4,
// including step 5 (image bytes for buffer 0 in GLB/embedded mode) and
// step 6/7 (empty-buffer skip, URI assignment). Once every buffer is
// packed, it builds json.accessors in Root.Accessors() order (spec §3
// invariant 5: listing order, not packing order).
func (w *writeState) packBuffers() error {
	for bufIdx, buf := range w.root.Buffers {
		part, err := partitionBuffer(w.root, buf)
		if err != nil {
			return err
		}

		var bytesOut []byte
		var localViews []*gltfdoc.BufferViewDef
		byteOffset := map[*graph.Accessor]uint32{}
		viewOfAccessor := map[*graph.Accessor]int{}

		appendView := func(pv *packedView) {
			if pv == nil {
				return
			}
			viewIdx := len(localViews)
			pv.view.ByteOffset = uint32(len(bytesOut))
			localViews = append(localViews, pv.view)
			bytesOut = append(bytesOut, pv.bytes...)
			for a, off := range pv.byteOffset {
				byteOffset[a] = off
				viewOfAccessor[a] = viewIdx
			}
		}

		pv, err := concatAccessors(part.indices, targetElementArrayBuffer)
		if err != nil {
			return err
		}
		appendView(pv)

		packedAttr := map[*graph.Accessor]bool{}
		for _, p := range part.primitives {
			var attrs []*graph.Accessor
			for _, al := range p.Attributes() {
				if al.Accessor.Buffer == buf && !packedAttr[al.Accessor] {
					packedAttr[al.Accessor] = true
					attrs = append(attrs, al.Accessor)
				}
			}
			pv, err := interleaveAccessors(attrs)
			if err != nil {
				return err
			}
			appendView(pv)
		}

		pv, err = concatAccessors(part.other, 0)
		if err != nil {
			return err
		}
		appendView(pv)

		var imagePtrs []*uint32
		if bufIdx == 0 && (w.opts.IsGLB || w.opts.Embedded) {
			imagePtrs = w.packInlineImages(&bytesOut, &localViews)
		}

		if len(bytesOut) == 0 {
			w.opts.logger().Printf("gltfwriter: buffer %q has no reachable bytes, skipping", buf.Name)
			continue
		}

		finalBufIdx := uint32(len(w.bufferDefs))
		w.bufferIndex[buf] = finalBufIdx

		viewBase := uint32(len(w.bufferViewDefs))
		for _, v := range localViews {
			v.Buffer = finalBufIdx
			w.bufferViewDefs = append(w.bufferViewDefs, v)
		}
		for a, localIdx := range viewOfAccessor {
			w.accessorBufferView[a] = gltf.Index(viewBase + uint32(localIdx))
			w.accessorLocalOffset[a] = byteOffset[a]
		}
		for _, p := range imagePtrs {
			*p += viewBase
		}

		bufDef := &gltfdoc.BufferDef{
			Common:     commonOf(buf.Common),
			ByteLength: uint32(len(bytesOut)),
		}
		switch {
		case w.opts.IsGLB:
			if finalBufIdx == 0 {
				w.resources[glbSentinel] = bytesOut
			}
		case w.opts.Embedded:
			bufDef.URI = "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(bytesOut)
		default:
			uri := w.bufferURIGen.URI(buf.URI, "bin")
			bufDef.URI = uri
			w.resources[uri] = bytesOut
		}
		w.bufferDefs = append(w.bufferDefs, bufDef)
	}

	for i, a := range w.root.Accessors() {
		w.accessorIndex[a] = uint32(i)
		w.accessorDefs = append(w.accessorDefs, createAccessorDef(a, w.accessorBufferView[a], w.accessorLocalOffset[a]))
	}
	return nil
}
