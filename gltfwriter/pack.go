package gltfwriter

import (
	"encoding/binary"
	"math"

	"github.com/scenekit/gltfwriter/gltfdoc"
	"github.com/scenekit/gltfwriter/graph"
)

const (
	targetArrayBuffer        uint32 = 34962
	targetElementArrayBuffer uint32 = 34963
)

func padTo4(n int) int {
	return (n + 3) &^ 3
}

// writeScalar encodes v as ct's wire representation into dst, little
// endian. dst must be at least ComponentSize(ct) bytes.
func writeScalar(dst []byte, ct graph.ComponentType, v float64) error {
	switch ct {
	case graph.ComponentByte:
		dst[0] = byte(int8(v))
	case graph.ComponentUbyte:
		dst[0] = byte(uint8(v))
	case graph.ComponentShort:
		binary.LittleEndian.PutUint16(dst, uint16(int16(v)))
	case graph.ComponentUshort:
		binary.LittleEndian.PutUint16(dst, uint16(v))
	case graph.ComponentUint:
		binary.LittleEndian.PutUint32(dst, uint32(v))
	case graph.ComponentFloat:
		binary.LittleEndian.PutUint32(dst, math.Float32bits(float32(v)))
	default:
		return fatalInvalidGraph("unsupported component type %d during interleave", ct)
	}
	return nil
}

// packedView is one packer's output: the raw bytes, the bufferView it
// produced, and where each source accessor landed inside it.
type packedView struct {
	bytes      []byte
	view       *gltfdoc.BufferViewDef
	byteOffset map[*graph.Accessor]uint32
}

// concatAccessors implements spec §4.3.1: each accessor's bytes are
// appended in order, individually padded to 4 bytes.
func concatAccessors(accs []*graph.Accessor, target uint32) (*packedView, error) {
	if len(accs) == 0 {
		return nil, nil
	}
	pv := &packedView{byteOffset: make(map[*graph.Accessor]uint32, len(accs))}
	for _, a := range accs {
		elemSize := a.ElementByteSize()
		raw := make([]byte, int(a.Count)*elemSize)
		n := a.NumComponents()
		for i := 0; i < int(a.Count); i++ {
			for c := 0; c < n; c++ {
				v := a.Data[i*n+c]
				off := i*elemSize + c*a.ComponentSize()
				if err := writeScalar(raw[off:], a.ComponentType, v); err != nil {
					return nil, err
				}
			}
		}
		pv.byteOffset[a] = uint32(len(pv.bytes))
		pv.bytes = append(pv.bytes, raw...)
		for len(pv.bytes)%4 != 0 {
			pv.bytes = append(pv.bytes, 0)
		}
	}
	pv.view = &gltfdoc.BufferViewDef{
		ByteLength: uint32(len(pv.bytes)),
		Target:     target,
	}
	return pv, nil
}

// interleaveAccessors implements spec §4.3.2: accessors of identical
// count are woven into one strided buffer view.
func interleaveAccessors(accs []*graph.Accessor) (*packedView, error) {
	if len(accs) == 0 {
		return nil, nil
	}
	count := accs[0].Count
	localOffset := make([]int, len(accs))
	stride := 0
	for i, a := range accs {
		if a.Count != count {
			return nil, fatalInvalidGraph("interleaved accessors must share count: %q has %d, expected %d", a.Name, a.Count, count)
		}
		localOffset[i] = stride
		stride += padTo4(a.ElementByteSize())
	}

	pv := &packedView{byteOffset: make(map[*graph.Accessor]uint32, len(accs))}
	pv.bytes = make([]byte, int(count)*stride)
	for i, a := range accs {
		pv.byteOffset[a] = uint32(localOffset[i])
		n := a.NumComponents()
		compSize := a.ComponentSize()
		for v := 0; v < int(count); v++ {
			base := v*stride + localOffset[i]
			for c := 0; c < n; c++ {
				off := base + c*compSize
				if err := writeScalar(pv.bytes[off:], a.ComponentType, a.Data[v*n+c]); err != nil {
					return nil, err
				}
			}
		}
	}
	pv.view = &gltfdoc.BufferViewDef{
		ByteLength: uint32(len(pv.bytes)),
		ByteStride: uint32(stride),
		Target:     targetArrayBuffer,
	}
	return pv, nil
}

// createAccessorDef implements spec §4.3.3. Matrix accessors never emit
// min/max.
func createAccessorDef(a *graph.Accessor, bufferView *uint32, byteOffset uint32) *gltfdoc.AccessorDef {
	def := &gltfdoc.AccessorDef{
		Common:        gltfdoc.Common{Name: a.Name, Extras: a.Extras, Extensions: a.Extensions},
		BufferView:    bufferView,
		ByteOffset:    byteOffset,
		ComponentType: a.ComponentType,
		Normalized:    a.Normalized,
		Count:         a.Count,
		Type:          a.Type,
	}
	switch a.Type {
	case graph.AccessorMat2, graph.AccessorMat3, graph.AccessorMat4:
		// no min/max for matrices
	default:
		def.Min, def.Max = a.MinMax()
	}
	return def
}
