package gltfwriter

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/scenekit/gltfwriter/graph"
)

func TestConcatAccessorsPadsEach4Bytes(t *testing.T) {
	r := graph.NewRoot()
	buf := r.NewBuffer("buf")
	a := r.NewAccessor(buf, graph.ComponentUbyte, graph.AccessorScalar, 3, []float64{1, 2, 3})
	b := r.NewAccessor(buf, graph.ComponentFloat, graph.AccessorScalar, 1, []float64{9})

	pv, err := concatAccessors([]*graph.Accessor{a, b}, targetElementArrayBuffer)
	if err != nil {
		t.Fatalf("concatAccessors() error = %v", err)
	}
	if pv.byteOffset[a] != 0 {
		t.Errorf("a offset = %d, want 0", pv.byteOffset[a])
	}
	if pv.byteOffset[b] != 4 {
		t.Errorf("b offset = %d, want 4 (a's 3 bytes padded to 4)", pv.byteOffset[b])
	}
	if len(pv.bytes)%4 != 0 {
		t.Errorf("len(bytes) = %d, not 4-byte aligned", len(pv.bytes))
	}
	if pv.view.Target != uint32(targetElementArrayBuffer) {
		t.Errorf("view.Target = %d, want %d", pv.view.Target, targetElementArrayBuffer)
	}
}

func TestConcatAccessorsEmpty(t *testing.T) {
	pv, err := concatAccessors(nil, 0)
	if err != nil || pv != nil {
		t.Errorf("concatAccessors(nil) = %v, %v, want nil, nil", pv, err)
	}
}

func TestInterleaveAccessorsStride(t *testing.T) {
	r := graph.NewRoot()
	buf := r.NewBuffer("buf")
	pos := r.NewAccessor(buf, graph.ComponentFloat, graph.AccessorVec3, 2, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	uv := r.NewAccessor(buf, graph.ComponentFloat, graph.AccessorVec2, 2, []float64{
		0, 0,
		1, 1,
	})

	pv, err := interleaveAccessors([]*graph.Accessor{pos, uv})
	if err != nil {
		t.Fatalf("interleaveAccessors() error = %v", err)
	}
	wantStride := uint32(12 + 8) // VEC3 float32 + VEC2 float32, both already 4-aligned
	if pv.view.ByteStride != wantStride {
		t.Errorf("stride = %d, want %d", pv.view.ByteStride, wantStride)
	}
	if pv.view.Target != targetArrayBuffer {
		t.Errorf("target = %d, want %d", pv.view.Target, targetArrayBuffer)
	}

	// second vertex's position.x lives at vertex stride + 0
	off := pv.byteOffset[pos] + wantStride
	got := math.Float32frombits(binary.LittleEndian.Uint32(pv.bytes[off:]))
	if got != 4 {
		t.Errorf("second vertex pos.x = %v, want 4", got)
	}
}

func TestInterleaveAccessorsCountMismatch(t *testing.T) {
	r := graph.NewRoot()
	buf := r.NewBuffer("buf")
	a := r.NewAccessor(buf, graph.ComponentFloat, graph.AccessorVec3, 2, make([]float64, 6))
	b := r.NewAccessor(buf, graph.ComponentFloat, graph.AccessorVec2, 3, make([]float64, 6))

	_, err := interleaveAccessors([]*graph.Accessor{a, b})
	if err == nil {
		t.Fatal("interleaveAccessors() should fail when accessor counts differ")
	}
}

func TestCreateAccessorDefSkipsMinMaxForMatrices(t *testing.T) {
	r := graph.NewRoot()
	buf := r.NewBuffer("buf")
	a := r.NewAccessor(buf, graph.ComponentFloat, graph.AccessorMat4, 1, make([]float64, 16))
	def := createAccessorDef(a, nil, 0)
	if def.Min != nil || def.Max != nil {
		t.Error("createAccessorDef() should omit min/max for matrix accessors")
	}
}

func TestCreateAccessorDefPopulatesMinMax(t *testing.T) {
	r := graph.NewRoot()
	buf := r.NewBuffer("buf")
	a := r.NewAccessor(buf, graph.ComponentFloat, graph.AccessorVec3, 1, []float64{1, 2, 3})
	def := createAccessorDef(a, nil, 0)
	if len(def.Min) != 3 || len(def.Max) != 3 {
		t.Errorf("Min/Max = %v/%v, want length 3", def.Min, def.Max)
	}
}
