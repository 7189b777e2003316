package graph

import "testing"

func TestAccessorComponentSize(t *testing.T) {
	cases := []struct {
		ct   ComponentType
		size int
	}{
		{ComponentByte, 1},
		{ComponentUbyte, 1},
		{ComponentShort, 2},
		{ComponentUshort, 2},
		{ComponentUint, 4},
		{ComponentFloat, 4},
	}
	for _, c := range cases {
		a := &Accessor{ComponentType: c.ct}
		if got := a.ComponentSize(); got != c.size {
			t.Errorf("ComponentSize(%v) = %d, want %d", c.ct, got, c.size)
		}
	}
}

func TestAccessorNumComponents(t *testing.T) {
	cases := []struct {
		typ AccessorType
		n   int
	}{
		{AccessorScalar, 1},
		{AccessorVec2, 2},
		{AccessorVec3, 3},
		{AccessorVec4, 4},
		{AccessorMat2, 4},
		{AccessorMat3, 9},
		{AccessorMat4, 16},
	}
	for _, c := range cases {
		a := &Accessor{Type: c.typ}
		if got := a.NumComponents(); got != c.n {
			t.Errorf("NumComponents(%v) = %d, want %d", c.typ, got, c.n)
		}
	}
}

func TestAccessorMinMax(t *testing.T) {
	r := NewRoot()
	buf := r.NewBuffer("buf")
	a := r.NewAccessor(buf, ComponentFloat, AccessorVec3, 3, []float64{
		1, 2, 3,
		-1, 5, 0,
		4, 0, 9,
	})
	min, max := a.MinMax()
	wantMin := []float64{-1, 0, 0}
	wantMax := []float64{4, 5, 9}
	for i := range wantMin {
		if min[i] != wantMin[i] || max[i] != wantMax[i] {
			t.Fatalf("MinMax() = %v/%v, want %v/%v", min, max, wantMin, wantMax)
		}
	}
}

func TestAccessorMinMaxVec2(t *testing.T) {
	r := NewRoot()
	buf := r.NewBuffer("buf")
	a := r.NewAccessor(buf, ComponentFloat, AccessorVec2, 3, []float64{
		1, 5,
		3, 2,
		-4, 8,
	})
	min, max := a.MinMax()
	wantMin := []float64{-4, 2}
	wantMax := []float64{3, 8}
	for i := range wantMin {
		if min[i] != wantMin[i] || max[i] != wantMax[i] {
			t.Fatalf("MinMax() = %v/%v, want %v/%v", min, max, wantMin, wantMax)
		}
	}
}

func TestAccessorMinMaxScalarUsesFlatFallback(t *testing.T) {
	r := NewRoot()
	buf := r.NewBuffer("buf")
	a := r.NewAccessor(buf, ComponentUshort, AccessorScalar, 4, []float64{3, 1, 4, 1})
	min, max := a.MinMax()
	if min[0] != 1 || max[0] != 4 {
		t.Fatalf("MinMax() = %v/%v, want [1]/[4]", min, max)
	}
}

func TestAccessorMinMaxEmpty(t *testing.T) {
	a := &Accessor{Type: AccessorVec3}
	min, max := a.MinMax()
	if min != nil || max != nil {
		t.Error("MinMax() on empty accessor should return nil, nil")
	}
}

func TestNewAccessorAllocatesInOrder(t *testing.T) {
	r := NewRoot()
	buf := r.NewBuffer("buf")
	a0 := r.NewAccessor(buf, ComponentFloat, AccessorScalar, 1, []float64{1})
	a1 := r.NewAccessor(buf, ComponentFloat, AccessorScalar, 1, []float64{2})
	if a0.Handle().Index != 0 || a1.Handle().Index != 1 {
		t.Errorf("accessor handles out of order: %d, %d", a0.Handle().Index, a1.Handle().Index)
	}
	got := r.Accessors()
	if len(got) != 2 || got[0] != a0 || got[1] != a1 {
		t.Error("Accessors() should return allocation order")
	}
}
