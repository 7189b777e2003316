package geom

import "testing"

func TestVector2MinMax(t *testing.T) {
	a := NewVector2(1, 5)
	b := NewVector2(3, 2)
	if *a.Min(b) != *NewVector2(1, 2) {
		t.Error("Vector2.Min()")
	}
	if *a.Max(b) != *NewVector2(3, 5) {
		t.Error("Vector2.Max()")
	}
}

func TestVector3MinMax(t *testing.T) {
	a := NewVector3(1, 5, -1)
	b := NewVector3(3, 2, 4)
	if *a.Min(b) != *NewVector3(1, 2, -1) {
		t.Error("Vector3.Min()")
	}
	if *a.Max(b) != *NewVector3(3, 5, 4) {
		t.Error("Vector3.Max()")
	}
}
