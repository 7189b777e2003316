package graph

import (
	"fmt"

	"github.com/scenekit/gltfwriter/geom"
)

// Accessor is a typed view over interleaved-or-not numeric data: the
// writer reads ComponentType/Type/Count to decide layout and byte
// encoding, and Data to produce the packed bytes and min/max arrays.
// Data is always stored as float64 regardless of the declared
// ComponentType; the packer is responsible for the narrowing conversion
// described in spec §4.3.2.
type Accessor struct {
	Common

	ComponentType ComponentType
	Type          AccessorType
	Count         uint32
	Normalized    bool
	Data          []float64

	Buffer *Buffer

	handle Handle
}

func (a *Accessor) Handle() Handle { return a.handle }

// ComponentSize returns the byte size of one scalar component.
func (a *Accessor) ComponentSize() int {
	switch a.ComponentType {
	case ComponentByte, ComponentUbyte:
		return 1
	case ComponentShort, ComponentUshort:
		return 2
	case ComponentUint, ComponentFloat:
		return 4
	default:
		return 0
	}
}

// NumComponents returns the number of scalar components per element,
// e.g. 3 for VEC3.
func (a *Accessor) NumComponents() int {
	switch a.Type {
	case AccessorScalar:
		return 1
	case AccessorVec2:
		return 2
	case AccessorVec3:
		return 3
	case AccessorVec4:
		return 4
	case AccessorMat2:
		return 4
	case AccessorMat3:
		return 9
	case AccessorMat4:
		return 16
	default:
		return 0
	}
}

// ElementByteSize returns the padded-to-nothing byte size of one element
// (NumComponents * ComponentSize); the packer pads this to 4 bytes itself
// where the spec requires it.
func (a *Accessor) ElementByteSize() int {
	return a.NumComponents() * a.ComponentSize()
}

// MinMax returns the per-component minimum and maximum across all
// elements, used by createAccessorDef to populate the JSON min/max
// arrays. Matrix accessors never emit min/max in glTF; callers should
// skip calling this for AccessorMat2/3/4. VEC2/VEC3 accumulate through
// geom.Vector2/Vector3's componentwise Min/Max; other types fall back
// to a flat per-component loop.
func (a *Accessor) MinMax() (min, max []float64) {
	n := a.NumComponents()
	if n == 0 || len(a.Data) == 0 {
		return nil, nil
	}
	switch a.Type {
	case AccessorVec2:
		return minMaxVec2(a.Data)
	case AccessorVec3:
		return minMaxVec3(a.Data)
	default:
		return minMaxFlat(a.Data, n)
	}
}

func minMaxVec2(data []float64) (min, max []float64) {
	minV := geom.NewVector2(float32(data[0]), float32(data[1]))
	maxV := geom.NewVector2(float32(data[0]), float32(data[1]))
	for i := 2; i+2 <= len(data); i += 2 {
		v := geom.NewVector2(float32(data[i]), float32(data[i+1]))
		minV = minV.Min(v)
		maxV = maxV.Max(v)
	}
	return []float64{float64(minV.X), float64(minV.Y)}, []float64{float64(maxV.X), float64(maxV.Y)}
}

func minMaxVec3(data []float64) (min, max []float64) {
	minV := geom.NewVector3(float32(data[0]), float32(data[1]), float32(data[2]))
	maxV := geom.NewVector3(float32(data[0]), float32(data[1]), float32(data[2]))
	for i := 3; i+3 <= len(data); i += 3 {
		v := geom.NewVector3(float32(data[i]), float32(data[i+1]), float32(data[i+2]))
		minV = minV.Min(v)
		maxV = maxV.Max(v)
	}
	return []float64{float64(minV.X), float64(minV.Y), float64(minV.Z)},
		[]float64{float64(maxV.X), float64(maxV.Y), float64(maxV.Z)}
}

func minMaxFlat(data []float64, n int) (min, max []float64) {
	min = make([]float64, n)
	max = make([]float64, n)
	copy(min, data[:n])
	copy(max, data[:n])
	for i := n; i+n <= len(data); i += n {
		for c := 0; c < n; c++ {
			v := data[i+c]
			if v < min[c] {
				min[c] = v
			}
			if v > max[c] {
				max[c] = v
			}
		}
	}
	return min, max
}

// NewAccessor allocates an accessor owned by buf. data holds Count *
// NumComponents(typ) values in row-major element order.
func (r *Root) NewAccessor(buf *Buffer, ct ComponentType, typ AccessorType, count uint32, data []float64) *Accessor {
	a := &Accessor{
		ComponentType: ct,
		Type:          typ,
		Count:         count,
		Data:          data,
		Buffer:        buf,
	}
	a.handle = Handle{Kind: KindAccessor, Index: uint32(len(r.accessors))}
	r.accessors = append(r.accessors, a)
	return a
}

// String aids test failure messages; not used by the writer itself.
func (a *Accessor) String() string {
	return fmt.Sprintf("Accessor(%v %v count=%d)", a.ComponentType, a.Type, a.Count)
}
