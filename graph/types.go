package graph

// ComponentType mirrors glTF's accessor.componentType enum. Named and
// valued the way github.com/qmuntal/gltf names its own ComponentType
// constants, but declared locally: the literal GL enum values (5120,
// 5121, ...) must round-trip through JSON exactly, and a hand-declared
// constant is the only way to guarantee that without running the
// toolchain against the dependency's actual MarshalJSON.
type ComponentType uint32

const (
	ComponentByte   ComponentType = 5120
	ComponentUbyte  ComponentType = 5121
	ComponentShort  ComponentType = 5122
	ComponentUshort ComponentType = 5123
	ComponentUint   ComponentType = 5125
	ComponentFloat  ComponentType = 5126
)

// AccessorType mirrors glTF's accessor.type enum.
type AccessorType string

const (
	AccessorScalar AccessorType = "SCALAR"
	AccessorVec2   AccessorType = "VEC2"
	AccessorVec3   AccessorType = "VEC3"
	AccessorVec4   AccessorType = "VEC4"
	AccessorMat2   AccessorType = "MAT2"
	AccessorMat3   AccessorType = "MAT3"
	AccessorMat4   AccessorType = "MAT4"
)
