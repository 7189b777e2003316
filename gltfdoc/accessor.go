package gltfdoc

import "github.com/scenekit/gltfwriter/graph"

// AccessorDef is createAccessorDef's output (spec §4.3.3).
type AccessorDef struct {
	Common

	BufferView    *uint32             `json:"bufferView,omitempty"`
	ByteOffset    uint32              `json:"byteOffset,omitempty"`
	ComponentType graph.ComponentType `json:"componentType"`
	Normalized    bool                `json:"normalized,omitempty"`
	Count         uint32              `json:"count"`
	Type          graph.AccessorType  `json:"type"`
	Max           []float64           `json:"max,omitempty"`
	Min           []float64           `json:"min,omitempty"`
}

// BufferViewDef is one entry of json.bufferViews.
type BufferViewDef struct {
	Common

	Buffer     uint32 `json:"buffer"`
	ByteOffset uint32 `json:"byteOffset,omitempty"`
	ByteLength uint32 `json:"byteLength"`
	ByteStride uint32 `json:"byteStride,omitempty"`
	Target     uint32 `json:"target,omitempty"`
}

// BufferDef is one entry of json.buffers. URI is empty in GLB mode (the
// sentinel lives only in NativeDocument.Resources, per spec §6.3).
type BufferDef struct {
	Common

	URI        string `json:"uri,omitempty"`
	ByteLength uint32 `json:"byteLength"`
}
