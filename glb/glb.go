// Package glb assembles the binary glTF container (.glb) a caller wraps
// around a gltfwriter.NativeDocument produced with Options.IsGLB=true.
package glb

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
)

const (
	magic         uint32 = 0x46546C67 // "glTF"
	version       uint32 = 2
	chunkTypeJSON uint32 = 0x4E4F534A // "JSON"
	chunkTypeBIN  uint32 = 0x004E4942 // "BIN\x00"

	glbSentinel = "@glb.bin"
)

// Pack serializes doc's JSON and the "@glb.bin" resource into a single
// .glb byte stream: a 12-byte header, a JSON chunk, and a BIN chunk.
// The BIN chunk is left out when the "@glb.bin" resource is absent or
// empty.
// resources must come from a NativeDocument written with IsGLB=true;
// any other sentinel-keyed resource is ignored.
func Pack(docJSON map[string]interface{}, resources map[string][]byte) ([]byte, error) {
	jsonBytes, err := json.Marshal(docJSON)
	if err != nil {
		return nil, fmt.Errorf("glb: marshal json chunk: %w", err)
	}
	for len(jsonBytes)%4 != 0 {
		jsonBytes = append(jsonBytes, ' ')
	}

	bin := resources[glbSentinel]
	for len(bin)%4 != 0 {
		bin = append(bin, 0)
	}

	var out bytes.Buffer
	total := 12 + 8 + len(jsonBytes)
	if len(bin) > 0 {
		total += 8 + len(bin)
	}

	writeUint32(&out, magic)
	writeUint32(&out, version)
	writeUint32(&out, uint32(total))

	writeUint32(&out, uint32(len(jsonBytes)))
	writeUint32(&out, chunkTypeJSON)
	out.Write(jsonBytes)

	if len(bin) > 0 {
		writeUint32(&out, uint32(len(bin)))
		writeUint32(&out, chunkTypeBIN)
		out.Write(bin)
	}

	return out.Bytes(), nil
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}
