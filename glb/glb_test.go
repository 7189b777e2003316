package glb

import (
	"encoding/binary"
	"testing"
)

func TestPackHeaderAndChunks(t *testing.T) {
	doc := map[string]interface{}{"asset": map[string]string{"version": "2.0"}}
	resources := map[string][]byte{glbSentinel: {1, 2, 3}}

	out, err := Pack(doc, resources)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	if len(out) < 12 {
		t.Fatalf("Pack() output too short: %d bytes", len(out))
	}
	if got := binary.LittleEndian.Uint32(out[0:4]); got != magic {
		t.Errorf("magic = %#x, want %#x", got, magic)
	}
	if got := binary.LittleEndian.Uint32(out[4:8]); got != version {
		t.Errorf("version = %d, want %d", got, version)
	}
	total := binary.LittleEndian.Uint32(out[8:12])
	if int(total) != len(out) {
		t.Errorf("header length = %d, want %d (actual output length)", total, len(out))
	}

	jsonLen := binary.LittleEndian.Uint32(out[12:16])
	if got := binary.LittleEndian.Uint32(out[16:20]); got != chunkTypeJSON {
		t.Errorf("first chunk type = %#x, want JSON", got)
	}
	jsonEnd := 20 + int(jsonLen)
	if jsonLen%4 != 0 {
		t.Errorf("json chunk length %d not 4-byte aligned", jsonLen)
	}

	binLen := binary.LittleEndian.Uint32(out[jsonEnd : jsonEnd+4])
	if got := binary.LittleEndian.Uint32(out[jsonEnd+4 : jsonEnd+8]); got != chunkTypeBIN {
		t.Errorf("second chunk type = %#x, want BIN", got)
	}
	if binLen%4 != 0 {
		t.Errorf("bin chunk length %d not 4-byte aligned", binLen)
	}
	bin := out[jsonEnd+8 : jsonEnd+8+int(binLen)]
	if bin[0] != 1 || bin[1] != 2 || bin[2] != 3 {
		t.Errorf("bin chunk content = %v, want it to start with [1 2 3]", bin)
	}
}

func TestPackOmitsBINChunkWhenNoBuffer(t *testing.T) {
	doc := map[string]interface{}{"asset": map[string]string{"version": "2.0"}}
	out, err := Pack(doc, nil)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	jsonLen := binary.LittleEndian.Uint32(out[12:16])
	total := binary.LittleEndian.Uint32(out[8:12])
	if int(total) != 12+8+int(jsonLen) {
		t.Errorf("total length = %d, want header+JSON chunk only (no BIN chunk)", total)
	}
}
