// Package gltfwriter implements the serialization core that turns a
// graph.Root into a glTF JSON document plus binary resources.
package gltfwriter

import "log"

// Options controls the output packaging mode.
type Options struct {
	// Basename feeds the URI generator (spec §4.6); typically the
	// output file's name without extension.
	Basename string

	// IsGLB packages buffer 0 and every texture under the "@glb.bin"
	// sentinel instead of generating external or data-URI resources.
	IsGLB bool

	// Embedded, when IsGLB is false, base64-encodes every buffer as a
	// data URI instead of writing external files; texture bytes are
	// appended to buffer 0 and referenced by bufferView.
	// Ignored when IsGLB is true.
	Embedded bool

	// Logger receives the WarnEmptyBuffer warning. Nil defaults to
	// log.Default().
	Logger *log.Logger
}

func (o *Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

// NativeDocument is the writer's output: a glTF JSON object plus a
// mapping from resource URI (or the GLB sentinel) to raw bytes.
type NativeDocument struct {
	JSON      map[string]interface{}
	Resources map[string][]byte
}

// glbSentinel is the reserved buffer URI used in GLB mode; packagers
// look it up in Resources to build the binary chunk.
const glbSentinel = "@glb.bin"
