// Package gltfdoc declares the plain JSON-shaped structs the writer's
// emitters populate. Each nested def carries its own `omitempty` tags so
// an emitter only has to leave a field at its zero value to drop it from
// the output (spec §4.7: "nested objects are not traversed; the emitters
// are responsible for omitting unused nested fields themselves"). Only
// the root document is assembled as a plain map so the writer's
// non-recursive post-processing pass has real top-level keys to delete.
package gltfdoc

// Common is copied onto every def from the source property's Name,
// Extras and Extensions. The two pass-through slots are independent —
// unlike the teacher's latent bug (spec §9), Extensions never overwrites
// Extras.
type Common struct {
	Name       string      `json:"name,omitempty"`
	Extras     interface{} `json:"extras,omitempty"`
	Extensions interface{} `json:"extensions,omitempty"`
}

// Asset is glTF's mandatory top-level asset block.
type Asset struct {
	Version   string `json:"version"`
	Generator string `json:"generator,omitempty"`
}
