package gltfwriter

import "reflect"

// postProcess implements spec §4.7: a single non-recursive pass over the
// root JSON object. Nested objects are left alone; every emitter is
// responsible for omitting its own unused fields via struct tags.
func postProcess(doc map[string]interface{}) {
	for key, val := range doc {
		if isEmptyJSONValue(val) {
			delete(doc, key)
		}
	}
}

func isEmptyJSONValue(v interface{}) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	}
	return false
}
