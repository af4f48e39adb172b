package quantize

import (
	"sort"

	gojson "github.com/goccy/go-json"
)

// Canonicalize recursively quantizes every float64 leaf of v and sorts any
// array whose every element is a JSON object carrying a string "id" field.
// v is expected to be the output of an Unmarshal into interface{} (so
// objects are map[string]interface{} and arrays are []interface{}); any
// other concrete type is returned unchanged.
func Canonicalize(v interface{}) interface{} {
	switch val := v.(type) {
	case float64:
		return Quantize(val)
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, child := range val {
			out[k] = Canonicalize(child)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, child := range val {
			out[i] = Canonicalize(child)
		}
		if isIDKeyedObjectArray(out) {
			sort.SliceStable(out, func(i, j int) bool {
				return idOf(out[i]) < idOf(out[j])
			})
		}
		return out
	default:
		return val
	}
}

func isIDKeyedObjectArray(arr []interface{}) bool {
	if len(arr) == 0 {
		return false
	}
	for _, el := range arr {
		m, ok := el.(map[string]interface{})
		if !ok {
			return false
		}
		if _, ok := m["id"].(string); !ok {
			return false
		}
	}
	return true
}

func idOf(v interface{}) string {
	return v.(map[string]interface{})["id"].(string)
}

// MarshalCanonical marshals v to JSON, then re-decodes and canonicalizes
// that JSON (quantized floats, sorted keys via goccy/go-json's default
// lexicographic map-key ordering, id-sorted object arrays) before
// re-marshaling, so the returned bytes satisfy the byte-exact property:
// MarshalCanonical(v) always produces the same bytes for semantically
// equal v regardless of Go map iteration order or float noise.
func MarshalCanonical(v interface{}) ([]byte, error) {
	raw, err := gojson.Marshal(v)
	if err != nil {
		return nil, err
	}
	return CanonicalizeBytes(raw)
}

// CanonicalizeBytes re-decodes a JSON document and re-encodes it in
// canonical form.
func CanonicalizeBytes(raw []byte) ([]byte, error) {
	var generic interface{}
	if err := gojson.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return gojson.Marshal(Canonicalize(generic))
}

// UnmarshalCanonical decodes raw into a generic JSON value and canonicalizes
// it, for use on command parameters before dispatch (spec §4.H step 1:
// "params <- quantize(params)").
func UnmarshalCanonical(raw []byte) (interface{}, error) {
	var generic interface{}
	if err := gojson.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return Canonicalize(generic), nil
}
