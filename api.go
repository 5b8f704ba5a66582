// Package lenient provides structured-data decoding with per-field fallback
// policies.
//
// The package offers a Codec interface for marshaling/unmarshaling data,
// along with a generic Decoder that absorbs per-field decode failures
// according to a declared policy instead of failing the whole record.
//
// # Policies
//
// Field behavior is declared via struct tags:
//
//	fallback:"default"  - Substitute the field's declared default when the
//	                      key is missing or the value has the wrong shape.
//	fallback:"nil"      - Produce nil when the key is missing or the value
//	                      has the wrong shape. The field kind must be
//	                      nilable (pointer, slice, map, or interface).
//	encode.omit:"true"  - Decode the field normally but never write it back
//	                      out when encoding.
//
// A fallback never hides element-level corruption: when the raw value has
// the right shape for the field (a sequence for a slice, a mapping for a
// map or struct) but one of its elements fails to decode, the whole record
// decode fails. Only "this value is entirely the wrong shape" is
// recoverable.
//
// # Basic Usage
//
//	type Offering struct {
//	    ID       string            `json:"id"`
//	    Packages []Package         `json:"packages" fallback:"default"`
//	    Metadata map[string]string `json:"metadata" fallback:"default"`
//	    Badge    *Badge            `json:"badge" fallback:"nil"`
//	    ETag     string            `json:"etag" encode.omit:"true"`
//	}
//
//	dec, _ := lenient.NewDecoder[Offering](json.New())
//
//	// Decode tolerates a missing or shape-invalid "packages" value and
//	// yields an empty slice instead; a malformed element inside a real
//	// packages array still fails the decode.
//	off, err := dec.Decode(ctx, payload)
//
//	// Encode drops "etag" from the output document.
//	data, err := dec.Encode(ctx, off)
//
// # Defaults
//
// Fallback values for `fallback:"default"` fields are resolved in order:
//
//  1. A value registered with Decoder.SetDefault.
//  2. The type's own FallbackProvider implementation.
//  3. The kind default: an empty slice or map for collections, the zero
//     value otherwise.
//
// # Codec Providers
//
// The following codec implementations are available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//
// Any codec that can unmarshal a document into a map[string]any works.
package lenient

// FallbackProvider allows record types to declare their own fallback
// values, keyed by field name. Values returned here take precedence over
// kind defaults but are overridden by Decoder.SetDefault.
//
//	func (Offering) Fallbacks() map[string]any {
//	    return map[string]any{"Packages": []Package{}}
//	}
type FallbackProvider interface {
	Fallbacks() map[string]any
}
