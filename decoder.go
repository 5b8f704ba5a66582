package lenient

import (
	"context"
	"reflect"
	"strings"
	"sync"
	"time"
)

// Decoder decodes records of type T through a Codec, applying each field's
// declared fallback policy when normal decoding of that field fails.
//
// Decoders are safe for concurrent use. SetDefault may be called at any
// time before the first operation to declare per-field fallback values.
//
// Validation occurs automatically on first operation. Declare all defaults
// before the first call to Decode or Encode.
type Decoder[T any] struct {
	codec Codec

	// Mutable configuration protected by mu
	mu       sync.RWMutex
	defaults map[string]any

	// Type-level defaults from FallbackProvider (immutable after construction)
	provided map[string]any

	// Validation state (runs once on first operation)
	validateOnce sync.Once
	validateErr  error

	// Field plans (immutable after construction)
	plans *typeFieldPlans

	// Type metadata
	typeName string
}

// NewDecoder creates a new Decoder for type T.
//
// Policy tags are validated eagerly: an unknown fallback value or a nil
// policy on a non-nilable field fails construction. Declared defaults are
// validated on first operation.
func NewDecoder[T any](codec Codec) (*Decoder[T], error) {
	plans, err := getOrBuildPlans[T]()
	if err != nil {
		return nil, err
	}

	d := &Decoder[T]{
		codec:    codec,
		defaults: make(map[string]any),
		plans:    plans,
		typeName: plans.typeName,
	}

	var zero T
	if fp, ok := any(&zero).(FallbackProvider); ok {
		d.provided = fp.Fallbacks()
	}

	emitDecoderCreated(context.Background(), codec.ContentType(), plans.typeName)
	return d, nil
}

// SetDefault declares the fallback value for a field, by field name.
// It overrides any FallbackProvider or kind default for that field.
// Returns the decoder for chaining. Safe for concurrent use.
func (d *Decoder[T]) SetDefault(field string, v any) *Decoder[T] {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.defaults[field] = v
	return d
}

// Validate checks that all declared defaults are assignable to their
// fields and name fields that exist. Validation also runs automatically on
// first operation; calling Validate explicitly allows catching
// configuration errors at startup.
func (d *Decoder[T]) Validate() error {
	return d.ensureValidated()
}

// ensureValidated runs validation once and caches the result.
func (d *Decoder[T]) ensureValidated() error {
	d.validateOnce.Do(func() {
		d.mu.RLock()
		defer d.mu.RUnlock()
		d.validateErr = d.validateDefaults()
	})
	return d.validateErr
}

// validateDefaults ensures every declared default fits its field.
func (d *Decoder[T]) validateDefaults() error {
	byName := make(map[string]*fieldPlan, len(d.plans.fields))
	for i := range d.plans.fields {
		byName[d.plans.fields[i].name] = &d.plans.fields[i]
	}

	check := func(field string, v any) error {
		plan, ok := byName[field]
		if !ok {
			return newConfigError(ErrInvalidDefault, field, "unknown field")
		}
		if v == nil {
			if !nilableKind(plan.fieldType.Kind()) {
				return newConfigError(ErrInvalidDefault, field, "nil")
			}
			return nil
		}
		rt := reflect.TypeOf(v)
		if !rt.AssignableTo(plan.fieldType) && !rt.ConvertibleTo(plan.fieldType) {
			return newConfigError(ErrInvalidDefault, field, rt.String())
		}
		return nil
	}

	for field, v := range d.provided {
		if err := check(field, v); err != nil {
			return err
		}
	}
	for field, v := range d.defaults {
		if err := check(field, v); err != nil {
			return err
		}
	}
	return nil
}

// Decode unmarshals data into a new T, applying fallback policies.
//
// Untagged fields decode normally: an absent key leaves the zero value and
// a shape mismatch fails the decode. A malformed element inside a
// shape-correct collection fails the decode regardless of policy.
func (d *Decoder[T]) Decode(ctx context.Context, data []byte) (*T, error) {
	if err := d.ensureValidated(); err != nil {
		return nil, err
	}

	start := time.Now()
	emitDecodeStart(ctx, d.codec.ContentType(), d.typeName)

	var retErr error
	fallbacks := 0
	defer func() {
		emitDecodeComplete(ctx, d.codec.ContentType(), d.typeName,
			time.Since(start), fallbacks, retErr)
	}()

	var raw map[string]any
	if err := d.codec.Unmarshal(data, &raw); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}

	obj := new(T)
	rv := reflect.ValueOf(obj).Elem()

	d.mu.RLock()
	defer d.mu.RUnlock()

	for i := range d.plans.fields {
		plan := &d.plans.fields[i]
		field := rv.FieldByIndex(plan.index)

		rawVal, ok := lookupKey(raw, plan.key)
		if !ok || rawVal == nil {
			// Explicit null is treated as a missing key.
			switch plan.policy {
			case PolicyDefault:
				field.Set(d.fallbackFor(plan))
				fallbacks++
			case PolicyNil:
				field.Set(reflect.Zero(plan.fieldType))
				fallbacks++
			}
			continue
		}

		v, err := d.decodeValue(plan.fieldType, rawVal)
		if err != nil {
			if shapeAgrees(rawVal, plan.fieldType) {
				retErr = newFieldError(ErrNestedElement, plan.name, plan.key, err)
				return nil, retErr
			}
			switch plan.policy {
			case PolicyDefault:
				field.Set(d.fallbackFor(plan))
				fallbacks++
			case PolicyNil:
				field.Set(reflect.Zero(plan.fieldType))
				fallbacks++
			default:
				retErr = newFieldError(ErrTypeMismatch, plan.name, plan.key, err)
				return nil, retErr
			}
			continue
		}

		field.Set(v)
	}

	return obj, nil
}

// Encode marshals obj, dropping the keys of omit-tagged fields from the
// output document. The input struct is never mutated.
func (d *Decoder[T]) Encode(ctx context.Context, obj *T) ([]byte, error) {
	if err := d.ensureValidated(); err != nil {
		return nil, err
	}

	start := time.Now()
	emitEncodeStart(ctx, d.codec.ContentType(), d.typeName)

	var retErr error
	var retData []byte
	omitted := 0
	defer func() {
		emitEncodeComplete(ctx, d.codec.ContentType(), d.typeName,
			len(retData), time.Since(start), omitted, retErr)
	}()

	if obj == nil {
		data, err := d.codec.Marshal(nil)
		if err != nil {
			retErr = newCodecError(ErrMarshal, err)
			return nil, retErr
		}
		retData = data
		return retData, nil
	}

	data, err := d.codec.Marshal(obj)
	if err != nil {
		retErr = newCodecError(ErrMarshal, err)
		return nil, retErr
	}

	if !d.plans.hasOmit {
		retData = data
		return retData, nil
	}

	// Rewrite the document without the omitted keys.
	var raw map[string]any
	if err := d.codec.Unmarshal(data, &raw); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}

	for i := range d.plans.fields {
		plan := &d.plans.fields[i]
		if !plan.omit {
			continue
		}
		if deleteKey(raw, plan.key) {
			omitted++
		}
	}

	retData, err = d.codec.Marshal(raw)
	if err != nil {
		retErr = newCodecError(ErrMarshal, err)
		return nil, retErr
	}
	return retData, nil
}

// decodeValue decodes a raw document value into the field type through the
// codec. The value is wrapped in a single-key document so codecs that only
// handle documents at the top level (BSON) work too.
func (d *Decoder[T]) decodeValue(ft reflect.Type, rawVal any) (reflect.Value, error) {
	wrapped, err := d.codec.Marshal(map[string]any{"v": rawVal})
	if err != nil {
		return reflect.Value{}, newCodecError(ErrMarshal, err)
	}

	mp := reflect.New(reflect.MapOf(stringType, ft))
	if err := d.codec.Unmarshal(wrapped, mp.Interface()); err != nil {
		return reflect.Value{}, err
	}

	v := mp.Elem().MapIndex(reflect.ValueOf("v"))
	if !v.IsValid() {
		return reflect.Zero(ft), nil
	}
	return v, nil
}

// fallbackFor resolves the fallback value for a PolicyDefault field.
// Caller holds at least a read lock.
func (d *Decoder[T]) fallbackFor(plan *fieldPlan) reflect.Value {
	if dv, ok := d.defaults[plan.name]; ok {
		return coerceDefault(dv, plan.fieldType)
	}
	if dv, ok := d.provided[plan.name]; ok {
		return coerceDefault(dv, plan.fieldType)
	}
	return kindDefault(plan.fieldType)
}

var stringType = reflect.TypeOf("")

// coerceDefault adapts a declared default to the field type. Defaults are
// validated before first use, so a mismatch here resolves to zero.
func coerceDefault(dv any, ft reflect.Type) reflect.Value {
	if dv == nil {
		return reflect.Zero(ft)
	}
	rv := reflect.ValueOf(dv)
	if rv.Type().AssignableTo(ft) {
		return rv
	}
	if rv.Type().ConvertibleTo(ft) {
		return rv.Convert(ft)
	}
	return reflect.Zero(ft)
}

// kindDefault returns the fallback for fields with no declared default:
// empty (non-nil) collections, zero everything else.
func kindDefault(ft reflect.Type) reflect.Value {
	switch ft.Kind() {
	case reflect.Slice:
		return reflect.MakeSlice(ft, 0, 0)
	case reflect.Map:
		return reflect.MakeMap(ft)
	default:
		return reflect.Zero(ft)
	}
}

// shapeAgrees reports whether a raw value already has the right shape for
// the field, meaning a decode failure happened inside one of its elements
// rather than at the leaf.
func shapeAgrees(rawVal any, ft reflect.Type) bool {
	base := ft
	for base.Kind() == reflect.Pointer {
		base = base.Elem()
	}

	// Kind-based so codec-specific document types (bson primitive.M/A,
	// yaml map variants) classify the same as plain maps and slices.
	rv := reflect.ValueOf(rawVal)
	switch rv.Kind() {
	case reflect.Map:
		return base.Kind() == reflect.Map || base.Kind() == reflect.Struct
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			// Raw binary, not a sequence of elements.
			return false
		}
		if base.Kind() != reflect.Slice && base.Kind() != reflect.Array {
			return false
		}
		// []byte decodes from strings, not sequences.
		return base.Elem().Kind() != reflect.Uint8
	default:
		return false
	}
}

// lookupKey finds a document value by key, falling back to a
// case-insensitive match for codecs that rename fields (YAML lowercases,
// MessagePack keeps Go field names).
func lookupKey(raw map[string]any, key string) (any, bool) {
	if v, ok := raw[key]; ok {
		return v, true
	}
	for k, v := range raw {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

// deleteKey removes a document key, case-insensitively when needed.
// Reports whether a key was removed.
func deleteKey(raw map[string]any, key string) bool {
	if _, ok := raw[key]; ok {
		delete(raw, key)
		return true
	}
	for k := range raw {
		if strings.EqualFold(k, key) {
			delete(raw, k)
			return true
		}
	}
	return false
}
