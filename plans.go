package lenient

import (
	"reflect"
	"strings"
	"sync"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register policy tags with sentinel
	sentinel.Tag("fallback")
	sentinel.Tag("encode.omit")
}

// fieldPlan describes how to decode and encode a single field.
type fieldPlan struct {
	index     []int        // reflect.Value.FieldByIndex access path
	name      string       // field name for error messages and defaults
	key       string       // document key the field is read from
	policy    Policy       // fallback policy, PolicyNone when untagged
	omit      bool         // true if the field is dropped on encode
	fieldType reflect.Type // declared field type
}

// typeFieldPlans holds the immutable plans for a record type.
type typeFieldPlans struct {
	typeName string
	fields   []fieldPlan
	hasOmit  bool
}

var (
	planCache   = make(map[reflect.Type]*typeFieldPlans)
	planCacheMu sync.RWMutex
)

// getOrBuildPlans returns cached field plans for T, building them once.
func getOrBuildPlans[T any]() (*typeFieldPlans, error) {
	rt := reflect.TypeFor[T]()

	planCacheMu.RLock()
	if cached, ok := planCache[rt]; ok {
		planCacheMu.RUnlock()
		return cached, nil
	}
	planCacheMu.RUnlock()

	planCacheMu.Lock()
	defer planCacheMu.Unlock()

	// Double-check pattern
	if cached, ok := planCache[rt]; ok {
		return cached, nil
	}

	plans, err := buildFieldPlans[T](rt)
	if err != nil {
		return nil, err
	}

	planCache[rt] = plans
	return plans, nil
}

// buildFieldPlans creates field plans for a record type by scanning struct tags.
func buildFieldPlans[T any](rt reflect.Type) (*typeFieldPlans, error) {
	spec := sentinel.Scan[T]()
	plans := &typeFieldPlans{
		typeName: spec.TypeName,
	}

	for _, field := range spec.Fields {
		sf := rt.FieldByIndex(field.Index)
		if !sf.IsExported() {
			continue
		}

		key := documentKey(sf)
		if key == "" {
			continue
		}

		plan := fieldPlan{
			index:     field.Index,
			name:      field.Name,
			key:       key,
			fieldType: sf.Type,
		}

		if val, ok := field.Tags["fallback"]; ok {
			p := Policy(val)
			if !IsValidPolicy(p) {
				return nil, newConfigError(ErrInvalidTag, field.Name, val)
			}
			if p == PolicyNil && !nilableKind(sf.Type.Kind()) {
				return nil, newConfigError(ErrNotNilable, field.Name, sf.Type.String())
			}
			plan.policy = p
		}

		if val, ok := field.Tags["encode.omit"]; ok {
			if val != "true" {
				return nil, newConfigError(ErrInvalidTag, field.Name, val)
			}
			plan.omit = true
			plans.hasOmit = true
		}

		plans.fields = append(plans.fields, plan)
	}

	return plans, nil
}

// documentKey resolves the document key a field is read from. The json tag
// name wins when present; a "-" name excludes the field entirely.
func documentKey(sf reflect.StructField) string {
	tag, ok := sf.Tag.Lookup("json")
	if !ok {
		return sf.Name
	}
	name := tag
	if i := strings.IndexByte(tag, ','); i >= 0 {
		name = tag[:i]
	}
	if name == "-" {
		return ""
	}
	if name == "" {
		return sf.Name
	}
	return name
}

// nilableKind reports whether a field of this kind can hold nil.
func nilableKind(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return true
	default:
		return false
	}
}
