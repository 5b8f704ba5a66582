package lenient

// Policy represents a declared fallback behavior for a field.
// Use these constants in struct tags: `fallback:"default"`
type Policy string

const (
	// PolicyNone applies no fallback: a missing key leaves the zero value
	// and a shape mismatch fails the decode.
	PolicyNone Policy = ""

	// PolicyDefault substitutes the field's declared default when the key
	// is missing or the value has the wrong shape.
	PolicyDefault Policy = "default"

	// PolicyNil produces nil when the key is missing or the value has the
	// wrong shape. Requires a nilable field kind.
	PolicyNil Policy = "nil"
)

// validPolicies contains all valid fallback policies for tag validation.
var validPolicies = map[Policy]bool{
	PolicyDefault: true,
	PolicyNil:     true,
}

// IsValidPolicy returns true if the policy is a known fallback policy.
func IsValidPolicy(p Policy) bool {
	return validPolicies[p]
}
