package lenient

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := newConfigError(ErrInvalidTag, "Tags", "maybe")

	if !errors.Is(err, ErrInvalidTag) {
		t.Error("ConfigError does not unwrap to its sentinel")
	}

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatal("error is not a *ConfigError")
	}
	if cfgErr.Field != "Tags" || cfgErr.Detail != "maybe" {
		t.Errorf("ConfigError = (%s, %s), want (Tags, maybe)", cfgErr.Field, cfgErr.Detail)
	}
	if !strings.Contains(err.Error(), "Tags") || !strings.Contains(err.Error(), "maybe") {
		t.Errorf("Error() = %q, missing context", err.Error())
	}
}

func TestConfigError_NoDetail(t *testing.T) {
	err := newConfigError(ErrNotNilable, "Name", "")
	want := `field not nilable (field Name)`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestFieldError(t *testing.T) {
	cause := errors.New("cannot unmarshal")
	err := newFieldError(ErrNestedElement, "Packages", "packages", cause)

	if !errors.Is(err, ErrNestedElement) {
		t.Error("FieldError does not unwrap to its sentinel")
	}

	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatal("error is not a *FieldError")
	}
	if fieldErr.Field != "Packages" || fieldErr.Key != "packages" || fieldErr.Cause != cause {
		t.Errorf("FieldError = %+v", fieldErr)
	}
	if !strings.Contains(err.Error(), "cannot unmarshal") {
		t.Errorf("Error() = %q, missing cause", err.Error())
	}
}

func TestCodecError(t *testing.T) {
	cause := errors.New("unexpected end of input")
	err := newCodecError(ErrUnmarshal, cause)

	if !errors.Is(err, ErrUnmarshal) {
		t.Error("CodecError does not unwrap to its sentinel")
	}

	var codecErr *CodecError
	if !errors.As(err, &codecErr) {
		t.Fatal("error is not a *CodecError")
	}
	if codecErr.Cause != cause {
		t.Errorf("Cause = %v, want %v", codecErr.Cause, cause)
	}
	want := "unmarshal failed: unexpected end of input"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
