package apiclient

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/lily-salon/internal/dto"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// A zero Date counts as missing for `required`.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(dto.Date); ok && !d.IsZero() {
			return d.String()
		}
		return nil
	}, dto.Date{})

	return v
}

// decode reads body into out and validates every record it holds.
func decode(path string, body io.Reader, out any) error {
	if err := json.NewDecoder(body).Decode(out); err != nil {
		return &DecodeError{Path: path, Err: err}
	}
	if err := validateValue(reflect.ValueOf(out).Elem()); err != nil {
		return &DecodeError{Path: path, Err: err}
	}
	return nil
}

func validateValue(v reflect.Value) error {
	switch v.Kind() {
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			if err := validateValue(v.Index(i)); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
		return nil
	case reflect.Struct:
		return validate.Struct(v.Interface())
	}
	return nil
}
