package apperr

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
)

// DecodeJSON decodes a request body into v. A value of the wrong type is reported
// against its field, anything else unreadable as "invalid request body".
func DecodeJSON(body io.Reader, v any) error {
	err := json.NewDecoder(body).Decode(v)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		// embedded structs show up as "Metrics.steps"
		field := typeErr.Field[strings.LastIndex(typeErr.Field, ".")+1:]
		if typeErr.Type != nil && isInteger(typeErr.Type.Kind()) && strings.HasPrefix(typeErr.Value, "number") {
			return Validation("%s must be a whole number", field)
		}
		return Validation("%s has an invalid type", field)
	}

	return Validation("invalid request body")
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}
