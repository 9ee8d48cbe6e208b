package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// structValue returns the struct behind a non-nil pointer.
func structValue(v any) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return reflect.Value{}, ErrInvalidTarget
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, ErrInvalidTarget
	}
	return rv, nil
}

// tagName returns the parameter name from a tag such as `form:"first,omitempty"`.
// Missing and "-" tags report false.
func tagName(field reflect.StructField, tag string) (string, bool) {
	name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
	if name == "" || name == "-" {
		return "", false
	}
	return name, true
}

// embedded reports whether sf is an untagged embedded struct whose fields
// bind as if declared on the outer struct.
func embedded(sf reflect.StructField, tag string) bool {
	return sf.Anonymous && sf.Type.Kind() == reflect.Struct && sf.Tag.Get(tag) == ""
}

func taggedNames(v any, tag string) ([]string, error) {
	rv, err := structValue(v)
	if err != nil {
		return nil, err
	}
	return collectNames(rv.Type(), tag), nil
}

func collectNames(rt reflect.Type, tag string) []string {
	var names []string
	for i := range rt.NumField() {
		sf := rt.Field(i)
		if embedded(sf, tag) {
			names = append(names, collectNames(sf.Type, tag)...)
			continue
		}
		if name, ok := tagName(sf, tag); ok {
			names = append(names, name)
		}
	}
	return names
}

func bindValues(v any, tag string, values map[string][]string, bindErr error) error {
	rv, err := structValue(v)
	if err != nil {
		return fmt.Errorf("%w: %v", bindErr, err)
	}
	return bindStruct(rv, tag, values, bindErr)
}

func bindStruct(rv reflect.Value, tag string, values map[string][]string, bindErr error) error {
	rt := rv.Type()
	for i := range rt.NumField() {
		field := rv.Field(i)
		sf := rt.Field(i)
		if embedded(sf, tag) {
			if err := bindStruct(field, tag, values, bindErr); err != nil {
				return err
			}
			continue
		}
		if !field.CanSet() {
			continue
		}

		name, ok := tagName(sf, tag)
		if !ok {
			continue
		}

		vals, exists := values[name]
		if !exists || len(vals) == 0 {
			continue
		}

		if err := setFieldValue(field, sf.Type, vals); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, sf.Name, err)
		}
	}
	return nil
}

func setFieldValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	if fieldType.Kind() == reflect.Pointer {
		if field.IsNil() {
			field.Set(reflect.New(fieldType.Elem()))
		}
		return setFieldValue(field.Elem(), fieldType.Elem(), values)
	}

	if fieldType.Kind() == reflect.Slice {
		slice := reflect.MakeSlice(fieldType, len(values), len(values))
		for i, value := range values {
			if err := setScalar(slice.Index(i), fieldType.Elem(), value); err != nil {
				return err
			}
		}
		field.Set(slice)
		return nil
	}

	return setScalar(field, fieldType, values[0])
}

func setScalar(field reflect.Value, fieldType reflect.Type, value string) error {
	switch fieldType.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		field.SetUint(n)

	case reflect.Bool:
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported type %s", fieldType.Kind())
	}
	return nil
}

// parseBool accepts strconv.ParseBool values plus the checkbox forms.
func parseBool(value string) (bool, error) {
	if b, err := strconv.ParseBool(value); err == nil {
		return b, nil
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "yes":
		return true, nil
	case "off", "no", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid bool value %q", value)
}
