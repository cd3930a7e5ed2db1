package bic

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
)

// Absent marks a field that was not part of the submission. It normalises like
// nil.
var Absent = absent{}

type absent struct{}

var lineBreaks = strings.NewReplacer("\r", "", "\n", "")

// Normalize converts raw submitted input into the field's canonical string.
//
// ok is false when input is absent (nil, a nil pointer or Absent). Scalars
// (strings, booleans, integers, floats, json.Number and pointers to them) are
// formatted and stripped of every '\r' and '\n'. Any other value (slices,
// maps, structs) is not trusted as text and normalises to "".
func Normalize(input any) (value string, ok bool) {
	text, present, _ := normalize(input)
	return text, present
}

// normalize also reports whether input had to be coerced because it was not a
// scalar.
func normalize(input any) (value string, present, coerced bool) {
	if input == nil {
		return "", false, false
	}
	if _, isAbsent := input.(absent); isAbsent {
		return "", false, false
	}

	text, scalar, isNil := scalarText(input)
	if isNil {
		return "", false, false
	}
	if !scalar {
		return "", true, true
	}
	return lineBreaks.Replace(text), true, false
}

func scalarText(input any) (text string, scalar, isNil bool) {
	switch v := input.(type) {
	case string:
		return v, true, false
	case json.Number:
		return v.String(), true, false
	case bool:
		return strconv.FormatBool(v), true, false
	}

	rv := reflect.ValueOf(input)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false, true
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true, false
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true, false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true, false
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true, false
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true, false
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true, false
	default:
		return "", false, false
	}
}
