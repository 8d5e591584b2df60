package parser

// values.go - strict conversion of an untyped JSON value tree into typed arrays
//
// The tree is whatever the JSON deserializer produced: map[string]any for
// objects, []any for arrays, and numeric scalars (int64/float64/json.Number
// depending on the decoder). Every conversion fails with ErrShapeMismatch
// instead of guessing.

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// ToMap converts an object node to a string-keyed map.
func ToMap(v any, path string) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, mismatch(path, "object", v)
	}
	return m, nil
}

// ToList converts an array node to a slice.
func ToList(v any, path string) ([]any, error) {
	l, ok := v.([]any)
	if !ok {
		return nil, mismatch(path, "array", v)
	}
	return l, nil
}

// ToFloat converts a numeric scalar to float64.
// Strings and booleans are rejected even when cast could parse them.
func ToFloat(v any, path string) (float64, error) {
	switch n := v.(type) {
	case nil, string, bool, []any, map[string]any:
		return 0, mismatch(path, "number", v)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, mismatch(path, "number", v)
		}
		return f, nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, mismatch(path, "number", v)
	}
	return f, nil
}

// ToInt converts a numeric scalar to int. Non-integral values are rejected.
func ToInt(v any, path string) (int, error) {
	f, err := ToFloat(v, path)
	if err != nil {
		return 0, mismatch(path, "integer", v)
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, mismatch(path, "integer", v)
	}
	return int(f), nil
}

// ToFloatArray converts [n, n, ...] to []float64.
func ToFloatArray(v any, path string) ([]float64, error) {
	list, err := ToList(v, path)
	if err != nil {
		return nil, mismatch(path, "[]number", v)
	}
	result := make([]float64, len(list))
	for i, elem := range list {
		if result[i], err = ToFloat(elem, index(path, i)); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// ToFloatArray2 converts [[n, ...], ...] to [][]float64.
func ToFloatArray2(v any, path string) ([][]float64, error) {
	list, err := ToList(v, path)
	if err != nil {
		return nil, mismatch(path, "[][]number", v)
	}
	result := make([][]float64, len(list))
	for i, elem := range list {
		if result[i], err = ToFloatArray(elem, index(path, i)); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// ToFloatArray3 converts [[[n, ...], ...], ...] to [][][]float64.
func ToFloatArray3(v any, path string) ([][][]float64, error) {
	list, err := ToList(v, path)
	if err != nil {
		return nil, mismatch(path, "[][][]number", v)
	}
	result := make([][][]float64, len(list))
	for i, elem := range list {
		if result[i], err = ToFloatArray2(elem, index(path, i)); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// ToIntArray converts [i, i, ...] to []int.
func ToIntArray(v any, path string) ([]int, error) {
	list, err := ToList(v, path)
	if err != nil {
		return nil, mismatch(path, "[]integer", v)
	}
	result := make([]int, len(list))
	for i, elem := range list {
		if result[i], err = ToInt(elem, index(path, i)); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// ToIntArray2 converts [[i, ...], ...] to [][]int.
func ToIntArray2(v any, path string) ([][]int, error) {
	list, err := ToList(v, path)
	if err != nil {
		return nil, mismatch(path, "[][]integer", v)
	}
	result := make([][]int, len(list))
	for i, elem := range list {
		if result[i], err = ToIntArray(elem, index(path, i)); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// ToIntArray3 converts [[[i, ...], ...], ...] to [][][]int.
func ToIntArray3(v any, path string) ([][][]int, error) {
	list, err := ToList(v, path)
	if err != nil {
		return nil, mismatch(path, "[][][]integer", v)
	}
	result := make([][][]int, len(list))
	for i, elem := range list {
		if result[i], err = ToIntArray2(elem, index(path, i)); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// toPair converts [x, y] (extra dimensions allowed) to a fixed pair.
func toPair(v any, path string) ([2]int, error) {
	coords, err := ToIntArray(v, path)
	if err != nil {
		return [2]int{}, err
	}
	if len(coords) < 2 {
		return [2]int{}, &ErrShapeMismatch{
			Path:     path,
			Expected: "pair [x, y]",
			Got:      fmt.Sprintf("%d values", len(coords)),
		}
	}
	return [2]int{coords[0], coords[1]}, nil
}

func index(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func mismatch(path, expected string, v any) *ErrShapeMismatch {
	return &ErrShapeMismatch{Path: path, Expected: expected, Got: describe(v)}
}

// describe names the JSON kind of a value for error messages.
func describe(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("string %q", t)
	case bool:
		return fmt.Sprintf("bool %v", t)
	case []any:
		return fmt.Sprintf("array of %d", len(t))
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T %v", v, v)
	}
}
