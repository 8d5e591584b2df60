package parser

// Transform is the quantization transform of a topology. Quantized positions
// are mapped to map coordinates as (x*Scale[0]+Translate[0], y*Scale[1]+Translate[1]).
type Transform struct {
	Scale     [2]float64
	Translate [2]float64
}

// Apply maps one absolute quantized position to map coordinates.
func (t *Transform) Apply(x, y float64) [2]float64 {
	return [2]float64{
		x*t.Scale[0] + t.Translate[0],
		y*t.Scale[1] + t.Translate[1],
	}
}

// parseTransform reads {"scale": [sx, sy], "translate": [tx, ty]}.
// A missing scale defaults to (1, 1) and a missing translate to (0, 0).
func parseTransform(v any) (*Transform, error) {
	obj, err := ToMap(v, "transform")
	if err != nil {
		return nil, err
	}

	t := &Transform{Scale: [2]float64{1, 1}}

	if raw, ok := obj["scale"]; ok {
		if t.Scale, err = toFloatPair(raw, "transform.scale"); err != nil {
			return nil, err
		}
	}
	if raw, ok := obj["translate"]; ok {
		if t.Translate, err = toFloatPair(raw, "transform.translate"); err != nil {
			return nil, err
		}
	}

	return t, nil
}

func toFloatPair(v any, path string) ([2]float64, error) {
	values, err := ToFloatArray(v, path)
	if err != nil {
		return [2]float64{}, err
	}
	if len(values) != 2 {
		return [2]float64{}, &ErrShapeMismatch{Path: path, Expected: "pair [x, y]", Got: describe(v)}
	}
	return [2]float64{values[0], values[1]}, nil
}
