package engine

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// A Value is an animatable value: a float64, a string (treated as a hex colour
// when it parses as one), or a []float64 vector.
type Value interface{}

// Interpolate blends a and b at the eased fraction f. Values that cannot be
// blended smoothly (arbitrary strings, mismatched types) are discrete: they
// hold a until f reaches 1.
func Interpolate(a, b Value, f float64) Value {
	if f <= 0 {
		return a
	}
	if f >= 1 {
		return b
	}

	switch av := a.(type) {
	case float64:
		if bv, ok := b.(float64); ok {
			return av + (bv-av)*f
		}
	case string:
		if bv, ok := b.(string); ok {
			if blended, ok := blendHex(av, bv, f); ok {
				return blended
			}
		}
	case []float64:
		if bv, ok := b.([]float64); ok {
			return blendVector(av, bv, f)
		}
	}

	return a
}

// blendHex blends two hex colours channel-wise in RGB space and re-emits
// zero-padded lowercase #rrggbb. Accepts #rgb and #rrggbb, any case.
func blendHex(a, b string, f float64) (string, bool) {
	if !strings.HasPrefix(a, "#") || !strings.HasPrefix(b, "#") {
		return "", false
	}
	ca, err := colorful.Hex(a)
	if err != nil {
		return "", false
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return "", false
	}
	return ca.BlendRgb(cb, f).Hex(), true
}

// blendVector blends element-wise over the shorter of the two lengths.
func blendVector(a, b []float64, f float64) []float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = a[i] + (b[i]-a[i])*f
	}
	return out
}

// normalizeValue coerces the numeric shapes that arrive from callers and from
// decoded JSON into the canonical float64 / []float64 forms.
func normalizeValue(v Value) Value {
	switch tv := v.(type) {
	case int:
		return float64(tv)
	case float32:
		return float64(tv)
	case []interface{}:
		out := make([]float64, len(tv))
		for i, e := range tv {
			switch n := e.(type) {
			case float64:
				out[i] = n
			case int:
				out[i] = float64(n)
			}
		}
		return out
	}
	return v
}
