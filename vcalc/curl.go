package vcalc

import (
	"fmt"

	"github.com/katalvlaran/fdiff/field"
)

// Curl returns the curl of a 2-D or 3-D vector field.
//
//   - 2 fields (Fx, Fy) → one component: ∂Fy/∂x − ∂Fx/∂y.
//   - 3 fields (Fx, Fy, Fz) → three components:
//     ∂Fz/∂y − ∂Fy/∂z, ∂Fx/∂z − ∂Fz/∂x, ∂Fy/∂x − ∂Fx/∂y.
//
// Validation is the same as Gradient; any other dimensionality fails with
// ErrCurlDimension. Curl2D and Curl3D are the typed entry points.
func Curl(fields []*field.Field, opts ...Option) ([]*field.Field, error) {
	hs, err := checkFields("Curl", fields, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}

	switch len(fields) {
	case 2:
		c, err := curl2(fields[0], fields[1], hs)
		if err != nil {
			return nil, err
		}

		return []*field.Field{c}, nil
	case 3:
		c, err := curl3(fields[0], fields[1], fields[2], hs)
		if err != nil {
			return nil, err
		}

		return c[:], nil
	default:
		return nil, invalidf("Curl", ErrCurlDimension, "got %d dimensions", len(fields))
	}
}

// Curl2D returns the scalar curl ∂Fy/∂x − ∂Fx/∂y of the planar field (fx, fy).
// fx and fy must be 2-D fields of the same shape.
func Curl2D(fx, fy *field.Field, opts ...Option) (*field.Field, error) {
	hs, err := checkFields("Curl2D", []*field.Field{fx, fy}, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}

	return curl2(fx, fy, hs)
}

// Curl3D returns the three curl components of (fx, fy, fz), which must be
// 3-D fields of the same shape.
func Curl3D(fx, fy, fz *field.Field, opts ...Option) ([3]*field.Field, error) {
	hs, err := checkFields("Curl3D", []*field.Field{fx, fy, fz}, gatherOptions(opts...))
	if err != nil {
		return [3]*field.Field{}, err
	}

	return curl3(fx, fy, fz, hs)
}

func curl2(fx, fy *field.Field, hs []float64) (*field.Field, error) {
	c, err := crossTerm(fy, 0, fx, 1, hs)
	if err != nil {
		return nil, fmt.Errorf("vcalc.Curl2D: %w", err)
	}

	return c, nil
}

func curl3(fx, fy, fz *field.Field, hs []float64) ([3]*field.Field, error) {
	var out [3]*field.Field
	terms := [3]struct {
		a     *field.Field
		aAxis int
		b     *field.Field
		bAxis int
	}{
		{fz, 1, fy, 2}, // ∂Fz/∂y − ∂Fy/∂z
		{fx, 2, fz, 0}, // ∂Fx/∂z − ∂Fz/∂x
		{fy, 0, fx, 1}, // ∂Fy/∂x − ∂Fx/∂y
	}
	for k, t := range terms {
		c, err := crossTerm(t.a, t.aAxis, t.b, t.bAxis, hs)
		if err != nil {
			return [3]*field.Field{}, fmt.Errorf("vcalc.Curl3D: component %d: %w", k, err)
		}
		out[k] = c
	}

	return out, nil
}

// crossTerm returns ∂a/∂x_aAxis − ∂b/∂x_bAxis.
func crossTerm(a *field.Field, aAxis int, b *field.Field, bAxis int, hs []float64) (*field.Field, error) {
	da, err := partial(a, aAxis, hs[aAxis])
	if err != nil {
		return nil, err
	}
	db, err := partial(b, bAxis, hs[bAxis])
	if err != nil {
		return nil, err
	}

	return field.Sub(da, db)
}
