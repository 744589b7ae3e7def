package scenefile

import (
	"fmt"

	"github.com/gogpu/dlist"
	"github.com/gogpu/dlist/geom"
)

func px(v float32) geom.Au {
	return geom.FromFloat32Px(v)
}

func rectOf(field string, v []float32) (geom.Rect, error) {
	if len(v) != 4 {
		return geom.Rect{}, fmt.Errorf("%s: want [x, y, w, h], got %d numbers: %w", field, len(v), ErrInvalidValue)
	}
	if v[2] < 0 || v[3] < 0 {
		return geom.Rect{}, fmt.Errorf("%s: negative size: %w", field, ErrInvalidValue)
	}
	return geom.RectFXYWH(v[0], v[1], v[2], v[3]).ToRect(), nil
}

func pointOf(field string, v []float32) (geom.Point, error) {
	if len(v) != 2 {
		return geom.Point{}, fmt.Errorf("%s: want [x, y], got %d numbers: %w", field, len(v), ErrInvalidValue)
	}
	return geom.PointFromF(v[0], v[1]), nil
}

// optPoint is pointOf with a zero default for a missing field.
func optPoint(field string, v []float32) (geom.Point, error) {
	if len(v) == 0 {
		return geom.Point{}, nil
	}
	return pointOf(field, v)
}

// fourOf expands one value to every side, or takes four in
// top, right, bottom, left order.
func fourOf[T any](field string, v []T, def T) ([4]T, error) {
	switch len(v) {
	case 0:
		return [4]T{def, def, def, def}, nil
	case 1:
		return [4]T{v[0], v[0], v[0], v[0]}, nil
	case 4:
		return [4]T{v[0], v[1], v[2], v[3]}, nil
	}
	return [4]T{}, fmt.Errorf("%s: want 1 or 4 values, got %d: %w", field, len(v), ErrInvalidValue)
}

func radiiOf(field string, v []float32) (geom.BorderRadii, error) {
	r, err := fourOf(field, v, 0)
	if err != nil {
		return geom.BorderRadii{}, err
	}
	return geom.BorderRadii{TopLeft: px(r[0]), TopRight: px(r[1]), BottomRight: px(r[2]), BottomLeft: px(r[3])}, nil
}

func colorOf(field, s string, def dlist.Color) (dlist.Color, error) {
	if s == "" {
		return def, nil
	}
	c, err := dlist.ParseHex(s)
	if err != nil {
		return dlist.Color{}, fmt.Errorf("%s: %w", field, err)
	}
	return c, nil
}

// parseEnum looks up a keyword with one of the dlist Parse functions.
// An empty name selects def.
func parseEnum[T any](field, name string, def T, parse func(string) (T, bool)) (T, error) {
	if name == "" {
		return def, nil
	}
	v, ok := parse(name)
	if !ok {
		return def, fmt.Errorf("%s: unknown keyword %q: %w", field, name, ErrInvalidValue)
	}
	return v, nil
}
