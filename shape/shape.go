// Package shape is the Square/Rectangle/Circle union and the four ways of
// narrowing it to compute an area.
package shape

import (
	"math"

	narrow "github.com/reoring/narrow"
)

// Kind is the discriminator of a Shape.
type Kind string

const (
	KindSquare    Kind = "square"
	KindRectangle Kind = "rectangle"
	KindCircle    Kind = "circle"
)

// Kinds returns the closed set of shape kinds.
func Kinds() []Kind { return []Kind{KindSquare, KindRectangle, KindCircle} }

// Shape is one of Square, Rectangle or Circle.
type Shape interface {
	Kind() Kind
	isShape()
}

type Square struct {
	Size float64 `json:"size" narrow:"min=0"`
}

type Rectangle struct {
	Width  float64 `json:"width" narrow:"min=0"`
	Height float64 `json:"height" narrow:"min=0"`
}

type Circle struct {
	Radius float64 `json:"radius" narrow:"min=0"`
}

func (Square) Kind() Kind    { return KindSquare }
func (Rectangle) Kind() Kind { return KindRectangle }
func (Circle) Kind() Kind    { return KindCircle }

func (Square) isShape()    {}
func (Rectangle) isShape() {}
func (Circle) isShape()    {}

// AreaIf narrows with an if/else chain on the discriminator.
func AreaIf(s Shape) (float64, error) {
	if sq, ok := s.(Square); ok && s.Kind() == KindSquare {
		return sq.Size * sq.Size, nil
	} else if c, ok := s.(Circle); ok && s.Kind() == KindCircle {
		return math.Pi * c.Radius * c.Radius, nil
	} else if r, ok := s.(Rectangle); ok && s.Kind() == KindRectangle {
		return r.Width * r.Height, nil
	}
	return 0, narrow.Unreachable(s)
}

// AreaSwitch narrows with a type switch. Foreign Shape implementations land in
// the default branch.
func AreaSwitch(s Shape) (float64, error) {
	switch s := s.(type) {
	case Square:
		return s.Size * s.Size, nil
	case Rectangle:
		return s.Width * s.Height, nil
	case Circle:
		return math.Pi * s.Radius * s.Radius, nil
	default:
		return 0, narrow.Unreachable(s)
	}
}

// Area is the canonical area function.
func Area(s Shape) (float64, error) { return areas.Apply(s) }

// AreaByKind switches on Kind() and reports the miss after the switch.
func AreaByKind(s Shape) (float64, error) {
	if s == nil {
		return 0, narrow.Unreachable(s)
	}
	switch s.Kind() {
	case KindSquare:
		if sq, ok := s.(Square); ok {
			return sq.Size * sq.Size, nil
		}
	case KindRectangle:
		if r, ok := s.(Rectangle); ok {
			return r.Width * r.Height, nil
		}
	case KindCircle:
		if c, ok := s.(Circle); ok {
			return math.Pi * c.Radius * c.Radius, nil
		}
	}
	return 0, narrow.Unreachable(s)
}

var areas = narrow.Cases[Kind, Shape, float64](Kinds()...).
	On(squareArea, KindSquare).
	On(rectangleArea, KindRectangle).
	On(circleArea, KindCircle).
	MustBuild()

func squareArea(s Shape) (float64, error) {
	sq, ok := s.(Square)
	if !ok {
		return 0, narrow.Unreachable(s)
	}
	return sq.Size * sq.Size, nil
}

func rectangleArea(s Shape) (float64, error) {
	r, ok := s.(Rectangle)
	if !ok {
		return 0, narrow.Unreachable(s)
	}
	return r.Width * r.Height, nil
}

func circleArea(s Shape) (float64, error) {
	c, ok := s.(Circle)
	if !ok {
		return 0, narrow.Unreachable(s)
	}
	return math.Pi * c.Radius * c.Radius, nil
}

// TotalArea sums the areas of shapes, stopping at the first failure.
func TotalArea(shapes ...Shape) (float64, error) {
	var total float64
	for _, s := range shapes {
		a, err := Area(s)
		if err != nil {
			return 0, err
		}
		total += a
	}
	return total, nil
}
