package narrow

// Package narrow provides:
//
// - An exhaustive dispatcher over closed tagged unions (Cases/Switch) that refuses to build
//   while a declared kind has no branch
// - An Unreachable guard that turns "this branch cannot happen" into a descriptive error
// - Discriminated-union decoding from JSON/YAML (Union/Register) with a stable error model via Issues
//
// Design policy:
// - Keep only the shared machinery in the root package; concrete unions live under shape/ and message/.
// - Value objects live under user/, HTTP aggregation under fetch/, the roster tutorial under quest/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  var areas = narrow.Cases[shape.Kind, shape.Shape, float64](shape.Kinds()...).
//      On(squareArea, shape.KindSquare).
//      On(circleArea, shape.KindCircle).
//      On(rectArea, shape.KindRectangle).
//      MustBuild()
//
//  a, err := areas.Apply(s)
//
