package data

import "fmt"

// UnexpectedValueError is returned by TryExtract when a Value's dynamic
// variant does not match the type requested — the §7 "UnexpectedValue"
// error kind at the value layer.
type UnexpectedValueError struct {
	Wanted string
	Got    Value
}

func (e *UnexpectedValueError) Error() string {
	return fmt.Sprintf("unexpected value: wanted %s, got %T", e.Wanted, e.Got)
}

// TryExtract downcasts v to T, mirroring the spec's try_extract_into. T
// must be one of the concrete Value variants in this package (Boolean,
// Byte, Short, Int, Long, BigInt, ByteArray, Coll, Tuple, Option,
// GroupElement, SigmaProp, AvlTree) or a BoxValue implementation.
func TryExtract[T Value](v Value) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}
	var zero T
	return zero, &UnexpectedValueError{Wanted: fmt.Sprintf("%T", zero), Got: v}
}
