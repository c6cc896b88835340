package ranges

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
	"github.com/iotaledger/hive.go/stringify"
)

// Bound is one edge of a range. It combines a BoundKind with the value the range ends at. Unbounded Bounds carry no
// value.
//
// Bounds are immutable values; the zero Bound is unbounded.
type Bound[T any] struct {
	value T
	kind  BoundKind
}

// Included returns a Bound that ends at value and contains it.
func Included[T any](value T) Bound[T] {
	return Bound[T]{
		value: value,
		kind:  BoundKindIncluded,
	}
}

// Excluded returns a Bound that ends at value without containing it.
func Excluded[T any](value T) Bound[T] {
	return Bound[T]{
		value: value,
		kind:  BoundKindExcluded,
	}
}

// Unbounded returns a Bound that does not limit the range on its side.
func Unbounded[T any]() Bound[T] {
	return Bound[T]{}
}

// MapBound converts the value of the given Bound while keeping its BoundKind.
func MapBound[T, U any](bound Bound[T], mapper func(T) U) Bound[U] {
	if !bound.IsBounded() {
		return Unbounded[U]()
	}

	return Bound[U]{
		value: mapper(bound.value),
		kind:  bound.kind,
	}
}

// BoundFromBytes unmarshals a Bound from a sequence of bytes. The readValue function decodes the value that follows
// the BoundKind of a bounded Bound.
func BoundFromBytes[T any](boundBytes []byte, readValue func(*marshalutil.MarshalUtil) (T, error)) (bound Bound[T], consumedBytes int, err error) {
	marshalUtil := marshalutil.New(boundBytes)
	if bound, err = BoundFromMarshalUtil(marshalUtil, readValue); err != nil {
		err = ierrors.Wrap(err, "failed to parse Bound from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// BoundFromMarshalUtil unmarshals a Bound using a MarshalUtil (for easier unmarshalling). The returned Bound is
// unbounded if an error occurs.
func BoundFromMarshalUtil[T any](marshalUtil *marshalutil.MarshalUtil, readValue func(*marshalutil.MarshalUtil) (T, error)) (Bound[T], error) {
	boundKind, err := BoundKindFromMarshalUtil(marshalUtil)
	if err != nil {
		return Bound[T]{}, ierrors.Wrap(err, "failed to parse BoundKind from MarshalUtil")
	}

	if boundKind == BoundKindUnbounded {
		return Bound[T]{}, nil
	}

	value, err := readValue(marshalUtil)
	if err != nil {
		return Bound[T]{}, ierrors.Wrapf(ErrParseBytesFailed, "failed to parse value of %s: %w", boundKind, err)
	}

	return Bound[T]{value: value, kind: boundKind}, nil
}

// Kind returns the BoundKind of the Bound.
func (b Bound[T]) Kind() BoundKind {
	return b.kind
}

// Value returns the value of the Bound. The second return value is false if the Bound is unbounded.
func (b Bound[T]) Value() (value T, bounded bool) {
	if b.kind == BoundKindUnbounded {
		return value, false
	}

	return b.value, true
}

// IsBounded returns true if the Bound limits the range on its side.
func (b Bound[T]) IsBounded() bool {
	return b.kind != BoundKindUnbounded
}

// Equal returns true if both Bounds have the same BoundKind and, if bounded, equal values according to equal.
func (b Bound[T]) Equal(other Bound[T], equal func(a, b T) bool) bool {
	if b.kind != other.kind {
		return false
	}

	return b.kind == BoundKindUnbounded || equal(b.value, other.value)
}

// BoundsEqual is the Equal of Bounds over comparable values.
func BoundsEqual[T comparable](a, b Bound[T]) bool {
	return a.Equal(b, func(x, y T) bool { return x == y })
}

// WriteTo writes the BoundKind and, for bounded Bounds, the value to the given MarshalUtil.
func (b Bound[T]) WriteTo(marshalUtil *marshalutil.MarshalUtil, writeValue func(*marshalutil.MarshalUtil, T)) *marshalutil.MarshalUtil {
	marshalUtil.WriteByte(byte(b.kind))
	if b.kind != BoundKindUnbounded {
		writeValue(marshalUtil, b.value)
	}

	return marshalUtil
}

// Bytes returns a marshaled version of the Bound.
func (b Bound[T]) Bytes(writeValue func(*marshalutil.MarshalUtil, T)) []byte {
	return b.WriteTo(marshalutil.New(), writeValue).Bytes()
}

// String returns a human-readable version of the Bound.
func (b Bound[T]) String() string {
	if b.kind == BoundKindUnbounded {
		return stringify.Struct("Bound",
			stringify.NewStructField("kind", b.kind),
		)
	}

	return stringify.Struct("Bound",
		stringify.NewStructField("kind", b.kind),
		stringify.NewStructField("value", fmt.Sprint(b.value)),
	)
}
