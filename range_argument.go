package ranges

import (
	"github.com/iotaledger/hive.go/stringify"
)

// RangeArgument is implemented by every value that describes a contiguous span of values of type T (i.e. "integers
// from 1 to 100 inclusive") by exposing the Bound on each of its sides.
//
// It is not possible to iterate over the contained values. With three BoundKinds on each side, the shapes below cover
// every combination:
//
//	Notation         Definition          Type          Factory method
//	(-INF .. +INF)   {x}                 Full          All
//	[a .. +INF)      {x | x >= a}        From          AtLeast
//	(-INF .. b)      {x | x < b}         To            LessThan
//	(-INF .. b]      {x | x <= b}        ToInclusive   AtMost
//	[a .. b)         {x | a <= x < b}    Range         ClosedOpen
//	[a .. b]         {x | a <= x <= b}   Inclusive     Closed
//	(a .. +INF)      {x | x > a}         Pair          GreaterThan
//	(a .. b)         {x | a < x < b}     Pair          Open
//	(a .. b]         {x | a < x <= b}    Pair          OpenClosed
//
// Implementations must be pure: repeated calls to Start and End return equal Bounds.
type RangeArgument[T any] interface {
	// Start returns the lower Bound.
	Start() Bound[T]

	// End returns the upper Bound.
	End() Bound[T]
}

// region Full /////////////////////////////////////////////////////////////////////////////////////////////////////////

// Full is the range that contains all values.
type Full[T any] struct{}

// All returns a range that contains all values.
func All[T any]() Full[T] {
	return Full[T]{}
}

// Start returns the lower Bound.
func (Full[T]) Start() Bound[T] {
	return Unbounded[T]()
}

// End returns the upper Bound.
func (Full[T]) End() Bound[T] {
	return Unbounded[T]()
}

// code contract (make sure the type implements all required methods).
var _ RangeArgument[int] = Full[int]{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region From /////////////////////////////////////////////////////////////////////////////////////////////////////////

// From is the range [Lower .. +INF).
type From[T any] struct {
	Lower T
}

// AtLeast returns a range that contains all values greater than or equal to lower.
func AtLeast[T any](lower T) From[T] {
	return From[T]{Lower: lower}
}

// Start returns the lower Bound.
func (f From[T]) Start() Bound[T] {
	return Included(f.Lower)
}

// End returns the upper Bound.
func (f From[T]) End() Bound[T] {
	return Unbounded[T]()
}

// code contract (make sure the type implements all required methods).
var _ RangeArgument[int] = From[int]{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region To ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// To is the range (-INF .. Upper).
type To[T any] struct {
	Upper T
}

// LessThan returns a range that contains all values strictly less than upper.
func LessThan[T any](upper T) To[T] {
	return To[T]{Upper: upper}
}

// Start returns the lower Bound.
func (t To[T]) Start() Bound[T] {
	return Unbounded[T]()
}

// End returns the upper Bound.
func (t To[T]) End() Bound[T] {
	return Excluded(t.Upper)
}

// code contract (make sure the type implements all required methods).
var _ RangeArgument[int] = To[int]{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region ToInclusive //////////////////////////////////////////////////////////////////////////////////////////////////

// ToInclusive is the range (-INF .. Upper].
type ToInclusive[T any] struct {
	Upper T
}

// AtMost returns a range that contains all values less than or equal to upper.
func AtMost[T any](upper T) ToInclusive[T] {
	return ToInclusive[T]{Upper: upper}
}

// Start returns the lower Bound.
func (t ToInclusive[T]) Start() Bound[T] {
	return Unbounded[T]()
}

// End returns the upper Bound.
func (t ToInclusive[T]) End() Bound[T] {
	return Included(t.Upper)
}

// code contract (make sure the type implements all required methods).
var _ RangeArgument[int] = ToInclusive[int]{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Range ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Range is the half-open range [Lower .. Upper).
type Range[T any] struct {
	Lower T
	Upper T
}

// ClosedOpen returns a range that contains all values greater than or equal to lower and strictly less than upper.
func ClosedOpen[T any](lower, upper T) Range[T] {
	return Range[T]{Lower: lower, Upper: upper}
}

// Start returns the lower Bound.
func (r Range[T]) Start() Bound[T] {
	return Included(r.Lower)
}

// End returns the upper Bound.
func (r Range[T]) End() Bound[T] {
	return Excluded(r.Upper)
}

// code contract (make sure the type implements all required methods).
var _ RangeArgument[int] = Range[int]{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Inclusive ////////////////////////////////////////////////////////////////////////////////////////////////////

// Inclusive is the closed range [Lower .. Upper].
type Inclusive[T any] struct {
	Lower T
	Upper T
}

// Closed returns a range that contains all values greater than or equal to lower and less than or equal to upper.
func Closed[T any](lower, upper T) Inclusive[T] {
	return Inclusive[T]{Lower: lower, Upper: upper}
}

// Start returns the lower Bound.
func (i Inclusive[T]) Start() Bound[T] {
	return Included(i.Lower)
}

// End returns the upper Bound.
func (i Inclusive[T]) End() Bound[T] {
	return Included(i.Upper)
}

// code contract (make sure the type implements all required methods).
var _ RangeArgument[int] = Inclusive[int]{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Pair /////////////////////////////////////////////////////////////////////////////////////////////////////////

// Pair is a range made of two explicit Bounds. Every combination of BoundKinds is allowed.
type Pair[T any] struct {
	Lower Bound[T]
	Upper Bound[T]
}

// NewPair returns a range that is limited by the given Bounds.
func NewPair[T any](lower, upper Bound[T]) Pair[T] {
	return Pair[T]{Lower: lower, Upper: upper}
}

// PairOf copies the Bounds of the given range into a Pair.
func PairOf[T any](rangeArgument RangeArgument[T]) Pair[T] {
	return Pair[T]{Lower: rangeArgument.Start(), Upper: rangeArgument.End()}
}

// GreaterThan returns a range that contains all values strictly greater than lower.
func GreaterThan[T any](lower T) Pair[T] {
	return Pair[T]{Lower: Excluded(lower), Upper: Unbounded[T]()}
}

// Open returns a range that contains all values strictly greater than lower and strictly less than upper.
func Open[T any](lower, upper T) Pair[T] {
	return Pair[T]{Lower: Excluded(lower), Upper: Excluded(upper)}
}

// OpenClosed returns a range that contains all values strictly greater than lower and less than or equal to upper.
func OpenClosed[T any](lower, upper T) Pair[T] {
	return Pair[T]{Lower: Excluded(lower), Upper: Included(upper)}
}

// Start returns the lower Bound.
func (p Pair[T]) Start() Bound[T] {
	return p.Lower
}

// End returns the upper Bound.
func (p Pair[T]) End() Bound[T] {
	return p.Upper
}

// String returns a human-readable version of the Pair.
func (p Pair[T]) String() string {
	return stringify.Struct("Pair",
		stringify.NewStructField("range", Format[T](p)),
	)
}

// code contract (make sure the type implements all required methods).
var _ RangeArgument[int] = Pair[int]{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region PairRef //////////////////////////////////////////////////////////////////////////////////////////////////////

// PairRef is a range that reads its Bounds through pointers, so it reflects later changes to the referenced Bounds. A
// nil pointer is unbounded.
type PairRef[T any] struct {
	Lower *Bound[T]
	Upper *Bound[T]
}

// NewPairRef returns a range that is limited by the referenced Bounds.
func NewPairRef[T any](lower, upper *Bound[T]) PairRef[T] {
	return PairRef[T]{Lower: lower, Upper: upper}
}

// Start returns the lower Bound.
func (p PairRef[T]) Start() Bound[T] {
	if p.Lower == nil {
		return Unbounded[T]()
	}

	return *p.Lower
}

// End returns the upper Bound.
func (p PairRef[T]) End() Bound[T] {
	if p.Upper == nil {
		return Unbounded[T]()
	}

	return *p.Upper
}

// code contract (make sure the type implements all required methods).
var _ RangeArgument[int] = PairRef[int]{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
