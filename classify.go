package ranges

import (
	"github.com/iotaledger/hive.go/constraints"
)

// Classify determines whether value lies below, inside or above the given range.
//
// An excluded lower Bound rejects values equal to it and an included lower Bound only rejects strictly smaller values;
// the upper Bound works the same way. Only the comparison operators are used, so the result is defined for any value
// of an ordered type as long as the comparisons are (NaN values give undefined results).
func Classify[T constraints.Ordered](rangeArgument RangeArgument[T], value T) Relation {
	switch start := rangeArgument.Start(); start.kind {
	case BoundKindExcluded:
		if value <= start.value {
			return Below
		}
	case BoundKindIncluded:
		if value < start.value {
			return Below
		}
	}

	switch end := rangeArgument.End(); end.kind {
	case BoundKindExcluded:
		if value >= end.value {
			return Above
		}
	case BoundKindIncluded:
		if value > end.value {
			return Above
		}
	}

	return Inside
}

// ClassifyFunc is the Classify of types that are ordered by a comparator instead of the comparison operators (i.e.
// time.Time). The compare function returns a negative number if a < b, 0 if a == b and a positive number if a > b.
func ClassifyFunc[T any](rangeArgument RangeArgument[T], value T, compare func(a, b T) int) Relation {
	switch start := rangeArgument.Start(); start.kind {
	case BoundKindExcluded:
		if compare(value, start.value) <= 0 {
			return Below
		}
	case BoundKindIncluded:
		if compare(value, start.value) < 0 {
			return Below
		}
	}

	switch end := rangeArgument.End(); end.kind {
	case BoundKindExcluded:
		if compare(value, end.value) >= 0 {
			return Above
		}
	case BoundKindIncluded:
		if compare(value, end.value) > 0 {
			return Above
		}
	}

	return Inside
}

// Contains returns true if value is within the bounds of the given range.
func Contains[T constraints.Ordered](rangeArgument RangeArgument[T], value T) bool {
	return Classify(rangeArgument, value) == Inside
}

// ContainsFunc is the Contains of types that are ordered by a comparator.
func ContainsFunc[T any](rangeArgument RangeArgument[T], value T, compare func(a, b T) int) bool {
	return ClassifyFunc(rangeArgument, value, compare) == Inside
}
