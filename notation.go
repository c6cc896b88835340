package ranges

import (
	"fmt"
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

const (
	negativeInfinity = "-inf"
	positiveInfinity = "+inf"
	infinity         = "inf"
)

// Format returns the interval notation of the given range, i.e. "[3, 10)" or "(-inf, 5]". Unbounded sides are always
// rendered with round brackets.
func Format[T any](rangeArgument RangeArgument[T]) string {
	var builder strings.Builder

	switch start := rangeArgument.Start(); start.kind {
	case BoundKindIncluded:
		builder.WriteString("[" + fmt.Sprint(start.value))
	case BoundKindExcluded:
		builder.WriteString("(" + fmt.Sprint(start.value))
	default:
		builder.WriteString("(" + negativeInfinity)
	}

	builder.WriteString(", ")

	switch end := rangeArgument.End(); end.kind {
	case BoundKindIncluded:
		builder.WriteString(fmt.Sprint(end.value) + "]")
	case BoundKindExcluded:
		builder.WriteString(fmt.Sprint(end.value) + ")")
	default:
		builder.WriteString(positiveInfinity + ")")
	}

	return builder.String()
}

// Parse reads a range in interval notation. Square brackets include and round brackets exclude the adjacent value;
// "-inf", "+inf", "inf" or an empty side leave that side unbounded, whatever bracket surrounds it. The parseValue
// function converts the text of each bounded side.
//
// Values must not contain commas, and a value type that has "inf" in its domain (i.e. strings) can not express it.
func Parse[T any](notation string, parseValue func(string) (T, error)) (Pair[T], error) {
	trimmed := strings.TrimSpace(notation)
	if len(trimmed) < 3 {
		return Pair[T]{}, ierrors.Wrapf(ErrInvalidNotation, "%q is too short", notation)
	}

	opening, closing := trimmed[0], trimmed[len(trimmed)-1]
	if opening != '[' && opening != '(' {
		return Pair[T]{}, ierrors.Wrapf(ErrInvalidNotation, "%q must start with '[' or '('", notation)
	}
	if closing != ']' && closing != ')' {
		return Pair[T]{}, ierrors.Wrapf(ErrInvalidNotation, "%q must end with ']' or ')'", notation)
	}

	sides := strings.Split(trimmed[1:len(trimmed)-1], ",")
	if len(sides) != 2 {
		return Pair[T]{}, ierrors.Wrapf(ErrInvalidNotation, "%q must contain exactly one ','", notation)
	}

	lower, err := parseBound(sides[0], opening == '[', negativeInfinity, parseValue)
	if err != nil {
		return Pair[T]{}, ierrors.Wrap(err, "failed to parse lower bound")
	}

	upper, err := parseBound(sides[1], closing == ']', positiveInfinity, parseValue)
	if err != nil {
		return Pair[T]{}, ierrors.Wrap(err, "failed to parse upper bound")
	}

	return NewPair(lower, upper), nil
}

func parseBound[T any](side string, included bool, signedInfinity string, parseValue func(string) (T, error)) (Bound[T], error) {
	side = strings.TrimSpace(side)
	if side == "" || strings.EqualFold(side, signedInfinity) || strings.EqualFold(side, infinity) {
		return Unbounded[T](), nil
	}

	value, err := parseValue(side)
	if err != nil {
		return Bound[T]{}, ierrors.Wrapf(ErrInvalidNotation, "failed to parse value %q: %s", side, err)
	}

	return lo.Cond(included, Included(value), Excluded(value)), nil
}
