package ranges

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	require.Equal(t, "(-inf, +inf)", Format[int](All[int]()))
	require.Equal(t, "[3, +inf)", Format[int](AtLeast(3)))
	require.Equal(t, "(-inf, 10)", Format[int](LessThan(10)))
	require.Equal(t, "(-inf, 10]", Format[int](AtMost(10)))
	require.Equal(t, "[3, 10)", Format[int](ClosedOpen(3, 10)))
	require.Equal(t, "[3, 10]", Format[int](Closed(3, 10)))
	require.Equal(t, "(3, +inf)", Format[int](GreaterThan(3)))
	require.Equal(t, "(3, 10]", Format[int](OpenClosed(3, 10)))
	require.Equal(t, "[a, z)", Format[string](ClosedOpen("a", "z")))
}

func TestParse(t *testing.T) {
	for notation, expected := range map[string]Pair[int]{
		"[3, 10)":      NewPair(Included(3), Excluded(10)),
		"[3,10]":       NewPair(Included(3), Included(10)),
		"  (3 , 10]  ": NewPair(Excluded(3), Included(10)),
		"(-3, -1)":     NewPair(Excluded(-3), Excluded(-1)),
		"(-inf, 5]":    NewPair(Unbounded[int](), Included(5)),
		"(, 5]":        NewPair(Unbounded[int](), Included(5)),
		"[3, +inf)":    NewPair(Included(3), Unbounded[int]()),
		"[3, INF]":     NewPair(Included(3), Unbounded[int]()),
		"(-inf, +inf)": NewPair(Unbounded[int](), Unbounded[int]()),
		"[,]":          NewPair(Unbounded[int](), Unbounded[int]()),
		"[10, 3)":      NewPair(Included(10), Excluded(3)),
		"(7, 7)":       NewPair(Excluded(7), Excluded(7)),
	} {
		pair, err := Parse(notation, strconv.Atoi)
		require.NoError(t, err, notation)
		require.Equal(t, expected, pair, notation)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, notation := range []string{
		"",
		"[]",
		"3, 10",
		"{3, 10)",
		"[3, 10",
		"[3 10)",
		"[1, 2, 3]",
		"[a, 10)",
		"[3, 1.5]",
	} {
		_, err := Parse(notation, strconv.Atoi)
		require.ErrorIs(t, err, ErrInvalidNotation, notation)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for _, rangeArgument := range testRanges() {
		pair, err := Parse(Format(rangeArgument), strconv.Atoi)
		require.NoError(t, err)
		require.Equal(t, PairOf(rangeArgument), pair)

		for value := -2; value <= 12; value++ {
			require.Equal(t, Classify(rangeArgument, value), Classify[int](pair, value))
		}
	}
}

func TestParse_Strings(t *testing.T) {
	pair, err := Parse("[apple, melon)", func(value string) (string, error) { return value, nil })
	require.NoError(t, err)
	require.Equal(t, Inside, Classify[string](pair, "banana"))
	require.Equal(t, Above, Classify[string](pair, "melon"))
}
