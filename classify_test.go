package ranges

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/lo"
)

func TestClassify_InclusiveLower(t *testing.T) {
	rangeFrom := AtLeast(4)
	require.Equal(t, Below, Classify[int](rangeFrom, 3))
	require.Equal(t, Inside, Classify[int](rangeFrom, 4))
	require.Equal(t, Inside, Classify[int](rangeFrom, 5))

	for value := -100; value < 4; value++ {
		require.Equal(t, Below, Classify[int](rangeFrom, value))
	}
}

func TestClassify_ExclusiveLower(t *testing.T) {
	rangeAbove := NewPair(Excluded(4), Unbounded[int]())
	require.Equal(t, Below, Classify[int](rangeAbove, 4))
	require.Equal(t, Below, Classify[int](rangeAbove, 3))

	for value := 5; value < 100; value++ {
		require.Equal(t, Inside, Classify[int](rangeAbove, value))
	}
}

func TestClassify_ClosedOpen(t *testing.T) {
	rangeClosedOpen := ClosedOpen(3, 10)
	require.Equal(t, Below, Classify[int](rangeClosedOpen, 2))
	require.Equal(t, Inside, Classify[int](rangeClosedOpen, 3))
	require.Equal(t, Inside, Classify[int](rangeClosedOpen, 9))
	require.Equal(t, Above, Classify[int](rangeClosedOpen, 10))
}

func TestClassify_Closed(t *testing.T) {
	rangeClosed := Closed(3, 10)
	require.Equal(t, Below, Classify[int](rangeClosed, 2))
	require.Equal(t, Inside, Classify[int](rangeClosed, 3))
	require.Equal(t, Inside, Classify[int](rangeClosed, 10))
	require.Equal(t, Above, Classify[int](rangeClosed, 11))
}

func TestClassify_UpperOnly(t *testing.T) {
	require.Equal(t, Inside, Classify[int](LessThan(10), -1000))
	require.Equal(t, Inside, Classify[int](LessThan(10), 9))
	require.Equal(t, Above, Classify[int](LessThan(10), 10))

	require.Equal(t, Inside, Classify[int](AtMost(10), 10))
	require.Equal(t, Above, Classify[int](AtMost(10), 11))
}

func TestClassify_Open(t *testing.T) {
	require.Equal(t, Below, Classify[int](Open(3, 10), 3))
	require.Equal(t, Inside, Classify[int](Open(3, 10), 4))
	require.Equal(t, Above, Classify[int](Open(3, 10), 10))

	require.Equal(t, Below, Classify[int](OpenClosed(3, 10), 3))
	require.Equal(t, Inside, Classify[int](OpenClosed(3, 10), 10))
}

func TestClassify_Full(t *testing.T) {
	for _, value := range []int{-1 << 62, -1, 0, 1, 1 << 62} {
		require.Equal(t, Inside, Classify[int](All[int](), value))
	}
}

func TestClassify_DegenerateRanges(t *testing.T) {
	// lower and upper bound are equal and at least one of them excludes the value
	require.Equal(t, Above, Classify[int](ClosedOpen(5, 5), 5))
	require.Equal(t, Below, Classify[int](OpenClosed(5, 5), 5))
	require.Equal(t, Below, Classify[int](Open(5, 5), 5))
	require.Equal(t, Inside, Classify[int](Closed(5, 5), 5))
}

func TestClassify_Strings(t *testing.T) {
	rangeStrings := ClosedOpen("b", "d")
	require.Equal(t, Below, Classify[string](rangeStrings, "a"))
	require.Equal(t, Inside, Classify[string](rangeStrings, "b"))
	require.Equal(t, Inside, Classify[string](rangeStrings, "czzz"))
	require.Equal(t, Above, Classify[string](rangeStrings, "d"))
}

func TestClassify_Floats(t *testing.T) {
	rangeFloats := Open(0.5, 1.5)
	require.Equal(t, Below, Classify[float64](rangeFloats, 0.5))
	require.Equal(t, Inside, Classify[float64](rangeFloats, 1.4999))
	require.Equal(t, Above, Classify[float64](rangeFloats, 1.5))
}

func TestClassifyFunc_Time(t *testing.T) {
	start := time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	compareTimes := func(a, b time.Time) int { return a.Compare(b) }

	day := ClosedOpen(start, end)
	require.Equal(t, Below, ClassifyFunc[time.Time](day, start.Add(-time.Nanosecond), compareTimes))
	require.Equal(t, Inside, ClassifyFunc[time.Time](day, start, compareTimes))
	require.Equal(t, Inside, ClassifyFunc[time.Time](day, end.Add(-time.Nanosecond), compareTimes))
	require.Equal(t, Above, ClassifyFunc[time.Time](day, end, compareTimes))

	require.True(t, ContainsFunc[time.Time](day, start, compareTimes))
	require.False(t, ContainsFunc[time.Time](day, end, compareTimes))
}

func TestClassifyFunc_MatchesClassify(t *testing.T) {
	for _, rangeArgument := range testRanges() {
		for value := -2; value <= 12; value++ {
			assert.Equal(t, Classify(rangeArgument, value), ClassifyFunc(rangeArgument, value, lo.Comparator[int]),
				"range %s value %d", Format(rangeArgument), value)
		}
	}
}

func TestClassify_RoundTripThroughPair(t *testing.T) {
	for _, rangeArgument := range testRanges() {
		pair := NewPair(rangeArgument.Start(), rangeArgument.End())
		for value := -2; value <= 12; value++ {
			assert.Equal(t, Classify(rangeArgument, value), Classify[int](pair, value),
				"range %s value %d", Format(rangeArgument), value)
		}
	}
}

func TestContains(t *testing.T) {
	require.True(t, Contains[int](Closed(10, 14), 13))
	require.False(t, Contains[int](Open(10, 14), 14))
}

func TestRelation(t *testing.T) {
	require.Equal(t, "Below", Below.String())
	require.Equal(t, "Inside", Inside.String())
	require.Equal(t, "Above", Above.String())
	require.Equal(t, "Relation(7)", Relation(7).String())
	require.Equal(t, "Relation(-1)", Relation(-1).String())

	require.Equal(t, -1, Below.Sign())
	require.Equal(t, 0, Inside.Sign())
	require.Equal(t, 1, Above.Sign())
}

func testRanges() []RangeArgument[int] {
	return []RangeArgument[int]{
		All[int](),
		AtLeast(3),
		LessThan(10),
		AtMost(10),
		ClosedOpen(3, 10),
		Closed(3, 10),
		GreaterThan(3),
		Open(3, 10),
		OpenClosed(3, 10),
		NewPair(Unbounded[int](), Excluded(10)),
		NewPair(Excluded(3), Excluded(3)),
	}
}
