package main

import (
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/ranges"
)

const (
	ValueTypeInt      = "int"
	ValueTypeUint     = "uint"
	ValueTypeFloat    = "float"
	ValueTypeString   = "string"
	ValueTypeDuration = "duration"
	ValueTypeTime     = "time"
)

// ValueTypes contains the names of all supported value types.
var ValueTypes = []string{
	ValueTypeInt,
	ValueTypeUint,
	ValueTypeFloat,
	ValueTypeString,
	ValueTypeDuration,
	ValueTypeTime,
}

var (
	// ErrUnknownValueType is returned if the configured value type is not supported.
	ErrUnknownValueType = ierrors.New("unknown value type")
	// ErrInvalidValue is returned if a value can not be converted to the configured value type.
	ErrInvalidValue = ierrors.New("invalid value")
)

// classification is the Relation of a single value to the range.
type classification struct {
	value    string
	relation ranges.Relation
}

func (c classification) String() string {
	return c.value + " " + c.relation.String()
}

func classifyValues(rangeNotation string, valueType string, values []string) ([]classification, error) {
	switch valueType {
	case ValueTypeInt:
		return classifyOrdered(rangeNotation, values, decimal(fromString(cast.ToInt64E)))
	case ValueTypeUint:
		return classifyOrdered(rangeNotation, values, decimal(fromString(cast.ToUint64E)))
	case ValueTypeFloat:
		return classifyOrdered(rangeNotation, values, fromString(cast.ToFloat64E))
	case ValueTypeString:
		return classifyOrdered(rangeNotation, values, fromString(cast.ToStringE))
	case ValueTypeDuration:
		return classifyOrdered(rangeNotation, values, fromString(cast.ToDurationE))
	case ValueTypeTime:
		return classify(rangeNotation, values, fromString(cast.ToTimeE), func(rangeArgument ranges.RangeArgument[time.Time], value time.Time) ranges.Relation {
			return ranges.ClassifyFunc(rangeArgument, value, time.Time.Compare)
		})
	default:
		return nil, ierrors.Wrapf(ErrUnknownValueType, "%q is not one of %v", valueType, ValueTypes)
	}
}

func classifyOrdered[T constraints.Ordered](rangeNotation string, values []string, parseValue func(string) (T, error)) ([]classification, error) {
	return classify(rangeNotation, values, parseValue, ranges.Classify[T])
}

func classify[T any](rangeNotation string, values []string, parseValue func(string) (T, error), classifyValue func(ranges.RangeArgument[T], T) ranges.Relation) ([]classification, error) {
	rangeArgument, err := ranges.Parse(rangeNotation, parseValue)
	if err != nil {
		return nil, ierrors.Wrapf(err, "failed to parse range %q", rangeNotation)
	}

	classifications := make([]classification, 0, len(values))
	for _, value := range values {
		parsedValue, err := parseValue(value)
		if err != nil {
			return nil, ierrors.Wrapf(ErrInvalidValue, "failed to parse %q: %s", value, err)
		}

		classifications = append(classifications, classification{
			value:    value,
			relation: classifyValue(rangeArgument, parsedValue),
		})
	}

	return classifications, nil
}

// fromString adapts a cast conversion to the value parsers of ranges.Parse.
func fromString[T any](convert func(interface{}) (T, error)) func(string) (T, error) {
	return func(value string) (T, error) {
		return convert(value)
	}
}

// decimal strips leading zeros before parsing, so integers are always read in base 10. Values with a "0x", "0o" or
// "0b" prefix are rejected.
func decimal[T any](parseValue func(string) (T, error)) func(string) (T, error) {
	return func(value string) (T, error) {
		sign, digits := "", strings.TrimSpace(value)
		if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
			sign, digits = digits[:1], digits[1:]
		}

		if digits = strings.TrimLeft(digits, "0"); digits == "" {
			digits = "0"
		}

		return parseValue(sign + digits)
	}
}
