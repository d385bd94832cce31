package distribution

import (
	"math"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// ErrUsage is returned by FromArgs when the number of arguments selects no distribution.
var ErrUsage = errors.New("distribution: expected 3, 4 or 5 arguments")

// FromArgs selects and builds a Spec from positional arguments:
//
//	min max count               uniform
//	min max lambda count        poisson
//	min max mean sigma count    normal
//
// Text that is not a number coerces to zero.
func FromArgs(args []string) (Spec, error) {
	if len(args) < 3 || len(args) > 5 {
		return Spec{}, errors.Wrapf(ErrUsage, "got %d", len(args))
	}

	low := toInt64(args[0])
	high := toInt64(args[1])
	count := int(toInt64(args[len(args)-1]))

	switch len(args) {
	case 3:
		return FromRange(low, high, count), nil
	case 4:
		return FromRangeAndLambda(low, high, toFloat64(args[2]), count), nil
	default:
		return FromRangeAndNormal(low, high, toFloat64(args[2]), toFloat64(args[3]), count), nil
	}
}

// toFloat64 is cast.ToFloat64 with NaN and infinities coerced to zero like
// any other text that is not a usable number.
func toFloat64(s string) float64 {
	v := cast.ToFloat64(s)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// toInt64 parses s as a float and truncates toward zero, so "10", "10.0"
// and "1e1" all give 10.
func toInt64(s string) int64 {
	return int64(math.Trunc(toFloat64(s)))
}
