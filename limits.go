package keyset

import "math"

const (
	// MaxLimit is the largest page size an API client may request.
	MaxLimit = 100
	// DefaultLimit is used when a client requests no limit or a non-positive one.
	DefaultLimit = 10
)

// IsNormalizedLimitMax converts a client supplied limit into a page size within
// [1, maxLimit]. The boolean is false if the limit had to be replaced.
// A non-positive maxLimit falls back to MaxLimit, and maxLimit never exceeds
// math.MaxUint32.
func IsNormalizedLimitMax(limit int, maxLimit int) (uint32, bool) {
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}

	upper := min(int64(maxLimit), math.MaxUint32)

	if limit <= 0 {
		return min(DefaultLimit, uint32(upper)), false
	} else if int64(limit) > upper {
		return uint32(upper), false
	}

	return uint32(limit), true
}

func NormalizeLimitMax(limit int, maxLimit int) uint32 {
	ret, _ := IsNormalizedLimitMax(limit, maxLimit)
	return ret
}

// NormalizeLimit is NormalizeLimitMax bounded by MaxLimit.
func NormalizeLimit(limit int) uint32 {
	return NormalizeLimitMax(limit, MaxLimit)
}
