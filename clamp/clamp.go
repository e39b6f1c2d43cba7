// Package clamp provides clamped (saturating) conversions and arithmetic on
// fixed-width integers. Out-of-range inputs pin to the nearest representable
// value instead of wrapping.
package clamp

import "math"

// Int8 converts v to int8, pinning to [math.MinInt8, math.MaxInt8].
func Int8(v int64) int8 {
	if v > math.MaxInt8 {
		return math.MaxInt8
	}
	if v < math.MinInt8 {
		return math.MinInt8
	}
	return int8(v)
}

// Int16 converts v to int16, pinning to [math.MinInt16, math.MaxInt16].
func Int16(v int64) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

// Int32 converts v to int32, pinning to [math.MinInt32, math.MaxInt32].
func Int32(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}

// Uint8 converts v to uint8; negative values pin to 0.
func Uint8(v int64) uint8 {
	if v > math.MaxUint8 {
		return math.MaxUint8
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}

// Uint16 converts v to uint16; negative values pin to 0.
func Uint16(v int64) uint16 {
	if v > math.MaxUint16 {
		return math.MaxUint16
	}
	if v < 0 {
		return 0
	}
	return uint16(v)
}

// Uint32 converts v to uint32; negative values pin to 0.
func Uint32(v int64) uint32 {
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	if v < 0 {
		return 0
	}
	return uint32(v)
}

// Int converts a float to int64, pinning infinities and out-of-range values.
// NaN converts to 0.
func Int(v float64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(v)
	}
}

// Uint converts a float to uint64, pinning negatives to 0 and out-of-range
// values to math.MaxUint64. NaN converts to 0.
func Uint(v float64) uint64 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= math.MaxUint64:
		return math.MaxUint64
	default:
		return uint64(v)
	}
}

// AddInt64 returns a+b, saturating at the int64 bounds on overflow.
func AddInt64(a, b int64) int64 {
	sum := a + b
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) {
		if a > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return sum
}

// SubInt64 returns a-b, saturating at the int64 bounds on overflow.
func SubInt64(a, b int64) int64 {
	diff := a - b
	if (a >= 0 && b < 0 && diff < 0) || (a < 0 && b > 0 && diff >= 0) {
		if a >= 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return diff
}

// MulInt64 returns a*b, saturating at the int64 bounds on overflow.
func MulInt64(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	// MinInt64 / -1 would trap below, and MinInt64 * -1 overflows anyway.
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return math.MaxInt64
	}
	prod := a * b
	if prod/b != a {
		if (a > 0) == (b > 0) {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return prod
}
