// Package timeconv converts time.Duration and UTC time.Time values to
// and from wire records made of a signed seconds field and an unsigned
// nanoseconds field.
//
// Durations use a sign-magnitude encoding: nanos is always a
// non-negative magnitude and the sign is carried by seconds. A
// negative duration whose magnitude is below one second therefore
// encodes with seconds == 0 and decodes as positive. Peers depend on
// this layout, so it is kept as is. Wire durations longer than
// time.Duration can hold, about 292 years either way, saturate at
// math.MaxInt64 or math.MinInt64.
//
// Timestamps are plain Unix seconds plus the nanosecond of the second.
// Any instant between years -262144 and 262143 is accepted; the tighter
// 0001 to 9999 range of google.protobuf.Timestamp is enforced by the
// wkt package, not here.
package timeconv

import (
	"math"
	"time"

	"github.com/blockberries/protoconv"
)

const (
	// MinTimestampSeconds is -262144-01-01T00:00:00Z in Unix seconds.
	MinTimestampSeconds int64 = -8334632937600
	// MaxTimestampSeconds is 262143-12-31T23:59:59Z in Unix seconds.
	MaxTimestampSeconds int64 = 8210298412799

	maxNanos = 999_999_999

	// whole seconds representable by time.Duration in either direction
	maxDurationSeconds = math.MaxInt64 / int64(time.Second)
)

// DurationFromParts decodes a wire duration. For seconds >= 0 the
// value is seconds + nanos; for seconds < 0 it is seconds - nanos.
// Values beyond the range of time.Duration saturate.
func DurationFromParts(seconds int64, nanos uint32) time.Duration {
	n := int64(nanos)
	if seconds >= 0 {
		if seconds > maxDurationSeconds {
			return math.MaxInt64
		}
		base := seconds * int64(time.Second)
		if base > math.MaxInt64-n {
			return math.MaxInt64
		}
		return time.Duration(base + n)
	}
	if seconds < -maxDurationSeconds {
		return math.MinInt64
	}
	base := seconds * int64(time.Second)
	if base < math.MinInt64+n {
		return math.MinInt64
	}
	return time.Duration(base - n)
}

// DurationToParts encodes d. A negative duration is split by
// magnitude and only the seconds are negated.
func DurationToParts(d time.Duration) (seconds int64, nanos uint32) {
	if d >= 0 {
		return int64(d / time.Second), uint32(d % time.Second)
	}
	if d == math.MinInt64 {
		// -d overflows; its magnitude is 9223372036.854775808s.
		return -maxDurationSeconds, uint32(-(d + time.Duration(maxDurationSeconds)*time.Second))
	}
	m := -d
	return -int64(m / time.Second), uint32(m % time.Second)
}

// TimestampToParts returns the Unix seconds and nanosecond of t.
func TimestampToParts(t time.Time) (seconds int64, nanos uint32) {
	return t.Unix(), uint32(t.Nanosecond())
}

// TimestampFromParts returns the UTC instant for (seconds, nanos), or
// a *protoconv.TimestampError when nanos is not a sub-second value or
// seconds fall outside [MinTimestampSeconds, MaxTimestampSeconds].
func TimestampFromParts(seconds int64, nanos uint32) (time.Time, error) {
	if nanos > maxNanos || seconds < MinTimestampSeconds || seconds > MaxTimestampSeconds {
		return time.Time{}, protoconv.NewTimestampError(seconds, int64(nanos))
	}
	return time.Unix(seconds, int64(nanos)).UTC(), nil
}
