package timeconv

import (
	"time"

	"github.com/blockberries/protoconv"
)

// Record is a wire message carrying a (seconds, nanos) pair. Messages
// generated by protoc-gen-go satisfy it through their getters.
type Record interface {
	GetSeconds() int64
	GetNanos() uint32
}

// Duration returns the signed-duration converter for the wire record
// type W. mk builds a W from its two fields.
func Duration[W Record](mk func(seconds int64, nanos uint32) W) protoconv.Converter[time.Duration, W] {
	return protoconv.Funcs(
		func(d time.Duration) W { return mk(DurationToParts(d)) },
		func(w W) (time.Duration, error) {
			return DurationFromParts(w.GetSeconds(), w.GetNanos()), nil
		},
	)
}

// Timestamp returns the UTC timestamp converter for the wire record
// type W. mk builds a W from its two fields.
func Timestamp[W Record](mk func(seconds int64, nanos uint32) W) protoconv.Converter[time.Time, W] {
	return protoconv.Funcs(
		func(t time.Time) W { return mk(TimestampToParts(t)) },
		func(w W) (time.Time, error) {
			return TimestampFromParts(w.GetSeconds(), w.GetNanos())
		},
	)
}
