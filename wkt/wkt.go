// Package wkt provides converters for the protobuf well-known types
// generated by protoc-gen-go.
//
// Messages are pointers, so a nil message is an absent value. The
// plain converters treat nil as a missing required value; the Optional
// variants map nil to nil.
package wkt

import (
	"time"

	"github.com/blockberries/protoconv"

	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

var (
	// Timestamp converts between time.Time and google.protobuf.Timestamp.
	// Decoded times are in UTC.
	Timestamp protoconv.Converter[time.Time, *timestamppb.Timestamp] = protoconv.Funcs(timestampToProto, timestampFromProto)

	// OptionalTimestamp is Timestamp over optional values.
	OptionalTimestamp protoconv.Converter[*time.Time, *timestamppb.Timestamp] = protoconv.Funcs(optionalTimestampToProto, optionalTimestampFromProto)

	// NonZeroTimestamp encodes a time.Time, reporting the zero time as
	// having no wire representation.
	NonZeroTimestamp protoconv.OptionEncoder[time.Time, *timestamppb.Timestamp] = protoconv.OptionEncoderFunc[time.Time, *timestamppb.Timestamp](nonZeroTimestampToProto)

	// Duration converts between time.Duration and google.protobuf.Duration.
	// Values outside the range of time.Duration saturate.
	Duration protoconv.Converter[time.Duration, *durationpb.Duration] = protoconv.Funcs(durationpb.New, durationFromProto)

	// BoolValue converts between bool and google.protobuf.BoolValue.
	BoolValue protoconv.Converter[bool, *wrapperspb.BoolValue] = protoconv.Funcs(wrapperspb.Bool, boolValueFromProto)

	// OptionalBool encodes only true; false is left off the wire.
	OptionalBool protoconv.OptionEncoder[bool, *wrapperspb.BoolValue] = protoconv.OptionEncoderFunc[bool, *wrapperspb.BoolValue](optionalBoolToProto)
)

func timestampToProto(t time.Time) *timestamppb.Timestamp {
	return timestamppb.New(t)
}

func timestampFromProto(ts *timestamppb.Timestamp) (time.Time, error) {
	if ts == nil {
		return time.Time{}, &protoconv.MissingRequiredError{}
	}
	if err := ts.CheckValid(); err != nil {
		return time.Time{}, protoconv.NewTimestampError(ts.GetSeconds(), int64(ts.GetNanos()))
	}
	return ts.AsTime(), nil
}

func optionalTimestampToProto(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func optionalTimestampFromProto(ts *timestamppb.Timestamp) (*time.Time, error) {
	if ts == nil {
		return nil, nil
	}
	t, err := timestampFromProto(ts)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func nonZeroTimestampToProto(t time.Time) (*timestamppb.Timestamp, bool) {
	if t.IsZero() {
		return nil, false
	}
	return timestamppb.New(t), true
}

func optionalBoolToProto(b bool) (*wrapperspb.BoolValue, bool) {
	if !b {
		return nil, false
	}
	return wrapperspb.Bool(true), true
}

func durationFromProto(d *durationpb.Duration) (time.Duration, error) {
	if d == nil {
		return 0, &protoconv.MissingRequiredError{}
	}
	return d.AsDuration(), nil
}

func boolValueFromProto(b *wrapperspb.BoolValue) (bool, error) {
	if b == nil {
		return false, &protoconv.MissingRequiredError{}
	}
	return b.GetValue(), nil
}
