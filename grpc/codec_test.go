package protoconvgrpc_test

import (
	"testing"
	"time"

	"github.com/blockberries/protoconv"
	protoconvgrpc "github.com/blockberries/protoconv/grpc"
	"github.com/blockberries/protoconv/types"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCramberryCodec_Name(t *testing.T) {
	if name := (protoconvgrpc.CramberryCodec{}).Name(); name != "cramberry" {
		t.Fatalf("expected codec name cramberry, got %q", name)
	}
}

func TestCramberryCodec_RoundTrip(t *testing.T) {
	codec := protoconvgrpc.CramberryCodec{}
	in := types.Duration{Seconds: -3, Nanos: 7}
	data, err := codec.Marshal(&in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out types.Duration
	if err := codec.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != in {
		t.Fatalf("got %+v, want %+v", out, in)
	}
}

func TestMarshalUnmarshal_Duration(t *testing.T) {
	d := -90*time.Second - 5
	data, err := protoconvgrpc.Marshal[time.Duration, types.Duration](types.DurationConv, d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := protoconvgrpc.Unmarshal[types.Duration, time.Duration](types.DurationConv, data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got != d {
		t.Fatalf("got %v, want %v", got, d)
	}
}

// schedule is a wire message holding a repeated timestamp field.
type schedule struct {
	Runs []types.DateTimeUTC `cramberry:"1"`
}

var runs = protoconv.Slice(types.DateTimeUTCConv)

var scheduleConv = protoconv.Funcs(
	func(ts []time.Time) schedule { return schedule{Runs: runs.ToProto(ts)} },
	func(s schedule) ([]time.Time, error) { return runs.FromProto(s.Runs) },
)

func TestMarshalUnmarshal_Timestamps(t *testing.T) {
	in := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1969, 12, 31, 23, 59, 59, 2, time.UTC),
	}
	data, err := protoconvgrpc.Marshal[[]time.Time, schedule](scheduleConv, in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := protoconvgrpc.Unmarshal[schedule, []time.Time](scheduleConv, data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(got) != len(in) {
		t.Fatalf("expected %d timestamps, got %d", len(in), len(got))
	}
	for i := range in {
		if !got[i].Equal(in[i]) {
			t.Fatalf("timestamp %d: got %v, want %v", i, got[i], in[i])
		}
	}
}

func TestUnmarshal_ElementStatus(t *testing.T) {
	data, err := protoconvgrpc.CramberryCodec{}.Marshal(&schedule{Runs: []types.DateTimeUTC{
		{Seconds: 1},
		{Seconds: 2, Nanos: 1_000_000_000},
	}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	_, err = protoconvgrpc.Unmarshal[schedule, []time.Time](scheduleConv, data)
	if el, ok := protoconv.IsElement(err); !ok || el.Index != 1 {
		t.Fatalf("expected ElementError at index 1, got %v", err)
	}
	if code := status.Code(err); code != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", code)
	}
}

func TestUnmarshal_InvalidTimestampStatus(t *testing.T) {
	data, err := protoconvgrpc.CramberryCodec{}.Marshal(&types.DateTimeUTC{Seconds: 1, Nanos: 3_000_000_000})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	_, err = protoconvgrpc.Unmarshal[types.DateTimeUTC, time.Time](types.DateTimeUTCConv, data)
	if _, ok := protoconv.IsTimestamp(err); !ok {
		t.Fatalf("expected TimestampError, got %v", err)
	}
	if code := status.Code(err); code != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", code)
	}
}
