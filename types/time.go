package types

//go:generate go run github.com/blockberries/protoconv/cmd/protoconv-gen --config protoconv.yaml

// Duration is a wire-safe signed duration: whole seconds carry the
// sign and Nanos is always a non-negative magnitude.
type Duration struct {
	Seconds int64  `cramberry:"1"`
	Nanos   uint32 `cramberry:"2"`
}

func (d Duration) GetSeconds() int64 { return d.Seconds }
func (d Duration) GetNanos() uint32  { return d.Nanos }

// DateTimeUTC is a wire-safe point in time: seconds since the Unix
// epoch plus the nanosecond of that second.
type DateTimeUTC struct {
	Seconds int64  `cramberry:"1"`
	Nanos   uint32 `cramberry:"2"`
}

func (t DateTimeUTC) GetSeconds() int64 { return t.Seconds }
func (t DateTimeUTC) GetNanos() uint32  { return t.Nanos }
