// Package protoconv defines the conversion contracts between wire
// ("proto") values and native Go domain values.
//
// A wire value is whatever the serialization boundary produces: a
// protoc-generated message, a cramberry-tagged struct, or a plain
// scalar. Converting a domain value to its wire form never fails.
// Converting a wire value back may fail when a required sub-value is
// absent or the encoding cannot be represented.
//
// Optional values are modelled as pointers and sequences as slices.
// The helpers in this package derive the optional and sequence
// conversions from a conversion of the element type.
package protoconv

// Encoder converts a domain value D into its wire representation W.
//
// W is an explicit type parameter, so a single domain type may be
// mapped to several named wire types by different encoders.
type Encoder[D, W any] interface {
	ToProto(d D) W
}

// OptionEncoder converts a domain value into a wire value for types
// where some domain values have no wire representation. The boolean
// reports whether a wire value was produced.
type OptionEncoder[D, W any] interface {
	ToProto(d D) (W, bool)
}

// Decoder converts a wire value W into a domain value D.
type Decoder[W, D any] interface {
	FromProto(w W) (D, error)
}

// Converter converts in both directions between D and W.
type Converter[D, W any] interface {
	Encoder[D, W]
	Decoder[W, D]
}

// EncoderFunc adapts a function to the Encoder interface.
type EncoderFunc[D, W any] func(D) W

func (f EncoderFunc[D, W]) ToProto(d D) W { return f(d) }

// OptionEncoderFunc adapts a function to the OptionEncoder interface.
type OptionEncoderFunc[D, W any] func(D) (W, bool)

func (f OptionEncoderFunc[D, W]) ToProto(d D) (W, bool) { return f(d) }

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc[W, D any] func(W) (D, error)

func (f DecoderFunc[W, D]) FromProto(w W) (D, error) { return f(w) }

type funcConverter[D, W any] struct {
	to   func(D) W
	from func(W) (D, error)
}

func (c funcConverter[D, W]) ToProto(d D) W             { return c.to(d) }
func (c funcConverter[D, W]) FromProto(w W) (D, error) { return c.from(w) }

// Funcs builds a Converter from a pair of conversion functions.
func Funcs[D, W any](to func(D) W, from func(W) (D, error)) Converter[D, W] {
	return funcConverter[D, W]{to: to, from: from}
}

// ToProtoOption converts d and wraps the result as present.
func ToProtoOption[D, W any](enc Encoder[D, W], d D) *W {
	w := enc.ToProto(d)
	return &w
}

// ToProtoOptional converts d with an OptionEncoder, returning nil when
// d has no wire representation.
func ToProtoOptional[D, W any](enc OptionEncoder[D, W], d D) *W {
	w, ok := enc.ToProto(d)
	if !ok {
		return nil
	}
	return &w
}

type identity[T any] struct{}

func (identity[T]) ToProto(v T) T            { return v }
func (identity[T]) FromProto(v T) (T, error) { return v, nil }

// Identity returns a Converter for types that are their own wire
// representation.
func Identity[T any]() Converter[T, T] { return identity[T]{} }

// Bool is the identity conversion for booleans.
var Bool Converter[bool, bool] = identity[bool]{}
