// Package protoconvgrpc carries converted values over gRPC, using
// cramberry for deterministic binary serialization.
//
// Wire records from protoconv/types are serialized directly via
// cramberry struct tags; no protobuf code generation is required.
package protoconvgrpc

import (
	"fmt"

	"github.com/blockberries/cramberry/pkg/cramberry"
	"google.golang.org/grpc/encoding"

	"github.com/blockberries/protoconv"
)

const codecName = "cramberry"

// Compile-time interface check.
var _ encoding.Codec = CramberryCodec{}

// CramberryCodec implements grpc/encoding.Codec using cramberry
// for deterministic binary serialization.
type CramberryCodec struct{}

func (CramberryCodec) Marshal(v any) ([]byte, error) {
	data, err := cramberry.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("cramberry marshal: %w", err)
	}
	return data, nil
}

func (CramberryCodec) Unmarshal(data []byte, v any) error {
	if err := cramberry.Unmarshal(data, v); err != nil {
		return fmt.Errorf("cramberry unmarshal: %w", err)
	}
	return nil
}

func (CramberryCodec) Name() string { return codecName }

func init() {
	encoding.RegisterCodec(CramberryCodec{})
}

// Marshal converts d to its wire form and serializes it.
func Marshal[D, W any](enc protoconv.Encoder[D, W], d D) ([]byte, error) {
	w := enc.ToProto(d)
	return CramberryCodec{}.Marshal(&w)
}

// Unmarshal deserializes data into a W and converts it to its domain
// form. Conversion errors are returned unwrapped so their gRPC status
// is preserved.
func Unmarshal[W, D any](dec protoconv.Decoder[W, D], data []byte) (D, error) {
	var w W
	if err := (CramberryCodec{}).Unmarshal(data, &w); err != nil {
		var zero D
		return zero, err
	}
	return dec.FromProto(w)
}
