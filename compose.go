package protoconv

// OptionToProto converts an optional domain value. Absent stays absent.
func OptionToProto[D, W any](enc Encoder[D, W], d *D) *W {
	if d == nil {
		return nil
	}
	w := enc.ToProto(*d)
	return &w
}

// OptionFromProto converts an optional wire value. An absent value is
// not an error: it yields an absent domain value.
func OptionFromProto[W, D any](dec Decoder[W, D], w *W) (*D, error) {
	if w == nil {
		return nil, nil
	}
	d, err := dec.FromProto(*w)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// SliceToProto converts every element of ds, keeping order and length.
func SliceToProto[D, W any](enc Encoder[D, W], ds []D) []W {
	if ds == nil {
		return nil
	}
	out := make([]W, len(ds))
	for i, d := range ds {
		out[i] = enc.ToProto(d)
	}
	return out
}

// SliceFromProto converts every element of ws in order. The first
// failing element aborts the conversion; its error is returned as an
// *ElementError and no partial result is returned.
func SliceFromProto[W, D any](dec Decoder[W, D], ws []W) ([]D, error) {
	if ws == nil {
		return nil, nil
	}
	out := make([]D, len(ws))
	for i, w := range ws {
		d, err := dec.FromProto(w)
		if err != nil {
			return nil, &ElementError{Index: i, Err: err}
		}
		out[i] = d
	}
	return out, nil
}

type optionConverter[D, W any] struct{ c Converter[D, W] }

func (o optionConverter[D, W]) ToProto(d *D) *W { return OptionToProto[D, W](o.c, d) }

func (o optionConverter[D, W]) FromProto(w *W) (*D, error) {
	return OptionFromProto[W, D](o.c, w)
}

// Option lifts c to optional values.
func Option[D, W any](c Converter[D, W]) Converter[*D, *W] {
	return optionConverter[D, W]{c: c}
}

type sliceConverter[D, W any] struct{ c Converter[D, W] }

func (s sliceConverter[D, W]) ToProto(ds []D) []W { return SliceToProto[D, W](s.c, ds) }

func (s sliceConverter[D, W]) FromProto(ws []W) ([]D, error) {
	return SliceFromProto[W, D](s.c, ws)
}

// Slice lifts c to ordered sequences.
func Slice[D, W any](c Converter[D, W]) Converter[[]D, []W] {
	return sliceConverter[D, W]{c: c}
}
