package protoconv

// Required unwraps an optional wire value. A nil value yields a
// *MissingRequiredError.
func Required[T any](v *T) (T, error) {
	return RequiredField("", v)
}

// RequiredField is Required with the field name recorded in the error.
func RequiredField[T any](field string, v *T) (T, error) {
	if v == nil {
		var zero T
		return zero, &MissingRequiredError{Field: field}
	}
	return *v, nil
}

// RequiredFromProto unwraps a required wire field and converts it.
func RequiredFromProto[W, D any](dec Decoder[W, D], field string, w *W) (D, error) {
	v, err := RequiredField(field, w)
	if err != nil {
		var zero D
		return zero, err
	}
	return dec.FromProto(v)
}
