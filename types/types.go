// Package types defines cramberry-tagged wire records for time values
// together with their generated conversions to time.Duration and
// time.Time.
//
// The converters in protoconv.gen.go are produced by protoconv-gen
// from protoconv.yaml; run go generate after adding a record type.
package types
