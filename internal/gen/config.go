// Package gen renders time-value converters for wire record types
// shaped {Seconds int64; Nanos uint32}.
package gen

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"
)

// DefaultOutput is the file name used when the config does not set one.
const DefaultOutput = "protoconv.gen.go"

// Kind selects which domain conversion is emitted for a wire type.
type Kind string

const (
	// KindDuration maps the wire type to time.Duration.
	KindDuration Kind = "duration"
	// KindTimestamp maps the wire type to a UTC time.Time.
	KindTimestamp Kind = "timestamp"
)

func (k Kind) valid() bool {
	return k == KindDuration || k == KindTimestamp
}

// TypeSpec names one wire record type and the conversion to emit for it.
type TypeSpec struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// Config is the generator input, usually read from protoconv.yaml next
// to the wire types.
type Config struct {
	Package string     `json:"package"`
	Output  string     `json:"output,omitempty"`
	Types   []TypeSpec `json:"types"`
}

// LoadConfig reads and validates a generator config.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML config data, fills defaults and validates it.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configs that would not produce compilable code.
func (c *Config) Validate() error {
	var errs []error
	if !token.IsIdentifier(c.Package) {
		errs = append(errs, fmt.Errorf("invalid package name %q", c.Package))
	}
	if !validOutput(c.Output) {
		errs = append(errs, fmt.Errorf("invalid output %q: want a .go file name with no directory", c.Output))
	}
	if len(c.Types) == 0 {
		errs = append(errs, errors.New("no types listed"))
	}
	seen := make(map[string]bool, len(c.Types))
	for i, t := range c.Types {
		if !token.IsIdentifier(t.Name) {
			errs = append(errs, fmt.Errorf("types[%d]: invalid type name %q", i, t.Name))
		}
		if !t.Kind.valid() {
			errs = append(errs, fmt.Errorf("types[%d]: unsupported kind %q for %s (want %q or %q)",
				i, t.Kind, t.Name, KindDuration, KindTimestamp))
		}
		if seen[t.Name] {
			errs = append(errs, fmt.Errorf("types[%d]: duplicate type %s", i, t.Name))
		}
		seen[t.Name] = true
	}
	return errors.Join(errs...)
}

// validOutput reports whether name is a bare Go file name, so the
// generated file always lands in the output directory.
func validOutput(name string) bool {
	if strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return false
	}
	return strings.HasSuffix(name, ".go") && name != ".go"
}
