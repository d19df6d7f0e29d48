package gen

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"text/template"
	"unicode"
	"unicode/utf8"
)

//go:embed protoconv.go.tmpl
var templateText string

var fileTemplate = template.Must(template.New("protoconv").
	Funcs(template.FuncMap{"lowerFirst": lowerFirst}).
	Parse(templateText))

// Render produces the gofmt'ed Go source for cfg.
func Render(cfg *Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, cfg); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return src, nil
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}
