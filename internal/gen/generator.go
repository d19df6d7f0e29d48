package gen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Generator renders a config file into a Go source file.
type Generator struct {
	Log logrus.FieldLogger
}

// NewGenerator creates a Generator logging to log.
func NewGenerator(log logrus.FieldLogger) *Generator {
	return &Generator{Log: log}
}

// Run loads configPath and writes the generated file into outputDir.
// An empty outputDir means the directory holding the config. It
// returns the path of the written file.
func (g *Generator) Run(configPath, outputDir string) (string, error) {
	log := g.Log.WithField("config", configPath)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return "", err
	}
	for _, t := range cfg.Types {
		log.WithFields(logrus.Fields{"type": t.Name, "kind": t.Kind}).Debug("emitting converter")
	}

	src, err := Render(cfg)
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", configPath, err)
	}

	if outputDir == "" {
		outputDir = filepath.Dir(configPath)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}
	outputFile := filepath.Join(outputDir, cfg.Output)
	if err := os.WriteFile(outputFile, src, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outputFile, err)
	}

	log.WithFields(logrus.Fields{"output": outputFile, "types": len(cfg.Types)}).Info("generated converters")
	return outputFile, nil
}
