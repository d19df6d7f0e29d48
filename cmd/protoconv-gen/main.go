package main

import (
	"fmt"
	"os"

	"github.com/blockberries/protoconv/internal/gen"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type GenerateOptions struct {
	ConfigFile string
	OutputDir  string
	LogLevel   string
}

func NewCmdGenerate() *cobra.Command {
	o := &GenerateOptions{}
	cmd := &cobra.Command{
		Use:   "protoconv-gen",
		Short: "Generate time.Duration and time.Time converters for wire record types.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run()
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&o.ConfigFile, "config", "c", "protoconv.yaml", "Generator config listing the wire types and their kinds.")
	cmd.Flags().StringVarP(&o.OutputDir, "output-dir", "o", "", "Directory for the generated file. Defaults to the config file's directory.")
	cmd.Flags().StringVar(&o.LogLevel, "log-level", "info", "Log level (debug, info, warn, error).")
	return cmd
}

func (o *GenerateOptions) Validate() error {
	if o.ConfigFile == "" {
		return fmt.Errorf("--config must not be empty")
	}
	if _, err := logrus.ParseLevel(o.LogLevel); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	return nil
}

func (o *GenerateOptions) Run() error {
	log := logrus.New()
	lvl, _ := logrus.ParseLevel(o.LogLevel)
	log.SetLevel(lvl)

	if _, err := gen.NewGenerator(log).Run(o.ConfigFile, o.OutputDir); err != nil {
		return fmt.Errorf("generating converters: %w", err)
	}
	return nil
}

func main() {
	if err := NewCmdGenerate().Execute(); err != nil {
		os.Exit(1)
	}
}
