package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"filterable/internal/gen"
)

func runGen(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	selections, err := analyzeConfig(cfg)
	if err != nil {
		return err
	}

	generator := gen.NewGenerator(gen.GeneratorConfig{
		Suffix:      cfg.Suffix,
		UniquePaths: cfg.UniquePaths,
	})

	var files []gen.GeneratedFile
	for _, sel := range selections {
		generated, err := generator.Generate(sel.structs, sel.pkg.Dir)
		if err != nil {
			return fmt.Errorf("package %s: %w", sel.pkg.Path, err)
		}
		files = append(files, generated...)
	}

	written, err := gen.WriteFiles(files, cfg.Output)
	for _, path := range written {
		logger.Info("Wrote file", zap.String("path", path))
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "generated %d file(s)\n", len(written))

	return nil
}
