package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"filterable/internal/analyze"
	"filterable/internal/config"
)

// Selection flags shared by gen and schema.
var (
	pkgPatterns []string
	typeNames   []string
	tagKey      string
	outDir      string
	uniquePaths bool
)

func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&pkgPatterns, "pkg", "p", nil, "package patterns to load (overrides the config packages)")
	cmd.Flags().StringSliceVarP(&typeNames, "type", "t", nil, "struct types to process; requires exactly one --pkg")
	cmd.Flags().StringVar(&tagKey, "tag", "", "struct tag key holding annotations (default \"filter\")")
}

// loadConfig reads --config when given and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.File, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadFile(configPath); err != nil {
			return nil, err
		}
	}

	if len(typeNames) > 0 && len(pkgPatterns) != 1 {
		return nil, fmt.Errorf("--type needs exactly one --pkg, got %d", len(pkgPatterns))
	}

	if len(pkgPatterns) > 0 {
		cfg.Packages = cfg.Packages[:0]
		for _, p := range pkgPatterns {
			cfg.Packages = append(cfg.Packages, config.Package{Path: p, Types: typeNames})
		}
	}

	if tagKey != "" {
		cfg.Tag = tagKey
	}

	if f := cmd.Flags().Lookup("out"); f != nil && f.Changed {
		cfg.Output = outDir
	}

	if f := cmd.Flags().Lookup("unique-paths"); f != nil && f.Changed {
		cfg.UniquePaths = uniquePaths
	}

	if len(cfg.Packages) == 0 {
		return nil, fmt.Errorf("no packages selected: pass --pkg or list packages in --config")
	}

	return cfg, cfg.Validate()
}

// selection is the set of analyzed structs of one loaded package.
type selection struct {
	pkg     *analyze.PackageInfo
	structs []*analyze.Struct
}

// analyzeConfig loads every configured package and analyzes the selected
// structs. The first failure aborts the whole run.
func analyzeConfig(cfg *config.File) ([]selection, error) {
	analyzer := analyze.NewAnalyzer(cfg.Tag)

	var out []selection
	for _, p := range cfg.Packages {
		logger.Debug("Loading packages", zap.String("pattern", p.Path))

		pkgs, err := analyzer.LoadPackages(p.Path)
		if err != nil {
			return nil, err
		}

		for _, pkg := range pkgs {
			ids := analyzer.Tagged(pkg)
			if len(p.Types) > 0 {
				ids = ids[:0]
				for _, name := range p.Types {
					ids = append(ids, analyze.TypeID{PkgPath: pkg.Path, Name: name})
				}
			}

			sel := selection{pkg: pkg}
			for _, id := range ids {
				st, err := analyzer.Struct(id)
				if err != nil {
					return nil, err
				}

				logger.Debug("Struct analyzed",
					zap.Stringer("type", id),
					zap.Int("fields", len(st.Active())))
				sel.structs = append(sel.structs, st)
			}

			if len(sel.structs) == 0 {
				logger.Warn("No annotated structs found", zap.String("package", pkg.Path))
				continue
			}
			out = append(out, sel)
		}
	}

	return out, nil
}
