package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"reflect"
	"sort"
	"strings"
	"unicode"

	"filterable/derive"
	"filterable/internal/analyze"
	"filterable/scheme"
	"filterable/semantic"
)

var (
	schemePkgPath   = reflect.TypeFor[scheme.Field]().PkgPath()
	semanticPkgPath = reflect.TypeFor[semantic.Value]().PkgPath()
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Suffix is appended to the snake_case type name to form the file name.
	Suffix string
	// UniquePaths rejects structs in which two fields share a path.
	UniquePaths bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Suffix: "_filterable.go",
	}
}

// Generator generates Go code for analyzed structs.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Suffix == "" {
		config.Suffix = DefaultGeneratorConfig().Suffix
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory the file belongs to.
	Dir string
	// Filename is the name of the file (e.g., "request_filterable.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates one file per struct. Any failing struct aborts the run
// and no files are returned.
func (g *Generator) Generate(structs []*analyze.Struct, dir string) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(structs))

	for _, st := range structs {
		file, err := g.generateStruct(st, dir)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", st.ID, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

func (g *Generator) generateStruct(st *analyze.Struct, dir string) (*GeneratedFile, error) {
	if g.config.UniquePaths {
		if err := checkUnique(st); err != nil {
			return nil, err
		}
	}

	data := &templateData{
		PackageName: st.PkgName,
		Filename:    snakeCase(st.ID.Name) + g.config.Suffix,
		TypeName:    st.ID.Name,
		Imports:     []string{schemePkgPath},
	}

	active := st.Active()
	if len(active) > 0 {
		data.Imports = append(data.Imports, semanticPkgPath, "fmt")
	}
	sort.Strings(data.Imports)

	for i := range active {
		f := &active[i]
		data.Fields = append(data.Fields, fieldData{
			Path:       f.Path,
			Type:       f.Type().String(),
			Statements: fieldStatements(f),
		})
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		_ = writeDebugUnformatted(dir, data.Filename, buf.Bytes())

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Dir:      dir,
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

func checkUnique(st *analyze.Struct) error {
	seen := make(map[string]string)
	for _, f := range st.Active() {
		if other, ok := seen[f.Path]; ok {
			return fmt.Errorf("%w: %s and %s both map to %q", derive.ErrPathCollision, other, f.Name, f.Path)
		}
		seen[f.Path] = f.Name
	}

	return nil
}

// snakeCase converts a Go type name to a file name stem: HTTPRequest -> http_request.
func snakeCase(name string) string {
	runes := []rune(name)

	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prevLower := !unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || nextLower {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
