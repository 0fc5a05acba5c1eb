package analyze

import (
	"fmt"
	"go/types"
	"path/filepath"
	"reflect"

	"golang.org/x/tools/go/packages"

	"filterable/internal/suggest"
	"filterable/internal/tag"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedImports

// Analyzer loads Go packages and extracts filterable structs.
type Analyzer struct {
	tagKey   string
	packages map[string]*PackageInfo
}

// NewAnalyzer creates a new Analyzer reading annotations from tagKey.
func NewAnalyzer(tagKey string) *Analyzer {
	if tagKey == "" {
		tagKey = tag.DefaultKey
	}

	return &Analyzer{
		tagKey:   tagKey,
		packages: make(map[string]*PackageInfo),
	}
}

// LoadPackages loads the specified packages.
// Patterns are standard Go package patterns (e.g., "./examples/request").
func (a *Analyzer) LoadPackages(patterns ...string) ([]*PackageInfo, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	out := make([]*PackageInfo, 0, len(pkgs))
	for _, pkg := range pkgs {
		info := a.processPackage(pkg)
		a.packages[pkg.PkgPath] = info
		out = append(out, info)
	}

	return out, nil
}

// processPackage records the named struct types of a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) *PackageInfo {
	info := &PackageInfo{
		Path:  pkg.PkgPath,
		Name:  pkg.Name,
		scope: pkg.Types.Scope(),
	}

	if len(pkg.GoFiles) > 0 {
		info.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	for _, name := range info.scope.Names() {
		typeName, ok := info.scope.Lookup(name).(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		// generic types would need instantiation before generation
		if named, ok := typeName.Type().(*types.Named); ok && named.TypeParams().Len() > 0 {
			continue
		}

		if _, ok := typeName.Type().Underlying().(*types.Struct); ok {
			info.Types = append(info.Types, TypeID{PkgPath: pkg.PkgPath, Name: name})
		}
	}

	return info
}

// Tagged returns the struct types of pkg carrying at least one annotation.
func (a *Analyzer) Tagged(pkg *PackageInfo) []TypeID {
	var out []TypeID
	for _, id := range pkg.Types {
		st := pkg.scope.Lookup(id.Name).Type().Underlying().(*types.Struct)
		for i := 0; i < st.NumFields(); i++ {
			if _, ok := reflect.StructTag(st.Tag(i)).Lookup(a.tagKey); ok {
				out = append(out, id)
				break
			}
		}
	}

	return out
}

// Struct analyzes one struct type. Any unsupported field type or malformed
// annotation fails the whole struct.
func (a *Analyzer) Struct(id TypeID) (*Struct, error) {
	pkg := a.packages[id.PkgPath]
	if pkg == nil {
		return nil, fmt.Errorf("package %s not loaded", id.PkgPath)
	}

	obj, ok := pkg.scope.Lookup(id.Name).(*types.TypeName)
	if !ok {
		names := make([]string, 0, len(pkg.Types))
		for _, t := range pkg.Types {
			names = append(names, t.Name)
		}

		return nil, fmt.Errorf("type %s not found%s", id, suggest.Hint(id.Name, names...))
	}

	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		return nil, fmt.Errorf("type %s is not a struct", id)
	}

	out := &Struct{ID: id, PkgName: pkg.Name}

	namespace, err := a.namespace(id, st)
	if err != nil {
		return nil, err
	}
	out.Namespace = namespace

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		raw, hasTag := reflect.StructTag(st.Tag(i)).Lookup(a.tagKey)

		if field.Name() == tag.MarkerName {
			continue
		}

		if !field.Exported() {
			if hasTag {
				return nil, fmt.Errorf("%w: field %s.%s is unexported", tag.ErrMalformed, id.Name, field.Name())
			}
			continue
		}

		ann, err := tag.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", id.Name, field.Name(), err)
		}

		name := field.Name()
		if ann.HasName {
			name = ann.Name
		}

		f := Field{
			Name:   field.Name(),
			Path:   tag.Join(tag.Segments(namespace, name)),
			Ignore: ann.Ignore,
			GoType: field.Type(),
		}

		if !f.Ignore {
			f.Shape, f.Optional, f.Convert, err = Classify(field.Type())
			if err != nil {
				return nil, fmt.Errorf("field %s.%s: %w", id.Name, field.Name(), err)
			}
		}

		out.Fields = append(out.Fields, f)
	}

	return out, nil
}

// namespace reads the struct-level marker; at most one is allowed.
func (a *Analyzer) namespace(id TypeID, st *types.Struct) (string, error) {
	var (
		namespace string
		found     bool
	)

	for i := 0; i < st.NumFields(); i++ {
		if st.Field(i).Name() != tag.MarkerName {
			continue
		}

		raw, ok := reflect.StructTag(st.Tag(i)).Lookup(a.tagKey)
		if !ok {
			continue
		}

		if found {
			return "", fmt.Errorf("%w: %s declares more than one namespace marker", tag.ErrMalformed, id.Name)
		}

		ns, err := tag.ParseMarker(raw)
		if err != nil {
			return "", fmt.Errorf("namespace of %s: %w", id.Name, err)
		}

		namespace, found = ns, true
	}

	return namespace, nil
}
