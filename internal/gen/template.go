package gen

import "text/template"

// templateData holds all data needed for one generated file.
type templateData struct {
	PackageName string
	Filename    string
	TypeName    string
	Imports     []string
	Fields      []fieldData
}

// fieldData represents one schema entry and its materialization statements.
type fieldData struct {
	Path       string
	Type       string
	Statements []string
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by filterable-gen; DO NOT EDIT.

package {{.PackageName}}

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)

// FilterFields returns the filter schema of {{.TypeName}}.
func ({{.TypeName}}) FilterFields() []scheme.Field {
	return []scheme.Field{
{{- range .Fields}}
		{Path: {{printf "%q" .Path}}, Type: semantic.Type{{.Type}}},
{{- end}}
	}
}

// FilterContext creates a context for s and fills it from x.
// On error the partially populated context is returned with the error.
func (x *{{.TypeName}}) FilterContext(s *scheme.Scheme) (*scheme.Context, error) {
	ctx := scheme.NewContext(s)
{{range .Fields}}
{{- range .Statements}}
	{{.}}
{{- end}}
{{end}}
	return ctx, nil
}
`))
