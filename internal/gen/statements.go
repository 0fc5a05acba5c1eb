package gen

import (
	"fmt"
	"strings"

	"filterable/internal/analyze"
)

// fieldStatements returns the statements that materialize f from receiver x.
func fieldStatements(f *analyze.Field) []string {
	expr := strings.Repeat("*", f.Optional) + "x." + f.Name
	fail := fmt.Sprintf("return ctx, fmt.Errorf(%q, err)", "field "+f.Path+": %w")
	path := fmt.Sprintf("%q", f.Path)

	set := func(val string) []string {
		return []string{
			fmt.Sprintf("if err := ctx.Set(%s, %s); err != nil {", path, val),
			fail,
			"}",
		}
	}

	var body []string

	switch f.Shape {
	case analyze.ShapeText:
		if f.Convert {
			body = set("semantic.Text(string(" + expr + "))")
		} else {
			body = set("semantic.Text(" + expr + ")")
		}

	case analyze.ShapeAddr:
		body = set("semantic.Addr(" + expr + ")")

	case analyze.ShapeInteger:
		body = []string{
			fmt.Sprintf("if v, err := semantic.Integer(%s); err != nil {", expr),
			fail,
			fmt.Sprintf("} else if err := ctx.Set(%s, v); err != nil {", path),
			fail,
			"}",
		}

	case analyze.ShapeIP:
		body = []string{
			fmt.Sprintf("if v, ok, err := semantic.IP(%s); err != nil {", expr),
			fail,
			"} else if ok {",
		}
		body = append(body, set("v")...)
		body = append(body, "}")

	case analyze.ShapePairs, analyze.ShapeArrayPairs:
		fn := "Flatten"
		if f.Shape == analyze.ShapeArrayPairs {
			fn = "FlattenArrays"
		}

		body = []string{fmt.Sprintf("if v, ok := semantic.%s(%s); ok {", fn, expr)}
		body = append(body, set("v")...)
		body = append(body, "}")

	default:
		panic("unreachable: field " + f.Name + " has shape " + f.Shape.String())
	}

	if f.Optional == 0 {
		return body
	}

	guards := make([]string, f.Optional)
	for i := range guards {
		guards[i] = strings.Repeat("*", i) + "x." + f.Name + " != nil"
	}

	out := []string{"if " + strings.Join(guards, " && ") + " {"}
	out = append(out, body...)
	return append(out, "}")
}
