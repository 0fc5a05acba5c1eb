package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"filterable/scheme"
)

// schemaDoc is the YAML form of one struct's schema.
type schemaDoc struct {
	Type      string         `yaml:"type"`
	Namespace string         `yaml:"namespace,omitempty"`
	Fields    []scheme.Field `yaml:"fields"`
}

func runSchema(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	selections, err := analyzeConfig(cfg)
	if err != nil {
		return err
	}

	var docs []schemaDoc
	for _, sel := range selections {
		for _, st := range sel.structs {
			doc := schemaDoc{
				Type:      st.ID.String(),
				Namespace: st.Namespace,
				Fields:    []scheme.Field{},
			}
			for _, f := range st.Active() {
				doc.Fields = append(doc.Fields, scheme.Field{Path: f.Path, Type: f.Type()})
			}
			docs = append(docs, doc)
		}
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(docs); err != nil {
		return err
	}

	return enc.Close()
}
