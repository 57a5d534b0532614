package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// render writes v in the selected format; table output is delegated to fn
func render(cmd *cobra.Command, v interface{}, fn func(w io.Writer)) error {
	out := cmd.OutOrStdout()
	switch rootFlags.format {
	case formatTable:
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fn(w)
		return w.Flush()
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		return writeYAML(out, v)
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", rootFlags.format)
	}
}

// writeYAML goes through the JSON encoding so YAML keys match the API field names
func writeYAML(out io.Writer, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("convert to yaml: %w", err)
	}
	blockStyle(&doc)

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}

// blockStyle drops the flow and quoting styles inherited from JSON
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
