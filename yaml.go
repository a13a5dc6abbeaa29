package feather

import (
	"io"

	"gopkg.in/yaml.v3"
)

// writeYAML emits a sequence of mappings built from nodes, which keeps the
// keys in column order.
func writeYAML(w io.Writer, fr Frame) error {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range fr.Rows {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for i, name := range fr.Header {
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
			val := &yaml.Node{}
			if err := val.Encode(Value(row[i])); err != nil {
				return err
			}
			m.Content = append(m.Content, key, val)
		}
		seq.Content = append(seq.Content, m)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(seq); err != nil {
		return err
	}
	return enc.Close()
}
