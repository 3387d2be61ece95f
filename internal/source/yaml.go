package source

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rshade/gridview/internal/record"
)

func decodeYAML(r io.Reader, opts Options) ([]record.Record, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []record.Record{}, nil
		}
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return []record.Record{}, nil
	}

	list := doc.Content[0]
	if list.Kind == yaml.MappingNode {
		list = mappingValue(list, "data")
		if list == nil {
			return nil, ErrInvalidShape
		}
	}
	if list.Kind != yaml.SequenceNode {
		return nil, ErrInvalidShape
	}

	records := make([]record.Record, 0, len(list.Content))
	for i, item := range list.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("item %d: %w", i, ErrInvalidShape)
		}
		var fields map[string]any
		if err := item.Decode(&fields); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		records = append(records, record.New(fields, mappingKeys(item), opts.KeyField))
	}
	return records, nil
}

func mappingKeys(n *yaml.Node) []string {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	keys := make([]string, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		keys = append(keys, n.Content[i].Value)
	}
	return keys
}

func mappingValue(n *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}
