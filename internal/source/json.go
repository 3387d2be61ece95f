package source

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/rshade/gridview/internal/record"
)

// envelope is the response shape {"data": [...], "success": bool, "error": "..."}.
type envelope struct {
	Data    []json.RawMessage `json:"data"`
	Success *bool             `json:"success"`
	Error   string            `json:"error"`
}

func decodeJSON(r io.Reader, opts Options) ([]record.Record, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return []record.Record{}, nil
	}

	var items []json.RawMessage
	switch raw[0] {
	case '[':
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
	case '{':
		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, err
		}
		if env.Success != nil && !*env.Success {
			return nil, fmt.Errorf("%w: %s", ErrSourceFailed, env.Error)
		}
		items = env.Data
	default:
		return nil, ErrInvalidShape
	}

	records := make([]record.Record, 0, len(items))
	for i, item := range items {
		fields, err := decodeObject(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		records = append(records, record.New(fields, keyOrder(item), opts.KeyField))
	}
	return records, nil
}

func decodeObject(raw json.RawMessage) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidShape, err)
	}
	if fields == nil {
		return nil, ErrInvalidShape
	}
	return fields, nil
}

// keyOrder recovers the field order of a JSON object. JSON objects are YAML
// flow mappings, so the YAML node tree keeps their key order. Returns nil when
// the order cannot be recovered; record.New then falls back to sorted keys.
func keyOrder(raw json.RawMessage) []string {
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil
	}
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		return mappingKeys(node.Content[0])
	}
	return nil
}
