package ruleset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/reactform/pkg/observable"
)

// LoadData reads a mapping into an observable object, keeping document key
// order. Nested values decode to plain Go maps and slices.
func LoadData(r io.Reader) (*observable.Object, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return observable.NewObject(), nil
		}
		return nil, errors.Join(ErrInvalidDocument, err)
	}

	n := &root
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = n.Content[0]
	}
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return observable.NewObject(), nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}

	entries := make([]observable.Entry, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]

		var v any
		if err := val.Decode(&v); err != nil {
			return nil, fmt.Errorf("key %q: %w", key.Value, errors.Join(ErrInvalidDocument, err))
		}
		entries = append(entries, observable.Entry{Key: key.Value, Value: v})
	}
	return observable.NewObject(entries...), nil
}

// LoadDataFile reads a data mapping from path.
func LoadDataFile(path string) (*observable.Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data: %w", err)
	}
	defer f.Close()

	obj, err := LoadData(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return obj, nil
}
