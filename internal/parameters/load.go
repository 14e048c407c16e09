package parameters

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/iwvelando/uprating-calculator/pkg/datetime"
	"gopkg.in/yaml.v3"
)

//go:embed data/default.yaml
var defaultData []byte

const (
	valuesKey      = "values"
	descriptionKey = "description"
	unitKey        = "unit"
)

// Default returns the tree built from the embedded parameter data.
func Default() (*Tree, error) {
	return Load(bytes.NewReader(defaultData))
}

// LoadFile reads a YAML parameter file from disk.
func LoadFile(path string) (*Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parameter file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Load(f)
}

// Load decodes a YAML parameter document. Nested mappings form the
// namespace; a mapping with a "values" key is a parameter whose values are
// keyed by YYYY-MM-DD instants.
func Load(r io.Reader) (*Tree, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return NewTree(nil), nil
		}
		return nil, fmt.Errorf("failed to parse parameter data: %w", err)
	}

	content := &doc
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		content = doc.Content[0]
	}
	if content.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parameter data must be a mapping, got %s", kindName(content.Kind))
	}

	root, err := decodeBranch("", "", content)
	if err != nil {
		return nil, err
	}
	return NewTree(root), nil
}

func decodeBranch(name, path string, n *yaml.Node) (*Node, error) {
	node := &Node{Name: name, Children: make(map[string]*Node)}

	if isLeaf(n) {
		series, err := decodeSeries(path, n)
		if err != nil {
			return nil, err
		}
		node.Series = series
		return node, nil
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		value := n.Content[i+1]
		if strings.Contains(key, ".") {
			return nil, fmt.Errorf("parameter key %q under %q must not contain '.'", key, path)
		}
		childPath := key
		if path != "" {
			childPath = path + "." + key
		}
		if value.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("parameter node %s must be a mapping, got %s", childPath, kindName(value.Kind))
		}
		child, err := decodeBranch(key, childPath, value)
		if err != nil {
			return nil, err
		}
		node.Children[key] = child
	}
	return node, nil
}

func isLeaf(n *yaml.Node) bool {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == valuesKey {
			return true
		}
	}
	return false
}

func decodeSeries(path string, n *yaml.Node) (*Series, error) {
	var (
		entries     []Entry
		description string
		unit        string
	)

	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		value := n.Content[i+1]
		switch key {
		case descriptionKey:
			description = value.Value
		case unitKey:
			unit = value.Value
		case valuesKey:
			if value.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("values of %s must be a mapping of instants to numbers", path)
			}
			for j := 0; j+1 < len(value.Content); j += 2 {
				instant, err := datetime.ParseInstant(value.Content[j].Value)
				if err != nil {
					return nil, fmt.Errorf("parameter %s: %w", path, err)
				}
				number, err := strconv.ParseFloat(strings.TrimSpace(value.Content[j+1].Value), 64)
				if err != nil {
					return nil, fmt.Errorf("parameter %s at %s: invalid value %q", path, value.Content[j].Value, value.Content[j+1].Value)
				}
				entries = append(entries, Entry{Instant: instant, Value: number})
			}
		default:
			return nil, fmt.Errorf("parameter %s has unknown field %q", path, key)
		}
	}

	series := NewSeries(path, entries)
	series.Description = description
	series.Unit = unit
	return series, nil
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
