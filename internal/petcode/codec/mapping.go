package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/seerbp/petcode/internal/petcode"
)

// Entry is one key/value pair of a Mapping.
type Entry struct {
	Key   string
	Value any
}

// Mapping is an ordered key/value projection of a message. Values produced
// by this package are int64, bool, string, Mapping or []any; parsed text may
// also yield float64 and nil.
type Mapping []Entry

// Get returns the value stored under key. When a key repeats, the last
// occurrence wins.
func (m Mapping) Get(key string) (any, bool) {
	for i := len(m) - 1; i >= 0; i-- {
		if m[i].Key == key {
			return m[i].Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in order.
func (m Mapping) Keys() []string {
	keys := make([]string, len(m))
	for i, e := range m {
		keys[i] = e.Key
	}
	return keys
}

// MarshalJSON writes m as a JSON object with keys in order.
func (m Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Key, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML renders m as a YAML mapping node with keys in order.
func (m Mapping) MarshalYAML() (any, error) {
	return toNode(m)
}

func toNode(v any) (*yaml.Node, error) {
	switch v := v.(type) {
	case Mapping:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, e := range v {
			val, err := toNode(e.Value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", e.Key, err)
			}
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key}, val)
		}
		return n, nil
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for i, item := range v {
			child, err := toNode(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			n.Content = append(n.Content, child)
		}
		return n, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v)}, nil
	case int64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v, 10)}, nil
	case int:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)}, nil
	case float64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(v, 'g', -1, 64)}, nil
	default:
		return nil, fmt.Errorf("unsupported mapping value %T", v)
	}
}

// ParseMapping calls Default.ParseMapping.
func ParseMapping(data []byte) (Mapping, error) { return Default.ParseMapping(data) }

// ParseMapping parses a JSON or YAML document whose root is an object.
// Key order is preserved. Aliases are expanded, and the expanded tree may
// hold at most the codec's max decoded size in nodes.
//
// Postcondition: Returns a *petcode.DecodeError for malformed text, a
// non-object root, or a tree that exceeds the node limit (wrapping
// ErrTooLarge). Empty input yields an empty Mapping.
func (c *Codec) ParseMapping(data []byte) (Mapping, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, petcode.NewDecodeError(petcode.FormatMapping, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return Mapping{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, petcode.NewDecodeError(petcode.FormatMapping,
			errors.New("document root must be an object"))
	}
	p := &nodeParser{budget: c.maxDecodedSize}
	v, err := p.fromNode(root)
	if err != nil {
		return nil, petcode.NewDecodeError(petcode.FormatMapping, err)
	}
	return v.(Mapping), nil
}

// nodeParser converts a yaml.Node tree, charging one unit of budget per
// node visited so that alias expansion stays bounded.
type nodeParser struct {
	budget int
}

func (p *nodeParser) fromNode(n *yaml.Node) (any, error) {
	p.budget--
	if p.budget < 0 {
		return nil, ErrTooLarge
	}
	switch n.Kind {
	case yaml.AliasNode:
		return p.fromNode(n.Alias)
	case yaml.MappingNode:
		m := make(Mapping, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, val := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
			}
			v, err := p.fromNode(val)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k.Value, err)
			}
			m = append(m, Entry{Key: k.Value, Value: v})
		}
		return m, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := p.fromNode(c)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			items = append(items, v)
		}
		return items, nil
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return nil, nil
		case "!!int":
			v, err := strconv.ParseInt(n.Value, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n.Line, err)
			}
			return v, nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return nil, fmt.Errorf("line %d: %w", n.Line, err)
			}
			return b, nil
		case "!!float":
			var f float64
			if err := n.Decode(&f); err != nil {
				return nil, fmt.Errorf("line %d: %w", n.Line, err)
			}
			return f, nil
		default:
			return n.Value, nil
		}
	default:
		return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
	}
}
