/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resource

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ErrInvalidInput indicates resource input could not be decoded into data
// of the expected shape.
var ErrInvalidInput = errors.New("invalid resource input")

// MediaTypes lists the content types Decode understands, most preferred
// first.
var MediaTypes = []string{
	"application/json",
	"application/yaml",
	"application/x-yaml",
	"text/yaml",
}

// Decode parses JSON, JSONC or YAML input into ordered values: mappings
// become *Data, sequences become []any and scalars are resolved by
// scalarFrom.
// Field order from the source document is preserved.
func Decode(data []byte) (any, error) {
	if isLikelyJSON(data) {
		// Strip comments and trailing commas; plain JSON is valid YAML.
		data = jsonc.ToJSON(data)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if doc.Kind == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidInput)
	}
	return fromNode(&doc)
}

// DecodeItem decodes input whose root is a mapping into an Item.
func DecodeItem(typeName string, data []byte) (*Item, error) {
	v, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return itemFrom(typeName, v)
}

// DecodeList decodes input whose root is a sequence of mappings into a List.
// A mapping root is accepted as a single-element list.
func DecodeList(typeName string, data []byte) (*List, error) {
	v, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return listFrom(typeName, v)
}

// DecodeDocument decodes input into a List when its root is a sequence or
// asCollection is set, and into an Item otherwise. Exactly one of the
// returned values is non-nil on success.
func DecodeDocument(typeName string, data []byte, asCollection bool) (*Item, *List, error) {
	v, err := Decode(data)
	if err != nil {
		return nil, nil, err
	}
	if _, isSeq := v.([]any); isSeq || asCollection {
		list, err := listFrom(typeName, v)
		return nil, list, err
	}
	item, err := itemFrom(typeName, v)
	return item, nil, err
}

func itemFrom(typeName string, v any) (*Item, error) {
	d, ok := v.(*Data)
	if !ok {
		return nil, fmt.Errorf("%w: item root must be an object", ErrInvalidInput)
	}
	return NewItem(typeName, d), nil
}

func listFrom(typeName string, v any) (*List, error) {
	switch x := v.(type) {
	case *Data:
		return ListOf(typeName, x), nil
	case []any:
		rows := make([]*Data, 0, len(x))
		for i, el := range x {
			d, ok := el.(*Data)
			if !ok {
				return nil, fmt.Errorf("%w: collection element %d must be an object", ErrInvalidInput, i)
			}
			rows = append(rows, d)
		}
		return ListOf(typeName, rows...), nil
	default:
		return nil, fmt.Errorf("%w: collection root must be an array or object", ErrInvalidInput)
	}
}

func fromNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return fromNode(node.Content[0])

	case yaml.MappingNode:
		d := New()
		for i := 0; i+1 < len(node.Content); i += 2 {
			v, err := fromNode(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			d.Set(node.Content[i].Value, v)
		}
		return d, nil

	case yaml.SequenceNode:
		seq := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			v, err := fromNode(child)
			if err != nil {
				return nil, err
			}
			seq = append(seq, v)
		}
		return seq, nil

	case yaml.AliasNode:
		return fromNode(node.Alias)

	case yaml.ScalarNode:
		return scalarFrom(node)

	default:
		return nil, fmt.Errorf("%w: unsupported node at line %d", ErrInvalidInput, node.Line)
	}
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' or '[' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{', '[':
			return true
		default:
			return false
		}
	}
	return false
}

// scalarFrom resolves plain numbers, booleans and nulls. Timestamps,
// zero-padded numbers and every other scalar keep their source text.
func scalarFrom(node *yaml.Node) (any, error) {
	switch node.ShortTag() {
	case "!!int":
		if hasLeadingZero(node.Value) {
			return node.Value, nil
		}
	case "!!float", "!!bool", "!!null":
	default:
		return node.Value, nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidInput, node.Line, err)
	}
	return v, nil
}

func hasLeadingZero(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0'
}
