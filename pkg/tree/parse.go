package tree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ParseFunc decodes raw file content into a node.
type ParseFunc func(data []byte) (*Node, error)

// Literal creates a text leaf that holds a JSON scalar literal
// (number, boolean or null). It reads like a string node but is encoded
// back to JSON unquoted.
func Literal(text string) *Node {
	return &Node{kind: KindString, text: text, literal: true}
}

// ParseJSON decodes a single JSON value.
func ParseJSON(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSyntax, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrSyntax)
	}
	return FromValue(v)
}

// ParseYAML decodes a single YAML document.
func ParseYAML(data []byte) (*Node, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSyntax, err)
	}
	return FromValue(v)
}

// FromValue converts a generically decoded value (as produced by
// encoding/json or yaml.v3) into a node.
func FromValue(v any) (*Node, error) {
	switch val := v.(type) {
	case nil:
		return Literal("null"), nil
	case string:
		return String(val), nil
	case json.Number:
		return Literal(val.String()), nil
	case bool:
		return Literal(strconv.FormatBool(val)), nil
	case int:
		return Literal(strconv.Itoa(val)), nil
	case int64:
		return Literal(strconv.FormatInt(val, 10)), nil
	case uint64:
		return Literal(strconv.FormatUint(val, 10)), nil
	case float64:
		return Literal(strconv.FormatFloat(val, 'f', -1, 64)), nil
	case []any:
		items := make([]*Node, 0, len(val))
		for i, item := range val {
			child, err := FromValue(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			items = append(items, child)
		}
		return &Node{kind: KindArray, items: items}, nil
	case map[string]any:
		obj := Object()
		for name, item := range val {
			child, err := FromValue(item)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", name, err)
			}
			obj.fields[name] = child
		}
		return obj, nil
	case map[any]any:
		obj := Object()
		for name, item := range val {
			child, err := FromValue(item)
			if err != nil {
				return nil, fmt.Errorf("key %v: %w", name, err)
			}
			obj.fields[fmt.Sprint(name)] = child
		}
		return obj, nil
	default:
		return String(fmt.Sprint(val)), nil
	}
}

// MarshalJSON encodes n as compact JSON with object keys sorted.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String renders n as text: the raw text for string leaves and compact JSON
// for containers.
func (n *Node) String() string {
	if n.Kind() == KindString {
		return n.text
	}
	data, err := n.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(data)
}

func (n *Node) encode(buf *bytes.Buffer) error {
	switch n.Kind() {
	case KindString:
		if n.literal {
			buf.WriteString(n.text)
			return nil
		}
		return encodeString(buf, n.text)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range n.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case KindObject:
		buf.WriteByte('{')
		for i, name := range n.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeString(buf, name); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := n.fields[name].encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	default:
		buf.WriteString("null")
		return nil
	}
}

func encodeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}
