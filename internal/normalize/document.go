package normalize

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/glamberson/occfix/pkg/occfix"
)

const encodeIndent = 2

// Document is a parsed structure definition. It keeps the yaml.v3 node
// tree so that key order, quoting and comments survive a round trip.
type Document struct {
	root *yaml.Node // DocumentNode wrapping a MappingNode
}

// Parse parses text as a single YAML document whose root is a mapping
// with unique keys. Leading directive lines are ignored.
func Parse(text string) (*Document, error) {
	dec := yaml.NewDecoder(strings.NewReader(stripDirectives(text)))

	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", occfix.ErrInvalidDocument)
		}
		return nil, err
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: line %d: multiple documents in one file", occfix.ErrInvalidDocument, extra.Line)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", occfix.ErrInvalidDocument)
	}
	body := root.Content[0]
	if body.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: top level is not a mapping", occfix.ErrInvalidDocument, body.Line)
	}

	seen := make(map[string]bool, len(body.Content)/2)
	for i := 0; i+1 < len(body.Content); i += 2 {
		key := body.Content[i]
		if seen[key.Value] {
			return nil, fmt.Errorf("%w: line %d: duplicate key %q", occfix.ErrInvalidDocument, key.Line, key.Value)
		}
		seen[key.Value] = true
	}

	return &Document{root: &root}, nil
}

func (d *Document) body() *yaml.Node {
	return d.root.Content[0]
}

// Keys returns the top-level keys in document order.
func (d *Document) Keys() []string {
	body := d.body()
	keys := make([]string, 0, len(body.Content)/2)
	for i := 0; i+1 < len(body.Content); i += 2 {
		keys = append(keys, body.Content[i].Value)
	}
	return keys
}

// Get returns the value node stored under a top-level key.
func (d *Document) Get(key string) (*yaml.Node, bool) {
	body := d.body()
	for i := 0; i+1 < len(body.Content); i += 2 {
		if body.Content[i].Value == key {
			return body.Content[i+1], true
		}
	}
	return nil, false
}

// Specification returns the decoded specification entries, or nil when the
// key is absent or is not a list of strings.
func (d *Document) Specification() []string {
	node, ok := d.Get(specificationKey)
	if !ok || node.Kind != yaml.SequenceNode {
		return nil
	}
	var entries []string
	if err := node.Decode(&entries); err != nil {
		return nil
	}
	return entries
}

// FlattenSpecification collapses the description (the second entry of a
// specification list with more than one entry) into a single line. It
// reports whether the entry was rewritten.
func (d *Document) FlattenSpecification() (bool, error) {
	node, ok := d.Get(specificationKey)
	if !ok || node.Kind != yaml.SequenceNode || len(node.Content) < 2 {
		return false, nil
	}

	desc := node.Content[1]
	if desc.Kind != yaml.ScalarNode || desc.ShortTag() != "!!str" {
		return false, fmt.Errorf("%w: line %d: specification description is not text",
			occfix.ErrInvalidDocument, desc.Line)
	}

	flat := FlattenText(desc.Value)
	changed := flat != desc.Value || desc.Style&(yaml.LiteralStyle|yaml.FoldedStyle) != 0
	desc.Value = flat
	desc.Style = 0
	return changed, nil
}

// Encode serializes the document in block style between the %YAML 1.2
// header and the document end marker.
func (d *Document) Encode() ([]byte, error) {
	clearFlowStyle(d.root)

	var buf bytes.Buffer
	buf.WriteString(occfix.YAMLDirective + "\n" + occfix.DocumentStart + "\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(encodeIndent)
	if err := enc.Encode(d.root); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	buf.WriteString(occfix.DocumentEnd + "\n")
	return buf.Bytes(), nil
}

func clearFlowStyle(n *yaml.Node) {
	n.Style &^= yaml.FlowStyle
	for _, child := range n.Content {
		clearFlowStyle(child)
	}
}

// Normalize runs the full pipeline on one file's text: Patch, Parse,
// FlattenSpecification and Encode.
func Normalize(text string) ([]byte, error) {
	doc, err := Parse(Patch(text))
	if err != nil {
		return nil, err
	}
	if _, err := doc.FlattenSpecification(); err != nil {
		return nil, err
	}
	return doc.Encode()
}
