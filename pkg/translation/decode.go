package translation

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeJSON reads a JSON document into a Tree, preserving object key order
// and validating structure in the same pass. The document root must be an
// object; every value must be a string or another object.
func DecodeJSON(r io.Reader) (*Tree, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("translation: parsing JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &InvalidStructureError{Path: "", Type: tokenTypeName(tok)}
	}

	t, err := decodeObject(dec, "")
	if err != nil {
		return nil, err
	}

	// Anything after the closing brace means the input was not a single
	// JSON document.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("translation: trailing data after JSON document")
	}

	return t, nil
}

// decodeObject consumes tokens up to and including the object's closing
// brace. The opening brace has already been read.
func decodeObject(dec *json.Decoder, path string) (*Tree, error) {
	t := NewTree()

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("translation: parsing JSON: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("translation: parsing JSON: object key is not a string")
		}

		child, err := decodeValue(dec, joinPath(path, key))
		if err != nil {
			return nil, err
		}
		t.setChild(key, child)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("translation: parsing JSON: %w", err)
	}

	return t, nil
}

func decodeValue(dec *json.Decoder, path string) (*Tree, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("translation: parsing JSON: %w", err)
	}

	switch v := tok.(type) {
	case string:
		return newLeaf(v), nil
	case json.Delim:
		if v == '{' {
			return decodeObject(dec, path)
		}
		if v == '[' {
			return nil, &InvalidStructureError{Path: path, Type: "Array"}
		}
		return nil, fmt.Errorf("translation: parsing JSON: unexpected %v", v)
	default:
		return nil, &InvalidStructureError{Path: path, Type: tokenTypeName(tok)}
	}
}

func tokenTypeName(tok json.Token) string {
	switch v := tok.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case string:
		return "string"
	case json.Delim:
		if v == '[' {
			return "Array"
		}
		return "object"
	default:
		return "unknown"
	}
}

// DecodeYAML reads a YAML document into a Tree with the same structural
// contract as DecodeJSON: mapping nodes become branches in document order,
// string scalars become leaves, everything else is an InvalidStructureError.
func DecodeYAML(r io.Reader) (*Tree, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("translation: parsing YAML: %w", err)
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, &InvalidStructureError{Path: "", Type: "null"}
		}
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, &InvalidStructureError{Path: "", Type: yamlTypeName(node)}
	}

	return decodeYAMLMapping(node, "")
}

func decodeYAMLMapping(node *yaml.Node, path string) (*Tree, error) {
	t := NewTree()

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		childPath := joinPath(path, keyNode.Value)

		switch {
		case valNode.Kind == yaml.MappingNode:
			child, err := decodeYAMLMapping(valNode, childPath)
			if err != nil {
				return nil, err
			}
			t.setChild(keyNode.Value, child)
		case valNode.Kind == yaml.ScalarNode && valNode.Tag == "!!str":
			t.setChild(keyNode.Value, newLeaf(valNode.Value))
		default:
			return nil, &InvalidStructureError{Path: childPath, Type: yamlTypeName(valNode)}
		}
	}

	return t, nil
}

func yamlTypeName(node *yaml.Node) string {
	switch node.Kind {
	case yaml.SequenceNode:
		return "Array"
	case yaml.MappingNode:
		return "object"
	case yaml.AliasNode:
		return "alias"
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!str":
			return "string"
		case "!!int", "!!float":
			return "number"
		case "!!bool":
			return "boolean"
		case "!!null":
			return "null"
		}
	}
	return "unknown"
}
