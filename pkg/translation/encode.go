package translation

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
)

const indentUnit = "  "

// EncodeJSON writes the tree as a JSON object with children in insertion
// order, two-space indentation, and a trailing newline — the shape emitted
// by common localization tooling, so diffs stay minimal.
func (t *Tree) EncodeJSON(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := t.encode(bw, ""); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}

func (t *Tree) encode(bw *bufio.Writer, indent string) error {
	if t.leaf {
		return writeJSONString(bw, t.value)
	}

	if len(t.keys) == 0 {
		_, err := bw.WriteString("{}")
		return err
	}

	if err := bw.WriteByte('{'); err != nil {
		return err
	}

	inner := indent + indentUnit
	for i, key := range t.keys {
		if i > 0 {
			if err := bw.WriteByte(','); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
		if _, err := bw.WriteString(inner); err != nil {
			return err
		}
		if err := writeJSONString(bw, key); err != nil {
			return err
		}
		if _, err := bw.WriteString(": "); err != nil {
			return err
		}
		if err := t.children[key].encode(bw, inner); err != nil {
			return err
		}
	}

	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	if _, err := bw.WriteString(indent); err != nil {
		return err
	}
	return bw.WriteByte('}')
}

// writeJSONString encodes s with the stdlib encoder to get escaping right.
// HTML escaping is off so values like "a < b" survive round trips verbatim.
func writeJSONString(bw *bufio.Writer, s string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	_, err := bw.Write(bytes.TrimRight(buf.Bytes(), "\n"))
	return err
}
