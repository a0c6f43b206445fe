package navtree

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/krds/internal/errors"
)

// Parse decodes a navigation tree from YAML. JSON input is accepted as well
// since it is valid YAML. Labels and hrefs are NFC-normalised so that
// decomposed Hangul matches composed hrefs typed elsewhere.
func Parse(data []byte) (*Tree, error) {
	var t Tree
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, errors.NewIOError(errors.ErrCodeDecode, "cannot decode navigation tree", err)
	}

	normalize(&t)

	return &t, nil
}

// LoadFile reads and decodes the navigation file at path.
func LoadFile(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIOError(errors.ErrCodeFileRead, "cannot read navigation file", err).
			WithFile(path)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// Marshal encodes t as YAML.
func Marshal(t *Tree) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return nil, errors.NewInternalError(errors.ErrCodeDecode, "cannot encode navigation tree", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func normalize(t *Tree) {
	t.Title = norm.NFC.String(t.Title)
	t.Href = norm.NFC.String(t.Href)
	Walk(t, func(_ Path, n *Node) bool {
		n.Label = norm.NFC.String(n.Label)
		n.Href = norm.NFC.String(n.Href)
		return true
	})
}
