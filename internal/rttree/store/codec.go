// SPDX-License-Identifier: MPL-2.0

package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/rtshell/rtshell/pkg/cueutil"
)

const (
	// FormatCUE is a CUE snapshot (.cue).
	FormatCUE Format = "cue"
	// FormatTOML is a TOML snapshot (.toml).
	FormatTOML Format = "toml"
	// FormatYAML is a YAML snapshot (.yaml, .yml).
	FormatYAML Format = "yaml"
	// FormatJSON is a JSON snapshot (.json).
	FormatJSON Format = "json"

	schemaDefinition = "#Namespace"
)

// ErrUnsupportedFormat is returned for a snapshot file with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported snapshot format")

//go:embed namespace_schema.cue
var namespaceSchema []byte

// Format is a snapshot encoding.
type Format string

// FormatFor picks the format from the extension of path.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue":
		return FormatCUE, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Decode parses data in the given format and validates it against the
// namespace schema. filename is used in error messages.
func Decode(data []byte, format Format, filename string) (*Document, error) {
	switch format {
	case FormatCUE, FormatJSON:
		// JSON is valid CUE.
		return validate(data, filename)
	case FormatTOML:
		var doc Document
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		return revalidate(&doc, filename)
	case FormatYAML:
		var doc Document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		return revalidate(&doc, filename)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Encode renders doc in the given format.
func Encode(doc *Document, format Format) ([]byte, error) {
	doc = normalize(doc)
	switch format {
	case FormatCUE:
		src, err := cueutil.Encode(doc)
		if err != nil {
			return nil, err
		}
		return append([]byte("// rtsh namespace snapshot\n"), src...), nil
	case FormatTOML:
		var buf bytes.Buffer
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode TOML: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode YAML: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode JSON: %w", err)
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func validate(data []byte, filename string) (*Document, error) {
	res, err := cueutil.ParseAndDecode[Document](namespaceSchema, data, schemaDefinition,
		cueutil.WithFilename(filename))
	if err != nil {
		return nil, err
	}
	return normalize(res.Value), nil
}

// revalidate checks a document decoded by another codec against the schema.
func revalidate(doc *Document, filename string) (*Document, error) {
	data, err := json.Marshal(normalize(doc))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return validate(data, filename)
}

func normalize(doc *Document) *Document {
	if doc == nil {
		return &Document{Servers: []ServerDoc{}}
	}
	if doc.Servers == nil {
		doc.Servers = []ServerDoc{}
	}
	return doc
}
