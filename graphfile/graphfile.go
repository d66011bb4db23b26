// SPDX-License-Identifier: MIT
// File: graphfile.go
// Role: Document type, codecs, and replay onto core.Graph.

package graphfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bimatch/core"
)

// Format names a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var (
	// ErrUnknownFormat is returned for extensions other than .yaml/.yml/.json.
	ErrUnknownFormat = errors.New("graphfile: unknown format")
	// ErrMalformedEdge is returned for an edge entry that does not name two endpoints.
	ErrMalformedEdge = errors.New("graphfile: malformed edge")
)

// Document is the on-disk form of a graph.
type Document struct {
	Nodes []core.Node `json:"nodes" yaml:"nodes"`
	Edges [][]string  `json:"edges" yaml:"edges"`
	// Matched optionally lists edges to flag HighlightMatched after loading.
	Matched [][]string `json:"matched,omitempty" yaml:"matched,omitempty"`
}

// FormatOf maps a path's extension to a Format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load opens path and decodes it according to its extension.
func Load(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %s: %w", path, err)
	}

	return doc, nil
}

// Decode reads one document. Unknown fields are rejected.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := doc.check(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Encode writes doc in the given format.
func Encode(w io.Writer, format Format, doc *Document) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// FromSnapshot converts a snapshot into a document, keeping insertion order.
func FromSnapshot(s *core.Snapshot) *Document {
	doc := &Document{
		Nodes: append([]core.Node(nil), s.Nodes...),
		Edges: make([][]string, 0, len(s.Edges)),
	}
	for _, e := range s.Edges {
		doc.Edges = append(doc.Edges, []string{e.U, e.V})
		if e.Highlight == core.HighlightMatched {
			doc.Matched = append(doc.Matched, []string{e.U, e.V})
		}
	}

	return doc
}

// Apply replays doc onto g: nodes in order, then edges, then matched flags.
//
// Implementation:
//   - Stage 1: Replay on g.Clone(); the first rejection is returned and g is untouched.
//   - Stage 2: Replay on g itself.
//
// Stage 2 can only fail if g is mutated concurrently between the stages.
func Apply(doc *Document, g *core.Graph) error {
	if err := doc.check(); err != nil {
		return err
	}
	if err := replay(doc, g.Clone()); err != nil {
		return err
	}

	return replay(doc, g)
}

func replay(doc *Document, g *core.Graph) error {
	for i, n := range doc.Nodes {
		if err := g.AddNode(n.ID, n.Partition); err != nil {
			return fmt.Errorf("graphfile: node #%d: %w", i, err)
		}
	}
	for i, e := range doc.Edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return fmt.Errorf("graphfile: edge #%d (%s,%s): %w", i, e[0], e[1], err)
		}
	}
	if len(doc.Matched) == 0 {
		return nil
	}

	return g.Update(func(tx *core.Tx) error {
		for i, e := range doc.Matched {
			if err := tx.SetHighlight(e[0], e[1], core.HighlightMatched); err != nil {
				return fmt.Errorf("graphfile: matched #%d (%s,%s): %w", i, e[0], e[1], err)
			}
		}
		return nil
	})
}

// check validates edge arity; node and edge semantics are left to core.
func (d *Document) check() error {
	for _, list := range [2][][]string{d.Edges, d.Matched} {
		for i, e := range list {
			if len(e) != 2 {
				return fmt.Errorf("%w: entry #%d has %d endpoints", ErrMalformedEdge, i, len(e))
			}
		}
	}

	return nil
}
