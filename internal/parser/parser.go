package parser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rkollar/cawa/internal/models"
)

// Format represents the format of an import file
type Format int

const (
	// FormatUnknown represents an unknown or unsupported file format
	FormatUnknown Format = iota
	// FormatMarkdown represents a Markdown (.md, .markdown) runbook
	FormatMarkdown
	// FormatYAML represents a YAML (.yaml, .yml) alias document
	FormatYAML
)

// String returns the string representation of the Format
func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ImportedAlias is one alias extracted from an import file. Entries keep the
// order the parser produced: sorted by name for YAML documents, document
// order for Markdown runbooks.
type ImportedAlias struct {
	Name       string
	Definition models.AliasDefinition
}

// Document is the on-disk YAML shape shared by export and import:
// a single aliases mapping keyed by name.
type Document struct {
	Aliases map[string]models.AliasDefinition `yaml:"aliases"`
}

// Parser is the interface that all import parsers must implement
type Parser interface {
	// Parse reads from an io.Reader and returns the aliases it found
	Parse(r io.Reader) ([]ImportedAlias, error)
}

// DetectFormat automatically detects the import format based on file extension
// Supported extensions:
//   - .md, .markdown -> FormatMarkdown
//   - .yaml, .yml -> FormatYAML
//   - all others -> FormatUnknown
func DetectFormat(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown":
		return FormatMarkdown
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// NewParser creates a new parser instance for the specified format
// Returns an error if the format is unknown or unsupported
func NewParser(format Format) (Parser, error) {
	switch format {
	case FormatMarkdown:
		return NewMarkdownParser(), nil
	case FormatYAML:
		return NewYAMLParser(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %v", format)
	}
}

// ParseFile is a convenience function that auto-detects the format from the
// file extension, opens the file, and parses it. This is the recommended way
// to read import files from disk.
func ParseFile(path string) ([]ImportedAlias, error) {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("unknown file format: %s (supported: .md, .markdown, .yaml, .yml)", path)
	}

	parser, err := NewParser(format)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	aliases, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return aliases, nil
}
