package parser

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// YAMLParser reads alias documents in the same shape export writes:
// an aliases mapping whose values are the untagged string-or-sequence form.
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

func (p *YAMLParser) Parse(r io.Reader) ([]ImportedAlias, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Mapping keys carry no order, so sort by name for stable output.
	names := make([]string, 0, len(doc.Aliases))
	for name := range doc.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	aliases := make([]ImportedAlias, 0, len(names))
	for _, name := range names {
		aliases = append(aliases, ImportedAlias{Name: name, Definition: doc.Aliases[name]})
	}
	return aliases, nil
}
