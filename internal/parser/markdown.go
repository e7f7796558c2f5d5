package parser

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/rkollar/cawa/internal/models"
)

// MarkdownParser extracts aliases from a runbook: every fenced sh/bash/shell
// code block becomes one alias named after the nearest preceding heading.
type MarkdownParser struct {
	markdown goldmark.Markdown
}

func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{
		markdown: goldmark.New(),
	}
}

// shellFenceLanguages are the fence info strings treated as runnable blocks.
// Anything else (python, json, unlabeled fences) is documentation.
var shellFenceLanguages = map[string]bool{
	"sh":    true,
	"bash":  true,
	"shell": true,
}

func (p *MarkdownParser) Parse(r io.Reader) ([]ImportedAlias, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	doc := p.markdown.Parser().Parse(text.NewReader(source))

	var aliases []ImportedAlias
	used := make(map[string]bool)
	currentHeading := ""
	blockIndex := 0

	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			currentHeading = extractText(node, source)
		case *ast.FencedCodeBlock:
			if !shellFenceLanguages[string(node.Language(source))] {
				return ast.WalkContinue, nil
			}
			blockIndex++

			command := joinBlockLines(node, source)
			if command == "" {
				return ast.WalkContinue, nil
			}

			name := slugify(currentHeading)
			if name == "" {
				name = fmt.Sprintf("block-%d", blockIndex)
			}

			aliases = append(aliases, ImportedAlias{
				Name:       uniqueName(name, used),
				Definition: models.NewSingle(command),
			})
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	return aliases, nil
}

// joinBlockLines collapses a code block into one command line. Blank lines
// and comment lines are dropped, the rest are chained with &&.
func joinBlockLines(block *ast.FencedCodeBlock, source []byte) string {
	var commands []string
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		line := strings.TrimSpace(string(segment.Value(source)))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		commands = append(commands, line)
	}
	return strings.Join(commands, " && ")
}

// extractText extracts plain text from an AST node
func extractText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if text, ok := c.(*ast.Text); ok {
			buf.Write(text.Segment.Value(source))
		}
	}
	return buf.String()
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// slugify turns a heading into an alias name: lowercase, runs of anything
// outside [a-z0-9] become a single dash.
func slugify(heading string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(heading), "-")
	return strings.Trim(slug, "-")
}

// uniqueName suffixes -2, -3, ... when several blocks share a heading.
func uniqueName(base string, used map[string]bool) string {
	name := base
	for n := 2; used[name]; n++ {
		name = fmt.Sprintf("%s-%d", base, n)
	}
	used[name] = true
	return name
}
