// Package extract turns Python source text into FunctionRecords using tree-sitter.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// ParseError reports source text that is not valid Python.
type ParseError struct {
	Line    int
	Column  int
	Snippet string
}

func (e *ParseError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("invalid python syntax at line %d, column %d", e.Line, e.Column)
	}
	return fmt.Sprintf("invalid python syntax at line %d, column %d: %q", e.Line, e.Column, e.Snippet)
}

// Extractor parses Python source with a fixed grammar.
type Extractor struct {
	language *sitter.Language
}

// New returns an Extractor for the Python grammar.
func New() *Extractor {
	return &Extractor{language: sitter.NewLanguage(python.Language())}
}

// Extract parses source with a fresh Extractor.
func Extract(source []byte) ([]FunctionRecord, error) {
	return New().Extract(source)
}

// Extract parses source and returns one record per function definition, at every nesting
// depth, in pre-order: an enclosing function precedes the functions defined in its body.
func (e *Extractor) Extract(source []byte) ([]FunctionRecord, error) {
	records := []FunctionRecord{}
	source = normalizeNewlines(source)
	if len(bytes.TrimSpace(source)) == 0 {
		return records, nil
	}

	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(e.language); err != nil {
		return nil, fmt.Errorf("load python grammar: %w", err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, &ParseError{Line: 1, Column: 1}
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxError(root, source)
	}
	if bad := legacySyntax(root); bad != nil {
		return nil, parseErrorAt(bad, source)
	}

	walkTree(root, func(n *sitter.Node) bool {
		if n.Kind() == "function_definition" {
			if rec, ok := functionRecord(n, source); ok {
				records = append(records, rec)
			}
		}
		return true
	})
	return records, nil
}

func functionRecord(node *sitter.Node, source []byte) (FunctionRecord, bool) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return FunctionRecord{}, false
	}
	text := strings.TrimRight(nodeText(node, source), " \t\r\n")
	start := int(node.StartPosition().Row) + 1
	rec := FunctionRecord{
		Name:       nodeText(nameNode, source),
		Parameters: positionalParameters(node.ChildByFieldName("parameters"), source),
		Source:     text,
		StartLine:  start,
		EndLine:    start + strings.Count(text, "\n"),
	}
	rec.Docstring, rec.HasDocstring = docstring(node.ChildByFieldName("body"), source)
	return rec, true
}

// positionalParameters mirrors the positional-or-keyword parameter list: names ahead of a
// `/` are positional-only and dropped, and nothing after `*`, `*args` or `**kwargs` counts.
func positionalParameters(params *sitter.Node, source []byte) []string {
	names := []string{}
	if params == nil {
		return names
	}
	for i := uint(0); i < params.NamedChildCount(); i++ {
		child := params.NamedChild(i)
		switch child.Kind() {
		case "identifier":
			names = append(names, nodeText(child, source))
		case "default_parameter", "typed_default_parameter":
			if name := child.ChildByFieldName("name"); name != nil {
				names = append(names, nodeText(name, source))
			}
		case "typed_parameter":
			inner := firstNamedChild(child)
			if inner == nil {
				continue
			}
			if inner.Kind() != "identifier" {
				return names
			}
			names = append(names, nodeText(inner, source))
		case "positional_separator":
			names = names[:0]
		case "keyword_separator", "list_splat_pattern", "dictionary_splat_pattern":
			return names
		}
	}
	return names
}

// docstring returns the leading string literal of a function body.
func docstring(body *sitter.Node, source []byte) (string, bool) {
	if body == nil {
		return "", false
	}
	first := firstNamedChild(body)
	if first == nil || first.Kind() != "expression_statement" {
		return "", false
	}
	if first.NamedChildCount() != 1 {
		return "", false
	}
	lit := first.NamedChild(0)
	var parts []*sitter.Node
	switch lit.Kind() {
	case "string":
		parts = []*sitter.Node{lit}
	case "concatenated_string":
		for i := uint(0); i < lit.NamedChildCount(); i++ {
			if part := lit.NamedChild(i); part.Kind() == "string" {
				parts = append(parts, part)
			}
		}
	default:
		return "", false
	}

	var value strings.Builder
	for _, part := range parts {
		text, ok := stringValue(nodeText(part, source))
		if !ok {
			return "", false
		}
		value.WriteString(text)
	}
	return strings.TrimSpace(cleanDoc(value.String())), true
}

// syntaxError locates the first ERROR or MISSING node in pre-order.
func syntaxError(root *sitter.Node, source []byte) *ParseError {
	var bad *sitter.Node
	walkTree(root, func(n *sitter.Node) bool {
		if bad != nil {
			return false
		}
		if n.IsError() || n.IsMissing() {
			bad = n
			return false
		}
		return n.HasError()
	})
	if bad == nil {
		bad = root
	}
	return parseErrorAt(bad, source)
}

// legacySyntax finds the first construct the grammar accepts but Python 3 rejects:
// Python 2 print and exec statements, tuple parameters, and a required parameter
// following one with a default.
func legacySyntax(root *sitter.Node) *sitter.Node {
	var bad *sitter.Node
	walkTree(root, func(n *sitter.Node) bool {
		if bad != nil {
			return false
		}
		switch n.Kind() {
		case "print_statement", "exec_statement":
			bad = n
		case "parameters", "lambda_parameters":
			bad = misorderedParameter(n)
		}
		return bad == nil
	})
	return bad
}

// misorderedParameter returns the first parameter without a default that follows one with
// a default. Parameters after `*` or `*args` are keyword-only and exempt; `/` is not a reset.
func misorderedParameter(params *sitter.Node) *sitter.Node {
	seenDefault := false
	for i := uint(0); i < params.NamedChildCount(); i++ {
		child := params.NamedChild(i)
		switch child.Kind() {
		case "default_parameter", "typed_default_parameter":
			seenDefault = true
		case "identifier":
			if seenDefault {
				return child
			}
		case "typed_parameter":
			inner := firstNamedChild(child)
			if inner == nil {
				continue
			}
			if inner.Kind() != "identifier" {
				return nil
			}
			if seenDefault {
				return child
			}
		case "tuple_pattern":
			return child
		case "keyword_separator", "list_splat_pattern", "dictionary_splat_pattern":
			return nil
		}
	}
	return nil
}

func parseErrorAt(bad *sitter.Node, source []byte) *ParseError {
	pos := bad.StartPosition()
	snippet := nodeText(bad, source)
	if idx := strings.IndexByte(snippet, '\n'); idx >= 0 {
		snippet = snippet[:idx]
	}
	return &ParseError{
		Line:    int(pos.Row) + 1,
		Column:  int(pos.Column) + 1,
		Snippet: strings.TrimSpace(snippet),
	}
}

// walkTree visits node and its descendants in pre-order. Returning false from visit skips
// the children of the visited node.
func walkTree(node *sitter.Node, visit func(*sitter.Node) bool) {
	if node == nil {
		return
	}
	if !visit(node) {
		return
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		walkTree(node.Child(i), visit)
	}
}

// normalizeNewlines converts CRLF and lone CR line endings to LF.
func normalizeNewlines(source []byte) []byte {
	if bytes.IndexByte(source, '\r') < 0 {
		return source
	}
	source = bytes.ReplaceAll(source, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(source, []byte("\r"), []byte("\n"))
}

func firstNamedChild(node *sitter.Node) *sitter.Node {
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child.Kind() == "comment" {
			continue
		}
		return child
	}
	return nil
}

func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}
