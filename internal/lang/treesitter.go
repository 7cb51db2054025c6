package lang

import (
	"fmt"
	"sync"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_csharp "github.com/tree-sitter/tree-sitter-c-sharp/bindings/go"
	tree_sitter_cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// grammarSpec names the node kinds one tree-sitter grammar treats as a
// "function" for this detector's purposes, matching the approach of the
// reference parser's per-language setup functions: one query string per
// grammar, with a `@function` capture for the whole node and a
// `@function.name` capture for its identifier.
type grammarSpec struct {
	name     string
	language func() *tree_sitter.Language
	query    string
}

func javaGrammar() grammarSpec {
	return grammarSpec{
		name:     "java",
		language: func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_java.Language()) },
		query: `
			(method_declaration name: (identifier) @function.name) @function
			(constructor_declaration name: (identifier) @function.name) @function
		`,
	}
}

func cppGrammar() grammarSpec {
	return grammarSpec{
		name:     "cpp",
		language: func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_cpp.Language()) },
		query: `
			(function_definition declarator: (function_declarator declarator: (identifier) @function.name)) @function
			(function_definition declarator: (function_declarator declarator: (field_identifier) @function.name)) @function
		`,
	}
}

// cGrammar reuses the C++ grammar restricted to function_definition: the
// example pack carries no dedicated C binding, and the C++ grammar parses
// plain C function bodies without complaint (the reference parser makes
// the same substitution for its own ".c"/".h" extensions).
func cGrammar() grammarSpec {
	g := cppGrammar()
	g.name = "c"
	return g
}

func csharpGrammar() grammarSpec {
	return grammarSpec{
		name:     "csharp",
		language: func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_csharp.Language()) },
		query: `
			(method_declaration name: (identifier) @function.name) @function
			(constructor_declaration name: (identifier) @function.name) @function
		`,
	}
}

func pythonGrammar() grammarSpec {
	return grammarSpec{
		name:     "python",
		language: func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_python.Language()) },
		query: `
			(function_definition name: (identifier) @function.name) @function
		`,
	}
}

// treeSitterTokenizer implements Tokenizer for one grammar. A parser and
// query are expensive to build (CGO allocations), so one instance is
// created per configured run and reused across files; per-file calls take
// a mutex since tree-sitter parsers are not safe for concurrent Parse.
type treeSitterTokenizer struct {
	spec   grammarSpec
	mu     sync.Mutex
	parser *tree_sitter.Parser
	query  *tree_sitter.Query
}

func newTreeSitterTokenizer(spec grammarSpec) (*treeSitterTokenizer, error) {
	language := spec.language()
	parser := tree_sitter.NewParser()
	if err := parser.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("lang: set %s language: %w", spec.name, err)
	}
	query, _ := tree_sitter.NewQuery(language, spec.query)
	if query == nil {
		return nil, fmt.Errorf("lang: build %s query: query creation returned nil", spec.name)
	}
	return &treeSitterTokenizer{spec: spec, parser: parser, query: query}, nil
}

func (t *treeSitterTokenizer) ExtractFunctions(content []byte) (functions []Function, err error) {
	defer func() {
		if r := recover(); r != nil {
			functions, err = nil, fmt.Errorf("lang: %s parser panicked: %v", t.spec.name, r)
		}
	}()

	t.mu.Lock()
	defer t.mu.Unlock()

	// tree-sitter's C library mutates its input buffer; give it a private copy.
	buf := make([]byte, len(content))
	copy(buf, content)

	tree := t.parser.Parse(buf, nil)
	if tree == nil {
		return nil, fmt.Errorf("lang: %s parse returned no tree", t.spec.name)
	}
	defer tree.Close()

	cursor := tree_sitter.NewQueryCursor()
	defer cursor.Close()

	names := t.query.CaptureNames()
	matches := cursor.Matches(t.query, tree.RootNode(), buf)
	for {
		match := matches.Next()
		if match == nil {
			break
		}

		var funcNode *tree_sitter.Node
		var nameNode *tree_sitter.Node
		for _, c := range match.Captures {
			node := c.Node
			switch names[c.Index] {
			case "function":
				funcNode = &node
			case "function.name":
				nameNode = &node
			}
		}
		if funcNode == nil {
			continue
		}

		fn := Function{
			StartLine: int(funcNode.StartPosition().Row) + 1,
			EndLine:   int(funcNode.EndPosition().Row) + 1,
			Source:    append([]byte(nil), buf[funcNode.StartByte():funcNode.EndByte()]...),
		}
		if nameNode != nil {
			fn.Name = string(buf[nameNode.StartByte():nameNode.EndByte()])
		}
		functions = append(functions, fn)
	}

	return functions, nil
}
