package lang

import (
	"regexp"
)

// kotlinTokenizer is a brace-depth/regex line-scanning fallback: the
// example pack carries no tree-sitter-kotlin binding (the reference
// parser documents the same gap — "setupKotlin removed - no official Go
// bindings available"), so Kotlin functions are located textually instead
// of through an AST. Only brace-bodied functions are recognized;
// single-expression bodies (`fun f() = ...`) are a known limitation.
type kotlinTokenizer struct {
	funcHeader *regexp.Regexp
}

func newKotlinTokenizer() *kotlinTokenizer {
	return &kotlinTokenizer{
		funcHeader: regexp.MustCompile(`(?m)^[ \t]*(?:(?:public|private|protected|internal|open|override|abstract|final|suspend|inline|tailrec|operator|infix|external)\s+)*fun\s+(?:<[^>]*>\s*)?(?:[A-Za-z_][A-Za-z0-9_.<>, ?]*\.)?([A-Za-z_][A-Za-z0-9_]*)\s*\(`),
	}
}

func (k *kotlinTokenizer) ExtractFunctions(content []byte) ([]Function, error) {
	var functions []Function

	locs := k.funcHeader.FindAllSubmatchIndex(content, -1)
	for _, loc := range locs {
		headerEnd := loc[1]
		nameStart, nameEnd := loc[2], loc[3]

		// The header match ends just past the parameter list's '(';
		// start the scan on that paren so its depth is counted.
		bodyStart := findOpeningBrace(content, headerEnd-1)
		if bodyStart < 0 {
			continue // expression-bodied or abstract/interface declaration
		}
		bodyEnd := matchBrace(content, bodyStart)
		if bodyEnd < 0 {
			continue // unbalanced braces, skip rather than guess
		}

		functions = append(functions, Function{
			Name:      string(content[nameStart:nameEnd]),
			StartLine: lineAt(content, loc[0]),
			EndLine:   lineAt(content, bodyEnd),
			Source:    append([]byte(nil), content[loc[0]:bodyEnd+1]...),
		})
	}

	return functions, nil
}

// findOpeningBrace scans forward from a function header for the body's
// opening brace, skipping over the parameter list's own parens and any
// return-type annotation, while respecting string/char literals and
// comments so a stray '{' in a default parameter value or doc comment
// doesn't trip the scan early.
func findOpeningBrace(content []byte, from int) int {
	depth := 0
	i := from
	for i < len(content) {
		c := content[i]
		switch {
		case c == '(':
			depth++
			i++
		case c == ')':
			depth--
			i++
		case c == '{' && depth == 0:
			return i
		case c == '=' && depth == 0:
			return -1 // expression body, not brace-bodied
		case c == '"':
			i = skipStringLiteral(content, i)
		case c == '\'':
			i = skipQuoted(content, i, '\'')
		case c == '/' && i+1 < len(content) && content[i+1] == '/':
			i = skipLineComment(content, i)
		case c == '/' && i+1 < len(content) && content[i+1] == '*':
			i = skipBlockComment(content, i)
		case c == ';' && depth == 0:
			return -1 // abstract/external declaration with no body
		default:
			i++
		}
	}
	return -1
}

// matchBrace returns the index of the brace matching the one at open,
// respecting nested braces, string/char literals, and comments.
func matchBrace(content []byte, open int) int {
	depth := 0
	i := open
	for i < len(content) {
		c := content[i]
		switch {
		case c == '{':
			depth++
			i++
		case c == '}':
			depth--
			if depth == 0 {
				return i
			}
			i++
		case c == '"':
			i = skipStringLiteral(content, i)
		case c == '\'':
			i = skipQuoted(content, i, '\'')
		case c == '/' && i+1 < len(content) && content[i+1] == '/':
			i = skipLineComment(content, i)
		case c == '/' && i+1 < len(content) && content[i+1] == '*':
			i = skipBlockComment(content, i)
		default:
			i++
		}
	}
	return -1
}

func skipStringLiteral(content []byte, at int) int {
	i := at + 1
	for i < len(content) {
		if content[i] == '\\' {
			i += 2
			continue
		}
		if content[i] == '"' {
			return i + 1
		}
		i++
	}
	return i
}

func skipLineComment(content []byte, at int) int {
	i := at
	for i < len(content) && content[i] != '\n' {
		i++
	}
	return i
}

func skipBlockComment(content []byte, at int) int {
	i := at + 2
	for i+1 < len(content) {
		if content[i] == '*' && content[i+1] == '/' {
			return i + 2
		}
		i++
	}
	return len(content)
}

func lineAt(content []byte, offset int) int {
	line := 1
	for i := 0; i < offset && i < len(content); i++ {
		if content[i] == '\n' {
			line++
		}
	}
	return line
}
