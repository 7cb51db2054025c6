package lang

import (
	"github.com/standardbeagle/clonedetect/internal/config"
	"github.com/standardbeagle/clonedetect/internal/hashutil"
	"github.com/standardbeagle/clonedetect/internal/types"
)

// Normalize implements the token normalizer: it drops whitespace and
// comments, splits a lexer-aggregated run at letter/digit-vs-punctuation
// boundaries (so "foo(bar)" yields "foo", "(", "bar", ")"), and returns
// the stable 32-bit hash of each surviving token in source order.
//
// This operates directly on source bytes rather than a language-specific
// lexer's token stream: the Tokenizer variants already narrowed content
// down to one function's extent, and the only two things normalization
// needs from the language are "what starts a comment" and "what delimits
// a string literal", both supplied by commentStyle below.
func Normalize(source []byte, language config.Language) []types.TokenHash {
	style := commentStyle(language)
	var hashes []types.TokenHash

	i := 0
	n := len(source)
	for i < n {
		c := source[i]

		switch {
		case isSpace(c):
			i++

		case style.hasLineComment(source, i):
			for i < n && source[i] != '\n' {
				i++
			}

		case style.hasBlockComment(source, i):
			i += 2
			for i+1 < n && !(source[i] == '*' && source[i+1] == '/') {
				i++
			}
			i += 2
			if i > n {
				i = n
			}

		case c == '"' || c == '\'':
			start := i
			i = skipQuoted(source, i, c)
			hashes = append(hashes, hashutil.TokenHash(string(source[start:i])))

		case isIdentStart(c):
			start := i
			for i < n && isIdentPart(source[i]) {
				i++
			}
			hashes = append(hashes, hashutil.TokenHash(string(source[start:i])))

		case isDigit(c):
			start := i
			for i < n && (isDigit(source[i]) || source[i] == '.' || isIdentPart(source[i])) {
				i++
			}
			hashes = append(hashes, hashutil.TokenHash(string(source[start:i])))

		default:
			// A single punctuation/operator byte becomes its own token,
			// matching the "split at boundaries" rule literally: no
			// multi-char operator coalescing, since clone detection cares
			// about structural shape, not precise lexical grouping.
			hashes = append(hashes, hashutil.TokenHash(string(source[i:i+1])))
			i++
		}
	}

	return hashes
}

type commentRules struct {
	hasLineComment  func(s []byte, i int) bool
	hasBlockComment func(s []byte, i int) bool
}

func commentStyle(language config.Language) commentRules {
	switch language {
	case config.LanguagePython:
		return commentRules{
			hasLineComment: func(s []byte, i int) bool { return s[i] == '#' },
			hasBlockComment: func(s []byte, i int) bool {
				return false // Python has no block comments; triple-quoted strings are handled as quoted tokens
			},
		}
	default: // Java, C, C++, C#, Kotlin: C-family comment syntax
		return commentRules{
			hasLineComment: func(s []byte, i int) bool {
				return s[i] == '/' && i+1 < len(s) && s[i+1] == '/'
			},
			hasBlockComment: func(s []byte, i int) bool {
				return s[i] == '/' && i+1 < len(s) && s[i+1] == '*'
			},
		}
	}
}

func skipQuoted(s []byte, i int, quote byte) int {
	n := len(s)
	i++ // opening quote
	for i < n {
		if s[i] == '\\' && i+1 < n {
			i += 2
			continue
		}
		if s[i] == quote {
			return i + 1
		}
		i++
	}
	return n
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
