package lang

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/clonedetect/internal/config"
)

// treeSitterCase exercises one grammar end to end: build the tokenizer
// from its grammarSpec, parse a real snippet, and check the function
// node and its name capture were extracted correctly.
type treeSitterCase struct {
	name      string
	spec      grammarSpec
	source    string
	fnName    string
	startLine int
	endLine   int
}

func treeSitterCases() []treeSitterCase {
	return []treeSitterCase{
		{
			name: "java",
			spec: javaGrammar(),
			source: "class Calculator {\n" +
				"    int add(int a, int b) {\n" +
				"        return a + b;\n" +
				"    }\n" +
				"}\n",
			fnName:    "add",
			startLine: 2,
			endLine:   4,
		},
		{
			name: "cpp",
			spec: cppGrammar(),
			source: "int add(int a, int b) {\n" +
				"    return a + b;\n" +
				"}\n",
			fnName:    "add",
			startLine: 1,
			endLine:   3,
		},
		{
			name: "c",
			spec: cGrammar(),
			source: "int add(int a, int b) {\n" +
				"    return a + b;\n" +
				"}\n",
			fnName:    "add",
			startLine: 1,
			endLine:   3,
		},
		{
			name: "csharp",
			spec: csharpGrammar(),
			source: "class Calculator {\n" +
				"    int Add(int a, int b) {\n" +
				"        return a + b;\n" +
				"    }\n" +
				"}\n",
			fnName:    "Add",
			startLine: 2,
			endLine:   4,
		},
		{
			name: "python",
			spec: pythonGrammar(),
			source: "def add(a, b):\n" +
				"    return a + b\n",
			fnName:    "add",
			startLine: 1,
			endLine:   2,
		},
	}
}

func TestTreeSitterTokenizersExtractFunctionNodes(t *testing.T) {
	for _, tc := range treeSitterCases() {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tok, err := newTreeSitterTokenizer(tc.spec)
			require.NoError(t, err)

			functions, err := tok.ExtractFunctions([]byte(tc.source))
			require.NoError(t, err)
			require.Len(t, functions, 1)

			fn := functions[0]
			require.Equal(t, tc.fnName, fn.Name)
			require.Equal(t, tc.startLine, fn.StartLine)
			require.Equal(t, tc.endLine, fn.EndLine)
			require.Contains(t, string(fn.Source), "return a + b")
		})
	}
}

func TestTreeSitterTokenizersExtractMultipleFunctions(t *testing.T) {
	src := "def first():\n" +
		"    return 1\n" +
		"\n" +
		"def second():\n" +
		"    return 2\n"

	tok, err := newTreeSitterTokenizer(pythonGrammar())
	require.NoError(t, err)

	functions, err := tok.ExtractFunctions([]byte(src))
	require.NoError(t, err)
	require.Len(t, functions, 2)
	require.Equal(t, "first", functions[0].Name)
	require.Equal(t, "second", functions[1].Name)
}

func TestNewWiresTreeSitterTokenizersForEachGrammarLanguage(t *testing.T) {
	for lang, want := range map[config.Language]string{
		config.LanguageJava:   "java",
		config.LanguageCPP:    "cpp",
		config.LanguageC:      "c",
		config.LanguageCSharp: "csharp",
		config.LanguagePython: "python",
	} {
		tok, err := New(lang)
		require.NoError(t, err)
		tst, ok := tok.(*treeSitterTokenizer)
		require.True(t, ok)
		require.Equal(t, want, tst.spec.name)
	}
}
