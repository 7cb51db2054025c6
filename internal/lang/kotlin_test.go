package lang

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKotlinTokenizerExtractsBraceBodiedFunction(t *testing.T) {
	src := []byte("fun add(a: Int, b: Int): Int {\n    return a + b\n}\n")
	tok := newKotlinTokenizer()

	functions, err := tok.ExtractFunctions(src)
	require.NoError(t, err)
	require.Len(t, functions, 1)
	require.Equal(t, "add", functions[0].Name)
	require.Equal(t, 1, functions[0].StartLine)
	require.Equal(t, 3, functions[0].EndLine)
}

func TestKotlinTokenizerSkipsExpressionBody(t *testing.T) {
	src := []byte("fun square(x: Int): Int = x * x\n")
	tok := newKotlinTokenizer()

	functions, err := tok.ExtractFunctions(src)
	require.NoError(t, err)
	require.Empty(t, functions, "expression-bodied functions are a known limitation")
}

func TestKotlinTokenizerSkipsAbstractDeclaration(t *testing.T) {
	src := []byte("abstract class Shape {\n    abstract fun area(): Double\n}\n")
	tok := newKotlinTokenizer()

	functions, err := tok.ExtractFunctions(src)
	require.NoError(t, err)
	require.Empty(t, functions)
}

func TestKotlinTokenizerHandlesModifiersAndExtensionReceiver(t *testing.T) {
	src := []byte("private suspend fun String.trimmedLength(): Int {\n    return this.trim().length\n}\n")
	tok := newKotlinTokenizer()

	functions, err := tok.ExtractFunctions(src)
	require.NoError(t, err)
	require.Len(t, functions, 1)
	require.Equal(t, "trimmedLength", functions[0].Name)
}

func TestKotlinTokenizerIgnoresBraceInsideStringLiteral(t *testing.T) {
	src := []byte("fun greet(): String {\n    return \"{not a brace}\"\n}\n")
	tok := newKotlinTokenizer()

	functions, err := tok.ExtractFunctions(src)
	require.NoError(t, err)
	require.Len(t, functions, 1)
	require.Equal(t, 3, functions[0].EndLine)
}

func TestKotlinTokenizerMultipleFunctions(t *testing.T) {
	src := []byte("fun a() {\n    return\n}\n\nfun b() {\n    return\n}\n")
	tok := newKotlinTokenizer()

	functions, err := tok.ExtractFunctions(src)
	require.NoError(t, err)
	require.Len(t, functions, 2)
	require.Equal(t, "a", functions[0].Name)
	require.Equal(t, "b", functions[1].Name)
}
