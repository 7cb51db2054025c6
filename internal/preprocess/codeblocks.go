package preprocess

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/standardbeagle/clonedetect/internal/types"
)

// writeCodeBlock appends one code-blocks line, index-aligned to the
// TokenSequence's dense id by write order: `filePath,startLine,endLine`
// plus the optional method/commit/hash trailer when any of it is known.
func writeCodeBlock(w *bufio.Writer, b types.CodeBlock) error {
	var sb strings.Builder
	sb.WriteString(csvEscape(b.FilePath))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(b.StartLine))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(b.EndLine))

	if b.HasMetadata() {
		sb.WriteByte(',')
		sb.WriteString(csvEscape(b.MethodName))
		sb.WriteByte(',')
		sb.WriteString(csvEscape(b.ReturnType))
		sb.WriteByte(',')
		sb.WriteString(csvEscape(b.ParamList))
		sb.WriteByte(',')
		sb.WriteString(csvEscape(b.CommitHash))
		sb.WriteByte(',')
		sb.WriteString(csvEscape(b.TokenHash))
	}
	sb.WriteByte('\n')

	_, err := w.WriteString(sb.String())
	return err
}

// csvEscape quotes a field when it contains a comma, quote, or newline,
// doubling any embedded quotes per RFC 4180.
func csvEscape(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
