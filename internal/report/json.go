package report

import (
	"encoding/json"
	"io"
)

// jsonPair is the wire shape for JSON rendering: flatter than Pair, with
// each block's fields promoted under "a"/"b" rather than nested structs
// mirroring the internal CSV layout.
type jsonPair struct {
	ID1      int     `json:"id1"`
	ID2      int     `json:"id2"`
	NGramSim int     `json:"ngramSimilarity"`
	LCSSim   *int    `json:"lcsSimilarity,omitempty"`
	A        jsonLoc `json:"a"`
	B        jsonLoc `json:"b"`
}

type jsonLoc struct {
	FilePath   string `json:"filePath"`
	StartLine  int    `json:"startLine"`
	EndLine    int    `json:"endLine"`
	MethodName string `json:"methodName,omitempty"`
}

// RenderJSON writes pairs as a JSON array to w.
func RenderJSON(pairs []Pair, w io.Writer) error {
	out := make([]jsonPair, len(pairs))
	for i, p := range pairs {
		jp := jsonPair{
			ID1:      p.ID1,
			ID2:      p.ID2,
			NGramSim: p.NGramSim,
			A:        jsonLoc{FilePath: p.Block1.FilePath, StartLine: p.Block1.StartLine, EndLine: p.Block1.EndLine, MethodName: p.Block1.MethodName},
			B:        jsonLoc{FilePath: p.Block2.FilePath, StartLine: p.Block2.StartLine, EndLine: p.Block2.EndLine, MethodName: p.Block2.MethodName},
		}
		if p.HasLCS {
			lcs := p.LCSSim
			jp.LCSSim = &lcs
		}
		out[i] = jp
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
