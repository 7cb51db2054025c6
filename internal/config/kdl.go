package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// loadKDL parses a ".clonedetect.kdl" document, layering its values over
// base (already populated with defaults). Relative root paths resolve
// against the directory containing the config file, matching the reference
// indexer's own KDL loader.
func loadKDL(path string, base *Config) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := kdl.Parse(strings.NewReader(string(content)))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg := *base
	configDir := filepath.Dir(path)

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "root":
			if s, ok := firstStringArg(n); ok {
				if filepath.IsAbs(s) {
					cfg.Root = s
				} else {
					cfg.Root = filepath.Join(configDir, s)
				}
			}
		case "language":
			if s, ok := firstStringArg(n); ok {
				cfg.Language = Language(s)
			}
		case "min-line", "min_line":
			if v, ok := firstIntArg(n); ok {
				cfg.MinLine = v
			}
		case "min-token", "min_token":
			if v, ok := firstIntArg(n); ok {
				cfg.MinToken = v
			}
		case "n-gram", "n":
			if v, ok := firstIntArg(n); ok {
				cfg.N = v
			}
		case "partition-count", "partition_count":
			if v, ok := firstIntArg(n); ok {
				cfg.PartitionCount = v
			}
		case "filtration-threshold", "filtration_threshold":
			if v, ok := firstIntArg(n); ok {
				cfg.FiltrationThreshold = v
			}
		case "verification-threshold", "verification_threshold":
			if v, ok := firstIntArg(n); ok {
				cfg.VerificationThreshold = v
			}
		case "threads":
			if v, ok := firstIntArg(n); ok {
				cfg.Threads = v
			}
		case "pairs-out", "pairs_out":
			if s, ok := firstStringArg(n); ok {
				cfg.PairsOut = s
			}
		case "blocks-out", "blocks_out":
			if s, ok := firstStringArg(n); ok {
				cfg.BlocksOut = s
			}
		case "format":
			if s, ok := firstStringArg(n); ok {
				cfg.Format = s
			}
		case "include":
			cfg.Include = append(cfg.Include, collectStringArgs(n)...)
		case "exclude":
			cfg.Exclude = append(cfg.Exclude, collectStringArgs(n)...)
		}
	}

	return &cfg, nil
}

// Helper functions over the kdl-go document model, adapted from the
// reference indexer's own KDL helpers.
func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func collectStringArgs(n *document.Node) []string {
	if n == nil {
		return nil
	}
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 && len(n.Children) > 0 {
		out = make([]string, 0, len(n.Children))
		for _, child := range n.Children {
			if s, ok := firstStringArg(child); ok {
				out = append(out, s)
			} else if child.Name != nil {
				if s, ok := child.Name.Value.(string); ok {
					out = append(out, s)
				}
			}
		}
	}
	return out
}
