package config

import (
	"fmt"
	"log"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// parseKDL reads a .lexmatch.kdl document on top of Default()
func parseKDL(content string) (*Config, error) {
	cfg := Default()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse KDL config: %w", err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "version":
			if v, ok := firstIntArg(n); ok {
				cfg.Version = v
			}
		case "matching":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "strategies":
					cfg.Matching.Strategies = collectStringArgs(cn)
				case "workers":
					if v, ok := firstIntArg(cn); ok {
						cfg.Matching.Workers = v
					}
				}
			}
		case "stemming":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "enabled":
					if v, ok := firstBoolArg(cn); ok {
						cfg.Stemming.Enabled = v
					}
				case "min_length":
					if v, ok := firstIntArg(cn); ok {
						cfg.Stemming.MinLength = v
					}
				case "exclusions":
					cfg.Stemming.Exclusions = collectStringArgs(cn)
				}
			}
		case "cache":
			for _, cn := range n.Children {
				if nodeName(cn) == "size" {
					if v, ok := firstIntArg(cn); ok {
						cfg.Cache.Size = v
					}
				}
			}
		case "fixtures":
			for _, cn := range n.Children {
				switch nodeName(cn) {
				case "include":
					cfg.Fixtures.Include = append(cfg.Fixtures.Include, collectStringArgs(cn)...)
				case "exclude":
					cfg.Fixtures.Exclude = append(cfg.Fixtures.Exclude, collectStringArgs(cn)...)
				}
			}
		default:
			log.Printf("WARNING: unknown section '%s' in KDL config", nodeName(n))
		}
	}

	return cfg, nil
}

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
		log.Printf("WARNING: invalid integer value for '%s' in KDL config, got %T", nodeName(n), n.Arguments[0].Value)
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

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

func collectStringArgs(n *document.Node) []string {
	if n == nil {
		return nil
	}
	// Inline format: strategies "derivation" "direct"
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}

	// Block format: exclusions { "api"; "http" }
	if len(out) == 0 && len(n.Children) > 0 {
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
