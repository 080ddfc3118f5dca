package lws

import (
	"fmt"
	"strings"
)

// Sentinel strings for the two error kinds a report line can show in
// place of a value. Carried over verbatim from the logger this report
// renderer descends from.
const (
	keyErrStr = "*** Key error"
	valErrStr = "*** Value error"
)

// Config controls report rendering: the per-level indent string and the
// column width each side of a line is trimmed to.
type Config struct {
	Indent string
	MaxLen int
}

// DefaultConfig returns the rendering defaults used by Validate.
func DefaultConfig() Config {
	return Config{Indent: " -- ", MaxLen: 75}
}

type nodeDepth struct {
	name  string
	label EdgeLabel
	depth int
}

// fold groups a parent's child edges by name and collapses each group to
// a single representative edge:
//
//   - every edge in the group is a key error: one key-error edge
//   - every edge in the group is a value error: one value-error edge
//   - otherwise: drop every error-labeled edge in the group, keep the
//     successful ones
//
// A group that mixes key and value errors with no success at all falls
// into the third case and folds to nothing, a faithfully preserved
// quirk of the logger this renderer descends from, not a bug.
func fold(edges []Edge) []Edge {
	var order []string
	groups := make(map[string][]Edge)
	for _, e := range edges {
		if _, seen := groups[e.ChildName]; !seen {
			order = append(order, e.ChildName)
		}
		groups[e.ChildName] = append(groups[e.ChildName], e)
	}

	var out []Edge
	for _, name := range order {
		group := groups[name]
		allKeyErr, allValErr := true, true
		for _, e := range group {
			if e.Label.Kind != labelKeyErr {
				allKeyErr = false
			}
			if e.Label.Kind != labelValErr {
				allValErr = false
			}
		}
		switch {
		case allKeyErr:
			out = append(out, Edge{ChildName: name, Label: KeyErrLabel})
		case allValErr:
			out = append(out, Edge{ChildName: name, Label: ValErrLabel})
		default:
			for _, e := range group {
				if e.Label.Kind == labelData {
					out = append(out, e)
				}
			}
		}
	}
	return out
}

func flattenChildren(g *Graph, parent EdgeParent, depth int) []nodeDepth {
	var out []nodeDepth
	for _, e := range fold(g.Children(parent)) {
		out = append(out, nodeDepth{name: e.ChildName, label: e.Label, depth: depth})
		if e.Label.Kind == labelData {
			out = append(out, flattenChildren(g, e.Child, depth+1)...)
		}
	}
	return out
}

func valueStr(label EdgeLabel) string {
	switch label.Kind {
	case labelKeyErr:
		return keyErrStr
	case labelValErr:
		return valErrStr
	default:
		return nodeToStr(label.Value)
	}
}

// nodeToStr renders an edge's carried value as text. A SchemaValue shows
// its name, the data-driven walk's preserved quirk of labeling a leaf
// match with the descriptor that accepted it, rather than the value
// itself.
func nodeToStr(v any) string {
	if sv, ok := v.(SchemaValue); ok {
		return sv.Name
	}
	return fmt.Sprintf("%v", v)
}

func trim(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

func formatNode(n nodeDepth, cfg Config) string {
	var spaces, leader string
	if n.depth >= 1 {
		spaces = strings.Repeat(" ", (len(cfg.Indent)+1)*(n.depth-1))
	}
	if n.depth > 0 {
		leader = "|" + cfg.Indent
	}
	name := trim(n.name, cfg.MaxLen)
	value := trim(valueStr(n.label), cfg.MaxLen)
	return spaces + leader + name + ": " + value
}

// Render folds and flattens g into report text, depth-first from the
// synthetic root. It returns the key- and value-error counts tallied
// over the folded, rendered lines (the root line itself is shown but
// never counted) alongside the rendered text.
func Render(g *Graph, cfg Config) (keyErrs, valErrs int, text string) {
	rows := []nodeDepth{{name: "root", label: DataLabel("root"), depth: 0}}
	rows = append(rows, flattenChildren(g, EdgeParent{SchemaName: "root", DataName: "root"}, 1)...)

	for _, r := range rows[1:] {
		switch r.label.Kind {
		case labelKeyErr:
			keyErrs++
		case labelValErr:
			valErrs++
		}
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = formatNode(r, cfg)
	}

	header := fmt.Sprintf("Key Errors:\t%d\nValue Errors:\t%d", keyErrs, valErrs)
	return keyErrs, valErrs, header + "\n\n" + strings.Join(lines, "\n")
}
