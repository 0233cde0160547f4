package mindmap

import "strings"

// OutlineStats describes the shape of a markdown outline.
type OutlineStats struct {
	Headings int `json:"headings"`
	Bullets  int `json:"bullets"`
	// Depth counts the heading as level one.
	Depth int `json:"depth"`
}

// Conforms reports whether the outline has one heading and at most three levels.
func (s OutlineStats) Conforms() bool {
	return s.Headings == 1 && s.Depth <= 3
}

// Outline inspects markdown without changing it. Malformed output is still
// rendered; these stats only feed logs and the JSON API.
func Outline(markdown string) OutlineStats {
	var stats OutlineStats
	bulletDepth := 0

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		switch {
		case strings.HasPrefix(trimmed, "#"):
			stats.Headings++
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "), trimmed == "-":
			stats.Bullets++
			indent := len(strings.ReplaceAll(line[:len(line)-len(trimmed)], "\t", "  "))
			if d := indent/2 + 1; d > bulletDepth {
				bulletDepth = d
			}
		}
	}

	if stats.Headings > 0 {
		stats.Depth = 1
	}
	stats.Depth += bulletDepth
	return stats
}
