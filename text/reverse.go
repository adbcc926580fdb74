package text

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Reversed reverses t grapheme cluster by grapheme cluster, so combining
// marks, flags and emoji sequences keep their order internally.
func Reversed(t Text) Text {
	return mapped(t, reverseGraphemes)
}

func reverseGraphemes(s string) string {
	clusters := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := len(clusters) - 1; i >= 0; i-- {
		b.WriteString(clusters[i])
	}
	return b.String()
}
