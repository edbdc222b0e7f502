package canvasrenderer

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/ByLCY/vellum/scene"
)

func mono(s string) float64 { return float64(utf8.RuneCountInString(s)) * 10 }

func TestGreedyWrap(t *testing.T) {
	tests := map[string]struct {
		content string
		limit   float64
		want    []scene.TextLine
	}{
		"fits": {"aaa bbb", 100, []scene.TextLine{{Content: "aaa bbb", Width: 70}}},
		"breaks at space": {"aaa bbb ccc", 70, []scene.TextLine{
			{Content: "aaa bbb", Width: 70},
			{Content: "ccc", Width: 30},
		}},
		"trims edges": {"  aaa   bbb  ", 40, []scene.TextLine{
			{Content: "aaa", Width: 30},
			{Content: "bbb", Width: 30},
		}},
		"splits long word": {"abcdefghij", 35, []scene.TextLine{
			{Content: "abc", Width: 30},
			{Content: "def", Width: 30},
			{Content: "ghi", Width: 30},
			{Content: "j", Width: 10},
		}},
		"unlimited": {"aaa bbb ccc", 0, []scene.TextLine{{Content: "aaa bbb ccc", Width: 110}}},
		"blank lines": {"a\n\nb\r\n", 0, []scene.TextLine{
			{Content: "a", Width: 10},
			{Content: "", Width: 0},
			{Content: "b", Width: 10},
			{Content: "", Width: 0},
		}},
		"empty": {"", 50, []scene.TextLine{{Content: "", Width: 0}}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, greedyWrap(tt.content, tt.limit, mono))
		})
	}
}

func TestTokenizeContent(t *testing.T) {
	assert.Equal(t, []string{"ab", "  ", "cd", "\n", " ", "e"}, tokenizeContent("ab  cd\r\n e"))
}
