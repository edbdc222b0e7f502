package canvasrenderer

import (
	"math"
	"strings"
	"unicode"

	"github.com/ByLCY/vellum/scene"
)

// greedyWrap 优先在空白处折行，单词超出 limit 时在词内拆分。
// limit <= 0 表示只按显式换行拆分。行首行尾的空白不计入宽度。
func greedyWrap(content string, limit float64, measure func(string) float64) []scene.TextLine {
	if limit <= 0 {
		limit = math.MaxFloat64
	}

	var lines []scene.TextLine
	var builder strings.Builder

	emit := func() {
		line := strings.TrimRightFunc(builder.String(), unicode.IsSpace)
		lines = append(lines, scene.TextLine{Content: line, Width: measure(line)})
		builder.Reset()
	}
	appendToken := func(token string) {
		if builder.Len() == 0 && isBlank(token) {
			return
		}
		builder.WriteString(token)
	}
	fits := func(token string) bool {
		if builder.Len() == 0 || isBlank(token) {
			return true
		}
		return measure(builder.String()+token) <= limit
	}

	for _, token := range tokenizeContent(content) {
		if token == "\n" {
			emit()
			continue
		}
		if !fits(token) {
			emit()
		}
		if isBlank(token) || measure(token) <= limit {
			appendToken(token)
			continue
		}
		for _, chunk := range splitTokenByWidth(token, limit, measure) {
			if !fits(chunk) {
				emit()
			}
			appendToken(chunk)
		}
	}
	emit()
	return lines
}

// tokenizeContent 将文本拆为交替的空白段与非空白段，换行单独成段。
func tokenizeContent(s string) []string {
	var tokens []string
	for i, para := range strings.Split(strings.ReplaceAll(s, "\r", ""), "\n") {
		if i > 0 {
			tokens = append(tokens, "\n")
		}
		start, inSpace := 0, false
		for j, r := range para {
			space := unicode.IsSpace(r)
			if j > start && space != inSpace {
				tokens = append(tokens, para[start:j])
				start = j
			}
			inSpace = space
		}
		if start < len(para) {
			tokens = append(tokens, para[start:])
		}
	}
	return tokens
}

func splitTokenByWidth(token string, limit float64, measure func(string) float64) []string {
	var parts []string
	var current []rune
	for _, r := range token {
		current = append(current, r)
		if len(current) > 1 && measure(string(current)) > limit {
			parts = append(parts, string(current[:len(current)-1]))
			current = []rune{r}
		}
	}
	if len(current) > 0 {
		parts = append(parts, string(current))
	}
	return parts
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}
