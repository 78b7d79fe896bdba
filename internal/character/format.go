package character

import (
	"regexp"
	"strings"
)

var (
	reTagBoundary = regexp.MustCompile(`>\s*<`)
	reClosingTag  = regexp.MustCompile(`^</\w`)
	reOpeningTag  = regexp.MustCompile(`^<\w([^>]*[^/])?>`)
)

// FormatXML はタグ同士の間で改行し、入れ子の深さに応じて indentUnit を付ける。
// タグの間に文字データがないことを前提にしており、整形式かどうかは検査しない。
func FormatXML(xml, indentUnit string) string {
	xml = strings.ReplaceAll(strings.TrimSpace(xml), "\r\n", "\n")
	xml = reTagBoundary.ReplaceAllString(xml, ">\n<")

	var out []string
	depth := 0
	for _, line := range strings.Split(xml, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case reClosingTag.MatchString(line):
			depth = max(depth-1, 0)
			out = append(out, strings.Repeat(indentUnit, depth)+line)
		case reOpeningTag.MatchString(line):
			out = append(out, strings.Repeat(indentUnit, depth)+line)
			depth++
		default:
			out = append(out, strings.Repeat(indentUnit, depth)+line)
		}
	}
	return strings.Join(out, "\n")
}
