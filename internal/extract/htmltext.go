package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// collapsedText returns the visible text of a node subtree with runs of
// whitespace collapsed to single spaces and outer whitespace trimmed.
// Markup indentation inside an anchor must not break exact label matching.
func collapsedText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
