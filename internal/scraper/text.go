package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// cellText renders the text content of a table cell with <br> and <hr>
// elements turned into newlines, so multi-line cells keep their segment
// boundaries. goquery's Text() would run the segments together.
func cellText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		writeNodeText(n, &b)
	}
	return strings.TrimSpace(b.String())
}

func writeNodeText(n *html.Node, b *strings.Builder) {
	if n == nil {
		return
	}
	switch {
	case n.Type == html.TextNode:
		b.WriteString(n.Data)
	case n.Type == html.ElementNode && (n.Data == "br" || n.Data == "hr"):
		b.WriteString("\n")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeNodeText(c, b)
	}
}

// firstSegment returns the first newline-delimited segment of a cell value,
// trimmed of surrounding whitespace.
func firstSegment(s string) string {
	seg, _, _ := strings.Cut(s, "\n")
	return strings.TrimSpace(seg)
}
