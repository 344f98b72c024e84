package setam

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/ps-vitor/setam-sys/backend/internal/domain"
)

// TextFragments collects every descendant text node of sel in document order.
func TextFragments(sel *goquery.Selection) []string {
	var out []string
	for _, n := range sel.Nodes {
		collectText(n, &out)
	}
	return out
}

func collectText(n *html.Node, out *[]string) {
	if n.Type == html.TextNode {
		*out = append(*out, n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, out)
	}
}

// OwnTextFragments collects the text nodes that are direct children of sel.
func OwnTextFragments(sel *goquery.Selection) []string {
	var out []string
	for _, n := range sel.Nodes {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				out = append(out, c.Data)
			}
		}
	}
	return out
}

// NormalizeFragments trims every fragment and drops the empty ones.
func NormalizeFragments(fragments []string) []string {
	out := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// ParsePair turns a field group into a label/value pair. Fragments past the
// second are ignored.
func ParsePair(fragments []string) (domain.Pair, error) {
	clean := NormalizeFragments(fragments)
	if len(clean) < 2 {
		return domain.Pair{}, fmt.Errorf("field group has %d non-empty fragments, need 2", len(clean))
	}
	return domain.Pair{Label: clean[0], Value: clean[1]}, nil
}
