package lingocache

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// TranslateHTML translates the text nodes of an HTML document or fragment,
// routing each non-blank node through Translate so results are cached and
// self-healing per node. Content inside IgnoredTags and subtrees marked with
// a data-no-translate attribute is left alone. When a <html> element is
// present and the target differs from the source language, its lang and dir
// attributes are set for the target.
//
// Only a parse failure returns an error; per-node translation never fails.
func (t *Translator) TranslateHTML(ctx context.Context, content string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", err
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if IgnoredTags[strings.ToLower(n.Data)] {
				return
			}
			for _, attr := range n.Attr {
				if attr.Key == "data-no-translate" {
					return
				}
			}
		}

		if n.Type == html.TextNode {
			trimmed := strings.TrimSpace(n.Data)
			if trimmed != "" {
				// Replace only the trimmed core, preserving surrounding
				// whitespace.
				n.Data = strings.Replace(n.Data, trimmed, t.Translate(ctx, trimmed), 1)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range doc.Nodes {
		walk(n)
	}

	if htmlTag := doc.Find("html"); htmlTag.Length() > 0 && !t.IsSourceLang() {
		lang := t.Language()
		htmlTag.SetAttr("lang", ToHTMLLang(lang))
		htmlTag.SetAttr("dir", GetDirection(lang))
	}

	return doc.Html()
}
