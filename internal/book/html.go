package book

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	skipTags = map[string]bool{
		"script": true, "style": true, "nav": true, "header": true, "footer": true,
	}
	blockTags = map[string]bool{
		"p": true, "div": true, "section": true, "article": true, "li": true,
		"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	}
	headingTags = map[string]bool{"h1": true, "h2": true, "h3": true}

	spaceBeforeNewline = regexp.MustCompile(`[ \t]+\n`)
	blankLines         = regexp.MustCompile(`\n{3,}`)
	spaceRuns          = regexp.MustCompile(`[ \t]{2,}`)
)

// document is the readable content of one XHTML spine item.
type document struct {
	title string // <title>, else the first h1-h3
	text  string
}

// parseXHTML flattens the body of an XHTML document to plain text. Block
// elements end with a newline so paragraphs stay apart.
func parseXHTML(s string) document {
	root, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return document{}
	}

	var doc document
	if t := findElement(root, func(n *html.Node) bool { return n.Data == "title" }); t != nil {
		doc.title = strings.TrimSpace(textContent(t))
	}
	if doc.title == "" {
		if h := findElement(root, func(n *html.Node) bool { return headingTags[n.Data] }); h != nil {
			doc.title = strings.TrimSpace(textContent(h))
		}
	}

	body := findElement(root, func(n *html.Node) bool { return n.Data == "body" })
	if body == nil {
		return doc
	}

	var out strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			out.WriteString(n.Data)
			return
		case html.ElementNode:
			if skipTags[n.Data] {
				return
			}
			if n.Data == "br" {
				out.WriteString("\n")
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockTags[n.Data] {
			out.WriteString("\n")
		}
	}
	walk(body)

	text := strings.ReplaceAll(out.String(), "\r", "")
	text = spaceBeforeNewline.ReplaceAllString(text, "\n")
	text = blankLines.ReplaceAllString(text, "\n\n")
	text = spaceRuns.ReplaceAllString(text, " ")
	doc.text = strings.TrimSpace(text)
	return doc
}

// findElement returns the first element in document order matching match.
func findElement(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, match); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var out strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			out.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out.String()
}
