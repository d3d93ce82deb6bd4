// Package input reads the text to process.
package input

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/mortea15/juicer/types"
)

func FromFile(path string) (string, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: an error occurred while reading the file `%s`: %v", types.ErrInput, path, err)
	}
	return string(buf), nil
}

func FromReader(r io.Reader) (string, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: reading standard input: %v", types.ErrInput, err)
	}
	return string(buf), nil
}

// blockElements end a run of text.
var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true, "td": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"title": true, "section": true, "article": true,
}

// StripHTML returns the visible text of an HTML document. Script and style
// contents are dropped, and block elements are separated by newlines.
func StripHTML(s string) (string, error) {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return "", fmt.Errorf("%w: parsing html: %v", types.ErrInput, err)
	}

	var sb strings.Builder
	lineStart := true
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				if !lineStart {
					sb.WriteString(" ")
				}
				sb.WriteString(text)
				lineStart = false
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
		if n.Type == html.ElementNode && blockElements[n.Data] && !lineStart {
			sb.WriteString("\n")
			lineStart = true
		}
	}
	extractText(doc)

	return strings.TrimSpace(sb.String()), nil
}
