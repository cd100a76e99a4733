package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var whitespace = regexp.MustCompile(`\s+`)

// HTMLParser collects the text of every <li> element of an HTML document
type HTMLParser struct {
	items    []string
	open     []int // Indexes into items of the <li> elements being read
	text     map[int]*strings.Builder
	isHidden bool
}

// NewHTMLParser creates a new HTMLParser
func NewHTMLParser() *HTMLParser {
	return &HTMLParser{
		text: make(map[int]*strings.Builder),
	}
}

// Parse parses HTML content and records its list items
func (p *HTMLParser) Parse(content string) error {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return err
	}

	p.parseNode(doc)
	return nil
}

// parseNode parses an HTML node and its children
func (p *HTMLParser) parseNode(n *html.Node) {
	if n.Type == html.ElementNode {
		p.handleStartTag(n)
	} else if n.Type == html.TextNode {
		p.handleText(n.Data)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.parseNode(c)
	}

	if n.Type == html.ElementNode {
		p.handleEndTag(n)
	}
}

// handleStartTag handles the start of an HTML tag
func (p *HTMLParser) handleStartTag(n *html.Node) {
	switch n.Data {
	case "li":
		// Reserve the slot now so nested items keep document order
		p.open = append(p.open, len(p.items))
		p.text[len(p.items)] = &strings.Builder{}
		p.items = append(p.items, "")
	case "script", "style", "head":
		p.isHidden = true
	case "br":
		p.handleText(" ")
	}
}

// handleEndTag handles the end of an HTML tag
func (p *HTMLParser) handleEndTag(n *html.Node) {
	switch n.Data {
	case "li":
		if len(p.open) == 0 {
			return
		}
		idx := p.open[len(p.open)-1]
		p.open = p.open[:len(p.open)-1]
		p.items[idx] = strings.TrimSpace(whitespace.ReplaceAllString(p.text[idx].String(), " "))
		delete(p.text, idx)
	case "script", "style", "head":
		p.isHidden = false
	case "p", "div":
		// Block elements inside an item still separate words
		p.handleText(" ")
	}
}

// handleText handles text nodes. Text belongs to the innermost open item only.
func (p *HTMLParser) handleText(data string) {
	if data == "" || p.isHidden || len(p.open) == 0 {
		return
	}
	p.text[p.open[len(p.open)-1]].WriteString(data)
}

// GetItems returns the non-empty item texts in document order
func (p *HTMLParser) GetItems() []string {
	items := make([]string, 0, len(p.items))
	for _, item := range p.items {
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// ExtractItems returns the text of every <li> element in content
func ExtractItems(content string) ([]string, error) {
	p := NewHTMLParser()
	if err := p.Parse(content); err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return p.GetItems(), nil
}

// SplitItems splits plain text into whitespace separated items
func SplitItems(content string) []string {
	return strings.Fields(content)
}

// LoadItems reads a file and returns its items. HTML documents contribute
// their list items, any other file its whitespace separated words.
func LoadItems(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return ExtractItems(string(data))
	default:
		return SplitItems(string(data)), nil
	}
}
