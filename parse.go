package cheerio

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/Aditya-swarup/cheerio/dom"
)

// Parsing is delegated to golang.org/x/net/html; the trees it produces are
// converted into dom nodes here. Well-formedness is the parser's problem,
// and like any HTML5 parser it recovers rather than rejects.

// Parse parses markup as a complete document and returns the document node.
func Parse(markup string) (*dom.Node, error) {
	parsed, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, errors.Wrap(err, "cheerio: parse document")
	}

	doc := dom.NewDocument()
	for c := parsed.FirstChild; c != nil; c = c.NextSibling {
		if n := convertNode(c); n != nil {
			doc.AppendChild(n)
		}
	}
	return doc, nil
}

// ParseFragment parses markup in a body context and returns its top-level
// nodes. The nodes are parented under a fresh document, the same detached
// root policy CloneDOM applies to clones.
func ParseFragment(markup string) ([]*dom.Node, error) {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	parsed, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, errors.Wrap(err, "cheerio: parse fragment")
	}

	doc := dom.NewDocument()
	nodes := make([]*dom.Node, 0, len(parsed))
	for _, p := range parsed {
		if n := convertNode(p); n != nil {
			nodes = append(nodes, doc.AppendChild(n))
		}
	}
	return nodes, nil
}

// convertNode maps an x/net/html node and its descendants onto dom nodes.
// Error nodes and kinds the dom package does not model convert to nil.
func convertNode(src *html.Node) *dom.Node {
	var n *dom.Node
	switch src.Type {
	case html.ElementNode:
		n = dom.NewElement(src.Data, elementNamespace(src.Namespace))
		for _, a := range src.Attr {
			n.Element.Attributes[a.Key] = &dom.Attr{
				Namespace: attrNamespace(a.Namespace),
				Prefix:    a.Namespace,
				LocalName: a.Key,
				Value:     a.Val,
			}
		}
	case html.TextNode:
		return dom.NewText(src.Data)
	case html.CommentNode:
		return dom.NewComment(src.Data)
	case html.DoctypeNode:
		var pub, sys string
		for _, a := range src.Attr {
			switch a.Key {
			case "public":
				pub = a.Val
			case "system":
				sys = a.Val
			}
		}
		return dom.NewDocType(src.Data, pub, sys)
	case html.DocumentNode:
		n = dom.NewDocument()
	default:
		return nil
	}

	for c := src.FirstChild; c != nil; c = c.NextSibling {
		if child := convertNode(c); child != nil {
			n.AppendChild(child)
		}
	}
	return n
}

func elementNamespace(ns string) dom.Namespace {
	switch ns {
	case "svg":
		return dom.Svgns
	case "math":
		return dom.Mathmlns
	default:
		return dom.Htmlns
	}
}

func attrNamespace(ns string) dom.Namespace {
	switch ns {
	case "xlink":
		return dom.Xlinkns
	case "xml":
		return dom.Xmlns
	case "xmlns":
		return dom.Xmlnsns
	case "svg":
		return dom.Svgns
	case "math":
		return dom.Mathmlns
	default:
		return dom.Htmlns
	}
}
