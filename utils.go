// Package cheerio provides the core helpers for working with dom node
// trees: node and wrapper classification, case conversion for attribute and
// style names, iteration without wrapper allocation, and subtree cloning.
package cheerio

import (
	"strings"
	"unicode"

	"github.com/Aditya-swarup/cheerio/dom"
)

// IsTag reports whether n is an element-kind node, script and style
// included. Re-exported from dom so callers of this package rarely need
// both imports.
func IsTag(n *dom.Node) bool {
	return dom.IsTag(n)
}

// Collection is the capability marker carried by node-set wrappers such as
// Selection. IsCheerio probes for it; nothing in this package dispatches on
// it.
type Collection interface {
	// Nodes returns the matched nodes in document order.
	Nodes() []*dom.Node
}

// IsCheerio reports whether v is a collection wrapper. Nil and values
// without the Collection capability report false rather than faulting.
func IsCheerio(v any) bool {
	_, ok := v.(Collection)
	return ok
}

// CamelCase converts a separator-delimited name to camel case: each of the
// separators '_', '.' and '-' is dropped and the character following it is
// uppercased. A trailing separator is dropped outright.
//
//	CamelCase("foo-bar") == "fooBar"
//	CamelCase("foo-") == "foo"
func CamelCase(str string) string {
	var b strings.Builder
	b.Grow(len(str))
	up := false
	for _, r := range str {
		if up {
			b.WriteRune(unicode.ToUpper(r))
			up = false
			continue
		}
		if r == '_' || r == '.' || r == '-' {
			up = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CSSCase converts a camel-cased name to its hyphenated form: a hyphen is
// inserted before every ASCII uppercase letter, then the whole result is
// lowercased. A name starting with an uppercase letter keeps the resulting
// leading hyphen, so CSSCase("FooBar") is "-foo-bar". Not the inverse of
// CamelCase.
func CSSCase(str string) string {
	var b strings.Builder
	b.Grow(len(str) + 2)
	for _, r := range str {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// DomEach invokes fn for every element of nodes with its index, in
// ascending order, and returns nodes itself so calls can be chained without
// allocating a wrapper. The length is captured once on entry: elements fn
// appends are not visited.
func DomEach[T any](nodes []T, fn func(T, int)) []T {
	length := len(nodes)
	for i := 0; i < length; i++ {
		fn(nodes[i], i)
	}
	return nodes
}

// CloneDOM deep-copies every node in nodes, preserving order. The copies
// are parented under a fresh document node so traversal-scoped operations
// keep a valid parent context; that document is reachable only through the
// returned clones. The source tree is never touched, and the clones share
// no mutable state with it.
func CloneDOM(nodes ...*dom.Node) []*dom.Node {
	clones := make([]*dom.Node, 0, len(nodes))
	for _, n := range nodes {
		clones = append(clones, n.Clone(true))
	}

	root := dom.NewDocument()
	for _, clone := range clones {
		root.AppendChild(clone)
	}

	return clones
}

// IsHTML reports whether str looks like markup rather than a selector or
// plain text. A cheap lexical check, not a parser: the first '<' must leave
// room for a tag name, be followed by an ASCII letter or '!', and a '>'
// must appear later in the string. Strings that merely mention something
// like "<x ...>" pass; valid markup with no closing '>' does not.
func IsHTML(str string) bool {
	tagStart := strings.IndexByte(str, '<')
	if tagStart < 0 || tagStart > len(str)-3 {
		return false
	}
	c := str[tagStart+1]
	if !(c >= 'a' && c <= 'z') && !(c >= 'A' && c <= 'Z') && c != '!' {
		return false
	}
	return strings.IndexByte(str[tagStart+2:], '>') >= 0
}
