package cheerio

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/Aditya-swarup/cheerio/dom"
)

// Selection is an ordered collection of matched nodes. It carries the
// Collection capability that IsCheerio probes for.
type Selection struct {
	nodes []*dom.Node
}

// NewSelection wraps nodes in a Selection.
func NewSelection(nodes ...*dom.Node) *Selection {
	return &Selection{nodes: nodes}
}

// New builds a Selection from v: an existing Collection is rewrapped, a
// node or node slice is wrapped directly, and a string is parsed as a
// fragment when IsHTML accepts it. Selector strings are not evaluated and
// report an error.
func New(v any) (*Selection, error) {
	switch t := v.(type) {
	case nil:
		return NewSelection(), nil
	case Collection:
		return NewSelection(t.Nodes()...), nil
	case *dom.Node:
		return NewSelection(t), nil
	case []*dom.Node:
		return NewSelection(t...), nil
	case string:
		if !IsHTML(t) {
			return nil, errors.Errorf("cheerio: %q is not markup (selectors are not supported)", t)
		}
		nodes, err := ParseFragment(t)
		if err != nil {
			return nil, err
		}
		return NewSelection(nodes...), nil
	default:
		return nil, errors.Errorf("cheerio: cannot build a selection from %T", v)
	}
}

// Nodes returns the matched nodes in document order.
func (s *Selection) Nodes() []*dom.Node {
	return s.nodes
}

func (s *Selection) Length() int {
	return len(s.nodes)
}

// Get returns the node at index i, nil when out of range.
func (s *Selection) Get(i int) *dom.Node {
	if i < 0 || i >= len(s.nodes) {
		return nil
	}
	return s.nodes[i]
}

// Each invokes fn for every matched node and returns the receiver for
// chaining.
func (s *Selection) Each(fn func(*dom.Node, int)) *Selection {
	DomEach(s.nodes, fn)
	return s
}

// Clone deep-copies every matched node into a new, detached Selection. The
// clones live under their own document and share nothing with the matched
// nodes.
func (s *Selection) Clone() *Selection {
	return NewSelection(CloneDOM(s.nodes...)...)
}

// Attr returns the named attribute of the first element in the selection.
func (s *Selection) Attr(name string) (string, bool) {
	for _, n := range s.nodes {
		if dom.IsTag(n) {
			return n.Element.GetAttribute(name)
		}
	}
	return "", false
}

// SetAttr sets the attribute on every element in the selection and returns
// the receiver.
func (s *Selection) SetAttr(name, value string) *Selection {
	return s.Each(func(n *dom.Node, _ int) {
		if dom.IsTag(n) {
			n.Element.SetAttribute(name, value)
		}
	})
}

// RemoveAttr removes the attribute from every element in the selection and
// returns the receiver.
func (s *Selection) RemoveAttr(name string) *Selection {
	return s.Each(func(n *dom.Node, _ int) {
		if dom.IsTag(n) {
			n.Element.RemoveAttribute(name)
		}
	})
}

// Data reads a data-* attribute of the first element by its camel-cased
// key: Data("fooBar") reads the data-foo-bar attribute.
func (s *Selection) Data(key string) (string, bool) {
	return s.Attr("data-" + CSSCase(key))
}

// DataAll returns every data-* attribute of the first element, keyed by the
// camel-cased attribute name suffix.
func (s *Selection) DataAll() map[string]string {
	data := map[string]string{}
	for _, n := range s.nodes {
		if !dom.IsTag(n) {
			continue
		}
		for name, attr := range n.Element.Attributes {
			if strings.HasPrefix(name, "data-") {
				data[CamelCase(strings.TrimPrefix(name, "data-"))] = attr.Value
			}
		}
		break
	}
	return data
}
