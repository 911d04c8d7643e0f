// Package dom holds the node tree the cheerio helpers operate on. It is a
// deliberately small slice of https://dom.whatwg.org/#node: enough structure
// for parsing, traversal, mutation, and cloning, and nothing a selector
// engine or renderer would need.
package dom

type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	AttrNode
	TextNode
	CDATASectionNode
	ProcessingInstructionNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	DocumentFragmentNode
)

// Node is a single unit of the tree. NodeType selects which of the embedded
// payload pointers is populated; the others stay nil.
// https://dom.whatwg.org/#node
type Node struct {
	NodeType NodeType
	NodeName string

	ParentNode, FirstChild, LastChild, PreviousSibling, NextSibling *Node
	ChildNodes                                                      NodeList

	// Node kinds
	*Element
	*Text
	*Comment
	*ProcessingInstruction
	*Document
	*DocumentType
}

// IsTag reports whether n is an element-kind node. Script and style elements
// are ordinary elements here, so they count.
func IsTag(n *Node) bool {
	return n != nil && n.NodeType == ElementNode
}

// NewElement returns a detached element node with an empty attribute map.
// The optional trailing argument is the namespace prefix.
func NewElement(name string, namespace Namespace, optionals ...string) *Node {
	var prefix string
	if len(optionals) >= 1 {
		prefix = optionals[0]
	}
	return &Node{
		NodeType: ElementNode,
		NodeName: name,
		Element: &Element{
			Namespace:  namespace,
			Prefix:     prefix,
			LocalName:  name,
			Attributes: map[string]*Attr{},
		},
	}
}

// NewText returns a text node with its Data section filled.
func NewText(data string) *Node {
	return &Node{
		NodeType: TextNode,
		Text: &Text{
			CharacterData: &CharacterData{
				Data:   data,
				Length: len(data),
			},
		},
	}
}

// NewComment returns a comment node with its Data section filled.
func NewComment(data string) *Node {
	return &Node{
		NodeType: CommentNode,
		Comment: &Comment{
			CharacterData: &CharacterData{
				Data:   data,
				Length: len(data),
			},
		},
	}
}

// NewDocument returns an empty document node. Top-level nodes produced by
// parsing or cloning are appended to one of these so they always have a
// parent context.
func NewDocument() *Node {
	return &Node{
		NodeType: DocumentNode,
		NodeName: "#document",
		Document: &Document{Type: "html"},
	}
}

func NewDocType(name, pub, sys string) *Node {
	return &Node{
		NodeType: DocumentTypeNode,
		NodeName: name,
		DocumentType: &DocumentType{
			Name:     name,
			PublicID: pub,
			SystemID: sys,
		},
	}
}

func NewProcessingInstruction(target, data string) *Node {
	return &Node{
		NodeType: ProcessingInstructionNode,
		NodeName: target,
		ProcessingInstruction: &ProcessingInstruction{
			Target: target,
			Data:   data,
		},
	}
}

func (n *Node) HasChildNodes() bool {
	return len(n.ChildNodes) > 0
}

// AppendChild attaches on as the last child of n and returns on.
// https://dom.whatwg.org/#concept-node-append
func (n *Node) AppendChild(on *Node) *Node {
	if n.LastChild != nil {
		on.PreviousSibling = n.LastChild
		n.LastChild.NextSibling = on
	}
	on.ParentNode = n
	if n.FirstChild == nil {
		n.FirstChild = on
	}
	n.LastChild = on
	n.ChildNodes = append(n.ChildNodes, on)
	traceMutation("AppendChild", n, on)
	return on
}

// InsertBefore places on immediately before child. When child is nil or not
// a child of n, on is appended instead.
// https://dom.whatwg.org/#concept-node-pre-insert
func (n *Node) InsertBefore(on, child *Node) *Node {
	i := n.ChildNodes.Contains(child)
	if child == nil || i < 0 {
		return n.AppendChild(on)
	}
	n.ChildNodes.WedgeIn(i, on)
	on.ParentNode = n
	on.NextSibling = child
	on.PreviousSibling = child.PreviousSibling
	if child.PreviousSibling != nil {
		child.PreviousSibling.NextSibling = on
	} else {
		n.FirstChild = on
	}
	child.PreviousSibling = on
	traceMutation("InsertBefore", n, on)
	return on
}

// RemoveChild detaches child from n and returns it with its parent and
// sibling links cleared. Returns nil when child is not a child of n.
func (n *Node) RemoveChild(child *Node) *Node {
	node := n.ChildNodes.Remove(n.ChildNodes.Contains(child))
	if node == nil {
		return nil
	}
	if node.PreviousSibling != nil {
		node.PreviousSibling.NextSibling = node.NextSibling
	} else {
		n.FirstChild = node.NextSibling
	}
	if node.NextSibling != nil {
		node.NextSibling.PreviousSibling = node.PreviousSibling
	} else {
		n.LastChild = node.PreviousSibling
	}
	node.ParentNode, node.PreviousSibling, node.NextSibling = nil, nil, nil
	traceMutation("RemoveChild", n, node)
	return node
}

// Detach removes n from its parent, if it has one, and returns n.
func (n *Node) Detach() *Node {
	if n.ParentNode != nil {
		n.ParentNode.RemoveChild(n)
	}
	return n
}

// Clone returns a copy of n with its kind-specific payload duplicated. The
// copy starts detached: parent and sibling pointers are nil and no mutable
// state is shared with n, the attribute map included. With deep set, every
// descendant is cloned and attached in order.
// https://dom.whatwg.org/#concept-node-clone
func (n *Node) Clone(deep bool) *Node {
	copy := &Node{
		NodeType: n.NodeType,
		NodeName: n.NodeName,
	}
	switch n.NodeType {
	case ElementNode:
		attrs := make(map[string]*Attr, len(n.Element.Attributes))
		for k, v := range n.Element.Attributes {
			a := *v
			attrs[k] = &a
		}
		copy.Element = &Element{
			Namespace:  n.Element.Namespace,
			Prefix:     n.Element.Prefix,
			LocalName:  n.Element.LocalName,
			Attributes: attrs,
		}
	case TextNode:
		copy.Text = NewText(n.Text.Data).Text
	case CommentNode:
		copy.Comment = NewComment(n.Comment.Data).Comment
	case ProcessingInstructionNode:
		copy.ProcessingInstruction = &ProcessingInstruction{
			Target: n.ProcessingInstruction.Target,
			Data:   n.ProcessingInstruction.Data,
		}
	case DocumentNode:
		copy.Document = &Document{
			Type: n.Document.Type,
			Mode: n.Document.Mode,
		}
	case DocumentTypeNode:
		copy.DocumentType = &DocumentType{
			Name:     n.DocumentType.Name,
			PublicID: n.DocumentType.PublicID,
			SystemID: n.DocumentType.SystemID,
		}
	}

	if deep {
		for _, child := range n.ChildNodes {
			copy.AppendChild(child.Clone(true))
		}
	}

	return copy
}

// Root walks the parent chain and returns the topmost node.
func (n *Node) Root() *Node {
	var prev *Node
	for i := n; i != nil; i = i.ParentNode {
		prev = i
	}
	return prev
}
