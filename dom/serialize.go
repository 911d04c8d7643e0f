package dom

import (
	"sort"
	"strings"
)

// The dump format below mirrors the html5lib tree-construction test format.
// It is for debugging and test assertions, not markup serialization.

func dumpNodeType(node *Node, ident int) string {
	switch node.NodeType {
	case ElementNode:
		e := "<"
		switch node.Element.Namespace {
		case Svgns:
			e += "svg "
		case Mathmlns:
			e += "math "
		}
		e += node.NodeName
		e += ">"
		if node.Attributes == nil || len(node.Attributes) == 0 {
			return e
		}
		keys := make([]string, 0, len(node.Attributes))
		for name := range node.Attributes {
			keys = append(keys, name)
		}
		sort.Strings(keys)
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		for _, name := range keys {
			e += "\n" + spaces + name + "=\"" + node.Attributes[name].Value + "\""
		}
		return e
	case TextNode:
		return "\"" + node.Text.Data + "\""
	case CommentNode:
		return "<!-- " + node.Comment.Data + " -->"
	case ProcessingInstructionNode:
		return "<?" + node.ProcessingInstruction.Target + " " + node.ProcessingInstruction.Data + ">"
	case DocumentTypeNode:
		d := "<!DOCTYPE " + node.DocumentType.Name
		if len(node.DocumentType.PublicID) != 0 || len(node.DocumentType.SystemID) != 0 {
			d += " \"" + node.DocumentType.PublicID + "\" \"" + node.DocumentType.SystemID + "\""
		}
		d += ">"
		return d
	case DocumentNode:
		return "#document"
	default:
		return "#unknown"
	}
}

func (node *Node) dump(ident int) string {
	ser := dumpNodeType(node, ident+1) + "\n"
	if node.NodeType != DocumentNode {
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		ser = spaces + ser
	}
	for _, child := range node.ChildNodes {
		ser += child.dump(ident + 1)
	}

	return ser
}

func (node *Node) String() string {
	return strings.TrimRight(node.dump(0), "\n")
}
