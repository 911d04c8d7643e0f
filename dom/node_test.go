package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendChild(t *testing.T) {
	parent := NewElement("ul", Htmlns)
	a := parent.AppendChild(NewElement("li", Htmlns))
	b := parent.AppendChild(NewElement("li", Htmlns))
	c := parent.AppendChild(NewText("tail"))

	assert.True(t, parent.FirstChild == a)
	assert.True(t, parent.LastChild == c)
	assert.Len(t, parent.ChildNodes, 3)

	assert.True(t, a.ParentNode == parent)
	assert.True(t, b.ParentNode == parent)
	assert.Nil(t, a.PreviousSibling)
	assert.True(t, a.NextSibling == b)
	assert.True(t, b.PreviousSibling == a)
	assert.True(t, c.PreviousSibling == b)
	assert.Nil(t, c.NextSibling)
}

func TestInsertBefore(t *testing.T) {
	parent := NewElement("ul", Htmlns)
	b := parent.AppendChild(NewElement("li", Htmlns))
	a := parent.InsertBefore(NewElement("li", Htmlns), b)

	assert.True(t, parent.FirstChild == a)
	assert.True(t, parent.LastChild == b)
	assert.True(t, a.NextSibling == b)
	assert.True(t, b.PreviousSibling == a)
	assert.Equal(t, 0, parent.ChildNodes.Contains(a))
	assert.Equal(t, 1, parent.ChildNodes.Contains(b))

	mid := parent.InsertBefore(NewText("mid"), b)
	assert.Equal(t, NodeList{a, mid, b}, parent.ChildNodes)
	assert.True(t, a.NextSibling == mid)
	assert.True(t, b.PreviousSibling == mid)
}

func TestInsertBeforeMissingChildAppends(t *testing.T) {
	parent := NewElement("div", Htmlns)
	stray := NewElement("span", Htmlns)
	n := parent.InsertBefore(NewText("x"), stray)
	assert.True(t, parent.LastChild == n)
	assert.True(t, n.ParentNode == parent)
}

func TestRemoveChild(t *testing.T) {
	parent := NewElement("ul", Htmlns)
	a := parent.AppendChild(NewElement("li", Htmlns))
	b := parent.AppendChild(NewElement("li", Htmlns))
	c := parent.AppendChild(NewElement("li", Htmlns))

	got := parent.RemoveChild(b)
	require.True(t, got == b)
	assert.Nil(t, b.ParentNode)
	assert.Nil(t, b.PreviousSibling)
	assert.Nil(t, b.NextSibling)
	assert.True(t, a.NextSibling == c)
	assert.True(t, c.PreviousSibling == a)
	assert.Equal(t, NodeList{a, c}, parent.ChildNodes)

	parent.RemoveChild(a)
	parent.RemoveChild(c)
	assert.Nil(t, parent.FirstChild)
	assert.Nil(t, parent.LastChild)
	assert.False(t, parent.HasChildNodes())

	assert.Nil(t, parent.RemoveChild(b), "removing a non-child is a no-op")
}

func TestDetach(t *testing.T) {
	parent := NewElement("div", Htmlns)
	child := parent.AppendChild(NewText("x"))

	assert.True(t, child.Detach() == child)
	assert.Nil(t, child.ParentNode)
	assert.Empty(t, parent.ChildNodes)

	// detaching an orphan is fine
	assert.True(t, child.Detach() == child)
}

func TestCloneShallow(t *testing.T) {
	src := NewElement("a", Htmlns)
	src.Element.SetAttribute("href", "https://example.com")
	src.AppendChild(NewText("link"))

	clone := src.Clone(false)
	assert.Equal(t, ElementNode, clone.NodeType)
	assert.Equal(t, "a", clone.NodeName)
	assert.Empty(t, clone.ChildNodes, "shallow clone has no children")
	assert.Nil(t, clone.ParentNode)

	require.True(t, clone.Element.HasAttribute("href"))
	v, ok := clone.Element.GetAttribute("href")
	require.True(t, ok)
	assert.Equal(t, "https://example.com", v)

	// attribute storage is copied, not aliased
	clone.Element.SetAttribute("href", "changed")
	v, _ = src.Element.GetAttribute("href")
	assert.Equal(t, "https://example.com", v)
}

func TestCloneDeep(t *testing.T) {
	src := NewElement("div", Htmlns)
	src.AppendChild(NewText("hello "))
	em := src.AppendChild(NewElement("em", Htmlns))
	em.AppendChild(NewText("world"))
	src.AppendChild(NewComment("done"))

	clone := src.Clone(true)
	require.Len(t, clone.ChildNodes, 3)
	assert.Equal(t, src.String(), clone.String())

	for i, child := range clone.ChildNodes {
		assert.True(t, child != src.ChildNodes[i], "child %d aliased", i)
		assert.True(t, child.ParentNode == clone)
	}
	assert.True(t, clone.FirstChild == clone.ChildNodes[0])
	assert.True(t, clone.LastChild == clone.ChildNodes[2])
}

func TestClonePayloadKinds(t *testing.T) {
	text := NewText("data").Clone(false)
	assert.Equal(t, "data", text.Text.Data)
	assert.Equal(t, 4, text.Text.Length)

	comment := NewComment("note").Clone(false)
	assert.Equal(t, "note", comment.Comment.Data)

	pi := NewProcessingInstruction("xml", `version="1.0"`).Clone(false)
	assert.Equal(t, "xml", pi.ProcessingInstruction.Target)
	assert.Equal(t, `version="1.0"`, pi.ProcessingInstruction.Data)

	doctype := NewDocType("html", "pub", "sys").Clone(false)
	assert.Equal(t, "html", doctype.DocumentType.Name)
	assert.Equal(t, "pub", doctype.DocumentType.PublicID)
	assert.Equal(t, "sys", doctype.DocumentType.SystemID)

	doc := NewDocument().Clone(false)
	assert.Equal(t, "html", doc.Document.Type)
}

func TestRoot(t *testing.T) {
	doc := NewDocument()
	div := doc.AppendChild(NewElement("div", Htmlns))
	text := div.AppendChild(NewText("x"))

	assert.True(t, text.Root() == doc)
	assert.True(t, doc.Root() == doc)
}

func TestIsTag(t *testing.T) {
	assert.True(t, IsTag(NewElement("p", Htmlns)))
	assert.False(t, IsTag(NewText("p")))
	assert.False(t, IsTag(nil))
}

func TestDump(t *testing.T) {
	doc := NewDocument()
	div := doc.AppendChild(NewElement("div", Htmlns))
	div.Element.SetAttribute("class", "greeting")
	div.AppendChild(NewText("hi"))

	expected := "#document\n" +
		"| <div>\n" +
		"|   class=\"greeting\"\n" +
		"|   \"hi\""
	assert.Equal(t, expected, doc.String())
}
