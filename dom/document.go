package dom

// Document is the payload of a document-kind node. A document node either
// roots a full parsed tree or acts as the detached owner of cloned or
// fragment-parsed top-level nodes.
// https://dom.whatwg.org/#interface-document
type Document struct {
	Type string
	Mode string
}

// DocumentType is https://dom.whatwg.org/#documenttype
type DocumentType struct {
	Name     string
	PublicID string
	SystemID string
}
