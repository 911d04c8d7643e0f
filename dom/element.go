package dom

type Namespace uint

const (
	Htmlns Namespace = iota
	Mathmlns
	Svgns
	Xlinkns
	Xmlns
	Xmlnsns
)

// Element is the payload of an element-kind node.
// https://dom.whatwg.org/#interface-element
type Element struct {
	Namespace         Namespace
	Prefix, LocalName string
	Attributes        map[string]*Attr
}

// Attr is https://dom.whatwg.org/#attr
type Attr struct {
	Namespace         Namespace
	Prefix, LocalName string
	Value             string
}

// GetAttribute returns the value of the named attribute and whether it is
// present.
func (e *Element) GetAttribute(name string) (string, bool) {
	if a, ok := e.Attributes[name]; ok {
		return a.Value, true
	}
	return "", false
}

func (e *Element) HasAttribute(name string) bool {
	_, ok := e.Attributes[name]
	return ok
}

// SetAttribute sets the named attribute, overwriting the value of an
// existing one in place.
func (e *Element) SetAttribute(name, value string) {
	if a, ok := e.Attributes[name]; ok {
		a.Value = value
		return
	}
	e.Attributes[name] = &Attr{LocalName: name, Value: value}
}

func (e *Element) RemoveAttribute(name string) {
	delete(e.Attributes, name)
}
