package dom

// CharacterData is https://dom.whatwg.org/#characterdata
type CharacterData struct {
	Data   string
	Length int
}

// Text is https://dom.whatwg.org/#text
type Text struct {
	*CharacterData
}

// Comment is https://dom.whatwg.org/#interface-comment
type Comment struct {
	*CharacterData
}

// ProcessingInstruction is https://dom.whatwg.org/#processinginstruction
type ProcessingInstruction struct {
	Target string
	Data   string
}
