package tagparser

import "strings"

// Tag is a parsed open tag, like `<a href="google.com">`.
type Tag struct {
	Name       string // like "div"
	Attributes *Attributes
	Pos        Position // where the '<' was found
}

// Attr looks up an attribute by key. Returns the value and true if found.
func (t *Tag) Attr(key string) (string, bool) {
	return t.Attributes.Get(key)
}

// Equal reports whether t and o have the same name and attributes. Positions
// and attribute stores are ignored.
func (t *Tag) Equal(o *Tag) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.Name == o.Name && t.Attributes.Equal(o.Attributes)
}

// String renders the tag with attributes in key order. The result parses
// back to an equal Tag.
func (t *Tag) String() string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(t.Name)
	sb.WriteByte(' ')
	sb.WriteString(t.Attributes.String())
	sb.WriteByte('>')
	return sb.String()
}
