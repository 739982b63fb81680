// Package tagparser parses a single HTML-like open tag such as
// `<div width="40", height="30">` into a tag name and its attributes.
//
// The parser is a hand-rolled recursive-descent parser with four layers, each
// usable on its own through a Scanner:
//
//   - Primitive scanners: keys (ASCII letters), quoted values and whitespace.
//   - Attribute: key, optional whitespace, '=', optional whitespace, value.
//   - Attribute list: attributes separated by ',' and optional whitespace.
//   - Tag: '<', name, exactly one space, attribute list, '>'.
//
// The grammar:
//
//	tag        := '<' name ' ' attr_list WS* '>'
//	name       := ALPHA+
//	attr_list  := (attr (',' WS* attr)*)?
//	attr       := name WS* '=' WS* '"' value '"'
//	value      := (ALNUM | '.' | '/' | ':')+
//	WS         := ' ' | '\t' | '\r' | '\n'
//
// A tag with no attributes must still carry the separating space: `<div >`
// parses, `<div>` does not.
//
// Keys, values and tag names are substrings of the input; nothing is copied.
// A duplicate attribute key overwrites the earlier value.
//
// Usage:
//
//	tag, err := tagparser.Parse(`<a href="https://adamchalmers.com">`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	href, _ := tag.Attributes.Get("href")
//	fmt.Println(tag.Name, href)
//
// Every failure is a *SyntaxError naming the rule that failed and the
// position where it failed.
package tagparser
