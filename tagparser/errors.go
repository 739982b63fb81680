package tagparser

import "fmt"

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number, counted in runes
	Offset int // 0-based byte offset into the input
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, col %d", p.Line, p.Column)
}

// Rule names the grammar rule that was being matched when parsing failed.
type Rule string

const (
	RuleKey        Rule = "key"
	RuleValue      Rule = "value"
	RuleAttribute  Rule = "attribute"
	RuleTagOpen    Rule = "tag open"
	RuleTagName    Rule = "tag name"
	RuleTagSpace   Rule = "tag space"
	RuleTagClose   Rule = "tag close"
	RuleEndOfInput Rule = "end of input"
)

// SyntaxError is the only error returned by the parser.
type SyntaxError struct {
	Rule     Rule
	Expected string
	Got      string
	Pos      Position
}

func (e *SyntaxError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: expected %s, got %s", e.Pos.Line, e.Pos.Column, e.Expected, e.Got)
	}
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
}
