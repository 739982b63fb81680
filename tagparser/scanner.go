package tagparser

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Scanner walks an input string one grammar rule at a time. Each Scan method
// consumes exactly the text its rule matched and leaves the cursor untouched
// on the rule's first character when it fails to start.
//
// A Scanner is not safe for concurrent use; create one per input.
type Scanner struct {
	src  string
	pos  int // current byte offset
	line int // current line (1-based)
	col  int // current column in runes (1-based)
	cfg  config
}

// NewScanner creates a Scanner positioned at the start of src.
func NewScanner(src string, opts ...Option) *Scanner {
	return &Scanner{src: src, line: 1, col: 1, cfg: newConfig(opts)}
}

// Pos returns the position of the next unconsumed character.
func (s *Scanner) Pos() Position {
	return Position{Line: s.line, Column: s.col, Offset: s.pos}
}

// Rest returns the unconsumed input.
func (s *Scanner) Rest() string {
	return s.src[s.pos:]
}

// AtEnd reports whether the whole input has been consumed.
func (s *Scanner) AtEnd() bool {
	return s.pos >= len(s.src)
}

func (s *Scanner) peek() rune {
	if s.AtEnd() {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return r
}

func (s *Scanner) peekByte() byte {
	if s.AtEnd() {
		return 0
	}
	return s.src[s.pos]
}

func (s *Scanner) advance() rune {
	r, size := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += size
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r
}

// got describes the next unconsumed character for error messages.
func (s *Scanner) got() string {
	if s.AtEnd() {
		return "EOF"
	}
	return fmt.Sprintf("%q", s.peek())
}

func (s *Scanner) fail(rule Rule, expected string) *SyntaxError {
	return &SyntaxError{
		Rule:     rule,
		Expected: expected,
		Got:      s.got(),
		Pos:      s.Pos(),
	}
}

func (s *Scanner) expect(ch byte, rule Rule, expected string) error {
	if s.AtEnd() || s.peekByte() != ch {
		return s.fail(rule, expected)
	}
	s.advance()
	return nil
}

// ScanKey consumes the longest run of ASCII letters and returns it.
func (s *Scanner) ScanKey() (string, error) {
	return s.scanLetters(RuleKey)
}

func (s *Scanner) scanLetters(rule Rule) (string, error) {
	start := s.pos
	for !s.AtEnd() && isLetter(s.peekByte()) {
		s.advance()
	}
	if s.pos == start {
		return "", s.fail(rule, "one or more letters")
	}
	return s.src[start:s.pos], nil
}

// SkipSpace consumes zero or more whitespace characters and returns them.
func (s *Scanner) SkipSpace() string {
	start := s.pos
	for !s.AtEnd() && isSpace(s.peekByte()) {
		s.advance()
	}
	return s.src[start:s.pos]
}

// ScanValue consumes a double-quoted attribute value and returns the text
// between the quotes.
func (s *Scanner) ScanValue() (string, error) {
	if err := s.expect('"', RuleValue, `opening '"'`); err != nil {
		return "", err
	}

	start := s.pos
	for !s.AtEnd() && isValueRune(s.peek()) {
		s.advance()
	}
	if s.pos == start {
		return "", s.fail(RuleValue, "one or more letters, digits, '.', '/' or ':'")
	}
	inner := s.src[start:s.pos]

	if err := s.expect('"', RuleValue, `closing '"'`); err != nil {
		return "", err
	}
	return inner, nil
}

// ScanAttribute consumes one key="value" pair. Whitespace is allowed on
// either side of the '='.
func (s *Scanner) ScanAttribute() (key, value string, err error) {
	key, err = s.ScanKey()
	if err != nil {
		return "", "", err
	}

	s.SkipSpace()
	if err := s.expect('=', RuleAttribute, "'='"); err != nil {
		return "", "", err
	}
	s.SkipSpace()

	value, err = s.ScanValue()
	if err != nil {
		return "", "", err
	}
	return key, value, nil
}

// ScanAttributes consumes zero or more attributes separated by ',' and
// optional whitespace. It stops without error where neither a first
// attribute nor a further ',' begins, leaving that character unconsumed.
// Once a separator has been consumed an attribute must follow.
func (s *Scanner) ScanAttributes() (*Attributes, error) {
	attrs := newAttributes(s.cfg.hasher)

	if !isLetter(s.peekByte()) {
		return attrs, nil
	}

	for {
		key, value, err := s.ScanAttribute()
		if err != nil {
			return nil, err
		}
		attrs.set(key, value)

		if s.AtEnd() || s.peekByte() != ',' {
			return attrs, nil
		}
		s.advance() // consume ,
		s.SkipSpace()
	}
}

// ScanTag consumes a complete open tag.
func (s *Scanner) ScanTag() (*Tag, error) {
	start := s.Pos()

	if err := s.expect('<', RuleTagOpen, "'<'"); err != nil {
		return nil, err
	}

	name, err := s.scanLetters(RuleTagName)
	if err != nil {
		return nil, err
	}

	// Exactly one space separates the name from the attribute list, even
	// when the list is empty.
	if err := s.expect(' ', RuleTagSpace, "' '"); err != nil {
		return nil, err
	}

	attrs, err := s.ScanAttributes()
	if err != nil {
		return nil, err
	}

	s.SkipSpace()
	expected := "attribute or '>'"
	if attrs.Len() > 0 {
		expected = "',' or '>'"
	}
	if err := s.expect('>', RuleTagClose, expected); err != nil {
		return nil, err
	}

	return &Tag{Name: name, Attributes: attrs, Pos: start}, nil
}

func (s *Scanner) expectEnd() error {
	if !s.AtEnd() {
		return s.fail(RuleEndOfInput, "end of input")
	}
	return nil
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isValueRune(r rune) bool {
	switch r {
	case '.', '/', ':':
		return true
	case utf8.RuneError:
		return false
	}
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
