package tagparser

// Parse parses input as a single open tag. The whole input must be consumed.
// Returns a *SyntaxError on failure.
func Parse(input string, opts ...Option) (*Tag, error) {
	s := NewScanner(input, opts...)
	tag, err := s.ScanTag()
	if err != nil {
		return nil, err
	}
	if err := s.expectEnd(); err != nil {
		return nil, err
	}
	return tag, nil
}

// ParsePrefix parses an open tag at the start of input and returns the text
// that follows the closing '>'.
func ParsePrefix(input string, opts ...Option) (*Tag, string, error) {
	s := NewScanner(input, opts...)
	tag, err := s.ScanTag()
	if err != nil {
		return nil, input, err
	}
	return tag, s.Rest(), nil
}

// ParseAttributes parses a bare attribute list such as
// `width="40", height = "30"`. The whole input must be consumed.
func ParseAttributes(input string, opts ...Option) (*Attributes, error) {
	s := NewScanner(input, opts...)
	attrs, err := s.ScanAttributes()
	if err != nil {
		return nil, err
	}
	if err := s.expectEnd(); err != nil {
		return nil, err
	}
	return attrs, nil
}

// ParseKey parses input as a single attribute key.
func ParseKey(input string) (string, error) {
	s := NewScanner(input)
	key, err := s.ScanKey()
	if err != nil {
		return "", err
	}
	if err := s.expectEnd(); err != nil {
		return "", err
	}
	return key, nil
}

// ParseValue parses input as a single quoted attribute value and returns the
// unquoted text.
func ParseValue(input string) (string, error) {
	s := NewScanner(input)
	val, err := s.ScanValue()
	if err != nil {
		return "", err
	}
	if err := s.expectEnd(); err != nil {
		return "", err
	}
	return val, nil
}
