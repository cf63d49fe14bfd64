package shader

// Lexical skip helpers. Each is a single forward scan with no failure
// mode: an unterminated construct consumes to end of input.

// skipLineComment skips from // to the next newline. The newline
// itself is left for the dispatch loop.
func (s *scanner) skipLineComment() {
	s.pos += 2
	for s.pos < len(s.source) && s.source[s.pos] != '\n' {
		s.pos++
	}
}

// skipBlockComment skips from /* to the matching */, tracking nesting
// depth so nested block comments are fully consumed.
func (s *scanner) skipBlockComment() {
	s.pos += 2
	depth := 1
	for depth > 0 && s.pos < len(s.source) {
		switch {
		case s.source[s.pos] == '/' && s.byteAt(s.pos+1) == '*':
			s.pos += 2
			depth++
		case s.source[s.pos] == '*' && s.byteAt(s.pos+1) == '/':
			s.pos += 2
			depth--
		default:
			s.pos++
		}
	}
}

// skipString skips a double-quoted string literal, treating any
// backslash-prefixed byte as an escaped pair.
func (s *scanner) skipString() {
	s.pos++
	for s.pos < len(s.source) {
		switch s.source[s.pos] {
		case '\\':
			s.pos += 2
		case '"':
			s.pos++
			return
		default:
			s.pos++
		}
	}
}
