package shader

// maxScanSteps bounds the dispatch loop. Every step advances the
// cursor by at least one byte, so the ceiling only triggers on inputs
// longer than it; it guarantees termination regardless of input shape.
const maxScanSteps = 100000

// limitMessage is the diagnostic set when the step ceiling is hit.
const limitMessage = "shader scan aborted: step limit reached"

// Scan extracts the declared interface from WGSL shader source.
//
// The input is consumed in a single forward pass. Text that does not
// match a recognized declaration pattern is skipped; malformed input
// never causes a failure. The result is invalid only if the internal
// step ceiling is reached before the end of the input, in which case
// whatever was recorded up to that point is kept.
func Scan(source string) Info {
	var s scanner
	s.source = source
	s.info.valid = true
	s.run()
	return s.info
}

// scanner holds the cursor and the pending attribute state carried
// between dispatch steps. A fresh scanner is used per Scan call.
type scanner struct {
	source string
	pos    int

	// Attributes seen but not yet attached to a declaration. A fn
	// consumes the pending stage and workgroup size, a var consumes
	// the pending group and binding, and a statement or block
	// boundary discards everything.
	stage      Stage
	hasStage   bool
	group      uint32
	hasGroup   bool
	binding    uint32
	hasBinding bool
	workgroup  [3]uint16

	info Info
}

func (s *scanner) run() {
	for steps := 0; s.pos < len(s.source); steps++ {
		if steps >= maxScanSteps {
			s.info.valid = false
			s.info.message = limitMessage
			return
		}

		c := s.source[s.pos]
		switch {
		case isSpaceByte(c):
			s.pos++

		case c == '/' && s.byteAt(s.pos+1) == '/':
			s.skipLineComment()

		case c == '/' && s.byteAt(s.pos+1) == '*':
			s.skipBlockComment()

		case c == '"':
			s.skipString()

		case c == '@':
			s.attribute()

		case c == ';' || c == '{' || c == '}':
			s.discardPending()
			s.pos++

		case c == 'f' && s.hasStage && s.keywordAt("fn"):
			s.fnDecl()

		case c == 'v' && (s.hasGroup || s.hasBinding) && s.keywordAt("var"):
			s.varDecl()

		default:
			s.pos++
		}
	}
}

// attribute scans the @attribute at the cursor and merges it into the
// pending state. Attributes the scanner has no use for (location,
// builtin, unrecognized names) are consumed and ignored.
func (s *scanner) attribute() {
	attr, next := parseAttribute(s.source, s.pos)
	s.pos = next

	switch attr.kind {
	case attrVertex:
		s.stage, s.hasStage = StageVertex, true
	case attrFragment:
		s.stage, s.hasStage = StageFragment, true
	case attrCompute:
		s.stage, s.hasStage = StageCompute, true
	case attrGroup:
		s.group, s.hasGroup = attr.value, true
	case attrBinding:
		s.binding, s.hasBinding = attr.value, true
	case attrWorkgroupSize:
		s.workgroup = attr.dims
	}
}

// fnDecl records an entry point. The cursor is at the fn keyword and a
// stage attribute is pending.
func (s *scanner) fnDecl() {
	s.pos += len("fn")
	s.skipSpace()

	name := s.readIdent()
	if name != "" {
		ep := EntryPoint{Name: name, Stage: s.stage}
		if s.stage == StageCompute {
			ep.Workgroup = s.workgroup
		}
		s.info.addEntryPoint(ep)
	}

	s.hasStage = false
	s.workgroup = [3]uint16{}
}

// discardPending drops attribute state that never reached a matching
// declaration before a statement or block boundary.
func (s *scanner) discardPending() {
	s.hasStage = false
	s.hasGroup = false
	s.hasBinding = false
	s.group = 0
	s.binding = 0
	s.workgroup = [3]uint16{}
}

// keywordAt reports whether the given keyword starts at the cursor and
// is not the prefix of a longer identifier (so "fn" does not match
// inside "function").
func (s *scanner) keywordAt(kw string) bool {
	end := s.pos + len(kw)
	if end > len(s.source) || s.source[s.pos:end] != kw {
		return false
	}
	return end == len(s.source) || !isIdentByte(s.source[end])
}

// readIdent consumes an identifier at the cursor and returns it,
// truncated to MaxNameLen bytes. Returns "" if the cursor is not at an
// identifier.
func (s *scanner) readIdent() string {
	start := s.pos
	for s.pos < len(s.source) && isIdentByte(s.source[s.pos]) {
		s.pos++
	}
	name := s.source[start:s.pos]
	if len(name) > MaxNameLen {
		name = name[:MaxNameLen]
	}
	return name
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.source) && isSpaceByte(s.source[s.pos]) {
		s.pos++
	}
}

// byteAt returns the byte at index i, or 0 past the end of the input.
func (s *scanner) byteAt(i int) byte {
	if i >= len(s.source) {
		return 0
	}
	return s.source[i]
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '_'
}

func isDigitByte(c byte) bool {
	return c >= '0' && c <= '9'
}
