package shader

import "strings"

// varDecl records a binding. The cursor is at the var keyword and at
// least one of group/binding is pending.
func (s *scanner) varDecl() {
	s.pos += len("var")

	space := SpaceUnknown
	s.skipSpace()
	if s.byteAt(s.pos) == '<' {
		space = s.addressSpace()
	}

	s.skipSpace()
	name := s.readIdent()

	typeName := ""
	s.skipSpace()
	if s.byteAt(s.pos) == ':' {
		s.pos++
		s.skipSpace()
		typeName = s.readType()
	}

	if space == SpaceUnknown {
		space = inferSpace(typeName)
	}

	if name != "" {
		s.info.addBinding(Binding{
			Name:    name,
			Group:   uint8(s.group),
			Binding: uint8(s.binding),
			Space:   space,
			Type:    typeName,
		})
	}

	s.hasGroup = false
	s.hasBinding = false
	s.group = 0
	s.binding = 0
}

// addressSpace scans a <space[, access]> qualifier. The cursor is at
// the '<'. Anything other than the recognized uniform/storage forms
// yields SpaceUnknown; the qualifier is stepped over either way.
func (s *scanner) addressSpace() AddressSpace {
	s.pos++
	s.skipSpace()

	space := SpaceUnknown
	switch word := s.readIdent(); word {
	case "uniform":
		space = SpaceUniform
	case "storage":
		space = SpaceStorage
		s.skipSpace()
		if s.byteAt(s.pos) == ',' {
			s.pos++
			s.skipSpace()
			switch s.readIdent() {
			case "read":
				space = SpaceStorageRead
			case "read_write":
				space = SpaceStorageReadWrite
			default:
				space = SpaceUnknown
			}
		}
	}

	for s.pos < len(s.source) && s.source[s.pos] != '>' {
		s.pos++
	}
	if s.pos < len(s.source) {
		s.pos++
	}
	return space
}

// readType captures a type name up to the next ';', ',', '=', or
// newline at zero angle-bracket depth, so generic arguments such as
// texture_2d<f32> are captured whole. Trailing horizontal whitespace
// is trimmed and the result is truncated to MaxNameLen bytes.
func (s *scanner) readType() string {
	start := s.pos
	depth := 0
	for s.pos < len(s.source) {
		c := s.source[s.pos]
		if depth == 0 && (c == ';' || c == ',' || c == '=' || c == '\n') {
			break
		}
		switch c {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
		}
		s.pos++
	}

	name := strings.TrimRight(s.source[start:s.pos], " \t\r")
	if len(name) > MaxNameLen {
		name = name[:MaxNameLen]
	}
	return name
}

// inferSpace guesses the address space from the type name when the
// declaration carried no qualifier. Texture and sampler types are
// never qualified in WGSL, so the type name is the only signal.
func inferSpace(typeName string) AddressSpace {
	switch {
	case strings.HasPrefix(typeName, "texture"):
		return SpaceTexture
	case typeName == "sampler" || strings.HasPrefix(typeName, "sampler_"):
		return SpaceSampler
	}
	return SpaceUnknown
}
