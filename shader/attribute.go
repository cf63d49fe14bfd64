package shader

import "math"

// attrKind identifies the attributes the scanner cares about. Stage
// attributes mark the following fn as an entry point; group and
// binding mark the following var as a binding. The rest are recognized
// only so their argument lists can be stepped over.
type attrKind uint8

const (
	attrUnknown attrKind = iota
	attrVertex
	attrFragment
	attrCompute
	attrGroup
	attrBinding
	attrLocation
	attrWorkgroupSize
	attrBuiltin
)

// attribute is the parsed form of one @name(args) occurrence.
type attribute struct {
	kind attrKind

	// value holds the single integer argument of group, binding, and
	// location attributes.
	value uint32

	// dims holds the workgroup_size dimensions. Omitted trailing
	// dimensions stay 0.
	dims [3]uint16
}

// parseAttribute scans the attribute starting at pos, which must point
// at the '@'. It returns the parsed attribute and the index just past
// it, including any parenthesized argument list. An attribute with no
// argument list is still recognized, with zero values.
func parseAttribute(source string, pos int) (attribute, int) {
	i := pos + 1
	start := i
	for i < len(source) && isIdentByte(source[i]) {
		i++
	}

	var attr attribute
	switch source[start:i] {
	case "vertex":
		attr.kind = attrVertex
		return attr, i
	case "fragment":
		attr.kind = attrFragment
		return attr, i
	case "compute":
		attr.kind = attrCompute
		return attr, i
	case "group":
		attr.kind = attrGroup
	case "binding":
		attr.kind = attrBinding
	case "location":
		attr.kind = attrLocation
	case "workgroup_size":
		attr.kind = attrWorkgroupSize
	case "builtin":
		attr.kind = attrBuiltin
	default:
		attr.kind = attrUnknown
	}

	// Optional argument list. Without one the attribute keeps its
	// zero values.
	j := i
	for j < len(source) && isSpaceByte(source[j]) {
		j++
	}
	if j >= len(source) || source[j] != '(' {
		return attr, i
	}
	i = j + 1

	switch attr.kind {
	case attrGroup, attrBinding, attrLocation:
		i = skipSpaceAt(source, i)
		attr.value, i = scanUint(source, i)

	case attrWorkgroupSize:
		for d := 0; d < 3; d++ {
			i = skipSpaceAt(source, i)
			var v uint32
			v, i = scanUint(source, i)
			attr.dims[d] = uint16(min(v, math.MaxUint16))
			i = skipSpaceAt(source, i)
			if i >= len(source) || source[i] != ',' {
				break
			}
			i++
		}
	}

	// Step over the rest of the argument list. Attribute arguments do
	// not contain parentheses, so no nesting is tracked; an
	// unterminated list consumes to end of input.
	for i < len(source) && source[i] != ')' {
		i++
	}
	if i < len(source) {
		i++
	}
	return attr, i
}

// scanUint reads a run of decimal digits starting at pos. The value
// saturates at MaxUint32 rather than wrapping, so an absurdly long
// digit run stays out of range instead of aliasing a small index.
func scanUint(source string, pos int) (uint32, int) {
	var v uint32
	i := pos
	for i < len(source) && isDigitByte(source[i]) {
		d := uint32(source[i] - '0')
		if v > (math.MaxUint32-d)/10 {
			v = math.MaxUint32
		} else {
			v = v*10 + d
		}
		i++
	}
	return v, i
}

func skipSpaceAt(source string, pos int) int {
	for pos < len(source) && isSpaceByte(source[pos]) {
		pos++
	}
	return pos
}
