package shader

import (
	"math"
	"testing"
)

func TestParseAttributeKinds(t *testing.T) {
	tests := []struct {
		input string
		kind  attrKind
		value uint32
	}{
		{"@vertex", attrVertex, 0},
		{"@fragment", attrFragment, 0},
		{"@compute", attrCompute, 0},
		{"@group(2)", attrGroup, 2},
		{"@binding(7)", attrBinding, 7},
		{"@location(3)", attrLocation, 3},
		{"@builtin(position)", attrBuiltin, 0},
		{"@interpolate(flat)", attrUnknown, 0},
		{"@invariant", attrUnknown, 0},
		{"@must_use", attrUnknown, 0},
	}

	for _, tt := range tests {
		attr, next := parseAttribute(tt.input, 0)
		if attr.kind != tt.kind {
			t.Errorf("%s: expected kind %d, got %d", tt.input, tt.kind, attr.kind)
		}
		if attr.value != tt.value {
			t.Errorf("%s: expected value %d, got %d", tt.input, tt.value, attr.value)
		}
		if next != len(tt.input) {
			t.Errorf("%s: expected cursor at %d, got %d", tt.input, len(tt.input), next)
		}
	}
}

func TestParseAttributeWorkgroupSize(t *testing.T) {
	tests := []struct {
		input string
		dims  [3]uint16
	}{
		{"@workgroup_size(8, 8, 4)", [3]uint16{8, 8, 4}},
		{"@workgroup_size(64)", [3]uint16{64, 0, 0}},
		{"@workgroup_size(16, 2)", [3]uint16{16, 2, 0}},
		{"@workgroup_size( 1 , 2 , 3 )", [3]uint16{1, 2, 3}},
		{"@workgroup_size()", [3]uint16{0, 0, 0}},
		{"@workgroup_size", [3]uint16{0, 0, 0}},
		{"@workgroup_size(70000)", [3]uint16{math.MaxUint16, 0, 0}},
	}

	for _, tt := range tests {
		attr, _ := parseAttribute(tt.input, 0)
		if attr.kind != attrWorkgroupSize {
			t.Errorf("%s: expected workgroup_size kind, got %d", tt.input, attr.kind)
		}
		if attr.dims != tt.dims {
			t.Errorf("%s: expected dims %v, got %v", tt.input, tt.dims, attr.dims)
		}
	}
}

func TestParseAttributeMissingArguments(t *testing.T) {
	// No parenthesized list: still recognized, with zero values.
	attr, next := parseAttribute("@group var", 0)
	if attr.kind != attrGroup || attr.value != 0 {
		t.Errorf("Expected group attribute with value 0, got kind %d value %d", attr.kind, attr.value)
	}
	if next != len("@group") {
		t.Errorf("Expected cursor just past the name, got %d", next)
	}
}

func TestParseAttributeWhitespaceBeforeArguments(t *testing.T) {
	attr, next := parseAttribute("@group ( 4 )", 0)
	if attr.kind != attrGroup || attr.value != 4 {
		t.Errorf("Expected group 4, got kind %d value %d", attr.kind, attr.value)
	}
	if next != len("@group ( 4 )") {
		t.Errorf("Expected cursor past the close paren, got %d", next)
	}
}

func TestParseAttributeSaturatingValue(t *testing.T) {
	attr, _ := parseAttribute("@binding(99999999999999999999999999)", 0)
	if attr.value != math.MaxUint32 {
		t.Errorf("Expected saturated value %d, got %d", uint32(math.MaxUint32), attr.value)
	}
}

func TestParseAttributeUnterminatedArguments(t *testing.T) {
	attr, next := parseAttribute("@group(1", 0)
	if attr.kind != attrGroup || attr.value != 1 {
		t.Errorf("Expected group 1, got kind %d value %d", attr.kind, attr.value)
	}
	if next != len("@group(1") {
		t.Errorf("Unterminated list should consume to end of input, got %d", next)
	}
}

func TestParseAttributeBareAt(t *testing.T) {
	// A lone '@' must still advance the cursor.
	attr, next := parseAttribute("@", 0)
	if attr.kind != attrUnknown {
		t.Errorf("Expected unknown kind, got %d", attr.kind)
	}
	if next != 1 {
		t.Errorf("Expected cursor at 1, got %d", next)
	}
}

func TestScanUintSaturation(t *testing.T) {
	tests := []struct {
		input string
		value uint32
		end   int
	}{
		{"0", 0, 1},
		{"42", 42, 2},
		{"4294967295", math.MaxUint32, 10},
		{"4294967296", math.MaxUint32, 10},
		{"99999999999999999999", math.MaxUint32, 20},
		{"12abc", 12, 2},
		{"", 0, 0},
	}

	for _, tt := range tests {
		v, end := scanUint(tt.input, 0)
		if v != tt.value || end != tt.end {
			t.Errorf("scanUint(%q): expected (%d, %d), got (%d, %d)", tt.input, tt.value, tt.end, v, end)
		}
	}
}
