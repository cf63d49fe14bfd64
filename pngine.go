// Package pngine provides the shader-facing half of PNGine animation
// validation.
//
// A PNGine animation ships as a PNGB bytecode module. Playing it back
// means compiling the module, executing its embedded logic to produce
// a stream of resource-creation and draw/dispatch commands, and
// handing that stream to WebGPU. Before any of that runs, a validator
// wants to know whether the command stream is consistent with what the
// module's WGSL shaders actually declare: does the entry point named
// in a pipeline exist at the right stage, is there a binding at the
// group/binding pair a bind group references, and so on.
//
// This package supplies the shader side of that cross-check. It scans
// WGSL source text and reports the declared interface — entry points
// with their stages and workgroup sizes, and resource bindings with
// their group/binding indices, address spaces, and types — without
// parsing the language:
//
//	info := pngine.ScanShader(source)
//	if !info.HasEntryPoint("vs_main", shader.StageVertex) {
//	    // pipeline references a missing entry point
//	}
//
// The scanner itself lives in the shader subpackage; ScanShader is a
// convenience wrapper. Compiling PNGB modules and executing command
// streams are separate concerns and are not part of this module.
package pngine

import "github.com/gogpu/pngine/shader"

// MaxSourceSize is the largest shader source, in bytes, the scanner is
// expected to see. It is advisory: ScanShader does not enforce it, and
// the scan's internal step ceiling bounds the work done on any input.
// Callers feeding untrusted sources should enforce a size limit
// themselves.
const MaxSourceSize = 10 << 20

// ScanShader extracts the declared interface from WGSL shader source.
//
// It never fails: malformed or unrecognized syntax is skipped, and the
// returned Info is valid unless the scan's step ceiling was reached
// before the end of the input. See the shader package for the detailed
// contract.
func ScanShader(source string) shader.Info {
	return shader.Scan(source)
}
