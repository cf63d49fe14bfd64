// Package shader extracts the declared interface of a WGSL shader.
//
// The scanner reads shader source text in a single bounded pass and
// records two kinds of declarations:
//
//   - Entry points: functions marked @vertex, @fragment, or @compute,
//     with the workgroup size for compute entry points.
//   - Bindings: module-scope var declarations carrying @group and/or
//     @binding attributes, with their address space and type name.
//
// It is not a WGSL parser. It recognizes just enough of the lexical
// structure (comments, string literals, attributes, fn and var
// declarations) to report what a shader exposes to the outside, so that
// a validator can cross-check a compiled PNGB module's command stream
// against the source it was built from. Everything else in the source
// is skipped.
//
// # Usage
//
//	source := `
//	@group(0) @binding(0) var<uniform> params: Params;
//
//	@vertex
//	fn vs_main() -> @builtin(position) vec4<f32> { ... }
//	`
//
//	info := shader.Scan(source)
//	for _, ep := range info.EntryPoints() {
//	    fmt.Println(ep.Name, ep.Stage)
//	}
//	for _, b := range info.Bindings() {
//	    fmt.Println(b.Group, b.Binding, b.Space, b.Name)
//	}
//
// # Bounds
//
// All output storage is fixed-capacity: at most MaxEntryPoints entry
// points and MaxBindings bindings are recorded, and names and type
// names are truncated to MaxNameLen bytes. Declarations beyond a cap
// are dropped silently; the scan itself never fails on malformed
// input. A global step ceiling bounds the work done on any input, and
// hitting it is the only condition that marks a result invalid.
//
// Scan is a pure function: it keeps no state between calls, performs
// no allocation, and is safe to call concurrently.
package shader
