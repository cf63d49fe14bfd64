// Command pnginfo prints the declared interface of a WGSL shader.
//
// Usage:
//
//	pnginfo [options] <shader.wgsl>
//
// Examples:
//
//	pnginfo shader.wgsl          # Human-readable listing
//	pnginfo -json shader.wgsl    # Machine-readable JSON
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/gogpu/pngine"
	"github.com/gogpu/pngine/shader"
)

var (
	jsonOut = flag.Bool("json", false, "emit JSON")
	version = flag.Bool("version", false, "print version")
)

const pnginfoVersion = "0.1.0-dev"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("pnginfo version %s\n", pnginfoVersion)
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	info := pngine.ScanShader(string(source))

	if *jsonOut {
		printJSON(&info)
	} else {
		printText(&info)
	}

	if !info.Valid() {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", info.Message())
		os.Exit(1)
	}
}

func printText(info *shader.Info) {
	eps := info.EntryPoints()
	fmt.Printf("entry points (%d):\n", len(eps))
	for _, ep := range eps {
		if ep.Stage == shader.StageCompute {
			fmt.Printf("  %-8s %s  workgroup %dx%dx%d\n",
				ep.Stage, ep.Name, ep.Workgroup[0], ep.Workgroup[1], ep.Workgroup[2])
		} else {
			fmt.Printf("  %-8s %s\n", ep.Stage, ep.Name)
		}
	}

	bindings := info.Bindings()
	fmt.Printf("bindings (%d):\n", len(bindings))
	for _, b := range bindings {
		fmt.Printf("  group %d binding %d  %-19s %s: %s\n",
			b.Group, b.Binding, b.Space, b.Name, b.Type)
	}
}

// JSON mirrors of the shader types, with enums rendered as strings.
type jsonEntryPoint struct {
	Name      string    `json:"name"`
	Stage     string    `json:"stage"`
	Workgroup [3]uint16 `json:"workgroup_size"`
}

type jsonBinding struct {
	Name    string `json:"name"`
	Group   uint8  `json:"group"`
	Binding uint8  `json:"binding"`
	Space   string `json:"address_space"`
	Type    string `json:"type,omitempty"`
}

type jsonInfo struct {
	Valid       bool             `json:"valid"`
	Message     string           `json:"message,omitempty"`
	EntryPoints []jsonEntryPoint `json:"entry_points"`
	Bindings    []jsonBinding    `json:"bindings"`
}

func printJSON(info *shader.Info) {
	out := jsonInfo{
		Valid:       info.Valid(),
		Message:     info.Message(),
		EntryPoints: []jsonEntryPoint{},
		Bindings:    []jsonBinding{},
	}
	for _, ep := range info.EntryPoints() {
		out.EntryPoints = append(out.EntryPoints, jsonEntryPoint{
			Name:      ep.Name,
			Stage:     ep.Stage.String(),
			Workgroup: ep.Workgroup,
		})
	}
	for _, b := range info.Bindings() {
		out.Bindings = append(out.Bindings, jsonBinding{
			Name:    b.Name,
			Group:   b.Group,
			Binding: b.Binding,
			Space:   b.Space.String(),
			Type:    b.Type,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: pnginfo [options] <shader.wgsl>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  pnginfo shader.wgsl          List entry points and bindings\n")
	fmt.Fprintf(os.Stderr, "  pnginfo -json shader.wgsl    Emit JSON\n")
}
