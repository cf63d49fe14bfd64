package shader

// Capacity limits for a single scan. These are part of the contract:
// declarations beyond MaxEntryPoints or MaxBindings are dropped
// silently, and names or type names longer than MaxNameLen bytes are
// truncated. Neither condition invalidates the result.
const (
	MaxEntryPoints = 16
	MaxBindings    = 32
	MaxNameLen     = 64
)

// Stage represents a shader pipeline stage.
type Stage uint8

const (
	StageVertex Stage = iota
	StageFragment
	StageCompute
)

// String returns the WGSL attribute name for the stage.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageCompute:
		return "compute"
	default:
		return "unknown"
	}
}

// AddressSpace classifies where a binding's resource lives and how the
// shader may access it.
type AddressSpace uint8

const (
	// SpaceUnknown is used when the var declaration has no address
	// space qualifier and none can be inferred from the type name.
	SpaceUnknown AddressSpace = iota

	// SpaceUniform corresponds to var<uniform>.
	SpaceUniform

	// SpaceStorage corresponds to var<storage> with no access mode.
	SpaceStorage

	// SpaceStorageRead corresponds to var<storage, read>.
	SpaceStorageRead

	// SpaceStorageReadWrite corresponds to var<storage, read_write>.
	SpaceStorageReadWrite

	// SpaceTexture is inferred from texture_* type names.
	SpaceTexture

	// SpaceSampler is inferred from sampler and sampler_* type names.
	SpaceSampler
)

// String returns a readable name for the address space.
func (a AddressSpace) String() string {
	switch a {
	case SpaceUniform:
		return "uniform"
	case SpaceStorage:
		return "storage"
	case SpaceStorageRead:
		return "storage(read)"
	case SpaceStorageReadWrite:
		return "storage(read_write)"
	case SpaceTexture:
		return "texture"
	case SpaceSampler:
		return "sampler"
	default:
		return "unknown"
	}
}

// EntryPoint is a function declared with a stage attribute.
type EntryPoint struct {
	Name  string
	Stage Stage

	// Workgroup holds the @workgroup_size dimensions for compute
	// entry points. Zero for vertex and fragment stages.
	Workgroup [3]uint16
}

// Binding is a module-scope var declaration carrying @group and/or
// @binding attributes.
type Binding struct {
	Name    string
	Group   uint8
	Binding uint8
	Space   AddressSpace

	// Type is the declared type name, including generic arguments
	// such as texture_2d<f32>. Empty if the declaration had no type
	// annotation.
	Type string
}

// Info is the declared interface of a scanned shader. It is returned
// by value from Scan and is not modified afterwards.
type Info struct {
	entryPoints  [MaxEntryPoints]EntryPoint
	entryCount   int
	bindings     [MaxBindings]Binding
	bindingCount int

	valid   bool
	message string
}

// Valid reports whether the scan consumed the whole input. It is false
// only when the step ceiling was hit first; the recorded declarations
// are still available in that case.
func (in *Info) Valid() bool { return in.valid }

// Message returns the diagnostic set when Valid is false, or "".
func (in *Info) Message() string { return in.message }

// EntryPoints returns the recorded entry points in source order.
func (in *Info) EntryPoints() []EntryPoint {
	return in.entryPoints[:in.entryCount]
}

// Bindings returns the recorded bindings in source order.
func (in *Info) Bindings() []Binding {
	return in.bindings[:in.bindingCount]
}

// HasEntryPoint reports whether an entry point with the given name and
// stage was recorded.
func (in *Info) HasEntryPoint(name string, stage Stage) bool {
	for i := 0; i < in.entryCount; i++ {
		if in.entryPoints[i].Name == name && in.entryPoints[i].Stage == stage {
			return true
		}
	}
	return false
}

// FindEntryPoint returns the first entry point with the given name,
// regardless of stage.
func (in *Info) FindEntryPoint(name string) (EntryPoint, bool) {
	for i := 0; i < in.entryCount; i++ {
		if in.entryPoints[i].Name == name {
			return in.entryPoints[i], true
		}
	}
	return EntryPoint{}, false
}

// FindBinding returns the first binding at the given group and binding
// indices.
func (in *Info) FindBinding(group, binding uint8) (Binding, bool) {
	for i := 0; i < in.bindingCount; i++ {
		if in.bindings[i].Group == group && in.bindings[i].Binding == binding {
			return in.bindings[i], true
		}
	}
	return Binding{}, false
}

func (in *Info) addEntryPoint(ep EntryPoint) {
	if in.entryCount >= MaxEntryPoints {
		return
	}
	in.entryPoints[in.entryCount] = ep
	in.entryCount++
}

func (in *Info) addBinding(b Binding) {
	if in.bindingCount >= MaxBindings {
		return
	}
	in.bindings[in.bindingCount] = b
	in.bindingCount++
}
