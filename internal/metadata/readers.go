// Package metadata extracts hardware-chemistry attributes from sampled run
// data files. Actual container parsing is delegated to optional reader
// capabilities; when a reader is unavailable the extractor degrades to
// "no chemistry" instead of failing.
package metadata

// AttributeSource exposes named attribute groups of an open container file.
// Group paths are slash-separated relative to the file root.
type AttributeSource interface {
	// Groups returns the top-level group names in file order.
	Groups() []string
	// Attr reads one attribute from a group. The value is returned raw:
	// byte string, string, integer, or float, depending on how the file
	// stores it. ok is false when the group or attribute is absent.
	Attr(group, name string) (value interface{}, ok bool)
}

// Container is an AttributeSource bound to an open file handle.
type Container interface {
	AttributeSource
	Close() error
}

// Fast5Reader opens HDF5-based fast5 containers. Available reports whether
// the capability is usable in this process; callers must check it before
// Open.
type Fast5Reader interface {
	Available() bool
	Open(path string) (Container, error)
}

// RunInfo is the run-level field set of the first record in a pod5 file.
// ContextTags and TrackingID carry the dict-style metadata copied over by
// the fast5-to-pod5 converter; either may be nil.
type RunInfo struct {
	FlowcellProductCode string
	SequencingKit       string
	SampleRate          float64
	ContextTags         map[string]string
	TrackingID          map[string]string
}

// Pod5Reader reads the first record's run info from pod5 containers.
type Pod5Reader interface {
	Available() bool
	FirstRunInfo(path string) (*RunInfo, error)
}

// Registry bundles the reader capabilities, resolved once at process start.
type Registry struct {
	fast5 Fast5Reader
	pod5  Pod5Reader
}

// NewRegistry creates a registry with the given readers. Nil readers are
// replaced by unavailable stubs.
func NewRegistry(fast5 Fast5Reader, pod5 Pod5Reader) *Registry {
	if fast5 == nil {
		fast5 = unavailableFast5{}
	}
	if pod5 == nil {
		pod5 = unavailablePod5{}
	}
	return &Registry{fast5: fast5, pod5: pod5}
}

// Default returns a registry with no native readers wired in. Chemistry
// extraction degrades to absence, matching a deployment without the
// optional container libraries.
func Default() *Registry {
	return NewRegistry(nil, nil)
}

// Fast5Available reports whether fast5 metadata can be read.
func (r *Registry) Fast5Available() bool { return r.fast5.Available() }

// Pod5Available reports whether pod5 metadata can be read.
func (r *Registry) Pod5Available() bool { return r.pod5.Available() }

type unavailableFast5 struct{}

func (unavailableFast5) Available() bool                { return false }
func (unavailableFast5) Open(string) (Container, error) { return nil, errUnavailable }

type unavailablePod5 struct{}

func (unavailablePod5) Available() bool                       { return false }
func (unavailablePod5) FirstRunInfo(string) (*RunInfo, error) { return nil, errUnavailable }
