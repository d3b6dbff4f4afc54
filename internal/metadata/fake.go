package metadata

// In-memory reader implementations used by tests and simulation mode.
// Real container parsing needs the optional HDF5/pod5 libraries; these
// fakes let the extraction chains run without them.

// FakeContainer is an in-memory AttributeSource. Attrs is keyed by
// "group/sub" path, then attribute name.
type FakeContainer struct {
	GroupList []string
	Attrs     map[string]map[string]interface{}
	Closed    bool
}

func (c *FakeContainer) Groups() []string { return c.GroupList }

func (c *FakeContainer) Attr(group, name string) (interface{}, bool) {
	attrs, ok := c.Attrs[group]
	if !ok {
		return nil, false
	}
	v, ok := attrs[name]
	return v, ok
}

func (c *FakeContainer) Close() error {
	c.Closed = true
	return nil
}

// FakeFast5Reader serves FakeContainers by path.
type FakeFast5Reader struct {
	Files map[string]*FakeContainer
	// OpenCount tracks Open calls per path, for idempotence checks.
	OpenCount map[string]int
}

func (r *FakeFast5Reader) Available() bool { return true }

func (r *FakeFast5Reader) Open(path string) (Container, error) {
	if r.OpenCount == nil {
		r.OpenCount = make(map[string]int)
	}
	r.OpenCount[path]++
	c, ok := r.Files[path]
	if !ok {
		return nil, errUnavailable
	}
	return c, nil
}

// FakePod5Reader serves RunInfo values by path.
type FakePod5Reader struct {
	Files map[string]*RunInfo
}

func (r *FakePod5Reader) Available() bool { return true }

func (r *FakePod5Reader) FirstRunInfo(path string) (*RunInfo, error) {
	info, ok := r.Files[path]
	if !ok {
		return nil, errUnavailable
	}
	return info, nil
}
