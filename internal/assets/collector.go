package assets

// Bundle maps reference names to resolved assets in first-reference order.
type Bundle struct {
	names  []string
	byName map[string]Asset
}

// Names returns the reference names in the order they were first resolved.
func (b *Bundle) Names() []string {
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out
}

// Get returns the asset for a reference name.
func (b *Bundle) Get(name string) (Asset, bool) {
	asset, ok := b.byName[name]
	return asset, ok
}

// Len reports the number of resolved assets.
func (b *Bundle) Len() int {
	return len(b.names)
}

// Collector gathers assets referenced by a script, memoizing each name so a
// reference encoded twice yields one bundle entry and one filesystem lookup.
type Collector struct {
	bundle     *Bundle
	misses     map[string]struct{}
	unresolved []string
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{
		bundle: &Bundle{byName: make(map[string]Asset)},
		misses: make(map[string]struct{}),
	}
}

// Add resolves name under dir unless the name was already seen. Empty names
// are ignored. Returns true when the name is resolvable.
func (c *Collector) Add(dir, name string) bool {
	if name == "" {
		return false
	}
	if _, ok := c.bundle.byName[name]; ok {
		return true
	}
	if _, ok := c.misses[name]; ok {
		return false
	}
	asset, ok := Resolve(dir, name)
	if !ok {
		c.misses[name] = struct{}{}
		c.unresolved = append(c.unresolved, name)
		return false
	}
	c.bundle.names = append(c.bundle.names, name)
	c.bundle.byName[name] = asset
	return true
}

// Bundle returns the collected assets.
func (c *Collector) Bundle() *Bundle {
	return c.bundle
}

// Unresolved returns the names that matched no file, in first-reference
// order, each reported once.
func (c *Collector) Unresolved() []string {
	out := make([]string, len(c.unresolved))
	copy(out, c.unresolved)
	return out
}
