package record

// Dedup tracks (title, author, email) keys already emitted during one parse
// invocation. It is never shared across invocations.
type Dedup struct {
	seen map[[3]string]struct{}
}

// NewDedup creates an empty dedup set.
func NewDedup() *Dedup {
	return &Dedup{seen: make(map[[3]string]struct{})}
}

// Add reports whether the (title, author, email) key was new, and marks it seen.
func (d *Dedup) Add(title, author, email string) bool {
	key := [3]string{title, author, email}
	if _, ok := d.seen[key]; ok {
		return false
	}
	d.seen[key] = struct{}{}
	return true
}

// Len returns the number of distinct keys seen.
func (d *Dedup) Len() int {
	return len(d.seen)
}
