package backtrack

// Captures is the mutable capture-group array for one top-level match
// attempt. Index i (0-based here, 1-based for callers via Get) holds the
// substring most recently assigned by the group whose opening paren is the
// (i+1)-th unescaped `(` in the pattern. It starts all-unset and is
// restored to a prior snapshot whenever a backtracking path fails, so that
// no partial assignment from an abandoned path is ever observable by the
// caller of that path.
type Captures struct {
	vals []string
	set  []bool
}

// NewCaptures allocates a capture array with n slots, all unset.
func NewCaptures(n int) *Captures {
	return &Captures{vals: make([]string, n), set: make([]bool, n)}
}

// Len returns the number of capture slots (the number of capturing groups
// in the compiled pattern).
func (c *Captures) Len() int { return len(c.vals) }

// Get returns the substring captured by group index (1-based) and whether
// it was ever assigned. A Backref to an index outside [1, Len()], or to a
// group that never matched, reports ok=false.
func (c *Captures) Get(index int) (value string, ok bool) {
	if index < 1 || index > len(c.vals) {
		return "", false
	}
	i := index - 1
	if !c.set[i] {
		return "", false
	}
	return c.vals[i], true
}

// assign overwrites slot index (0-based) with value, marking it set.
func (c *Captures) assign(index int, value string) {
	c.vals[index] = value
	c.set[index] = true
}

// snapshot copies the current state for later restore. Taken before trying
// a group's alternatives, or a fresh group repetition, so that a failed
// attempt can be rolled back.
func (c *Captures) snapshot() (vals []string, set []bool) {
	vals = append([]string(nil), c.vals...)
	set = append([]bool(nil), c.set...)
	return vals, set
}

// restore undoes everything since the matching snapshot call.
func (c *Captures) restore(vals []string, set []bool) {
	copy(c.vals, vals)
	copy(c.set, set)
}
