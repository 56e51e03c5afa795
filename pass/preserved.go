package pass

// Preserved marks which cached analysis results remain valid after a
// pass has run. The zero value preserves nothing.
type Preserved struct {
	all  bool
	keys map[Key]struct{}
}

// PreservedAll marks every cached result as still valid. Returned by
// passes that did not mutate the function.
func PreservedAll() Preserved {
	return Preserved{all: true}
}

// PreservedNone marks every cached result as stale.
func PreservedNone() Preserved {
	return Preserved{}
}

// With returns a copy of p that additionally preserves the given keys.
func (p Preserved) With(keys ...Key) Preserved {
	if p.all {
		return p
	}
	out := Preserved{keys: make(map[Key]struct{}, len(p.keys)+len(keys))}
	for k := range p.keys {
		out.keys[k] = struct{}{}
	}
	for _, k := range keys {
		out.keys[k] = struct{}{}
	}
	return out
}

// Preserves reports whether the result cached under k survives.
func (p Preserved) Preserves(k Key) bool {
	if p.all {
		return true
	}
	_, ok := p.keys[k]
	return ok
}

// All reports whether every cached result survives.
func (p Preserved) All() bool {
	return p.all
}
