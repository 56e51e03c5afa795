package pass

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/btree"
)

// ErrUnknownPass is returned when no registrant recognizes a name in a
// pipeline description.
var ErrUnknownPass = errors.New("unknown pass")

// Options carries construction-time configuration handed to builders.
type Options struct {
	// Out is the sink passes write their diagnostic output to.
	Out io.Writer
}

// Builder constructs a pass from options. Bound to a name via a
// [Registry] entry.
type Builder func(opts Options) Pass

// Registrant is the host-side registration callback: given a name from
// a pipeline description and the pipeline under construction, it either
// appends the corresponding pass and returns true, or declines with
// false so the next registrant in the chain can try. Declining is not
// an error.
type Registrant func(name string, pm *Manager) bool

// Info identifies a registered pass.
type Info struct {
	Name    string
	Version string
}

type regEntry struct {
	version string
	build   Builder
}

// Registry maps pass names to constructors. Entries are held in name
// order so listings are deterministic.
type Registry struct {
	entries btree.Map[string, regEntry]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register binds a name and version to a builder. A later registration
// under the same name replaces the earlier one.
func (r *Registry) Register(name, version string, b Builder) {
	r.entries.Set(name, regEntry{version: version, build: b})
}

// Lookup returns the builder registered under name.
func (r *Registry) Lookup(name string) (Builder, bool) {
	e, ok := r.entries.Get(name)
	if !ok {
		return nil, false
	}
	return e.build, true
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.entries.Len())
	r.entries.Scan(func(name string, _ regEntry) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Entries returns name and version for every registration, sorted by name.
func (r *Registry) Entries() []Info {
	infos := make([]Info, 0, r.entries.Len())
	r.entries.Scan(func(name string, e regEntry) bool {
		infos = append(infos, Info{Name: name, Version: e.version})
		return true
	})
	return infos
}

// Registrant adapts the registry into a registration callback. Passes
// are built with opts at resolution time.
func (r *Registry) Registrant(opts Options) Registrant {
	return func(name string, pm *Manager) bool {
		b, ok := r.Lookup(name)
		if !ok {
			return false
		}
		pm.Add(b(opts))
		return true
	}
}

// ParsePipeline resolves a comma-separated pipeline description into a
// pipeline. Each name is offered to the registrants in order; the first
// to recognize it appends the pass. A name no registrant recognizes
// yields an error wrapping [ErrUnknownPass].
func ParsePipeline(text string, registrants ...Registrant) (*Manager, error) {
	pm := NewManager()

	for _, name := range strings.Split(text, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		matched := false
		for _, reg := range registrants {
			if reg(name, pm) {
				matched = true
				break
			}
		}
		if !matched {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPass, name)
		}
	}

	return pm, nil
}
