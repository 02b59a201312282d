package palette

import (
	"sort"

	"github.com/san-kum/gridsketch/internal/random"
)

// Registry holds selectors by name. Adding a selector with an existing name
// replaces it.
type Registry struct {
	order     []string
	selectors map[string]Selector
}

func NewRegistry(selectors ...Selector) *Registry {
	r := &Registry{selectors: make(map[string]Selector)}
	r.Add(selectors...)
	return r
}

func (r *Registry) Add(selectors ...Selector) {
	for _, s := range selectors {
		if s == nil {
			continue
		}
		if _, ok := r.selectors[s.Name()]; !ok {
			r.order = append(r.order, s.Name())
		}
		r.selectors[s.Name()] = s
	}
}

func (r *Registry) Get(name string) (Selector, bool) {
	s, ok := r.selectors[name]
	return s, ok
}

func (r *Registry) Len() int { return len(r.order) }

// Names returns registered names sorted alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	sort.Strings(names)
	return names
}

// Random picks one selector uniformly in registration order. It reports false
// when the registry is empty.
func (r *Registry) Random(src random.Source) (Selector, bool) {
	if len(r.order) == 0 {
		return nil, false
	}
	return r.selectors[r.order[src.Int(0, len(r.order)-1)]], true
}
