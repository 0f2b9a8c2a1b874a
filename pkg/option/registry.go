package option

import "sort"

// Group is a named, ordered list of options. Groups exist so that help text
// can cluster related options under a heading; parsing itself ignores group
// boundaries.
type Group struct {
	name    string
	options []*Option
}

// Name returns the group's heading, "" for the ungrouped default.
func (g *Group) Name() string { return g.name }

// Options returns the group's options in registration order.
func (g *Group) Options() []*Option { return g.options }

// Empty reports whether the group holds no options.
func (g *Group) Empty() bool { return len(g.options) == 0 }

// Registry is an ordered collection of option descriptors, arranged in
// groups. Registration order is stable: each option receives a sequential
// index that remains valid for the registry's lifetime, which is what parse
// results use to refer back to descriptors.
//
// Duplicate short or long names are accepted; lookups return the first
// registered match. A Registry is safe for concurrent readers once
// registration has finished, but registration must not race with parsing.
type Registry struct {
	groups []*Group
	flat   []*Option
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers opt in the ungrouped default group and returns it.
func (r *Registry) Add(opt *Option) *Option {
	return r.AddToGroup("", opt)
}

// AddToGroup registers opt under the named group, creating the group if
// needed, and returns the option.
func (r *Registry) AddToGroup(groupName string, opt *Option) *Option {
	g := r.Group(groupName)
	g.options = append(g.options, opt)
	r.flat = append(r.flat, opt)
	return opt
}

// Group returns the group with the given name, creating it at the end of the
// group list if it does not exist yet. Recently added groups are checked
// first since callers tend to keep adding to the newest group.
func (r *Registry) Group(name string) *Group {
	for i := len(r.groups) - 1; i >= 0; i-- {
		if r.groups[i].name == name {
			return r.groups[i]
		}
	}
	g := &Group{name: name}
	r.groups = append(r.groups, g)
	return g
}

// Groups returns all groups in creation order.
func (r *Registry) Groups() []*Group { return r.groups }

// Len returns the number of registered options.
func (r *Registry) Len() int { return len(r.flat) }

// At returns the option with the given registration index. The index is the
// one reported by IndexOf and recorded in parse results.
func (r *Registry) At(index int) *Option { return r.flat[index] }

// IndexOf returns opt's registration index, or -1 if opt is not registered.
func (r *Registry) IndexOf(opt *Option) int {
	for i, o := range r.flat {
		if o == opt {
			return i
		}
	}
	return -1
}

// LookupLong returns the first registered option with the given long name,
// along with its registration index. The second return is -1 when no option
// matches.
func (r *Registry) LookupLong(name string) (*Option, int) {
	if name == "" {
		return nil, -1
	}
	for i, o := range r.flat {
		if o.longName == name {
			return o, i
		}
	}
	return nil, -1
}

// LookupShort returns the first registered option with the given short name,
// along with its registration index. The second return is -1 when no option
// matches.
func (r *Registry) LookupShort(name rune) (*Option, int) {
	if name == 0 {
		return nil, -1
	}
	for i, o := range r.flat {
		if o.shortName == name {
			return o, i
		}
	}
	return nil, -1
}

// SortGroups orders groups alphabetically by name. Registration indices are
// unaffected; only help-text presentation changes.
func (r *Registry) SortGroups() {
	sort.SliceStable(r.groups, func(i, j int) bool {
		return r.groups[i].name < r.groups[j].name
	})
}

// SortOptions orders the options within each group by long name, falling back
// to short name for options without one. Registration indices are unaffected.
func (r *Registry) SortOptions() {
	for _, g := range r.groups {
		sort.SliceStable(g.options, func(i, j int) bool {
			return sortKey(g.options[i]) < sortKey(g.options[j])
		})
	}
}

func sortKey(o *Option) string {
	if o.longName != "" {
		return o.longName
	}
	return string(o.shortName)
}
