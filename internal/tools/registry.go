package tools

import (
	"fmt"
	"sort"
	"strings"

	"filevora/internal/services"
)

// Registry exposes the tool catalog with stable lookups by id and category.
type Registry struct {
	byID  map[string]*Descriptor
	order []string
}

// NewRegistry builds a registry from the built-in catalog. It fails when the
// catalog itself is malformed, which indicates a programming error rather
// than user input.
func NewRegistry() (*Registry, error) {
	return newRegistry(catalog)
}

func newRegistry(descriptors []Descriptor) (*Registry, error) {
	reg := &Registry{byID: make(map[string]*Descriptor, len(descriptors))}
	for i := range descriptors {
		desc := descriptors[i]
		if err := desc.validate(); err != nil {
			return nil, err
		}
		if _, exists := reg.byID[desc.ID]; exists {
			return nil, services.Wrap(services.ErrConfiguration, desc.ID, "registry", fmt.Sprintf("duplicate tool id %q", desc.ID), nil)
		}
		reg.byID[desc.ID] = &desc
		reg.order = append(reg.order, desc.ID)
	}
	return reg, nil
}

func (d Descriptor) validate() error {
	if d.ID == "" {
		return services.Wrap(services.ErrConfiguration, d.ID, "registry", "tool id must not be empty", nil)
	}
	if d.Name == "" {
		return services.Wrap(services.ErrConfiguration, d.ID, "registry", "tool name must not be empty", nil)
	}
	switch {
	case strings.HasPrefix(d.Endpoint, "/process/") && len(d.Endpoint) > len("/process/"):
	case d.Endpoint == EndpointComingSoon:
	case d.Endpoint == EndpointInteractive:
	default:
		return services.Wrap(services.ErrConfiguration, d.ID, "registry", fmt.Sprintf("tool %s has invalid endpoint %q", d.ID, d.Endpoint), nil)
	}
	return nil
}

// Lookup returns the descriptor for id. The boolean reports whether the tool
// exists.
func (r *Registry) Lookup(id string) (Descriptor, bool) {
	desc, ok := r.byID[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return Descriptor{}, false
	}
	return *desc, true
}

// All returns every descriptor in catalog order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.byID[id])
	}
	return out
}

// ByCategory returns the descriptors belonging to category, in catalog order.
func (r *Registry) ByCategory(category Category) []Descriptor {
	var out []Descriptor
	for _, id := range r.order {
		if r.byID[id].Category == category {
			out = append(out, *r.byID[id])
		}
	}
	return out
}

// Categories returns the distinct categories present in the registry, sorted
// alphabetically.
func (r *Registry) Categories() []Category {
	seen := make(map[Category]struct{})
	var out []Category
	for _, id := range r.order {
		cat := r.byID[id].Category
		if _, ok := seen[cat]; ok {
			continue
		}
		seen[cat] = struct{}{}
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len reports the number of registered tools.
func (r *Registry) Len() int {
	return len(r.order)
}
