package fluid

import (
	"fmt"
	"sort"

	"github.com/san-kum/auxi/internal/thermo"
)

// Factory builds a fluid property source at a pressure in Pa.
type Factory func(pressure float64) (thermo.FluidPropertySource, error)

type Registry struct {
	fluids map[string]Factory
}

func NewRegistry() *Registry {
	r := &Registry{
		fluids: make(map[string]Factory),
	}

	r.fluids["air"] = func(p float64) (thermo.FluidPropertySource, error) { return NewAir(p) }

	return r
}

// Register adds or replaces a fluid factory.
func (r *Registry) Register(name string, f Factory) {
	r.fluids[name] = f
}

func (r *Registry) Get(name string, pressure float64) (thermo.FluidPropertySource, error) {
	fn, ok := r.fluids[name]
	if !ok {
		return nil, fmt.Errorf("unknown fluid: %s (available: %v)", name, r.List())
	}
	return fn(pressure)
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.fluids))
	for name := range r.fluids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
