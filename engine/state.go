package engine

// State is a snapshot of every animated property at one instant, keyed by
// target then property. It is built fresh on every query, never mutated in
// place, and safe to hand to multiple renderers.
type State map[string]map[string]Value

func (s State) set(target, property string, v Value) {
	props, ok := s[target]
	if !ok {
		props = make(map[string]Value)
		s[target] = props
	}
	props[property] = v
}

// Get returns the value for target/property, or nil when unset.
func (s State) Get(target, property string) Value {
	if props, ok := s[target]; ok {
		return props[property]
	}
	return nil
}

// BlendStates cross-fades between two computed states at fraction f, blending
// each shared property through Interpolate. Properties present on only one
// side follow the discrete rule: the a side holds until f reaches 1, then the
// b side takes over.
func BlendStates(a, b State, f float64) State {
	out := make(State)
	for target, props := range a {
		for property, av := range props {
			if bv := b.Get(target, property); bv != nil {
				out.set(target, property, Interpolate(av, bv, f))
			} else if f < 1 {
				out.set(target, property, av)
			}
		}
	}
	for target, props := range b {
		for property, bv := range props {
			if a.Get(target, property) == nil && f >= 1 {
				out.set(target, property, bv)
			}
		}
	}
	return out
}
