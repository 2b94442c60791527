package css

// Package-level entry points. Each one allocates a fresh Builder and
// delegates the first call to it, so every chain starts from a clean
// state and no state is shared between chains.

// Element opens a chain with a type selector.
func Element(tag string) *Builder {
	return new(Builder).Element(tag)
}

// ID opens a chain with an id selector.
func ID(value string) *Builder {
	return new(Builder).ID(value)
}

// Class opens a chain with a class selector.
func Class(name string) *Builder {
	return new(Builder).Class(name)
}

// Attr opens a chain with an attribute selector.
func Attr(content string) *Builder {
	return new(Builder).Attr(content)
}

// PseudoClass opens a chain with a pseudo-class.
func PseudoClass(name string) *Builder {
	return new(Builder).PseudoClass(name)
}

// PseudoElement opens a chain with a pseudo-element.
func PseudoElement(name string) *Builder {
	return new(Builder).PseudoElement(name)
}

// Combine opens a chain that joins left and right with the given
// combinator.
func Combine(left *Builder, combinator Combinator, right *Builder) *Builder {
	return new(Builder).Combine(left, combinator, right)
}
