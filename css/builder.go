// Package css builds CSS selectors programmatically. A Builder accumulates
// fragments of one compound selector under the canonical ordering and
// uniqueness rules, composes compound selectors into complex ones with
// combinators, and renders canonical selector text.
//
// Chains are opened through the package-level entry points:
//
//	css.Element("a").Attr(`href$=".png"`).PseudoClass("focus").Stringify()
//
// yields `a[href$=".png"]:focus`.
package css

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Combinator joins two compound selectors into a complex selector.
// The value is not validated - whatever string is given is rendered
// between the two sides as-is.
type Combinator string

// The four standard CSS combinators.
const (
	Descendant Combinator = " "
	Child      Combinator = ">"
	Adjacent   Combinator = "+"
	Sibling    Combinator = "~"
)

// rank is the fixed position of a fragment kind in the canonical
// compound-selector order. Fragments must be appended in non-decreasing
// rank order; class and pseudo-class are repeatable within their rank.
type rank int

const (
	rankNone rank = iota
	rankElement
	rankID
	rankClass
	rankAttr
	rankPseudoClass
	rankPseudoElement
)

func (r rank) String() string {
	switch r {
	case rankElement:
		return "element"
	case rankID:
		return "id"
	case rankClass:
		return "class"
	case rankAttr:
		return "attribute"
	case rankPseudoClass:
		return "pseudo-class"
	case rankPseudoElement:
		return "pseudo-element"
	default:
		return "none"
	}
}

// combined holds the two sides of a Combine call, rendered eagerly at the
// time of the call.
type combined struct {
	left       string
	combinator Combinator
	right      string
}

// Builder accumulates one compound selector's fragments, or one
// combination's rendered parts, and produces canonical CSS text.
//
// Every fragment method returns the receiver so calls chain. The first
// ordering or uniqueness violation is recorded and the builder stops
// accepting fragments: state stays exactly as it was before the violating
// call, and Err reports the violation. A Builder is not safe for
// concurrent use; each chain owns its builder exclusively.
//
// The zero value is an empty selector and renders to "".
type Builder struct {
	element       string
	id            string
	classes       []string
	attr          string
	pseudoClasses []string
	pseudoElement string

	hasElement       bool
	hasID            bool
	hasAttr          bool
	hasPseudoElement bool

	combined *combined

	lastRank rank
	err      error
}

// Element appends the type selector. It must open the chain (nothing may
// precede it) and may appear only once.
func (b *Builder) Element(tag string) *Builder {
	if b.err != nil {
		return b
	}
	if b.hasElement {
		b.err = fmt.Errorf("element %q: %w", tag, ErrDuplicateFragment)
		return b
	}
	if b.lastRank > rankNone {
		b.err = b.orderViolation(rankElement, tag)
		return b
	}
	b.element = tag
	b.hasElement = true
	b.lastRank = rankElement
	return b
}

// ID appends the id selector (value is given without the leading '#').
// It may appear only once and never after a class, attribute,
// pseudo-class or pseudo-element.
func (b *Builder) ID(value string) *Builder {
	if b.err != nil {
		return b
	}
	if b.hasID {
		b.err = fmt.Errorf("id %q: %w", value, ErrDuplicateFragment)
		return b
	}
	if b.lastRank > rankID {
		b.err = b.orderViolation(rankID, value)
		return b
	}
	b.id = value
	b.hasID = true
	b.lastRank = rankID
	return b
}

// Class appends a class selector (name without the leading '.').
// Classes are repeatable and render in call order.
func (b *Builder) Class(name string) *Builder {
	if b.err != nil {
		return b
	}
	if b.lastRank > rankClass {
		b.err = b.orderViolation(rankClass, name)
		return b
	}
	b.classes = append(b.classes, name)
	b.lastRank = rankClass
	return b
}

// Attr sets the attribute selector content (without brackets). A second
// call replaces the previous content without error - unlike Element and
// ID the attribute slot is overwrite-on-repeat.
func (b *Builder) Attr(content string) *Builder {
	if b.err != nil {
		return b
	}
	if b.lastRank > rankAttr {
		b.err = b.orderViolation(rankAttr, content)
		return b
	}
	b.attr = content
	b.hasAttr = true
	b.lastRank = rankAttr
	return b
}

// PseudoClass appends a pseudo-class (name without the leading ':').
// Pseudo-classes are repeatable and render in call order.
func (b *Builder) PseudoClass(name string) *Builder {
	if b.err != nil {
		return b
	}
	if b.lastRank > rankPseudoClass {
		b.err = b.orderViolation(rankPseudoClass, name)
		return b
	}
	b.pseudoClasses = append(b.pseudoClasses, name)
	b.lastRank = rankPseudoClass
	return b
}

// PseudoElement sets the pseudo-element (name without the leading '::').
// It may appear only once. Being the highest rank it can never be out of
// order, so only the duplicate check applies.
func (b *Builder) PseudoElement(name string) *Builder {
	if b.err != nil {
		return b
	}
	if b.hasPseudoElement {
		b.err = fmt.Errorf("pseudo-element %q: %w", name, ErrDuplicateFragment)
		return b
	}
	b.pseudoElement = name
	b.hasPseudoElement = true
	b.lastRank = rankPseudoElement
	return b
}

// Combine turns the builder into the combination of left and right,
// rendering both sides immediately. The combinator is not validated.
//
// Combine does not freeze or clear the fragment fields: later fragment
// calls still mutate them, but once a combination is stored Stringify
// always renders the combination - the combined form takes precedence.
// Violations recorded on either side carry over so a broken chain is not
// silently laundered by nesting.
func (b *Builder) Combine(left *Builder, combinator Combinator, right *Builder) *Builder {
	b.combined = &combined{
		left:       left.Stringify(),
		combinator: combinator,
		right:      right.Stringify(),
	}
	b.err = multierr.Combine(b.err, left.err, right.err)
	return b
}

// Err reports the first ordering or uniqueness violation recorded on this
// chain, including violations carried over from combined sides, or nil.
func (b *Builder) Err() error {
	return b.err
}

// Stringify renders the canonical selector text. It never fails: rejected
// fragments were never recorded, so the output is always the last valid
// state, and an empty builder renders "". Repeated calls return the same
// string.
//
// A stored combination renders as left + " " + combinator + " " + right
// with fixed single spaces; a literal-space combinator therefore renders
// three consecutive spaces. Otherwise fragments render in canonical order
// regardless of anything else.
func (b *Builder) Stringify() string {
	if b.combined != nil {
		return b.combined.left + " " + string(b.combined.combinator) + " " + b.combined.right
	}

	var sb strings.Builder
	if b.hasElement {
		sb.WriteString(b.element)
	}
	if b.hasID {
		sb.WriteByte('#')
		sb.WriteString(b.id)
	}
	for _, name := range b.classes {
		sb.WriteByte('.')
		sb.WriteString(name)
	}
	if b.hasAttr {
		sb.WriteByte('[')
		sb.WriteString(b.attr)
		sb.WriteByte(']')
	}
	for _, name := range b.pseudoClasses {
		sb.WriteByte(':')
		sb.WriteString(name)
	}
	if b.hasPseudoElement {
		sb.WriteString("::")
		sb.WriteString(b.pseudoElement)
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (b *Builder) String() string {
	return b.Stringify()
}

func (b *Builder) orderViolation(r rank, value string) error {
	return fmt.Errorf("%s %q after %s: %w", r, value, b.lastRank, ErrOrderViolation)
}
