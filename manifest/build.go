package manifest

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssel/css"
)

// Built is one successfully rendered manifest rule.
type Built struct {
	Name     string `yaml:"name" json:"name"`
	Selector string `yaml:"selector" json:"selector"`
}

// Builder renders manifest documents into selector text.
type Builder struct {
	log *zap.Logger
}

// NewBuilder creates a manifest builder.
func NewBuilder(log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{log: log.Named("manifest")}
}

// Build renders every rule of the document in order. Failing rules do not
// stop the batch: their errors are accumulated and returned alongside the
// successfully built selectors.
func (b *Builder) Build(doc *Document) ([]Built, error) {
	var (
		out  []Built
		errs error
	)
	for i := range doc.Selectors {
		rule := &doc.Selectors[i]

		sel := buildNode(&rule.Node)
		if err := sel.Err(); err != nil {
			b.log.Debug("Selector rejected", zap.String("name", rule.Name), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("selector %q: %w", rule.Name, err))
			continue
		}

		text := sel.Stringify()
		if text == "" {
			b.log.Debug("Selector is empty", zap.String("name", rule.Name))
			errs = multierr.Append(errs, fmt.Errorf("selector %q renders empty", rule.Name))
			continue
		}

		b.log.Debug("Selector built", zap.String("name", rule.Name), zap.String("selector", text))
		out = append(out, Built{Name: rule.Name, Selector: text})
	}
	return out, errs
}

// buildNode translates a manifest node into a selector chain. Fragment
// fields are appended in canonical rank order, so a structurally valid
// node can never trip the ordering rules.
func buildNode(n *Node) *css.Builder {
	if n.Combine != nil {
		return css.Combine(
			buildNode(n.Combine.Left),
			css.Combinator(n.Combine.Combinator),
			buildNode(n.Combine.Right),
		)
	}

	b := new(css.Builder)
	if n.Element != "" {
		b.Element(n.Element)
	}
	if n.ID != "" {
		b.ID(n.ID)
	}
	for _, name := range n.Classes {
		b.Class(name)
	}
	if n.Attr != "" {
		b.Attr(n.Attr)
	}
	for _, name := range n.PseudoClasses {
		b.PseudoClass(name)
	}
	if n.PseudoElement != "" {
		b.PseudoElement(n.PseudoElement)
	}
	return b
}
