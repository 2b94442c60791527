// Package manifest reads declarative selector manifests (YAML) and builds
// them into canonical CSS selector text.
package manifest

import (
	"bytes"
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

// Node describes one selector: either a set of compound-selector
// fragments or a combination of two sub-nodes. Exactly one of the two
// forms may be used.
type Node struct {
	Element       string   `yaml:"element,omitempty"`
	ID            string   `yaml:"id,omitempty"`
	Classes       []string `yaml:"classes,omitempty"`
	Attr          string   `yaml:"attr,omitempty"`
	PseudoClasses []string `yaml:"pseudo_classes,omitempty"`
	PseudoElement string   `yaml:"pseudo_element,omitempty"`

	Combine *CombineDef `yaml:"combine,omitempty"`
}

// CombineDef joins two sub-nodes with a combinator. The combinator string
// is passed through to the selector builder untouched.
type CombineDef struct {
	Left       *Node  `yaml:"left"`
	Combinator string `yaml:"combinator"`
	Right      *Node  `yaml:"right"`
}

// Rule is a named top-level selector in a manifest.
type Rule struct {
	Name string `yaml:"name"`
	Node `yaml:",inline"`
}

// Document is a complete selector manifest.
type Document struct {
	Version   int    `yaml:"version"`
	Selectors []Rule `yaml:"selectors"`
}

// hasFragments reports whether any compound-selector field is used.
func (n *Node) hasFragments() bool {
	return n.Element != "" || n.ID != "" || len(n.Classes) > 0 ||
		n.Attr != "" || len(n.PseudoClasses) > 0 || n.PseudoElement != ""
}

// validate checks structural constraints that the YAML schema cannot
// express: a node is either fragments or a combination, and a
// combination always has both sides.
func (n *Node) validate() error {
	if n.Combine == nil {
		return nil
	}
	if n.hasFragments() {
		return fmt.Errorf("node mixes fragments with combine")
	}
	if n.Combine.Left == nil || n.Combine.Right == nil {
		return fmt.Errorf("combine requires both left and right")
	}
	if err := n.Combine.Left.validate(); err != nil {
		return fmt.Errorf("left: %w", err)
	}
	if err := n.Combine.Right.validate(); err != nil {
		return fmt.Errorf("right: %w", err)
	}
	return nil
}

// Load decodes manifest data. Unknown keys are rejected so typos in
// fragment names surface at decode time rather than rendering wrong
// selectors.
func Load(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode selector manifest: %w", err)
	}

	if doc.Version != 1 {
		return nil, fmt.Errorf("unsupported manifest version %d", doc.Version)
	}

	seen := make(map[string]struct{}, len(doc.Selectors))
	for i := range doc.Selectors {
		rule := &doc.Selectors[i]
		if rule.Name == "" {
			return nil, fmt.Errorf("selector #%d has no name", i+1)
		}
		if _, dup := seen[rule.Name]; dup {
			return nil, fmt.Errorf("duplicate selector name %q", rule.Name)
		}
		seen[rule.Name] = struct{}{}
		if err := rule.Node.validate(); err != nil {
			return nil, fmt.Errorf("selector %q: %w", rule.Name, err)
		}
	}
	return &doc, nil
}
