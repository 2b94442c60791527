package manifest_test

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"cssel/manifest"
)

func TestBuilder_Build(t *testing.T) {
	data := []byte(`version: 1
selectors:
  - name: main-box
    element: div
    id: main
    classes: [container, editable]
  - name: focused-link
    element: a
    attr: 'href$=".png"'
    pseudo_classes: [focus]
  - name: even-cells
    combine:
      combinator: "+"
      left:
        element: table
        id: data
      right:
        combine:
          combinator: " "
          left:
            element: tr
            pseudo_classes: ["nth-of-type(even)"]
          right:
            element: td
            pseudo_classes: ["nth-of-type(even)"]
`)

	doc, err := manifest.Load(data)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	built, err := manifest.NewBuilder(zap.NewNop()).Build(doc)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := []manifest.Built{
		{Name: "main-box", Selector: "div#main.container.editable"},
		{Name: "focused-link", Selector: `a[href$=".png"]:focus`},
		{Name: "even-cells", Selector: "table#data + tr:nth-of-type(even)   td:nth-of-type(even)"},
	}

	if len(built) != len(want) {
		t.Fatalf("len(built) = %d, want %d", len(built), len(want))
	}
	for i := range want {
		if built[i] != want[i] {
			t.Errorf("built[%d] = %+v, want %+v", i, built[i], want[i])
		}
	}
}

func TestBuilder_BuildAggregatesFailures(t *testing.T) {
	doc := &manifest.Document{
		Version: 1,
		Selectors: []manifest.Rule{
			{Name: "good", Node: manifest.Node{Element: "p"}},
			{Name: "empty"},
			{Name: "also-good", Node: manifest.Node{ID: "main"}},
		},
	}

	built, err := manifest.NewBuilder(nil).Build(doc)
	if err == nil {
		t.Fatal("Build() error = nil, want aggregated failure")
	}
	if !strings.Contains(err.Error(), `selector "empty" renders empty`) {
		t.Errorf("Build() error = %v, want empty-selector failure", err)
	}

	// The failing rule does not stop the batch.
	if len(built) != 2 {
		t.Fatalf("len(built) = %d, want 2", len(built))
	}
	if built[0].Selector != "p" || built[1].Selector != "#main" {
		t.Errorf("built = %+v, want p and #main", built)
	}
}
