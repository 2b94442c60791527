package emit

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap/zaptest"

	"cssel/common"
	"cssel/config"
	"cssel/manifest"
	"cssel/state"
)

func TestRender(t *testing.T) {
	built := []manifest.Built{
		{Name: "main-box", Selector: "div#main.container"},
		{Name: "hover-link", Selector: "a:hover"},
	}

	tests := []struct {
		name   string
		format common.OutputFmt
		want   []string
	}{
		{
			name:   "text is one selector per line",
			format: common.OutputFmtText,
			want:   []string{"div#main.container\na:hover\n"},
		},
		{
			name:   "yaml keeps names",
			format: common.OutputFmtYaml,
			want:   []string{"name: main-box", "selector: div#main.container"},
		},
		{
			name:   "json keeps names",
			format: common.OutputFmtJson,
			want:   []string{`"name": "hover-link"`, `"selector": "a:hover"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := render(built, tt.format)
			if err != nil {
				t.Fatalf("render() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(string(out), want) {
					t.Errorf("render() = %q, want it to contain %q", out, want)
				}
			}
		})
	}
}

func TestResolveDestination(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("explicit file kept", func(t *testing.T) {
		dst := filepath.Join(tmpDir, "out.css")
		if got := resolveDestination(dst, "book.yaml", common.OutputFmtText); got != dst {
			t.Errorf("resolveDestination() = %q, want %q", got, dst)
		}
	})

	t.Run("directory derives name from manifest", func(t *testing.T) {
		got := resolveDestination(tmpDir, filepath.Join("some", "dir", "book.yaml"), common.OutputFmtJson)
		want := filepath.Join(tmpDir, "book.json")
		if got != want {
			t.Errorf("resolveDestination() = %q, want %q", got, want)
		}
	})
}

func testContext(t *testing.T) context.Context {
	t.Helper()

	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Cfg = &config.Config{
		Version: 1,
		Build:   config.BuildConfig{Format: "text"},
	}
	env.Log = zaptest.NewLogger(t)
	return ctx
}

func buildCommand() *cli.Command {
	return &cli.Command{
		Name:   "build",
		Action: Run,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format"},
			&cli.BoolFlag{Name: "overwrite"},
		},
	}
}

func TestRun(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "selectors.yaml")
	manifestData := `version: 1
selectors:
  - name: main-box
    element: div
    id: main
    classes: [container]
  - name: menu-item
    combine:
      combinator: ">"
      left: {element: ul}
      right: {element: li}
`
	if err := os.WriteFile(src, []byte(manifestData), 0644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}
	dst := filepath.Join(tmpDir, "out.css")

	err := buildCommand().Run(testContext(t), []string{"build", src, dst})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if want := "div#main.container\nul > li\n"; string(out) != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	// Existing destination is refused without overwrite.
	err = buildCommand().Run(testContext(t), []string{"build", src, dst})
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Run() on existing destination error = %v, want overwrite refusal", err)
	}

	// And replaced with it.
	err = buildCommand().Run(testContext(t), []string{"build", "--overwrite", src, dst})
	if err != nil {
		t.Errorf("Run() with overwrite error = %v", err)
	}
}

func TestRun_NoManifest(t *testing.T) {
	err := buildCommand().Run(testContext(t), []string{"build"})
	if err == nil {
		t.Fatal("Run() error = nil, want missing manifest error")
	}
}

func TestRun_BadManifest(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "selectors.yaml")
	if err := os.WriteFile(src, []byte("version: 7\n"), 0644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}

	err := buildCommand().Run(testContext(t), []string{"build", src})
	if err == nil || !strings.Contains(err.Error(), "unsupported manifest version") {
		t.Errorf("Run() error = %v, want unsupported version failure", err)
	}
}
