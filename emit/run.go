// Package emit implements the build subcommand: it reads a selector
// manifest and writes the rendered selectors in the requested format.
package emit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"cssel/common"
	"cssel/config"
	"cssel/manifest"
	"cssel/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no manifest has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	name := cmd.String("format")
	if len(name) == 0 {
		name = env.Cfg.Build.Format
	}
	format, err := common.ParseOutputFmt(name)
	if err != nil {
		log.Warn("Unknown output format requested, switching to text", zap.Error(err))
		format = common.OutputFmtText
	}
	env.Format = format
	env.Overwrite = cmd.Bool("overwrite") || env.Cfg.Build.Overwrite

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read manifest: %w", err)
	}
	doc, err := manifest.Load(data)
	if err != nil {
		return fmt.Errorf("unable to load manifest '%s': %w", src, err)
	}

	built, err := manifest.NewBuilder(env.Log).Build(doc)
	if err != nil {
		return fmt.Errorf("unable to build selectors from '%s': %w", src, err)
	}
	log.Debug("Built selectors", zap.String("manifest", src), zap.Int("count", len(built)))

	out, err := render(built, env.Format)
	if err != nil {
		return fmt.Errorf("unable to render selectors: %w", err)
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		dst = env.Cfg.Build.Destination
	}
	if len(dst) == 0 {
		_, err = os.Stdout.Write(out)
		return err
	}

	dst = resolveDestination(dst, src, env.Format)
	if !env.Overwrite {
		if _, er := os.Stat(dst); er == nil {
			return fmt.Errorf("destination '%s' already exists, use overwrite to replace it", dst)
		}
	}
	if err = os.WriteFile(dst, out, 0644); err != nil {
		return fmt.Errorf("unable to write destination '%s': %w", dst, err)
	}

	log.Info("Stored selectors", zap.String("file", dst), zap.Int("count", len(built)))
	return nil
}

func render(built []manifest.Built, format common.OutputFmt) ([]byte, error) {
	switch format {
	case common.OutputFmtText:
		var sb strings.Builder
		for _, b := range built {
			sb.WriteString(b.Selector)
			sb.WriteByte('\n')
		}
		return []byte(sb.String()), nil
	case common.OutputFmtYaml:
		return yaml.Marshal(built)
	case common.OutputFmtJson:
		return json.MarshalIndent(built, "", "  ")
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// resolveDestination keeps an explicit file path as given; when the
// destination is an existing directory the output name derives from the
// manifest name and the format extension.
func resolveDestination(dst, src string, format common.OutputFmt) string {
	fi, err := os.Stat(dst)
	if err != nil || !fi.IsDir() {
		return dst
	}
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return filepath.Join(dst, config.CleanFileName(base)+format.Ext())
}
