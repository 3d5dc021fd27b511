package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/zeicheck/config"
	"github.com/robinvdvleuten/zeicheck/rules"
)

// InitCmd writes a config listing every rule at its default severity.
type InitCmd struct {
	YAML  bool   `help:"Write .zeicheckrc.yaml instead of .zeicheckrc.json." name:"yaml"`
	Force bool   `help:"Overwrite an existing config without asking."`
	Dir   string `help:"Directory to write the config to." default:"." type:"existingdir"`
}

func (cmd *InitCmd) Run(ctx *kong.Context, globals *Globals) error {
	name := config.FileJSON
	if cmd.YAML {
		name = config.FileYAML
	}
	path := filepath.Join(cmd.Dir, name)

	_, err := os.Stat(path)
	switch {
	case err == nil && !cmd.Force:
		confirmed, err := promptYesNo(fmt.Sprintf("%s は既に存在します。上書きしますか?", path))
		if err != nil {
			return fatal(ctx.Stderr, err)
		}
		if !confirmed {
			printError(ctx.Stderr, fmt.Sprintf("%s は既に存在します (--force で上書きできます)", path))
			return NewCommandError(ExitFailed)
		}
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fatal(ctx.Stderr, fmt.Errorf("failed to access %s: %w", path, err))
	}

	data, err := config.Starter(rules.Default()).Marshal(cmd.YAML)
	if err != nil {
		return fatal(ctx.Stderr, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fatal(ctx.Stderr, fmt.Errorf("failed to write %s: %w", path, err))
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("%s を作成しました", pathStyle.Render(path)))
	return nil
}
