// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/cheatgen/internal/git"
	"github.com/petar-djukic/cheatgen/internal/output"
	"github.com/petar-djukic/cheatgen/pkg/cheatgen"
	"github.com/petar-djukic/cheatgen/pkg/types"
)

// generateFlags lists the generate command's flags; each is bound to the
// viper key of the same name.
var generateFlags = []string{
	"input", "output", "check", "name", "safe-name", "inherits", "split-safety",
	"exclude-removed", "exclude-deprecated", "verify-selectors", "license",
	"pragma", "abi-v2", "no-prelude", "block-comments", "indent",
	"indent-string", "newline", "order",
}

// newGenerateCmd creates the "generate" command.
func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the catalog as a Solidity interface",
		Long: "Generate loads the cheatcode catalog, renders it and writes the interface file. " +
			"With --check it compares against the existing file instead and fails if it is out of date.",
		RunE: runGenerate,
	}

	f := cmd.Flags()
	f.StringP("input", "i", "cheatcodes.json", "Catalog document (.json, .yaml, .yml or .toml)")
	f.StringP("output", "o", "Vm.sol", "Generated file, or - for stdout")
	f.Bool("check", false, "Fail if the output file differs from the generated text")
	f.String("name", "Vm", "Interface name")
	f.String("safe-name", "VmSafe", "Name of the safe interface with --split-safety")
	f.String("inherits", "", "Inheritance list for the interface")
	f.Bool("split-safety", false, "Emit safe cheatcodes in a separate base interface")
	f.Bool("exclude-removed", false, "Drop removed cheatcodes")
	f.Bool("exclude-deprecated", false, "Drop deprecated cheatcodes")
	f.Bool("verify-selectors", false, "Check selectors against function signatures")
	f.String("license", "MIT OR Apache-2.0", "SPDX license identifier")
	f.String("pragma", "", "Solidity version requirement (default: derived from the catalog)")
	f.Bool("abi-v2", false, "Emit pragma experimental ABIEncoderV2")
	f.Bool("no-prelude", false, "Omit the license and pragma lines")
	f.Bool("block-comments", false, "Use /* */ comments instead of // lines")
	f.Int("indent", 4, "Spaces per indentation level")
	f.String("indent-string", "", "Literal indentation unit (overrides --indent)")
	f.String("newline", "lf", "Line terminator (lf, crlf)")
	f.StringSlice("order", nil, "Category order, e.g. error,event,enum,struct,function")

	for _, name := range generateFlags {
		viper.BindPFlag(name, f.Lookup(name))
	}

	return cmd
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), viper.GetString("log-level"), viper.GetString("log-format"))
	if err != nil {
		return err
	}

	cfg, err := generatorConfig(logger)
	if err != nil {
		return err
	}
	g, err := cheatgen.New(cfg)
	if err != nil {
		return err
	}

	base, repo := resolveBase(logger, viper.GetString("workdir"))
	input := resolvePath(base, viper.GetString("input"))
	out := viper.GetString("output")

	c, err := cheatgen.LoadCatalog(input)
	if err != nil {
		level.Error(logger).Log("msg", "loading catalog failed", "input", input, "err", err)
		return err
	}
	level.Info(logger).Log(
		"msg", "catalog loaded",
		"input", input,
		"errors", len(c.Errors),
		"events", len(c.Events),
		"enums", len(c.Enums),
		"structs", len(c.Structs),
		"cheatcodes", len(c.Cheatcodes),
	)

	text, err := g.Generate(c)
	if err != nil {
		level.Error(logger).Log("msg", "generation failed", "err", err)
		return err
	}
	data := g.Content(text)

	if out == "-" {
		return output.Write(cmd.OutOrStdout(), "", data)
	}

	path := resolvePath(base, out)
	if viper.GetBool("check") {
		return checkOutput(cmd, logger, path, data)
	}

	if repo != nil {
		if modified, err := repo.IsModified(path); err == nil && modified {
			level.Warn(logger).Log("msg", "overwriting file with uncommitted changes", "output", path)
		}
	}
	if err := output.WriteFile(path, data); err != nil {
		return err
	}
	level.Info(logger).Log("msg", "interface written", "output", path, "bytes", len(data))
	return nil
}

// checkOutput compares data with the file at path and prints a diff when
// they differ.
func checkOutput(cmd *cobra.Command, logger log.Logger, path string, data []byte) error {
	err := output.Check(path, data)
	var ood *output.OutOfDateError
	if errors.As(err, &ood) {
		fmt.Fprint(cmd.ErrOrStderr(), output.FormatDiff(ood.Diff, !color.NoColor))
		level.Error(logger).Log("msg", "generated file is out of date", "output", path)
		return fmt.Errorf("%w: %s", cheatgen.ErrOutOfDate, path)
	}
	if err != nil {
		level.Error(logger).Log("msg", "check failed", "output", path, "err", err)
		return err
	}
	level.Info(logger).Log("msg", "generated file is up to date", "output", path)
	return nil
}

// generatorConfig maps viper settings to a cheatgen.Config.
func generatorConfig(logger log.Logger) (cheatgen.Config, error) {
	newline, err := parseNewline(viper.GetString("newline"))
	if err != nil {
		return cheatgen.Config{}, err
	}

	var exclude []types.Status
	if viper.GetBool("exclude-removed") {
		exclude = append(exclude, types.Removed)
	}
	if viper.GetBool("exclude-deprecated") {
		exclude = append(exclude, types.Deprecated)
	}

	cfg := cheatgen.Config{
		Name:            viper.GetString("name"),
		SafeName:        viper.GetString("safe-name"),
		Inherits:        viper.GetString("inherits"),
		SplitSafety:     viper.GetBool("split-safety"),
		ExcludeStatuses: exclude,
		VerifySelectors: viper.GetBool("verify-selectors"),
		NoPrelude:       viper.GetBool("no-prelude"),
		License:         viper.GetString("license"),
		Pragma:          viper.GetString("pragma"),
		ABIEncoderV2:    viper.GetBool("abi-v2"),
		BlockComments:   viper.GetBool("block-comments"),
		IndentString:    viper.GetString("indent-string"),
		Newline:         newline,
		Order:           viper.GetStringSlice("order"),
		Logger:          logger,
	}
	if cfg.IndentString == "" {
		cfg.IndentWidth = viper.GetInt("indent")
	}
	return cfg, nil
}

// parseNewline maps a line terminator name to its text.
func parseNewline(name string) (string, error) {
	switch strings.ToLower(name) {
	case "", "lf":
		return "\n", nil
	case "crlf":
		return "\r\n", nil
	default:
		return "", fmt.Errorf("%w: unknown newline %q (want lf or crlf)", cheatgen.ErrInvalidConfig, name)
	}
}

// resolveBase picks the directory relative paths are resolved against: the
// enclosing git repository's root when there is one, otherwise workDir.
func resolveBase(logger log.Logger, workDir string) (string, *git.Repo) {
	repo, err := git.Open(git.Config{WorkDir: workDir})
	if err != nil {
		level.Debug(logger).Log("msg", "no git repository, using workdir", "workdir", workDir)
		return workDir, nil
	}
	level.Debug(logger).Log("msg", "using repository root", "root", repo.Root())
	return repo.Root(), repo
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

func init() {
	if fi, err := os.Stderr.Stat(); err == nil && fi.Mode()&os.ModeCharDevice == 0 {
		color.NoColor = true
	}
}
