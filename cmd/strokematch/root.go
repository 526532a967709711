package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/strokematch/config"
	"github.com/katalvlaran/strokematch/evaluate"
	"github.com/katalvlaran/strokematch/glyph"
	"github.com/katalvlaran/strokematch/observe"
)

// app is the state shared by every subcommand, filled in by setup.
type app struct {
	cfgPath    string
	logLevel   string
	glyphsPath string

	cfg    *config.Config
	logger *slog.Logger
	db     *glyph.Database
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "strokematch",
		Short:             "Score traced Arabic letter strokes against reference glyphs",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.glyphsPath, "glyphs", "", "glyph database (JSON or YAML); default is the builtin set")

	root.AddCommand(
		a.evaluateCmd(),
		a.sampleCmd(),
		a.glyphsCmd(),
		completionCmd(root),
	)

	return root
}

// setup loads the configuration, the logger and the glyph database.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.cfgPath != "" {
		var err error
		if cfg, err = config.Load(a.cfgPath); err != nil {
			return err
		}
	}
	if a.logLevel != "" {
		cfg.LogLevel = config.LogLevel(a.logLevel)
	}
	if a.glyphsPath != "" {
		cfg.Glyphs = a.glyphsPath
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel.Level()}))

	if cfg.Glyphs == "" {
		a.db = glyph.Builtin()
	} else {
		db, err := glyph.Load(cfg.Glyphs)
		if err != nil {
			return err
		}
		a.db = db
	}
	a.logger.Debug("glyph database loaded", "glyphs", a.db.Len(), "source", sourceName(cfg.Glyphs))

	return nil
}

func (a *app) evaluator() *evaluate.Evaluator {
	opts := append(a.cfg.EvaluatorOptions(),
		evaluate.WithLogger(a.logger),
		evaluate.WithMetrics(observe.DefaultMetrics()),
	)
	return evaluate.New(opts...)
}

// lookup resolves a glyph query and one of its forms.
func (a *app) lookup(query, form string) (string, glyph.Glyph, glyph.Form, error) {
	key, g, err := a.db.Find(query)
	if err != nil {
		return "", glyph.Glyph{}, glyph.Form{}, err
	}
	f, err := a.db.Form(key, form)
	if err != nil {
		return "", glyph.Glyph{}, glyph.Form{}, fmt.Errorf("%w (available: %v)", err, g.FormNames())
	}
	return key, g, f, nil
}

func sourceName(path string) string {
	if path == "" {
		return "builtin"
	}
	return path
}
