package main

import (
	"fmt"

	"github.com/klingtnet/foldersim/config"
	"github.com/klingtnet/foldersim/console"
	"github.com/klingtnet/foldersim/export"
	"github.com/klingtnet/foldersim/internal/logging"
	"github.com/klingtnet/foldersim/namespace"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	"go.uber.org/zap"
)

func flagOverride(cfg *config.Config, c *cli.Context) {
	if c.String("root-name") != "" {
		cfg.RootName = c.String("root-name")
	}
	if c.String("order") != "" {
		cfg.ChildOrder = c.String("order")
	}
	if c.String("log-level") != "" {
		cfg.LogLevel = c.String("log-level")
	}
	if c.String("export-dir") != "" {
		cfg.ExportDir = c.String("export-dir")
	}
}

func loadConfig(c *cli.Context, filesystem afero.Fs) (*config.Config, error) {
	if c.String("config") == "" {
		return config.Default(), nil
	}

	return config.ParseConfigFile(filesystem, c.String("config"))
}

type resources struct {
	config   *config.Config
	logger   *zap.Logger
	exporter *export.Exporter
	// fs is used for scripts, exports and the disk backend.
	fs afero.Fs
}

func setup(c *cli.Context) (r *resources, err error) {
	filesystem := afero.NewOsFs()
	cfg, err := loadConfig(c, filesystem)
	if err != nil {
		err = cli.Exit(
			fmt.Sprintf("parsing config %q failed: %s", c.String("config"), err.Error()),
			BadArgument,
		)
		return
	}
	flagOverride(cfg, c)

	err = cfg.Validate()
	if err != nil {
		err = cli.Exit(fmt.Sprintf("bad config: %s", err.Error()), BadArgument)
		return
	}

	logger, err := logging.New(cfg.LogLevel, c.App.ErrWriter)
	if err != nil {
		err = cli.Exit(fmt.Sprintf("bad log level: %s", err.Error()), BadArgument)
		return
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM, emoji.Emoji))
	exporter := export.New(export.NewHTML(md), export.NewFileStorage(filesystem, cfg.ExportDir))

	r = &resources{
		config:   cfg,
		logger:   logger,
		exporter: exporter,
		fs:       filesystem,
	}

	return
}

func (r *resources) newSession() (*namespace.Session, error) {
	return namespace.NewSession(
		namespace.WithRootName(r.config.RootName),
		namespace.WithChildOrder(r.config.Order()),
	)
}

func (r *resources) scriptDefaults() console.ScriptOptions {
	return console.ScriptOptions{
		RootName:   r.config.RootName,
		ChildOrder: r.config.ChildOrder,
	}
}
