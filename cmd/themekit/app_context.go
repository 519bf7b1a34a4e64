package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/themekit/internal/catalog"
	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/engine"
	"github.com/alexisbeaulieu97/themekit/internal/events"
	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
	"github.com/alexisbeaulieu97/themekit/internal/store"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// AppContext bundles the services a command works with.
type AppContext struct {
	Ctx       context.Context
	Config    *config.Config
	Catalog   *catalog.Catalog
	Store     *store.Store
	Engine    *engine.Service
	Publisher *events.Publisher
	Logger    ports.Logger
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*AppContext, error) {
	v := flags.settings

	cfg, err := config.Load(v.GetString("config"))
	if err != nil {
		return nil, newCommandError("start themekit", "loading configuration", err, "Check the file passed with --config or THEMEKIT_CONFIG.")
	}
	if path := v.GetString("catalog"); path != "" {
		cfg.Catalog = path
	}
	if level := v.GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if v.GetBool("verbose") {
		cfg.Logging.Level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Logging.Level,
		HumanReadable: cfg.Logging.Human || isTerminal(cmd.ErrOrStderr()),
		Writer:        cmd.ErrOrStderr(),
		Component:     "themekit",
	})
	if err != nil {
		return nil, newCommandError("start themekit", "creating logger", err, "Use one of debug, info, warn or error for --log-level.")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())

	cat, err := catalog.LoadOrDefault(cfg.Catalog)
	if err != nil {
		return nil, newCommandError("start themekit", "loading palette catalog", err, "Check the catalog file passed with --catalog.")
	}

	publisher := events.NewPublisher(log)
	st := store.New(store.WithLogger(log), store.WithPublisher(publisher))
	eng := engine.New(cat, st,
		engine.WithGenerator(theme.NewGenerator(cfg.Variants)),
		engine.WithLogger(log),
		engine.WithPublisher(publisher),
		engine.WithDefaultPalette(cfg.DefaultPalette),
	)

	if err := eng.Init(ctx); err != nil {
		return nil, newCommandError("start themekit", "applying the default palette", err, "Set default_palette to one of the names shown by 'themekit palettes'.")
	}

	log.Debug(ctx, "themekit ready",
		"palettes", cat.Len(),
		"default_palette", cfg.DefaultPalette,
		"store_subscribers", publisher.SubscriberCount(ports.EventStoreChanged),
	)

	return &AppContext{
		Ctx:       ctx,
		Config:    cfg,
		Catalog:   cat,
		Store:     st,
		Engine:    eng,
		Publisher: publisher,
		Logger:    log,
	}, nil
}

func isTerminal(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
