package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/songzhibin97/rankfi/internal/configs"
	"github.com/songzhibin97/rankfi/internal/data"
	"github.com/songzhibin97/rankfi/internal/data/airtable"
	"github.com/songzhibin97/rankfi/internal/data/catalog"
	"github.com/songzhibin97/rankfi/internal/data/static"
	"github.com/songzhibin97/rankfi/internal/data/storage"
	"github.com/songzhibin97/rankfi/internal/enrich/binance"
)

var (
	logLevel = new(slog.LevelVar)

	// 日志写到 stderr, stdout 留给表格输出
	log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	}))
)

// app 持有一次命令执行所需的组件
type app struct {
	flagconf string
	out      io.Writer

	config  *configs.Config
	catalog *catalog.Catalog
	closers []func() error
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rankfi",
		Short: "Compare centralized crypto exchanges",
		Long: `rankfi renders the RankFi exchange comparison table in the terminal.

Exchanges are loaded from the first configured source that answers
(static dataset, Airtable or a SQL database) and can be filtered by
preset column sets, sorted, paginated and compared side by side.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	if a.out != nil {
		root.SetOut(a.out)
	}
	root.PersistentFlags().StringVar(&a.flagconf, "conf", "", "config path, eg: --conf config.yaml")

	root.AddCommand(
		newTableCmd(a),
		newShowCmd(a),
		newPicksCmd(a),
		newRegionsCmd(a),
		newValidateCmd(a),
		newSeedCmd(a),
		newBrowseCmd(a),
	)
	return root
}

func (a *app) init() error {
	// 加载配置
	config, err := configs.Load(a.flagconf)
	if err != nil {
		return err
	}
	a.config = config

	level, _ := config.Level()
	logLevel.Set(level)
	log.Debug("Loaded config", "config", config.Redacted())

	config.ExportProxy()
	if config.Proxy != "" {
		log.Debug("set proxy ok", "proxy", config.Proxy)
	}

	sources, err := a.buildSources()
	if err != nil {
		return err
	}

	var enrichers []catalog.Enricher
	if config.Binance.Enabled {
		enrichers = append(enrichers, binance.NewListingCounter(config.Binance.BaseURL, config.Binance.Testnet))
		log.Debug("init binance enricher")
	}

	a.catalog = catalog.NewCatalog(sources, log, enrichers...)
	return nil
}

func (a *app) buildSources() ([]data.ExchangeSource, error) {
	var sources []data.ExchangeSource
	for _, name := range a.config.Sources {
		switch name {
		case configs.SourceStatic:
			sources = append(sources, static.NewStaticSource())

		case configs.SourceAirtable:
			c := a.config.Airtable
			sources = append(sources, airtable.NewAirtableSource(airtable.Options{
				BaseURL:  c.BaseURL,
				BaseID:   c.BaseID,
				Table:    c.Table,
				View:     c.View,
				APIKey:   c.APIKey,
				PageSize: c.PageSize,
			}))

		case configs.SourceDatabase:
			store, err := a.openStorage(a.config.Database.Driver, a.config.Database.ConnStr)
			if err != nil {
				return nil, err
			}
			sources = append(sources, store)
		}
		log.Debug("init source", "source", name)
	}
	return sources, nil
}

func (a *app) openStorage(driver, dsn string) (*storage.SQLStorage, error) {
	store, err := storage.NewSQLStorage(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", driver, err)
	}
	a.closers = append(a.closers, store.Close)
	return store, nil
}

func (a *app) close() error {
	var err error
	for _, c := range a.closers {
		err = multierr.Append(err, c())
	}
	a.closers = nil
	return err
}

// run executes the command line and releases whatever it opened.
func (a *app) run(ctx context.Context, args []string) error {
	root := a.rootCmd()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return multierr.Append(err, a.close())
}

func main() {
	a := &app{}
	if err := a.run(context.Background(), os.Args[1:]); err != nil {
		log.Error("command failed", "err", err)
		os.Exit(1)
	}
}
