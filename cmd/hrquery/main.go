package main

import (
	"context"
	"io"
	"io/fs"

	"github.com/clarktrimble/sabot"
	"github.com/google/uuid"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"hrquery"
	"hrquery/store"
	"hrquery/util"
)

var (
	version string // set by ldflags
	cfgPath string
)

// Config is the top-level config, read from yaml.
type Config struct {
	Logfile string          `yaml:"logfile"`
	Store   *store.Config   `yaml:"store"`
	Screen  *hrquery.Config `yaml:"screen,omitempty"`
}

func sample() *Config {
	return &Config{
		Logfile: "hrquery.log",
		Store: &store.Config{
			Driver: "duckdb",
			Dsn:    "hrquery.duckdb",
			User:   "admin",
		},
		Screen: &hrquery.Config{},
	}
}

var rootCmd = &cobra.Command{
	Use:          "hrquery",
	Short:        "Browse and edit hr queries",
	Version:      version,
	SilenceUsage: true,
	RunE:         runBrowse,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "hrquery.yaml", "path to config file")
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}

// app holds what every command needs
type app struct {
	ctx     context.Context
	cfg     *Config
	logFile io.Writer
	logger  *sabot.Sabot
	store   *store.Store
}

// start loads config, falling back to the sample when there is no file, and opens the store
func start() (ap *app, err error) {

	cfg := sample()
	err = util.LoadConfig(cfg, cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		err = nil
	}
	if err != nil {
		return
	}
	if cfg.Screen == nil {
		cfg.Screen = &hrquery.Config{}
	}

	logFile := util.OpenLog(cfg.Logfile, 0644)
	lgr := &sabot.Sabot{Writer: logFile}
	ctx := lgr.WithFields(context.Background(), "run_id", uuid.NewString()[:8])

	lgr.Info(ctx, "starting", "config", cfgPath, "version", version)

	st, err := cfg.Store.New(ctx, lgr)
	if err != nil {
		lgr.Error(ctx, "failed to open store", err)
		util.CloseLog(logFile)
		return
	}

	ap = &app{
		ctx:     ctx,
		cfg:     cfg,
		logFile: logFile,
		logger:  lgr,
		store:   st,
	}
	return
}

func (ap *app) stop() {

	ap.logger.Info(ap.ctx, "stopping")
	ap.store.Close()
	util.CloseLog(ap.logFile)
}
