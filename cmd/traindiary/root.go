package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/apiclient"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/config"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/dashboard"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/logging"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/session"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	envName     string
	configPath  string
	sessionFile string
	verbose     bool
)

// app is what the client commands share: config, the persisted session and
// the API client that reads its bearer token from it.
type app struct {
	cfg      *config.Config
	sessions *session.Container
	client   *apiclient.Client
	service  *dashboard.Service
}

var rootCmd = &cobra.Command{
	Use:           "traindiary",
	Short:         "traindiary is a terminal client for the TrainDiary fitness tracker",
	Long:          "traindiary logs in to the TrainDiary API, shows nutrition and workout calendars, and runs the companion HTTP service.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envName, "env", "development", "environment [dev | development | prod | production]")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config.toml", "path for the TOML config file")
	rootCmd.PersistentFlags().StringVar(&sessionFile, "session-file", "", "session file (default in the user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// loadConfig falls back to defaults when the config file does not exist.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envName, configPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf("config %s not found, using defaults", configPath)
		return config.Default(envName), nil
	}
	return cfg, err
}

func setupLogging(cmd *cobra.Command, cfg *config.Config) {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	} else if level == "info" {
		// keep rendered output clean
		level = "warn"
	}
	logging.Setup(logging.LoggerSetupParams{
		LogFileName: cfg.LogsPath,
		LogToStdout: cfg.LogToStdout,
		LogLevel:    level,
		Environment: cfg.Environment,
		Stdout:      cmd.ErrOrStderr(),
	})
}

// newApp loads config and the file-backed session, the terminal client
// always keeps its session on disk.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	setupLogging(cmd, cfg)

	path := sessionFile
	if path == "" {
		path = cfg.SessionFilePath
	}
	if path == "" {
		if path, err = session.DefaultFilePath(); err != nil {
			return nil, err
		}
	}

	sessions := session.NewContainer(session.NewFileStore(path))
	if err := sessions.Rehydrate(cmd.Context()); err != nil {
		return nil, err
	}

	client := apiclient.NewClient(
		apiclient.ResolveBaseURL(cfg.ApiHost, cfg.SameOrigin),
		nil,
		sessions,
		nil,
	)
	return &app{
		cfg:      cfg,
		sessions: sessions,
		client:   client,
		service:  dashboard.NewService(client, cfg.Goals, nil),
	}, nil
}

// requireSession fails before any request when nobody is logged in.
func (a *app) requireSession() error {
	if !a.sessions.IsAuthenticated() {
		return errors.New("not logged in, run: traindiary login")
	}
	return nil
}
