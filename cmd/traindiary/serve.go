package main

import (
	"context"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/logging"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the companion HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if serveHost != "" {
			cfg.Host = serveHost
		}
		if servePort != 0 {
			cfg.Port = servePort
		}

		sentryDSN := os.Getenv("SENTRY_DSN")
		logging.Setup(logging.LoggerSetupParams{
			LogFileName:      cfg.LogsPath,
			LogToStdout:      cfg.LogToStdout,
			LogLevel:         cfg.LogLevel,
			LogFormatJSON:    false,
			Environment:      cfg.Environment,
			SentryEnabled:    cfg.SentryEnabled,
			SentryDSN:        sentryDSN,
			SentryServerName: "traindiary-companion",
		})

		log.Warnf("---->> running in [%s] environment", cfg.Environment)
		log.Debugf("using port: %d", cfg.Port)

		versionInfo := buildVersion()
		log.Tracef("running version: %s", versionInfo)

		redisPassword := os.Getenv("TRAINDIARY_REDIS_PASS")
		if redisPassword == "" {
			log.Debugln("redis password not set. use TRAINDIARY_REDIS_PASS")
		}

		honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
		if honeycombEnabled {
			if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
				log.Warnln("HONEYCOMB_API_KEY env var not set")
			}
		}

		chOsInterrupt := make(chan os.Signal, 1)
		signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		server, err := internal.NewServer(ctx, internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             versionInfo,
			RedisPassword:           redisPassword,
			HoneycombTracingEnabled: honeycombEnabled,
		})
		if err != nil {
			return err
		}

		if err := server.Serve(cfg.Host, cfg.Port); err != nil {
			server.GracefulShutdown()
			return err
		}

		receivedSig := <-chOsInterrupt
		log.Warnf("signal [%s] received, killing everything ...", receivedSig)
		cancel()

		server.GracefulShutdown()
		return nil
	},
}

// buildVersion is the vcs revision stamped by the go toolchain, if any.
func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			return setting.Value
		}
	}
	return info.Main.Version
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (overrides config)")
}
