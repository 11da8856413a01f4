package cli

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"

	lib "github.com/peteraglen/slack-simple-message"
	"github.com/peteraglen/slack-simple-message/internal/config"
)

type sendFlags struct {
	configPath    string
	envFile       string
	channel       string
	logFile       string
	transport     string
	rate          float64
	showResponses bool
	verbose       bool
}

func newSendCmd() *cobra.Command {
	f := &sendFlags{}

	cmd := &cobra.Command{
		Use:   "send [flags] TEXT...",
		Short: "Send each argument as a separate message",
		Long: `Send each argument as a separate message to the configured channel.

The token is read from SLACK_BOT_TOKEN and the default channel from
SLACK_CHANNEL_ID_DEMO, optionally loaded from a .env file. Failed messages are
appended to the log file when one is configured.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSend(cmd, f, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.configPath, "config", "", "YAML config file")
	flags.StringVar(&f.envFile, "env-file", "", "dotenv file to load (default .env when present)")
	flags.StringVarP(&f.channel, "channel", "c", "", "destination channel id, overrides the configured default")
	flags.StringVar(&f.logFile, "log-file", "", "append failed messages to this file")
	flags.StringVar(&f.transport, "transport", "", `transport to use: "http" or "slack-go"`)
	flags.Float64Var(&f.rate, "rate", 0, "maximum messages per second")
	flags.BoolVar(&f.showResponses, "show-responses", false, "print the Slack responses as YAML")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func runSend(cmd *cobra.Command, f *sendFlags, texts []string) error {
	if err := loadEnvFile(f.envFile); err != nil {
		return err
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}

	if f.logFile != "" {
		cfg.LogFile = f.logFile
	}

	if f.transport != "" {
		cfg.Transport = f.transport
	}

	if f.rate > 0 {
		cfg.RatePerSecond = f.rate
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}

	logger := lib.NewSlogLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	client, err := lib.New(append(cfg.Options(), lib.WithRequestLogger(logger))...)
	if err != nil {
		if errors.Is(err, lib.ErrMissingToken) {
			return errors.Errorf("no Slack token configured - set %s", config.EnvToken)
		}
		return err
	}

	ctx := cmd.Context()
	limiter := rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1)
	override := cmd.Flags().Changed("channel")
	failed := 0

	for _, text := range texts {
		if err := limiter.Wait(ctx); err != nil {
			return errors.Wrap(err, "waiting to send")
		}

		var ok bool
		if override {
			ok = client.SendTo(ctx, f.channel, text)
		} else {
			ok = client.Send(ctx, text)
		}

		if !ok {
			failed++
			resp, _ := client.LastAPIResponse()
			logger.Errorf("%v", resp.Err())
		}
	}

	if f.showResponses {
		responses, err := client.LastAPIResponses(len(texts))
		if err != nil {
			return err
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(responses); err != nil {
			return errors.Wrap(err, "encode responses")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, "encode responses")
		}
	}

	if failed > 0 {
		return errors.Errorf("%d of %d messages failed", failed, len(texts))
	}

	return nil
}

// loadEnvFile loads path, or .env when path is empty and the file exists.
// Variables already present in the environment win.
func loadEnvFile(path string) error {
	if path == "" {
		_ = godotenv.Load()
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "load env file %s", path)
	}

	return nil
}
