// Arts API - Typed REST client and tooling for the Arts platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/artsapi

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/tomtom215/artsapi/internal/artsapi"
	"github.com/tomtom215/artsapi/internal/config"
	"github.com/tomtom215/artsapi/internal/logging"
	"github.com/tomtom215/artsapi/internal/metrics"
	"github.com/tomtom215/artsapi/internal/validation"
)

// cli carries global flags and the client shared by every command.
type cli struct {
	stdout io.Writer
	stderr io.Writer

	configPath  string
	envFile     string
	baseURL     string
	token       string
	lang        string
	timeout     time.Duration
	dumpMetrics bool

	cfg    *config.Config
	client *artsapi.Client
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &cli{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "artsctl",
		Short:         "Command line client for the Arts platform API",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.teardown()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file (default: search CONFIG_PATH and ./artsctl.yaml)")
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	flags.StringVar(&a.baseURL, "base-url", "", "backend origin, overrides ARTS_BASE_URL")
	flags.StringVar(&a.token, "token", "", "session token, overrides ARTS_TOKEN")
	flags.StringVar(&a.lang, "lang", "", "request language, overrides ARTS_LANGUAGE")
	flags.DurationVar(&a.timeout, "timeout", 0, "per-request timeout, overrides ARTS_TIMEOUT (0 disables)")
	flags.BoolVar(&a.dumpMetrics, "dump-metrics", false, "print client metrics in Prometheus text format to stderr on exit")

	root.AddCommand(
		a.healthCmd(),
		a.userCmd(),
		a.workCmd(),
		a.pointsCmd(),
		a.nodeCmd(),
		a.channelCmd(),
		a.ticketCmd(),
		a.staticCmd(),
		a.fileCmd(),
		a.adminCmd(),
		a.tokenCmd(),
		a.callCmd(),
	)

	return root
}

// setup loads configuration, initializes logging and builds the client.
func (a *cli) setup(cmd *cobra.Command) error {
	if a.envFile != "" {
		if err := godotenv.Load(a.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", a.envFile, err)
		}
	}

	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.LoadFile(a.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.API.BaseURL = a.baseURL
	}
	if flags.Changed("token") {
		cfg.API.Token = a.token
	}
	if flags.Changed("lang") {
		cfg.API.Language = a.lang
	}
	if flags.Changed("timeout") {
		cfg.API.Timeout = a.timeout
	}
	if err := cfg.Validate(); err != nil {
		var verr *validation.StructValidationError
		if errors.As(err, &verr) {
			for _, fe := range verr.Errors() {
				fmt.Fprintf(a.stderr, "  %s: %s (%s)\n", fe.Field(), fe.Error(), fe.Tag())
			}
		}
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    a.stderr,
	})

	a.cfg = cfg
	a.client = artsapi.NewFromConfig(cfg)
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	logging.Debug().
		Str("base_url", cfg.API.BaseURL).
		Str("token", logging.MaskSecret(cfg.API.Token)).
		Str("language", cfg.API.Language).
		Dur("timeout", cfg.API.Timeout).
		Msg("artsctl configured")

	if cfg.API.Token != "" {
		if info, err := artsapi.InspectToken(cfg.API.Token); err == nil && info.Expired(time.Now()) {
			logging.Warn().
				Time("expired_at", info.ExpiresAt).
				Msg("session token has expired; requests needing auth will be rejected")
		}
	}

	return nil
}

func (a *cli) teardown() error {
	if !a.dumpMetrics {
		return nil
	}
	return writeMetrics(a.stderr, prometheus.DefaultGatherer)
}

// clientMetricPrefixes selects the families written by --dump-metrics.
var clientMetricPrefixes = []string{"arts_client_", "circuit_breaker_", "app_info"}

// writeMetrics encodes the client's metric families in the text exposition format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range clientFamilies(families) {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

func clientFamilies(families []*dto.MetricFamily) []*dto.MetricFamily {
	out := make([]*dto.MetricFamily, 0, len(families))
	for _, mf := range families {
		for _, prefix := range clientMetricPrefixes {
			if strings.HasPrefix(mf.GetName(), prefix) {
				out = append(out, mf)
				break
			}
		}
	}
	return out
}

// printJSON writes v as indented JSON on stdout.
func (a *cli) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(a.stdout, string(data))
	return err
}

// writeBlob stores a download at path, or on stdout when path is empty or "-".
func (a *cli) writeBlob(blob *artsapi.Blob, path string) error {
	if path == "" || path == "-" {
		_, err := a.stdout.Write(blob.Data)
		return err
	}

	if err := os.WriteFile(path, blob.Data, 0o644); err != nil { //nolint:gosec // user-chosen output file
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return a.printJSON(map[string]any{
		"file":        path,
		"bytes":       len(blob.Data),
		"contentType": blob.ContentType,
		"filename":    blob.Filename,
	})
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be an integer", s)
	}
	return id, nil
}
