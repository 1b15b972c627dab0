package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"chunksum/internal/config"
	"chunksum/internal/fingerprint"
	"chunksum/internal/logging"
	"chunksum/internal/walker"
)

// runFlags holds flag values that override configuration when set.
type runFlags struct {
	jobs      int
	padding   string
	noFollow  bool
	failFast  bool
	format    string
	output    string
	summary   bool
	logLevel  string
	logFormat string
}

type commandContext struct {
	configFlag *string
	flags      *runFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error

	runID string
}

func newCommandContext(configFlag *string, flags *runFlags) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		flags:      flags,
		runID:      uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.applyFlags(cmd, cfg)
		cfg.Normalize()
		if err := cfg.Validate(); err != nil {
			c.configErr = fmt.Errorf("invalid flags: %w", err)
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("jobs") {
		cfg.Walk.Jobs = c.flags.jobs
	}
	if changed("padding") {
		cfg.Walk.Padding = c.flags.padding
	}
	if changed("no-follow") {
		cfg.Walk.FollowSymlinks = !c.flags.noFollow
	}
	if changed("fail-fast") {
		cfg.Walk.FailFast = c.flags.failFast
	}
	if changed("format") {
		cfg.Output.Format = c.flags.format
	}
	if changed("summary") {
		cfg.Output.Summary = c.flags.summary
	}
	if changed("log-level") {
		cfg.Logging.Level = c.flags.logLevel
	}
	if changed("log-format") {
		cfg.Logging.Format = c.flags.logFormat
	}
}

// logger builds the run logger on w, tagged with this invocation's run id.
func (c *commandContext) logger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	logger, err := logging.NewFromConfig(cfg, w)
	if err != nil {
		return nil, err
	}
	return logging.WithRunID(logger, c.runID), nil
}

// walkerOptions maps configuration onto walker options.
func walkerOptions(cfg *config.Config, logger *slog.Logger) (walker.Options, error) {
	padding, err := fingerprint.ParsePadding(cfg.Walk.Padding)
	if err != nil {
		return walker.Options{}, err
	}
	return walker.Options{
		Jobs:           cfg.Walk.Jobs,
		Padding:        padding,
		FollowSymlinks: cfg.Walk.FollowSymlinks,
		FailFast:       cfg.Walk.FailFast,
		Logger:         logger,
	}, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
