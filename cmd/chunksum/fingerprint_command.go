package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"chunksum/internal/logging"
	"chunksum/internal/report"
	"chunksum/internal/walker"
)

func runFingerprint(cmd *cobra.Command, ctx *commandContext, roots []string) (err error) {
	cfg, err := ctx.ensureConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := ctx.logger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	opts, err := walkerOptions(cfg, logger)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if ctx.flags.output != "" {
		file, openErr := report.OpenFile(ctx.flags.output)
		if openErr != nil {
			return openErr
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close report: %w", closeErr)
			}
		}()
		out = file
	}

	sink := report.NewWriter(out, format)
	w := walker.New(sink, opts)

	started := time.Now()
	runErr := w.Run(cmd.Context(), roots)
	if closeErr := sink.Close(); closeErr != nil {
		runErr = errors.Join(runErr, fmt.Errorf("write report: %w", closeErr))
	}
	elapsed := time.Since(started)
	stats := w.Stats()

	logger.Info("run finished",
		logging.Int64("files", stats.Files),
		logging.Int64("bytes", stats.Bytes),
		logging.Int64("denied", stats.Denied),
		logging.Int64("failures", stats.Failures),
		logging.Duration("elapsed", elapsed),
	)
	if cfg.Output.Summary {
		fmt.Fprintln(cmd.ErrOrStderr(), renderRunSummary(stats, elapsed))
	}

	if runErr != nil {
		return summarizeFailures(runErr)
	}
	return nil
}

// summarizeFailures turns joined task errors into one message listing every
// failed path.
func summarizeFailures(err error) error {
	failures := walker.TaskErrors(err)
	if len(failures) == 0 {
		return err
	}
	if len(failures) == 1 {
		return failures[0]
	}
	return fmt.Errorf("%d paths failed:\n%w", len(failures), err)
}
