package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chunksum/internal/manifest"
	"chunksum/internal/walker"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check MANIFEST...",
		Short: "Verify files against a saved text report",
		Long: "check reads \"<fingerprint>\\t<path>\" lines written by a previous run,\n" +
			"fingerprints each path again and prints OK or FAILED per path.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, ctx, args)
		},
	}
}

func runCheck(cmd *cobra.Command, ctx *commandContext, manifests []string) error {
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

	var (
		entries []manifest.Entry
		bad     []*manifest.LineError
	)
	for _, path := range manifests {
		parsed, malformed, err := readManifest(path)
		if err != nil {
			return err
		}
		entries = append(entries, parsed...)
		bad = append(bad, malformed...)
	}
	stderr := cmd.ErrOrStderr()
	for _, lineErr := range bad {
		fmt.Fprintf(stderr, "chunksum: %v\n", lineErr)
	}

	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	// check never walks, so the sink is unused; the walker only lends its gate.
	w := walker.New(nil, opts)
	verifier := manifest.NewVerifier(w, logger)
	summary, err := verifier.Verify(cmd.Context(), entries, func(res manifest.Result) error {
		_, err := fmt.Fprintln(out, renderVerdict(res, colorize))
		return err
	})
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	var problems []error
	if summary.Failed > 0 {
		problems = append(problems, fmt.Errorf("%d computed fingerprint(s) did not match", summary.Failed))
	}
	if summary.Errors > 0 {
		problems = append(problems, fmt.Errorf("%d listed file(s) could not be read", summary.Errors))
	}
	if len(bad) > 0 {
		problems = append(problems, fmt.Errorf("%d line(s) are improperly formatted", len(bad)))
	}
	return errors.Join(problems...)
}

func readManifest(path string) ([]manifest.Entry, []*manifest.LineError, error) {
	if path == "-" {
		return manifest.Parse(os.Stdin, "-")
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open manifest: %w", err)
	}
	defer file.Close()
	return manifest.Parse(file, path)
}
