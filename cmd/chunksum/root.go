package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	flags := &runFlags{}

	ctx := newCommandContext(&configFlag, flags)

	rootCmd := &cobra.Command{
		Use:   "chunksum [flags] [path...]",
		Short: "Fingerprint files by folding 32-byte chunks",
		Long: "chunksum walks every path argument recursively and prints one\n" +
			"\"<fingerprint>\\t<path>\" line per file. Paths that cannot be\n" +
			"inspected are reported as \"<path> : Access denied\".",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runFingerprint(cmd, ctx, args)
		},
	}

	persistent := rootCmd.PersistentFlags()
	persistent.StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	persistent.IntVarP(&flags.jobs, "jobs", "j", 0, "Concurrent open files and listings (0 = unbounded, -1 = 4 per CPU)")
	persistent.StringVar(&flags.padding, "padding", "", "Short final block policy: stale or zero")
	persistent.BoolVar(&flags.noFollow, "no-follow", false, "Skip symbolic links below the roots")
	persistent.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	persistent.StringVar(&flags.logFormat, "log-format", "", "Log format: console or json")

	local := rootCmd.Flags()
	local.StringVar(&flags.format, "format", "", "Report format: text, json or table")
	local.StringVarP(&flags.output, "output", "o", "", "Write the report to FILE instead of stdout")
	local.BoolVar(&flags.failFast, "fail-fast", false, "Stop at the first fatal failure")
	local.BoolVar(&flags.summary, "summary", false, "Print run statistics to stderr")

	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
