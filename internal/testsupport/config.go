package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"chunksum/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig returns the default configuration with opts applied. Logging is
// quietened to error level so test output stays readable.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Logging.Level = "error"
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	return &cfg
}

// WithJobs sets walk.jobs.
func WithJobs(jobs int) ConfigOption {
	return func(c *config.Config) { c.Walk.Jobs = jobs }
}

// WithPadding sets walk.padding.
func WithPadding(padding string) ConfigOption {
	return func(c *config.Config) { c.Walk.Padding = padding }
}

// WithFormat sets output.format.
func WithFormat(format string) ConfigOption {
	return func(c *config.Config) { c.Output.Format = format }
}

// WithFollowSymlinks sets walk.follow_symlinks.
func WithFollowSymlinks(follow bool) ConfigOption {
	return func(c *config.Config) { c.Walk.FollowSymlinks = follow }
}

// WriteConfig encodes cfg as TOML into a fresh temp directory and returns
// the file path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "chunksum.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
