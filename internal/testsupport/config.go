package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/lkho/lrc-maker/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.PrefsFile = filepath.Join(base, "config", "prefs.json")
	cfgVal.Paths.ExportDir = filepath.Join(base, "lyrics")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithLineTerminator overrides the configured output line terminator name.
func WithLineTerminator(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.LRC.LineTerminator = name
	}
}

// WithTrim sets the parse trimming defaults.
func WithTrim(start, end bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.LRC.TrimStart = start
		b.cfg.LRC.TrimEnd = end
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
