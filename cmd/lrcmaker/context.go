package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/lkho/lrc-maker/internal/config"
	"github.com/lkho/lrc-maker/internal/drafts"
	"github.com/lkho/lrc-maker/internal/logging"
	"github.com/lkho/lrc-maker/internal/lrc"
	"github.com/lkho/lrc-maker/internal/prefs"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
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
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			cfg.Logging.Level = strings.ToLower(strings.TrimSpace(*c.logLevelFlag))
			if err := cfg.Validate(); err != nil {
				c.configErr = fmt.Errorf("--log-level: %w", err)
				return
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// log returns the command logger. Construction failures fall back to a
// no-op logger; config validation already rejected bad formats and levels.
func (c *commandContext) log() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

func (c *commandContext) prefsStore() (*prefs.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return prefs.Open(cfg.Paths.PrefsFile, c.log()), nil
}

func (c *commandContext) withDrafts(fn func(*drafts.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := drafts.Open(cfg, c.log())
	if err != nil {
		return fmt.Errorf("open drafts: %w", err)
	}
	defer store.Close()
	return fn(store)
}

// parseOptions combines the configured trimming with any flags the user set.
func (c *commandContext) parseOptions(cmd *cobra.Command) (lrc.ParseOptions, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return lrc.ParseOptions{}, err
	}
	opts := cfg.ParseOptions()
	flags := cmd.Flags()
	if flags.Changed("trim-start") {
		if opts.TrimStart, err = flags.GetBool("trim-start"); err != nil {
			return opts, err
		}
	}
	if flags.Changed("trim-end") {
		if opts.TrimEnd, err = flags.GetBool("trim-end"); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func addTrimFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("trim-start", false, "Trim leading whitespace from lyric text (default from config)")
	cmd.Flags().Bool("trim-end", false, "Trim trailing whitespace from lyric text (default from config)")
}

// readLyrics returns the input text and a display name for it. No argument
// or "-" reads stdin; paste reads the system clipboard.
func readLyrics(cmd *cobra.Command, args []string, paste bool) (string, string, error) {
	if paste {
		if len(args) > 0 {
			return "", "", fmt.Errorf("--paste cannot be combined with a file argument")
		}
		text, err := clipboard.ReadAll()
		if err != nil {
			return "", "", fmt.Errorf("read clipboard: %w", err)
		}
		return text, "clipboard", nil
	}
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "stdin", nil
	}
	path, err := config.ExpandPath(args[0])
	if err != nil {
		return "", "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
