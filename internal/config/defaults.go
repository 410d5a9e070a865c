package config

const (
	defaultConfigPath     = "~/.config/lrcmaker/config.toml"
	defaultDataDir        = "~/.local/share/lrcmaker"
	defaultPrefsFile      = "~/.config/lrcmaker/prefs.json"
	defaultExportDir      = "~/lyrics"
	defaultLogFormat      = "console"
	defaultLogLevel       = "warn"
	defaultLineTerminator = "crlf"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			PrefsFile: defaultPrefsFile,
			ExportDir: defaultExportDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		LRC: LRC{
			LineTerminator: defaultLineTerminator,
		},
	}
}
