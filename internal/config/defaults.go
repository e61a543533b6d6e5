package config

const (
	defaultLogDir        = "~/.local/share/rangeshift/logs"
	defaultJournalPath   = "~/.local/share/rangeshift/journal.db"
	defaultImagesDirName = "IMAGES"
	defaultMinFreeMiB    = 256
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

func defaultExtensions() []string {
	return []string{".jpg", ".png"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:      defaultLogDir,
			JournalPath: defaultJournalPath,
		},
		Scan: Scan{
			Extensions:      defaultExtensions(),
			ImagesDirName:   defaultImagesDirName,
			MinFreeMiB:      defaultMinFreeMiB,
			UseSubdirectory: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
