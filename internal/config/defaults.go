package config

const (
	defaultInputDir     = "input"
	defaultOutputDir    = "output"
	defaultDataDir      = "~/.local/share/luminas"
	defaultLogDir       = "~/.local/share/luminas/logs"
	defaultArtifactName = "game.html"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"

	defaultGameTitle  = "LuminasScript Game"
	defaultThemeColor = "#667EEA"
	defaultSubColor   = "#754CA3"
	defaultTextColor  = "#FFFFFF"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			InputDir:  defaultInputDir,
			OutputDir: defaultOutputDir,
			DataDir:   defaultDataDir,
			LogDir:    defaultLogDir,
		},
		Build: Build{
			ArtifactName: defaultArtifactName,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Game: DefaultGame(),
	}
}
