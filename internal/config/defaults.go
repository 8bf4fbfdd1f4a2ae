package config

const (
	defaultRecordingsDir = "recordings"
	defaultOutputFile    = "training_summary.mp4"
	defaultFPS           = 20
	defaultFFmpegBinary  = "ffmpeg"
	defaultFontScale     = 1.0
	defaultThickness     = 2
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			RecordingsDir: defaultRecordingsDir,
			OutputFile:    defaultOutputFile,
		},
		Video: Video{
			FPS:          defaultFPS,
			FFmpegBinary: defaultFFmpegBinary,
		},
		Banner: Banner{
			FontScale: defaultFontScale,
			Thickness: defaultThickness,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
