package config

const (
	defaultOutputDir        = "transcripts"
	defaultAudioQuality     = "192"
	defaultWhisperModel     = "base"
	defaultWhisperLanguage  = "en"
	defaultMaxVideoDuration = 10800
	defaultMinFreeDiskGiB   = 1
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// WhisperModels lists the accepted model size selectors.
var WhisperModels = []string{"tiny", "base", "small", "medium", "large"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
		},
		Downloader: Downloader{
			AudioQuality: defaultAudioQuality,
		},
		Whisper: Whisper{
			Model:             defaultWhisperModel,
			Language:          defaultWhisperLanguage,
			IncludeTimestamps: true,
		},
		Limits: Limits{
			MaxVideoDuration: defaultMaxVideoDuration,
			MinFreeDiskGiB:   defaultMinFreeDiskGiB,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
