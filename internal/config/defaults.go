package config

const (
	defaultAPIOrigin           = "https://api.filevora.com"
	defaultRequestTimeout      = 300
	defaultEmailEndpoint       = "/process/email-link"
	defaultCloudImportEndpoint = "/cloud/import"
	defaultDataDir             = "~/.local/share/filevora"
	defaultLogDir              = "~/.local/share/filevora/logs"
	defaultBind                = "127.0.0.1:7311"
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
	defaultScoreThreshold      = 3
	defaultMinWordLength       = 3
	defaultUploadTickMillis    = 250
	defaultProcessTickMillis   = 400
	defaultUploadTarget        = 60
	defaultProcessTarget       = 95
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		API: API{
			Origin:              defaultAPIOrigin,
			RequestTimeout:      defaultRequestTimeout,
			EmailEndpoint:       defaultEmailEndpoint,
			CloudImportEndpoint: defaultCloudImportEndpoint,
		},
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
			Bind:    defaultBind,
		},
		Agent: Agent{
			ScoreThreshold: defaultScoreThreshold,
			MinWordLength:  defaultMinWordLength,
		},
		Progress: Progress{
			UploadTickMillis:  defaultUploadTickMillis,
			ProcessTickMillis: defaultProcessTickMillis,
			UploadTarget:      defaultUploadTarget,
			ProcessTarget:     defaultProcessTarget,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
