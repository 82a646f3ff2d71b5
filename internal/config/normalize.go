package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeAPI(); err != nil {
		return err
	}
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeAgent()
	c.normalizeProgress()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeAPI() error {
	c.API.Origin = strings.TrimRight(strings.TrimSpace(c.API.Origin), "/")
	if c.API.Origin == "" {
		if value, ok := os.LookupEnv("FILEVORA_API_ORIGIN"); ok {
			c.API.Origin = strings.TrimRight(strings.TrimSpace(value), "/")
		}
	}
	if c.API.Origin == "" {
		c.API.Origin = defaultAPIOrigin
	}
	if c.API.RequestTimeout <= 0 {
		c.API.RequestTimeout = defaultRequestTimeout
	}
	c.API.EmailEndpoint = normalizeEndpoint(c.API.EmailEndpoint, defaultEmailEndpoint)
	c.API.CloudImportEndpoint = normalizeEndpoint(c.API.CloudImportEndpoint, defaultCloudImportEndpoint)
	return nil
}

func normalizeEndpoint(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	if !strings.HasPrefix(value, "/") {
		value = "/" + value
	}
	return value
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	c.Paths.Bind = strings.TrimSpace(c.Paths.Bind)
	if c.Paths.Bind == "" {
		c.Paths.Bind = defaultBind
	}
	c.Paths.APIToken = strings.TrimSpace(c.Paths.APIToken)
	return nil
}

func (c *Config) normalizeAgent() {
	if c.Agent.ScoreThreshold <= 0 {
		c.Agent.ScoreThreshold = defaultScoreThreshold
	}
	if c.Agent.MinWordLength <= 0 {
		c.Agent.MinWordLength = defaultMinWordLength
	}
}

func (c *Config) normalizeProgress() {
	if c.Progress.UploadTickMillis <= 0 {
		c.Progress.UploadTickMillis = defaultUploadTickMillis
	}
	if c.Progress.ProcessTickMillis <= 0 {
		c.Progress.ProcessTickMillis = defaultProcessTickMillis
	}
	if c.Progress.UploadTarget <= 0 || c.Progress.UploadTarget > 100 {
		c.Progress.UploadTarget = defaultUploadTarget
	}
	if c.Progress.ProcessTarget <= 0 || c.Progress.ProcessTarget > 100 {
		c.Progress.ProcessTarget = defaultProcessTarget
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
