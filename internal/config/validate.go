package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateVideo(); err != nil {
		return err
	}
	if err := c.validateBanner(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.RecordingsDir == "" {
		return errors.New("paths.recordings_dir must be set")
	}
	if c.Paths.OutputFile == "" {
		return errors.New("paths.output_file must be set")
	}
	return nil
}

func (c *Config) validateVideo() error {
	if c.Video.FPS <= 0 {
		return fmt.Errorf("video.fps must be positive, got %d", c.Video.FPS)
	}
	if c.Video.ResizeWidth < 0 {
		return fmt.Errorf("video.resize_width must not be negative, got %d", c.Video.ResizeWidth)
	}
	return nil
}

func (c *Config) validateBanner() error {
	if c.Banner.FontScale <= 0 {
		return fmt.Errorf("banner.font_scale must be positive, got %v", c.Banner.FontScale)
	}
	if c.Banner.Thickness < 1 {
		return fmt.Errorf("banner.thickness must be at least 1, got %d", c.Banner.Thickness)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
