package config

import (
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/ha1tch/shapedraw/internal/blob"
)

// Prefix is prepended to every environment variable, e.g. SHAPEDRAW_FPS.
const Prefix = "SHAPEDRAW"

type Config struct {
	CanvasWidth  int           `envconfig:"CANVAS_WIDTH" default:"1080"`
	CanvasHeight int           `envconfig:"CANVAS_HEIGHT" default:"800"`
	FPS          int           `envconfig:"FPS" default:"60"`
	IdleTimeout  time.Duration `envconfig:"IDLE_TIMEOUT" default:"3s"`
	GridSpacing  float64       `envconfig:"GRID_SPACING" default:"25"`
	PickerBar    int           `envconfig:"PICKER_BAR" default:"180"`
	PickerField  int           `envconfig:"PICKER_FIELD" default:"180"`
	LogLevel     slog.Level    `envconfig:"LOG_LEVEL" default:"INFO"`
	ExportName   string        `envconfig:"EXPORT_NAME" default:"scene"`

	ExportDriver string `envconfig:"EXPORT_DRIVER" default:"fs"`
	ExportRoot   string `envconfig:"EXPORT_ROOT" default:"./exports"`
	S3Bucket     string `envconfig:"S3_BUCKET"`
	S3Region     string `envconfig:"S3_REGION" default:"us-east-1"`
	S3Endpoint   string `envconfig:"S3_ENDPOINT"`
	S3PathStyle  bool   `envconfig:"S3_PATH_STYLE"`
	S3AccessKey  string `envconfig:"S3_ACCESS_KEY_ID"`
	S3SecretKey  string `envconfig:"S3_SECRET_ACCESS_KEY"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Blob returns the export destination configuration.
func (c *Config) Blob() blob.Config {
	return blob.Config{
		Driver: blob.Driver(c.ExportDriver),
		Root:   c.ExportRoot,
		S3: blob.S3Config{
			Bucket:          c.S3Bucket,
			Region:          c.S3Region,
			Endpoint:        c.S3Endpoint,
			AccessKeyID:     c.S3AccessKey,
			SecretAccessKey: c.S3SecretKey,
			PathStyle:       c.S3PathStyle,
		},
	}
}
