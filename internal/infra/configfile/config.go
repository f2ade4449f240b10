package configfile

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/workoutlog/internal/domain"
)

// FileName is the workspace configuration file.
const FileName = "workoutlog.yaml"

// LoadConfig loads workoutlog.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, FileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "configfile.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "configfile.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if s := strings.TrimSpace(y.Workoutlog.Server.BaseURL); s != "" {
		cfg.Server.BaseURL = s
	}
	if s := strings.TrimSpace(y.Workoutlog.Server.AddPath); s != "" {
		cfg.Server.AddPath = s
	}
	if s := strings.TrimSpace(y.Workoutlog.Response.SuccessPath); s != "" {
		cfg.Response.SuccessPath = s
	}
	if s := strings.TrimSpace(y.Workoutlog.HTTP.Timeout); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return cfg, invalidField(path, "http.timeout", err.Error())
		}
		cfg.HTTP.Timeout = d
	}

	if err := Validate(path, cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks values that would only fail later, at submit time.
func Validate(path string, cfg domain.Config) error {
	u, err := url.Parse(cfg.Server.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return invalidField(path, "server.base_url", "must be an absolute http(s) URL")
	}
	if !strings.HasPrefix(cfg.Server.AddPath, "/") {
		return invalidField(path, "server.add_path", "must start with /")
	}
	if !strings.HasPrefix(cfg.Response.SuccessPath, "$") {
		return invalidField(path, "response.success_path", "must be a JSONPath expression starting with $")
	}
	if cfg.HTTP.Timeout < 0 {
		return invalidField(path, "http.timeout", "must not be negative")
	}
	return nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "configfile.load",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}

// IsMissing reports whether err means there is no workoutlog.yaml to read.
func IsMissing(err error) bool {
	return domain.IsKind(err, domain.KindNotFound) || errors.Is(err, os.ErrNotExist)
}

type yamlConfig struct {
	Workoutlog struct {
		Server struct {
			BaseURL string `yaml:"base_url"`
			AddPath string `yaml:"add_path"`
		} `yaml:"server"`

		Response struct {
			SuccessPath string `yaml:"success_path"`
		} `yaml:"response"`

		HTTP struct {
			Timeout string `yaml:"timeout"`
		} `yaml:"http"`
	} `yaml:"workoutlog"`
}
