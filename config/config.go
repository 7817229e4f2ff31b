// Package config 读取解析器的配置文件 dxfreader.yaml
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName 配置文件名，不含扩展名
const FileName = "dxfreader"

var extensions = []string{".yaml", ".yml"}

type Configuration struct {
	// Failsafe 赋值失败时只记录诊断，关闭后中止整个文档的读取
	Failsafe bool `yaml:"failsafe"`

	// CodePage 文件编码，如 ANSI_936，为空时按 UTF-8 读取
	CodePage string `yaml:"codePage"`

	// LogLevel debug / info / warn / error
	LogLevel string `yaml:"logLevel"`
}

func Default() *Configuration {
	return &Configuration{
		Failsafe: true,
		LogLevel: "info",
	}
}

// Load 在 dir 中查找 dxfreader.{yaml,yml}，没有配置文件时返回 nil, nil
func Load(dir string) (*Configuration, error) {
	for _, ext := range extensions {
		path := filepath.Join(dir, FileName+ext)

		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}

		return Parse(data)
	}

	return nil, nil
}

// Parse 未出现的字段保持默认值
func Parse(data []byte) (*Configuration, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault 找不到或无法解析配置文件时使用默认配置
func LoadOrDefault(dir string) *Configuration {
	cfg, err := Load(dir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// Level 日志级别，无法识别时为 info
func (c *Configuration) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}
