// Package config provides configuration loading.
//
// Values come from built-in defaults, then a TOML file, then GLIDE_*
// environment variables, and are normalized by per-key validators.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/cristianoliveira/glide/internal/colors"
	"github.com/pelletier/go-toml/v2"
)

// File permission constants
const (
	// FileModeDir is the permission for directories (rwxr-xr-x)
	FileModeDir os.FileMode = 0755
	// FileModeFile is the permission for data files (rw-r--r--)
	FileModeFile os.FileMode = 0644

	// FileExtTOML is the file extension for TOML configuration files.
	FileExtTOML = ".toml"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "GLIDE_"
)

var (
	config    map[string]string
	configMap map[string]string
	filePath  string
	mu        sync.RWMutex
)

func init() {
	initValidators()
}

// Load initializes configuration.
func Load() {
	mu.Lock()
	defer mu.Unlock()

	config = make(map[string]string)
	configMap = make(map[string]string)
	filePath = ""

	setDefaults()
	// Env first so GLIDE_CONFIG_DIR can move the file lookup.
	loadFromEnv()
	loadFromFile()
	// Re-apply environment variable overrides so env wins
	loadFromEnv()
	validate()
}

// setDefaults populates config with default values.
func setDefaults() {
	home, _ := os.UserHomeDir()
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		xdgConfigHome = filepath.Join(home, ".config")
	}
	xdgStateHome := os.Getenv("XDG_STATE_HOME")
	if xdgStateHome == "" {
		xdgStateHome = filepath.Join(home, ".local", "state")
	}

	setDefault("config_dir", filepath.Join(xdgConfigHome, "glide"))
	setDefault("state_dir", filepath.Join(xdgStateHome, "glide"))

	// Surface
	setDefault("scroll_x", "true")
	setDefault("scroll_y", "false")
	setDefault("probe_type", "normal")
	setDefault("use_transform", "true")
	setDefault("bounce", "true")
	setDefault("bounce_time", "800")
	setDefault("momentum", "true")
	setDefault("momentum_limit_time", "300")
	setDefault("momentum_limit_distance", "15")
	setDefault("deceleration", "0.0015")
	setDefault("swipe_time", "2500")
	setDefault("swipe_bounce_time", "500")
	setDefault("flick_limit_time", "200")
	setDefault("flick_limit_distance", "100")
	setDefault("frame_interval", "16")

	// Paging
	setDefault("slide_loop", "true")
	setDefault("slide_threshold", "30")
	setDefault("slide_speed", "0")
	setDefault("slide_snap_time", "300")
	setDefault("slide_easing", "bounce")
	setDefault("slide_start_page_x", "0")
	setDefault("slide_start_page_y", "0")

	setDefault("status_format", "default")
	setDefault("store_enabled", "true")

	setDefault("logging_enabled", "false")
	setDefault("logging_level", "info")
	setDefault("logging_max_files", "10")
	setDefault("debug", "false")
	setDefault("quiet", "false")
}

func setDefault(key, value string) {
	config[key] = value
	configMap[key] = value
}

// loadFromFile reads configuration from GLIDE_CONFIG_PATH or
// {config_dir}/config.toml.
func loadFromFile() {
	configPath := os.Getenv(EnvPrefix + "CONFIG_PATH")
	if configPath == "" {
		configPath = filepath.Join(config["config_dir"], "config"+FileExtTOML)
		if _, err := os.Stat(configPath); err != nil {
			return
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		colors.Debug(fmt.Sprintf("unable to read config file %s: %v", configPath, err))
		return
	}
	if strings.ToLower(filepath.Ext(configPath)) != FileExtTOML {
		colors.Warning(fmt.Sprintf("unsupported config file %s: expected %s", configPath, FileExtTOML))
		return
	}

	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		colors.Warning(fmt.Sprintf("unable to parse config file %s: %v", configPath, err))
		return
	}
	filePath = configPath

	for k, v := range raw {
		key := strings.ToLower(k)
		converted, ok := coerceConfigValue(v)
		if !ok {
			colors.Warning(fmt.Sprintf("unsupported config value type for %s: %T", key, v))
			continue
		}
		config[key] = converted
	}
}

// coerceConfigValue converts a configuration value to its string representation.
// Supported types are string, int, int64, float64, and bool.
func coerceConfigValue(value interface{}) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case int:
		return strconv.Itoa(typed), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(typed), true
	default:
		return "", false
	}
}

// loadFromEnv applies environment variable overrides.
func loadFromEnv() {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, EnvPrefix) {
			continue
		}
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(parts[0], EnvPrefix))
		if key == "config_path" {
			continue
		}
		config[key] = parts[1]
	}
}

// validate checks and normalizes configuration values using registered validators.
func validate() {
	for key, value := range config {
		validator := getValidator(key)
		if validator == nil {
			continue
		}
		defaultValue := configMap[key]
		normalizedValue, err := validator(key, value, defaultValue)
		if err != nil {
			colors.Warning(fmt.Sprintf("validation error for %s: %v, using default: %s", key, err, defaultValue))
			config[key] = defaultValue
		} else {
			config[key] = normalizedValue
		}
	}
}

// valueToInterface converts a configuration value to appropriate type for TOML.
func valueToInterface(val string) interface{} {
	if n, err := strconv.Atoi(val); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(val, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return val
}

// SamplePath returns where WriteSample writes by default.
func SamplePath() string {
	return filepath.Join(Get("config_dir", ""), "config"+FileExtTOML)
}

// WriteSample writes the defaults as a TOML file at path. It refuses to
// overwrite an existing file unless force is set.
func WriteSample(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("write sample config: %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), FileModeDir); err != nil {
		return fmt.Errorf("write sample config: create dir: %w", err)
	}

	mu.RLock()
	typed := make(map[string]interface{}, len(configMap))
	for k, v := range configMap {
		if k == "config_dir" || k == "state_dir" {
			continue
		}
		typed[k] = valueToInterface(v)
	}
	mu.RUnlock()

	data, err := toml.Marshal(typed)
	if err != nil {
		return fmt.Errorf("write sample config: marshal: %w", err)
	}
	header := "# glide configuration\n# This file is in TOML format.\n# Environment variables GLIDE_<KEY> override these values.\n\n"
	if err := os.WriteFile(path, append([]byte(header), data...), FileModeFile); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// FilePath returns the config file Load read, or "" when none was read.
func FilePath() string {
	mu.RLock()
	defer mu.RUnlock()
	return filePath
}

// Keys returns every known key in sorted order.
func Keys() []string {
	mu.RLock()
	defer mu.RUnlock()
	keys := make([]string, 0, len(config))
	for k := range config {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns a configuration value or default.
func Get(key, defaultValue string) string {
	mu.RLock()
	defer mu.RUnlock()
	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

// GetInt returns a configuration value as integer, or default.
func GetInt(key string, defaultValue int) int {
	mu.RLock()
	defer mu.RUnlock()
	val, ok := config[key]
	if !ok {
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return n
}

// GetFloat returns a configuration value as float64, or default.
func GetFloat(key string, defaultValue float64) float64 {
	mu.RLock()
	defer mu.RUnlock()
	val, ok := config[key]
	if !ok {
		return defaultValue
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

// GetBool returns a configuration value as boolean, or default.
func GetBool(key string, defaultValue bool) bool {
	mu.RLock()
	defer mu.RUnlock()
	val, ok := config[key]
	if !ok {
		return defaultValue
	}
	switch normalizeBool(val) {
	case "true":
		return true
	case "false":
		return false
	default:
		return defaultValue
	}
}
