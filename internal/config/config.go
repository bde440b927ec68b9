package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	PDFPath        string `mapstructure:"pdf_path"`
	OutputPath     string `mapstructure:"output_path"`
	LookbackWindow int    `mapstructure:"lookback_window"`
	LogMode        string `mapstructure:"log_mode"`
	ColorHeader    string `mapstructure:"color_header"`
	ColorOK        string `mapstructure:"color_ok"`
	ColorDiff      string `mapstructure:"color_diff"`
	ColorDim       string `mapstructure:"color_dim"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("pdf_path", "2026도전골든별문제은행.pdf")
	viper.SetDefault("output_path", filepath.Join("data", "questions.json"))
	viper.SetDefault("lookback_window", 3000) // Characters searched before each answer tag
	viper.SetDefault("log_mode", "dev")
	viper.SetDefault("color_header", "6") // Cyan
	viper.SetDefault("color_ok", "2")     // Green
	viper.SetDefault("color_diff", "1")   // Red
	viper.SetDefault("color_dim", "8")    // Gray

	viper.SetConfigName("goldenbell")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "goldenbell"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("GOLDENBELL")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetPDFPath returns the source document path with tilde expansion
func GetPDFPath() string {
	return expandTilde(viper.GetString("pdf_path"))
}

// GetOutputPath returns the JSON output path with tilde expansion
func GetOutputPath() string {
	return expandTilde(viper.GetString("output_path"))
}

// GetLookbackWindow returns the answer lookback window in characters
func GetLookbackWindow() int {
	return viper.GetInt("lookback_window")
}

// GetLogMode returns the logger mode (dev or prod)
func GetLogMode() string {
	return viper.GetString("log_mode")
}

// GetColorHeader returns ANSI color code for report headings
func GetColorHeader() string {
	return viper.GetString("color_header")
}

// GetColorOK returns ANSI color code for matching counts
func GetColorOK() string {
	return viper.GetString("color_ok")
}

// GetColorDiff returns ANSI color code for mismatching counts
func GetColorDiff() string {
	return viper.GetString("color_diff")
}

// GetColorDim returns ANSI color code for secondary text
func GetColorDim() string {
	return viper.GetString("color_dim")
}

// SetPDFPath sets the source path at runtime
func SetPDFPath(path string) {
	viper.Set("pdf_path", path)
	C.PDFPath = path
}

// SetOutputPath sets the output path at runtime
func SetOutputPath(path string) {
	viper.Set("output_path", path)
	C.OutputPath = path
}

// SetLookbackWindow sets the lookback window at runtime
func SetLookbackWindow(n int) {
	viper.Set("lookback_window", n)
	C.LookbackWindow = n
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
