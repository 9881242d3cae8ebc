package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	UI    UIConfig    `toml:"ui"`
	Sheet SheetConfig `toml:"sheet"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
}

type SheetConfig struct {
	ShortFormHeight float64 `toml:"short_form_height"`
	// LongFormHeight of 0 extends the sheet to the maximum height.
	LongFormHeight float64 `toml:"long_form_height"`
	TopOffset      float64 `toml:"top_offset"`
	CornerRadius   float64 `toml:"corner_radius"`
	SpringDamping  float64 `toml:"spring_damping"`
	TransitionMS   int     `toml:"transition_ms"`

	AnchorToLongForm    bool `toml:"anchor_to_long_form"`
	AllowsDragToDismiss bool `toml:"allows_drag_to_dismiss"`
	AllowsTapToDismiss  bool `toml:"allows_tap_to_dismiss"`
	ShowDragIndicator   bool `toml:"show_drag_indicator"`

	Rows int `toml:"rows"`
}

func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Fullscreen: false,
			Width:      480,
			Height:     854,
		},
		Sheet: SheetConfig{
			ShortFormHeight:     320,
			LongFormHeight:      0,
			TopOffset:           42,
			CornerRadius:        12,
			SpringDamping:       0.8,
			TransitionMS:        500,
			AnchorToLongForm:    true,
			AllowsDragToDismiss: true,
			AllowsTapToDismiss:  true,
			ShowDragIndicator:   true,
			Rows:                40,
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "panmodal-demo"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
