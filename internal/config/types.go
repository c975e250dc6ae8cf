package config

// Config is the stopwatch configuration document.
type Config struct {
	Theme string    `yaml:"theme" validate:"oneof=dark light"`
	Log   LogConfig `yaml:"log"`
}

// LogConfig controls the diagnostic log. The terminal belongs to the display,
// so logs go to a file or nowhere.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	File  string `yaml:"file,omitempty" validate:"omitempty,log_path"`
	Human bool   `yaml:"human,omitempty"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Theme: "dark",
		Log: LogConfig{
			Level: "info",
		},
	}
}

