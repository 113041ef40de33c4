package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type DatabaseConfig struct {
	Path string `yaml:"path" validate:"required"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type RecordingConfig struct {
	Timezone        string `yaml:"timezone" validate:"required"`
	PublicListLimit int    `yaml:"publicListLimit"`
}

type AdminConfig struct {
	Password  string        `yaml:"password" validate:"required|minLen:6"`
	JWTSecret string        `yaml:"jwtSecret" validate:"required|minLen:16"`
	TokenTTL  time.Duration `yaml:"tokenTTL" validate:"required|min:1"`
}

type CardConfig struct {
	FilePath string `yaml:"filePath" validate:"required|unixPath"`
}

type BackupConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Dir      string        `yaml:"dir"`
	Interval time.Duration `yaml:"interval"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server          `yaml:"webServer"`
	Database  DatabaseConfig  `yaml:"database"`
	Recording RecordingConfig `yaml:"recording"`
	Admin     AdminConfig     `yaml:"admin"`
	Card      CardConfig      `yaml:"card"`
	Backup    BackupConfig    `yaml:"backup"`
	Logger    LoggerConfig    `yaml:"logger"`
	Cache     CacheConfig     `yaml:"cache"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}
