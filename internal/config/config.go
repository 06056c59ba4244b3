package config

import (
	"time"
)

// Default configuration values.
const (
	defaultServiceName      = "mail-triage"
	defaultServiceVersion   = "1.0.0"
	defaultServicePort      = 8071
	defaultRateLimitRPS     = 20
	defaultRateLimitBurst   = 40
	defaultMaxUploadBytes   = 5 << 20
	defaultZeroShotURL      = "http://zero-shot-ml:8090"
	defaultZeroShotModel    = "MoritzLaurer/mDeBERTa-v3-base-mnli-xnli"
	defaultMinConfidence    = 0.60
	defaultHypothesis       = "Este e-mail é {}."
	defaultZeroShotTimeout  = 30 * time.Second
	defaultShutdownTimeout  = 30 * time.Second
	defaultLogLevel         = "info"
	defaultLogFormat        = "json"
)

// Config holds all configuration for the mail-triage service.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	ZeroShot ZeroShotConfig `yaml:"zero_shot"`
	Logging  LoggingConfig  `yaml:"logging"`
	Auth     AuthConfig     `yaml:"auth"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name            string        `yaml:"name"`
	Version         string        `yaml:"version"`
	Port            int           `env:"MAILTRIAGE_PORT"  yaml:"port"`
	Debug           bool          `env:"APP_DEBUG"        yaml:"debug"`
	RateLimitRPS    int           `yaml:"rate_limit_rps"`
	RateLimitBurst  int           `yaml:"rate_limit_burst"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// ZeroShotConfig holds zero-shot sidecar settings.
type ZeroShotConfig struct {
	// ServiceURL is the base URL of the NLI sidecar serving the model.
	ServiceURL string `env:"ZERO_SHOT_SERVICE_URL" yaml:"service_url"`
	// Model is the model identifier the sidecar is expected to serve.
	Model string `yaml:"model"`
	// MinConfidence is the minimum top score required to trust the
	// model output without the keyword fallback.
	MinConfidence float64 `yaml:"min_confidence"`
	// HypothesisTemplate anchors the NLI entailment query; "{}" is
	// replaced with each candidate sentence.
	HypothesisTemplate string        `yaml:"hypothesis_template"`
	Timeout            time.Duration `yaml:"timeout"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// AuthConfig holds authentication configuration for the admin API.
// An empty secret disables JWT protection.
type AuthConfig struct {
	JWTSecret string `env:"AUTH_JWT_SECRET" yaml:"jwt_secret"`
}

// Load loads configuration from the specified path.
func Load(path string) (*Config, error) {
	return load(path)
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setZeroShotDefaults(&cfg.ZeroShot)
	setLoggingDefaults(&cfg.Logging)
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
	if s.RateLimitRPS == 0 {
		s.RateLimitRPS = defaultRateLimitRPS
	}
	if s.RateLimitBurst == 0 {
		s.RateLimitBurst = defaultRateLimitBurst
	}
	if s.MaxUploadBytes == 0 {
		s.MaxUploadBytes = defaultMaxUploadBytes
	}
	if s.ShutdownTimeout == 0 {
		s.ShutdownTimeout = defaultShutdownTimeout
	}
}

func setZeroShotDefaults(z *ZeroShotConfig) {
	if z.ServiceURL == "" {
		z.ServiceURL = defaultZeroShotURL
	}
	if z.Model == "" {
		z.Model = defaultZeroShotModel
	}
	if z.MinConfidence == 0 {
		z.MinConfidence = defaultMinConfidence
	}
	if z.HypothesisTemplate == "" {
		z.HypothesisTemplate = defaultHypothesis
	}
	if z.Timeout == 0 {
		z.Timeout = defaultZeroShotTimeout
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if l.Format == "" {
		l.Format = defaultLogFormat
	}
}
