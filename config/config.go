package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultSessionCookieName  = "dukasync_sid"
	defaultResolveTimeout     = 10 * time.Second
	defaultSessionIdleTimeout = 24 * time.Hour
	defaultOnboardingTimeout  = 15 * time.Second
	defaultApkPath            = "apk/DukaPap.apk"
	defaultRequestsPerMinute  = 20
	defaultRateBurst          = 10
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
		// TrustedProxies are the CIDRs whose X-Forwarded-For is believed. Empty means the peer address is the client IP.
		TrustedProxies []string `json:"trustedProxies" yaml:"trustedProxies"`
	} `json:"http" yaml:"http"`

	// Firebase holds the identity and store credentials. Without apiKey and projectId the
	// service runs in the unconfigured mode: auth forms and guarded routes report a configuration error.
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Session configuration for browser clients
	Session *SessionConfig `json:"session" yaml:"session"`

	// Apk configuration for the mobile app download link
	Apk *ApkConfig `json:"apk" yaml:"apk"`

	// Onboarding configuration for the optional backend onboarding endpoint
	Onboarding *OnboardingConfig `json:"onboarding" yaml:"onboarding"`

	// PubSub configuration for registration events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// RateLimit configuration for the auth forms
	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// QRCode configuration for the download QR code
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Contact *ContactConfig `json:"contact" yaml:"contact"`
}

// FirebaseConfig defines the hosted identity provider and store settings
type FirebaseConfig struct {
	APIKey          string `json:"apiKey" yaml:"apiKey"`
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	DatabaseURL     string `json:"databaseUrl" yaml:"databaseUrl"`
	StorageBucket   string `json:"storageBucket" yaml:"storageBucket"`
}

// SessionConfig defines how browser sessions are tracked
type SessionConfig struct {
	CookieName     string        `json:"cookieName" yaml:"cookieName"`
	CookieSecure   bool          `json:"cookieSecure" yaml:"cookieSecure"`
	ResolveTimeout time.Duration `json:"resolveTimeout" yaml:"resolveTimeout"`
	// IdleTimeout signs out clients that have not been seen for this long
	IdleTimeout time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
}

// ApkConfig defines where the Android build is published
type ApkConfig struct {
	Path        string `json:"path" yaml:"path"`
	Bucket      string `json:"bucket" yaml:"bucket"`
	FallbackURL string `json:"fallbackUrl" yaml:"fallbackUrl"`
	// ProbeURL is an optional gocloud bucket URL (gs://..., file:///...) used to check the APK exists
	ProbeURL string `json:"probeUrl" yaml:"probeUrl"`
}

// OnboardingConfig defines the optional onboarding endpoint called after registration
type OnboardingConfig struct {
	URL                  string        `json:"url" yaml:"url"`
	Timeout              time.Duration `json:"timeout" yaml:"timeout"`
	AllowPrivateNetworks bool          `json:"allowPrivateNetworks" yaml:"allowPrivateNetworks"`
}

// PubSubConfig defines Pub/Sub configuration for registration events
type PubSubConfig struct {
	// Provider type: empty for disabled or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`
}

// RateLimitConfig defines per client IP limits on the auth forms
type RateLimitConfig struct {
	RequestsPerMinute int `json:"requestsPerMinute" yaml:"requestsPerMinute"`
	Burst             int `json:"burst" yaml:"burst"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

type ContactConfig struct {
	TargetInbox string `json:"targetInbox" yaml:"targetInbox"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfigured reports whether the identity and store credentials are present.
func (c *Config) FirebaseConfigured() bool {
	return c.Firebase != nil &&
		strings.TrimSpace(c.Firebase.APIKey) != "" &&
		strings.TrimSpace(c.Firebase.ProjectID) != ""
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: FIREBASE_APIKEY -> firebase.apiKey
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = defaultSessionCookieName
	}
	if cfg.Session.ResolveTimeout <= 0 {
		cfg.Session.ResolveTimeout = defaultResolveTimeout
	}
	if cfg.Session.IdleTimeout <= 0 {
		cfg.Session.IdleTimeout = defaultSessionIdleTimeout
	}

	if cfg.Apk == nil {
		cfg.Apk = &ApkConfig{}
	}
	if strings.TrimSpace(cfg.Apk.Path) == "" {
		cfg.Apk.Path = defaultApkPath
	}
	// The APK lives in the Firebase storage bucket unless configured otherwise.
	if strings.TrimSpace(cfg.Apk.Bucket) == "" && cfg.Firebase != nil {
		cfg.Apk.Bucket = cfg.Firebase.StorageBucket
	}

	if cfg.Onboarding != nil && cfg.Onboarding.Timeout <= 0 {
		cfg.Onboarding.Timeout = defaultOnboardingTimeout
	}

	if cfg.RateLimit == nil {
		cfg.RateLimit = &RateLimitConfig{}
	}
	if cfg.RateLimit.RequestsPerMinute <= 0 {
		cfg.RateLimit.RequestsPerMinute = defaultRequestsPerMinute
	}
	if cfg.RateLimit.Burst <= 0 {
		cfg.RateLimit.Burst = defaultRateBurst
	}

	if cfg.Contact == nil {
		cfg.Contact = &ContactConfig{}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
