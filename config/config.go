package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Store drivers
const (
	StoreDriverFirestore = "firestore"
	StoreDriverMemory    = "memory"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Inventory specifics
	Firebase    FirebaseConfig
	Store       StoreConfig
	Auth        AuthConfig
	Maintenance MaintenanceConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// FirebaseConfig points at the Firebase project that hosts both the
// Firestore collections and the identity provider.
type FirebaseConfig struct {
	ProjectID       string
	APIKey          string // Web API key, needed for password sign-in
	CredentialsFile string // empty means Application Default Credentials
}

type StoreConfig struct {
	Driver string
}

// AuthConfig selects the identity provider. Without a Firebase project the
// service authenticates against LocalAccounts (email to password).
type AuthConfig struct {
	LoginRateLimitPerMin int
	LocalAccounts        map[string]string
}

// LocalAccount is one entry of auth.local_accounts. Emails cannot be map keys
// since viper splits keys on dots.
type LocalAccount struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

type MaintenanceConfig struct {
	OrderByCreation bool
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Firebase
	cfg.Firebase.ProjectID = viper.GetString("firebase.project_id")
	cfg.Firebase.APIKey = viper.GetString("firebase.api_key")
	cfg.Firebase.CredentialsFile = viper.GetString("firebase.credentials_file")
	if projectID := viper.GetString("google_cloud_project"); cfg.Firebase.ProjectID == "" && projectID != "" {
		cfg.Firebase.ProjectID = projectID
	}
	if creds := viper.GetString("google_application_credentials"); cfg.Firebase.CredentialsFile == "" && creds != "" {
		cfg.Firebase.CredentialsFile = creds
	}

	// Store
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(viper.GetString("store.driver")))

	// Auth & maintenance
	cfg.Auth.LoginRateLimitPerMin = viper.GetInt("auth.login_rate_limit_per_min")
	var accounts []LocalAccount
	if err := viper.UnmarshalKey("auth.local_accounts", &accounts); err != nil {
		return nil, fmt.Errorf("auth.local_accounts: %w", err)
	}
	cfg.Auth.LocalAccounts = make(map[string]string, len(accounts))
	for _, acc := range accounts {
		cfg.Auth.LocalAccounts[acc.Email] = acc.Password
	}
	cfg.Maintenance.OrderByCreation = viper.GetBool("maintenance.order_by_creation")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Store.Driver {
	case StoreDriverMemory:
	case StoreDriverFirestore:
		if cfg.Firebase.ProjectID == "" {
			return fmt.Errorf("firebase.project_id is required when store.driver is %q", StoreDriverFirestore)
		}
	default:
		return fmt.Errorf("unknown store.driver %q (want %q or %q)", cfg.Store.Driver, StoreDriverFirestore, StoreDriverMemory)
	}
	if cfg.Firebase.ProjectID != "" && cfg.Firebase.APIKey == "" {
		return fmt.Errorf("firebase.api_key is required for sign-in when firebase.project_id is set")
	}
	if cfg.Auth.LoginRateLimitPerMin <= 0 {
		return fmt.Errorf("auth.login_rate_limit_per_min must be positive")
	}
	return nil
}

// UseFirebaseAuth reports whether operators authenticate against Firebase.
func (cfg *Config) UseFirebaseAuth() bool {
	return cfg.Firebase.ProjectID != ""
}

// Presence reports which configuration keys are set, without their values.
// It backs the diagnostics endpoint.
func (cfg *Config) Presence() map[string]bool {
	return map[string]bool{
		"firebase.project_id":       cfg.Firebase.ProjectID != "",
		"firebase.api_key":          cfg.Firebase.APIKey != "",
		"firebase.credentials_file": cfg.Firebase.CredentialsFile != "",
		"store.driver":              cfg.Store.Driver != "",
		"auth.local_accounts":       len(cfg.Auth.LocalAccounts) > 0,
	}
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("store.driver", StoreDriverFirestore)
	viper.SetDefault("auth.login_rate_limit_per_min", 10)
	viper.SetDefault("maintenance.order_by_creation", true)
}
