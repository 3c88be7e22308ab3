package config

import "testing"

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Firebase: FirebaseConfig{ProjectID: "inventario", APIKey: "key"},
			Store:    StoreConfig{Driver: StoreDriverFirestore},
			Auth:     AuthConfig{LoginRateLimitPerMin: 10},
		}
	}

	t.Run("Firestore With Project", func(t *testing.T) {
		if err := base().validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Firestore Without Project", func(t *testing.T) {
		cfg := base()
		cfg.Firebase.ProjectID = ""
		if err := cfg.validate(); err == nil {
			t.Errorf("expected error for missing project id")
		}
	})

	t.Run("Memory Without Project", func(t *testing.T) {
		cfg := base()
		cfg.Firebase.ProjectID = ""
		cfg.Store.Driver = StoreDriverMemory
		if err := cfg.validate(); err != nil {
			t.Errorf("memory driver must not need firebase: %v", err)
		}
		if cfg.UseFirebaseAuth() {
			t.Errorf("expected local accounts without a project")
		}
	})

	t.Run("Project Without API Key", func(t *testing.T) {
		cfg := base()
		cfg.Firebase.APIKey = ""
		if err := cfg.validate(); err == nil {
			t.Errorf("expected error for missing api key")
		}
	})

	t.Run("Unknown Driver", func(t *testing.T) {
		cfg := base()
		cfg.Store.Driver = "postgres"
		if err := cfg.validate(); err == nil {
			t.Errorf("expected error for unknown driver")
		}
	})

	t.Run("Non Positive Rate Limit", func(t *testing.T) {
		cfg := base()
		cfg.Auth.LoginRateLimitPerMin = 0
		if err := cfg.validate(); err == nil {
			t.Errorf("expected error for zero rate limit")
		}
	})
}

func TestPresence(t *testing.T) {
	cfg := &Config{Firebase: FirebaseConfig{ProjectID: "p", APIKey: "secret"}}
	p := cfg.Presence()
	if !p["firebase.project_id"] || !p["firebase.api_key"] {
		t.Errorf("expected project and api key present: %v", p)
	}
	if p["firebase.credentials_file"] {
		t.Errorf("credentials file should be absent")
	}
}
