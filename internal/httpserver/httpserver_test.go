package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	authRepo "ppe-inventory/internal/auth/repository/memory"
	authUC "ppe-inventory/internal/auth/usecase"
	dashboardUC "ppe-inventory/internal/dashboard/usecase"
	inventoryRepo "ppe-inventory/internal/inventory/repository/memory"
	inventoryUC "ppe-inventory/internal/inventory/usecase"
	maintenanceUC "ppe-inventory/internal/maintenance/usecase"
	"ppe-inventory/pkg/log"
)

type downStore struct{}

func (downStore) Ping(ctx context.Context) error { return errors.New("connection refused") }

func newTestServer(t *testing.T, store Pinger) http.Handler {
	t.Helper()
	l := log.NewNop()
	repo := inventoryRepo.New(l)
	if store == nil {
		store = repo
	}
	inv := inventoryUC.New(repo, l)

	srv, err := New(l, Config{
		Logger:        l,
		Port:          8080,
		Mode:          "test",
		Environment:   "development",
		Store:         store,
		StoreDriver:   "memory",
		Presence:      map[string]bool{"firebase.project_id": false, "store.driver": true},
		AuthUC:        authUC.New(l, authRepo.New(l, map[string]string{"ops@planta.com": "secreto"}), 60),
		InventoryUC:   inv,
		DashboardUC:   dashboardUC.New(l, inv),
		MaintenanceUC: maintenanceUC.New(l, inv, true),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv.Handler()
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func call(t *testing.T, h http.Handler, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: invalid JSON %q", method, path, w.Body.String())
	}
	return w.Code, env
}

func TestNewValidation(t *testing.T) {
	if _, err := New(log.NewNop(), Config{Logger: log.NewNop(), Port: 8080, Mode: "test"}); err == nil {
		t.Error("expected error without store and usecases")
	}
}

func TestSystemRoutes(t *testing.T) {
	t.Run("Health", func(t *testing.T) {
		code, _ := call(t, newTestServer(t, nil), http.MethodGet, "/health", "", nil)
		if code != http.StatusOK {
			t.Errorf("status = %d", code)
		}
	})

	t.Run("Ready", func(t *testing.T) {
		code, _ := call(t, newTestServer(t, nil), http.MethodGet, "/ready", "", nil)
		if code != http.StatusOK {
			t.Errorf("status = %d", code)
		}
	})

	t.Run("Not Ready When Store Down", func(t *testing.T) {
		code, _ := call(t, newTestServer(t, downStore{}), http.MethodGet, "/ready", "", nil)
		if code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", code)
		}
	})

	t.Run("Diagnostics", func(t *testing.T) {
		code, env := call(t, newTestServer(t, downStore{}), http.MethodGet, "/diagnostics", "", nil)
		if code != http.StatusOK {
			t.Fatalf("status = %d", code)
		}
		var diag diagnosticsResp
		if err := json.Unmarshal(env.Data, &diag); err != nil {
			t.Fatal(err)
		}
		if diag.Store.Reachable || diag.Store.Error == "" || diag.Store.Driver != "memory" {
			t.Errorf("unexpected store diagnostics: %+v", diag.Store)
		}
		if !diag.Config["store.driver"] || diag.Config["firebase.project_id"] {
			t.Errorf("unexpected config presence: %v", diag.Config)
		}
	})
}

func TestAuthenticatedFlow(t *testing.T) {
	h := newTestServer(t, nil)

	if code, _ := call(t, h, http.MethodGet, "/api/v1/dashboard", "", nil); code != http.StatusUnauthorized {
		t.Fatalf("anonymous dashboard status = %d, want 401", code)
	}

	code, env := call(t, h, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "ops@planta.com", "password": "secreto",
	})
	if code != http.StatusOK {
		t.Fatalf("login status = %d: %s", code, env.Message)
	}
	var session struct {
		IDToken string `json:"idToken"`
	}
	if err := json.Unmarshal(env.Data, &session); err != nil {
		t.Fatal(err)
	}
	token := session.IDToken

	item := map[string]any{"codigo": "CAS-001", "nombre": "Casco", "color": "Blanco", "stockInicial": 5}
	for i := 0; i < 2; i++ {
		if code, env := call(t, h, http.MethodPost, "/api/v1/inventory/cascos/items", token, item); code != http.StatusCreated {
			t.Fatalf("add status = %d: %s", code, env.Message)
		}
	}

	code, env = call(t, h, http.MethodGet, "/api/v1/dashboard/stats", token, nil)
	if code != http.StatusOK {
		t.Fatalf("dashboard stats status = %d", code)
	}
	var stats struct {
		TotalArticulos    int `json:"totalArticulos"`
		ArticulosCriticos int `json:"articulosCriticos"`
	}
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatal(err)
	}
	if stats.TotalArticulos != 2 || stats.ArticulosCriticos != 2 {
		t.Errorf("unexpected stats: %+v", stats)
	}

	code, env = call(t, h, http.MethodPost, "/api/v1/maintenance/duplicates", token, nil)
	if code != http.StatusOK {
		t.Fatalf("duplicates status = %d", code)
	}
	var report struct {
		TotalRemoved int `json:"totalRemoved"`
	}
	if err := json.Unmarshal(env.Data, &report); err != nil {
		t.Fatal(err)
	}
	if report.TotalRemoved != 1 {
		t.Errorf("removed = %d, want 1", report.TotalRemoved)
	}
}
