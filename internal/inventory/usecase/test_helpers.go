package usecase

import (
	"context"
	"errors"

	"ppe-inventory/internal/inventory"
	repo "ppe-inventory/internal/inventory/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var errBackend = errors.New("connection reset")

// brokenRepo fails every call the way an unreachable backend would.
type brokenRepo struct{}

func (brokenRepo) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]inventory.Item, error) {
	return nil, errors.Join(repo.ErrUnavailable, errBackend)
}

func (brokenRepo) GetItem(ctx context.Context, opt repo.GetItemOptions) (inventory.Item, error) {
	return inventory.Item{}, errors.Join(repo.ErrUnavailable, errBackend)
}

func (brokenRepo) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (inventory.Item, error) {
	return inventory.Item{}, errors.Join(repo.ErrUnavailable, errBackend)
}

func (brokenRepo) ReplaceItem(ctx context.Context, opt repo.ReplaceItemOptions) (inventory.Item, error) {
	return inventory.Item{}, errors.Join(repo.ErrUnavailable, errBackend)
}

func (brokenRepo) DeleteItem(ctx context.Context, opt repo.DeleteItemOptions) error {
	return errors.Join(repo.ErrUnavailable, errBackend)
}

func (brokenRepo) Ping(ctx context.Context) error { return errBackend }

func helmetInput(code string, a, b, c int) inventory.ItemInput {
	return inventory.ItemInput{
		Category:       inventory.CategoryHelmets,
		Code:           code,
		Attributes:     inventory.HelmetAttributes{Nombre: "Casco de seguridad", Color: "Blanco"},
		StockInicial:   a,
		NuevosIngresos: b,
		Salidas:        c,
	}
}
