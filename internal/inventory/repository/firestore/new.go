package firestore

import (
	"fmt"

	"cloud.google.com/go/firestore"

	"ppe-inventory/internal/inventory/repository"
	"ppe-inventory/pkg/log"
)

type implRepository struct {
	client *firestore.Client
	l      log.Logger
}

// New creates a Firestore-backed Repository. Each category is stored in the
// collection of the same name.
func New(client *firestore.Client, l log.Logger) repository.Repository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("inventory/repository/firestore.%s", method)
}
