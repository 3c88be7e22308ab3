package main

import (
	"context"

	"ppe-inventory/config"
	"ppe-inventory/internal/auth/repository"
	firebaseAuth "ppe-inventory/internal/auth/repository/firebase"
	memoryAuth "ppe-inventory/internal/auth/repository/memory"
	inventoryRepo "ppe-inventory/internal/inventory/repository"
	"ppe-inventory/internal/inventory/repository/firestore"
	"ppe-inventory/internal/inventory/repository/memory"
	"ppe-inventory/pkg/gcloud"
	"ppe-inventory/pkg/log"

	"google.golang.org/api/option"
)

// newStore opens the inventory store selected by store.driver. The returned
// func releases it.
func newStore(ctx context.Context, l log.Logger, cfg *config.Config, opts []option.ClientOption) (inventoryRepo.Repository, func(), error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		l.Warn(ctx, "Using the in-memory store, data is lost on restart")
		return memory.New(l), func() {}, nil
	}

	fc, err := gcloud.NewFirestoreClient(ctx, cfg.Firebase.ProjectID, opts...)
	if err != nil {
		return nil, nil, err
	}
	if err := fc.Ping(ctx); err != nil {
		l.Warnf(ctx, "Firestore not reachable yet, /ready will report it: %v", err)
	} else {
		l.Infof(ctx, "Firestore connected (project %s)", fc.ProjectID)
	}

	closeFn := func() {
		if err := fc.Close(); err != nil {
			l.Warnf(ctx, "Firestore close: %v", err)
		}
	}
	return firestore.New(fc.Client, l), closeFn, nil
}

// newIdentityProvider picks Firebase when a project is configured and the
// local account list otherwise.
func newIdentityProvider(ctx context.Context, l log.Logger, cfg *config.Config, opts []option.ClientOption) (repository.IdentityProvider, error) {
	if !cfg.UseFirebaseAuth() {
		if len(cfg.Auth.LocalAccounts) == 0 {
			l.Warn(ctx, "No Firebase project and no auth.local_accounts: nobody can sign in")
		}
		l.Infof(ctx, "Using local accounts (%d)", len(cfg.Auth.LocalAccounts))
		return memoryAuth.New(l, cfg.Auth.LocalAccounts), nil
	}

	admin, err := gcloud.NewAuthClient(ctx, cfg.Firebase.ProjectID, opts...)
	if err != nil {
		return nil, err
	}
	l.Infof(ctx, "Firebase Auth initialized (project %s)", cfg.Firebase.ProjectID)
	return firebaseAuth.New(ctx, l, admin, cfg.Firebase.APIKey)
}
