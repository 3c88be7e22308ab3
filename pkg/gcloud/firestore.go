package gcloud

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// FirestoreClient wraps a Firestore client together with its project.
type FirestoreClient struct {
	Client    *firestore.Client
	ProjectID string
}

// NewFirestoreClient opens a Firestore client for projectID.
func NewFirestoreClient(ctx context.Context, projectID string, opts ...option.ClientOption) (*FirestoreClient, error) {
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return &FirestoreClient{Client: client, ProjectID: projectID}, nil
}

// Ping checks connectivity. Firestore has no ping call, so it lists the
// first root collection.
func (fc *FirestoreClient) Ping(ctx context.Context) error {
	if fc == nil || fc.Client == nil {
		return errors.New("firestore client is nil")
	}
	iter := fc.Client.Collections(ctx)
	if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return fmt.Errorf("firestore ping failed: %w", err)
	}
	return nil
}

// Close closes the underlying client.
func (fc *FirestoreClient) Close() error {
	if fc == nil || fc.Client == nil {
		return nil
	}
	return fc.Client.Close()
}
