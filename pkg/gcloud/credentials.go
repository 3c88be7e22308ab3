package gcloud

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

// Scopes requested for the service credentials: Firestore plus the Firebase
// Auth admin API.
var Scopes = []string{
	"https://www.googleapis.com/auth/cloud-platform",
	"https://www.googleapis.com/auth/datastore",
	"https://www.googleapis.com/auth/identitytoolkit",
	"https://www.googleapis.com/auth/userinfo.email",
}

// EmulatorEnv is set when Firestore should be reached through the local emulator.
const EmulatorEnv = "FIRESTORE_EMULATOR_HOST"

// ClientOptions resolves the credentials shared by every Google client.
// credentialsFile wins when set; otherwise Application Default Credentials are
// used. With the emulator configured no credentials are attached.
func ClientOptions(ctx context.Context, credentialsFile string) ([]option.ClientOption, error) {
	if os.Getenv(EmulatorEnv) != "" {
		return nil, nil
	}

	credentialsFile = strings.TrimSpace(credentialsFile)
	if credentialsFile != "" {
		data, err := os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, data, Scopes...)
		if err != nil {
			return nil, fmt.Errorf("parse credentials file: %w", err)
		}
		return []option.ClientOption{option.WithCredentials(creds)}, nil
	}

	creds, err := google.FindDefaultCredentials(ctx, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("find default credentials: %w", err)
	}
	return []option.ClientOption{option.WithCredentials(creds)}, nil
}
