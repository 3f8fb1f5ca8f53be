package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Platform - клиенты firebase, общие для всех запросов процесса.
type Platform struct {
	App       *firebase.App
	Firestore *firestore.Client
	Auth      *auth.Client
}

// Клиент создается один раз на процесс, повторные вызовы отдают тот же результат.
var (
	platformOnce sync.Once
	platform     *Platform
	platformErr  error
)

// GetPlatform лениво инициализирует firebase из json ключа сервисного аккаунта.
func GetPlatform(ctx context.Context, serviceAccountJSON string) (*Platform, error) {
	platformOnce.Do(func() {
		platform, platformErr = newPlatform(ctx, serviceAccountJSON)
	})

	return platform, platformErr
}

func newPlatform(ctx context.Context, serviceAccountJSON string) (*Platform, error) {
	projectID, err := projectIDFromCredentials(serviceAccountJSON)
	if err != nil {
		return nil, err
	}

	fbApp, err := firebase.NewApp(ctx,
		&firebase.Config{ProjectID: projectID},
		option.WithCredentialsJSON([]byte(serviceAccountJSON)),
	)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	fs, err := fbApp.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firestore: %w", err)
	}

	authClient, err := fbApp.Auth(ctx)
	if err != nil {
		fs.Close()
		return nil, fmt.Errorf("init auth: %w", err)
	}

	return &Platform{
		App:       fbApp,
		Firestore: fs,
		Auth:      authClient,
	}, nil
}

// Из ключа нужен только project_id, остальное разбирает сам sdk.
func projectIDFromCredentials(serviceAccountJSON string) (string, error) {
	var creds struct {
		ProjectID string `json:"project_id"`
	}
	if err := json.Unmarshal([]byte(serviceAccountJSON), &creds); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	if creds.ProjectID == "" {
		return "", fmt.Errorf("%w: project_id is empty", ErrInvalidCredential)
	}

	return creds.ProjectID, nil
}
