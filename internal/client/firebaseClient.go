package client

import (
	"context"
	"fmt"
	"paymob-course-checkout/internal/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

// InitFirebaseDatabaseClient connects to the realtime database that holds
// students/{uid}/purchased/{courseId}. An http:// URL with ?ns= targets the
// database emulator.
func InitFirebaseDatabaseClient(ctx context.Context, fbCfg *config.Firebase) (*db.Client, error) {
	if fbCfg.DatabaseURL == "" {
		return nil, fmt.Errorf("FIREBASE_DATABASE_URL is required for the firebase record store")
	}

	var opts []option.ClientOption
	if fbCfg.ServiceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(fbCfg.ServiceAccountJSON)))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:   fbCfg.ProjectID,
		DatabaseURL: fbCfg.DatabaseURL,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase database: %w", err)
	}

	return client, nil
}
