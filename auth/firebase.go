package auth

import (
	"context"
	"os"

	firebase "firebase.google.com/go"
	fbauth "firebase.google.com/go/auth"
	"google.golang.org/api/option"

	"github.com/krishnapandey24/brandbox-backend/logger"
	"go.uber.org/zap"
)

var (
	firebaseAuth *fbauth.Client
	projectID    string
)

// InitFirebase wires up the identity-provider token verifier. It is
// optional: when FIREBASE_CREDENTIALS is not set, logins fall back to the
// plain (provider, email) lookup and id_token payloads are ignored.
func InitFirebase() {
	credFile := os.Getenv("FIREBASE_CREDENTIALS")
	if credFile == "" {
		return
	}
	projectID = os.Getenv("FIREBASE_PROJECT_ID")

	app, err := firebase.NewApp(context.Background(), nil, option.WithCredentialsFile(credFile))
	if err != nil {
		logger.Log.Warn("firebase init failed, id_token verification disabled", zap.Error(err))
		return
	}
	client, err := app.Auth(context.Background())
	if err != nil {
		logger.Log.Warn("firebase auth client failed, id_token verification disabled", zap.Error(err))
		return
	}
	firebaseAuth = client
}

// verifyIDToken checks a provider-issued ID token and returns the email it
// was issued for. Returns "" when verification is unavailable or fails.
func verifyIDToken(ctx context.Context, idToken string) string {
	if firebaseAuth == nil || idToken == "" {
		return ""
	}
	token, err := firebaseAuth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return ""
	}
	if projectID != "" && token.Audience != projectID {
		return ""
	}
	email, _ := token.Claims["email"].(string)
	return email
}
