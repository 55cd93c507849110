package firebase

import (
	"context"
	"fmt"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/go-resty/resty/v2"

	"carvendor/pkg/errors"
)

const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// currentPrincipalTimeout bounds how long a token verification may take.
// If the identity provider does not answer in time we treat the caller as
// having no principal instead of hanging.
const currentPrincipalTimeout = 10 * time.Second

// AuthClient wraps the Firebase Admin auth client plus the Identity
// Toolkit REST endpoint used for email/password sign-in, which the Admin
// SDK does not expose.
type AuthClient struct {
	client *auth.Client
	http   *resty.Client
	apiKey string
}

func NewAuthClient(client *auth.Client, apiKey string) *AuthClient {
	return &AuthClient{
		client: client,
		http:   resty.New().SetTimeout(currentPrincipalTimeout),
		apiKey: apiKey,
	}
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
}

type signInError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithEmailPassword exchanges operator credentials for a Firebase ID
// token. Rejected credentials surface as AUTH_FAILED.
func (a *AuthClient) SignInWithEmailPassword(ctx context.Context, email, password string) (string, error) {
	var result signInResponse
	var apiErr signInError

	resp, err := a.http.R().
		SetContext(ctx).
		SetQueryParam("key", a.apiKey).
		SetBody(signInRequest{Email: email, Password: password, ReturnSecureToken: true}).
		SetResult(&result).
		SetError(&apiErr).
		Post(signInEndpoint)
	if err != nil {
		return "", errors.Internal("Failed to reach identity provider", err)
	}

	if resp.IsError() {
		return "", errors.AuthFailed("Invalid credentials", fmt.Errorf("identity provider: %s", apiErr.Error.Message))
	}

	return result.IDToken, nil
}

// VerifyToken resolves an ID token to a principal uid, bounded by
// currentPrincipalTimeout.
func (a *AuthClient) VerifyToken(ctx context.Context, idToken string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, currentPrincipalTimeout)
	defer cancel()

	token, err := a.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", errors.AuthFailed("Invalid or expired token", err)
	}

	return token.UID, nil
}

// GetUserEmail loads the email of the principal's provider record.
func (a *AuthClient) GetUserEmail(ctx context.Context, uid string) (string, error) {
	user, err := a.client.GetUser(ctx, uid)
	if err != nil {
		return "", errors.NotFound("User", err)
	}

	return user.Email, nil
}
