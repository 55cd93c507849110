package usecase

import (
	"context"

	"carvendor/pkg/errors"
	"carvendor/pkg/logger"
)

type AuthUseCase struct {
	identity IdentityClient
}

func NewAuthUseCase(identity IdentityClient) *AuthUseCase {
	return &AuthUseCase{
		identity: identity,
	}
}

type Principal struct {
	UID   string `json:"uid"`
	Email string `json:"email,omitempty"`
	Token string `json:"token,omitempty"`
}

// Login authenticates a back office operator against the identity
// provider and returns the principal with its session token.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*Principal, error) {
	token, err := uc.identity.SignInWithEmailPassword(ctx, email, password)
	if err != nil {
		logger.Warn("Login rejected for %s: %v", email, err)
		return nil, err
	}

	uid, err := uc.identity.VerifyToken(ctx, token)
	if err != nil {
		return nil, err
	}

	return &Principal{UID: uid, Token: token}, nil
}

// CurrentPrincipal resolves a session token to a principal. Resolution is
// bounded by the identity client's timeout; an unanswered or invalid token
// yields "no principal" rather than an indefinite wait.
func (uc *AuthUseCase) CurrentPrincipal(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, errors.AuthFailed("No session token", nil)
	}

	uid, err := uc.identity.VerifyToken(ctx, token)
	if err != nil {
		return nil, err
	}

	return &Principal{UID: uid}, nil
}

// Profile resolves a session token to a principal enriched with the
// provider record's email. The email lookup is best effort: the principal
// is still returned when the record cannot be loaded.
func (uc *AuthUseCase) Profile(ctx context.Context, token string) (*Principal, error) {
	principal, err := uc.CurrentPrincipal(ctx, token)
	if err != nil {
		return nil, err
	}

	email, err := uc.identity.GetUserEmail(ctx, principal.UID)
	if err != nil {
		logger.Warn("Could not load provider record for %s: %v", principal.UID, err)
		return principal, nil
	}

	principal.Email = email
	return principal, nil
}

// IsAuthorized reports whether the principal may operate the back office.
// Any authenticated principal is a full operator; there are no roles.
func (uc *AuthUseCase) IsAuthorized(principal *Principal) bool {
	return principal != nil && principal.UID != ""
}

// Logout acknowledges the logout. Sessions live in the identity provider,
// so there is no server-side state to discard.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return nil
}
