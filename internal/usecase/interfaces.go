package usecase

import "context"

// IdentityClient is the slice of the Firebase auth client the use cases
// need. Kept as an interface so tests can substitute a fake provider.
type IdentityClient interface {
	SignInWithEmailPassword(ctx context.Context, email, password string) (string, error)
	VerifyToken(ctx context.Context, idToken string) (string, error)
	GetUserEmail(ctx context.Context, uid string) (string, error)
}

// OperatorNotifier delivers best-effort notifications to connected back
// office operators. Implementations must never block the caller.
type OperatorNotifier interface {
	NotifyOperators(message []byte)
}

// CatalogPublisher pushes a full catalog payload to every connected
// catalog client.
type CatalogPublisher interface {
	BroadcastCatalog(message []byte)
}
