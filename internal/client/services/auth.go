// Package services contains the application services for the wishlist
// client: authentication lifecycle and the wishlist view state machine.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/wetrippo/wishlist/internal/client/api"
	"github.com/wetrippo/wishlist/internal/client/host"
	"github.com/wetrippo/wishlist/internal/client/models"
	"github.com/wetrippo/wishlist/internal/client/session"
	"github.com/wetrippo/wishlist/internal/logging"
)

// AuthService drives the session lifecycle: manual sign-in/sign-up, the
// host-platform auto-authentication path, and sign-out.
type AuthService interface {
	SignIn(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	SignUp(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	SignOut(ctx context.Context) error
	// AutoAuthenticate performs the host-identity sign-in when a host
	// runtime is present. Failures are logged and swallowed so client
	// startup still proceeds to the anonymous state.
	AutoAuthenticate(ctx context.Context, rt *host.Runtime)
	IsAuthenticated(ctx context.Context) bool
	OwnerID(ctx context.Context) string
}

type authService struct {
	client  api.Client
	session session.Store
	log     logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(client api.Client, sess session.Store, log logging.Logger) AuthService {
	return &authService{client: client, session: sess, log: log}
}

func (a *authService) SignIn(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	resp, err := a.client.SignIn(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("sign in error: %w", err)
	}
	return resp, nil
}

func (a *authService) SignUp(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	resp, err := a.client.SignUp(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("sign up error: %w", err)
	}
	return resp, nil
}

func (a *authService) SignOut(ctx context.Context) error {
	return a.client.SignOut(ctx)
}

// AutoAuthenticate signs in with the host-provided identity. A first visit
// has no account yet, so a rejected sign-in falls back to sign-up once.
// Any failure leaves the client anonymous; initialization never blocks on
// the host path.
func (a *authService) AutoAuthenticate(ctx context.Context, rt *host.Runtime) {
	if rt == nil {
		return
	}

	creds := models.Credentials{Login: rt.Login(), Password: rt.Secret()}

	_, err := a.client.SignIn(ctx, creds)
	if err == nil {
		a.log.Info(ctx, "host auto-authentication succeeded", "login", creds.Login)
		return
	}

	var authErr *api.AuthenticationError
	if errors.As(err, &authErr) {
		if _, err := a.client.SignUp(ctx, creds); err == nil {
			a.log.Info(ctx, "host identity registered", "login", creds.Login)
			return
		}
	}

	a.log.Error(ctx, "host auto-authentication failed", "login", creds.Login, "error", err)
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	return a.session.IsAuthenticated(ctx)
}

func (a *authService) OwnerID(ctx context.Context) string {
	return a.session.OwnerID(ctx)
}
