package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/jobhub/job-board/internal/domain"
	"github.com/jobhub/job-board/internal/repository"
	apperrors "github.com/jobhub/job-board/pkg/util/errorutil"
)

const (
	userKey   = "auth_user"
	claimsKey = "auth_claims"
)

// Authenticator resolves the calling user from a bearer token.
type Authenticator struct {
	tokens  *TokenManager
	users   repository.UserRepository
	revoked RevocationStore
	logger  *zap.Logger
}

// NewAuthenticator constructs the dependency. revoked may be nil.
func NewAuthenticator(tokens *TokenManager, users repository.UserRepository, revoked RevocationStore, logger *zap.Logger) *Authenticator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Authenticator{tokens: tokens, users: users, revoked: revoked, logger: logger}
}

// ResolveCurrentUser decodes token and loads the matching user.
// Every authentication failure returns the same Unauthenticated error.
func (a *Authenticator) ResolveCurrentUser(ctx context.Context, token string) (*domain.User, error) {
	user, _, err := a.resolve(ctx, token)
	return user, err
}

func (a *Authenticator) resolve(ctx context.Context, token string) (*domain.User, *Claims, error) {
	if token == "" {
		return nil, nil, apperrors.NewUnauthenticated()
	}
	claims, ok := a.tokens.Decode(token)
	if !ok {
		return nil, nil, apperrors.NewUnauthenticated()
	}
	email := claims.Email()
	if email == "" {
		return nil, nil, apperrors.NewUnauthenticated()
	}

	if a.revoked != nil && claims.ID != "" {
		revoked, err := a.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			// fail open on lookup errors
			a.logger.Warn("token revocation lookup failed", zap.Error(err))
		} else if revoked {
			return nil, nil, apperrors.NewUnauthenticated()
		}
	}

	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewUnauthenticated()
		}
		return nil, nil, apperrors.MapError(err)
	}
	return user, claims, nil
}

// Handle enforces authentication for protected routes.
func (a *Authenticator) Handle(c *fiber.Ctx) error {
	user, claims, err := a.resolve(c.UserContext(), bearerToken(c.Get(fiber.HeaderAuthorization)))
	if err != nil {
		return err
	}
	c.Locals(userKey, user)
	c.Locals(claimsKey, claims)
	return c.Next()
}

// bearerToken returns "" unless header has the form "Bearer <token>".
func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// CurrentUser retrieves the authenticated user.
func CurrentUser(c *fiber.Ctx) (*domain.User, bool) {
	user, ok := c.Locals(userKey).(*domain.User)
	return user, ok && user != nil
}

// CurrentClaims retrieves the decoded token of the authenticated request.
func CurrentClaims(c *fiber.Ctx) (*Claims, bool) {
	claims, ok := c.Locals(claimsKey).(*Claims)
	return claims, ok && claims != nil
}
