package auth

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/user/filmlist-go/apperror"
	"github.com/user/filmlist-go/config"
)

// AuthService implements registration, login, and identity lookup. Tokens
// are stateless bearer JWTs; there is no revocation and no server-side
// session state.
type AuthService struct {
	store      UserStore
	authConfig config.AuthConfig
}

// NewAuthService creates an AuthService over the given store and config.
func NewAuthService(store UserStore, authConfig config.AuthConfig) *AuthService {
	return &AuthService{
		store:      store,
		authConfig: authConfig,
	}
}

// Register creates a new user and issues a token bound to it. Username and
// email uniqueness is pre-checked in one combined query; the database's
// unique indexes settle any race.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, apperror.NewValidationError("username, email, and password are required", nil)
	}

	exists, err := s.store.UserExists(ctx, req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewConflictError("user already exists", nil)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &User{
		Username:     req.Username,
		Email:        strings.ToLower(req.Email),
		PasswordHash: hash,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// Login authenticates by email and password. An unknown email and a wrong
// password produce the same error, so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperror.NewValidationError("email and password are required", nil)
	}

	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewAuthError("invalid email or password", nil)
		}
		return nil, err
	}

	if !CheckPassword(req.Password, user.PasswordHash) {
		return nil, apperror.NewAuthError("invalid email or password", nil)
	}

	if err := s.store.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// GetCurrentUser resolves the identity carried by a verified token to a
// user summary. The identity can outlive the account, hence the NotFound
// path.
func (s *AuthService) GetCurrentUser(ctx context.Context, userID int) (*UserSummary, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := user.Summary()
	return &summary, nil
}

func (s *AuthService) issueToken(user *User) (*AuthResponse, error) {
	token, err := s.generateToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		Token: token,
		User:  user.Summary(),
	}, nil
}

// generateToken signs an HS256 JWT carrying the user id as subject, expiring
// after the configured token duration.
func (s *AuthService) generateToken(userID int) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.authConfig.TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "filmlist",
			Subject:   strconv.Itoa(userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.authConfig.JWTSecret))
	if err != nil {
		return "", apperror.NewInternalError("failed to sign token", err)
	}
	return signed, nil
}
