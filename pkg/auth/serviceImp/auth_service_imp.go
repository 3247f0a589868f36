package serviceImp

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kitsukisaiseikyo-byte/farm-manager/entities"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/auth/repository"
	"github.com/kitsukisaiseikyo-byte/farm-manager/pkg/auth/service"
)

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid session")
)

const issuer = "farm-manager"

type sessionClaims struct {
	Username string `json:"name"`
	jwt.RegisteredClaims
}

type authSvc struct {
	users  repository.UserRepository
	key    []byte
	ttl    time.Duration
	clock  clockwork.Clock
	logger *slog.Logger
}

// Options for NewAuthService. Zero Clock means the real clock.
type Options struct {
	Secret string
	TTL    time.Duration
	Clock  clockwork.Clock
}

func NewAuthService(users repository.UserRepository, opts Options, logger *slog.Logger) service.AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.TTL <= 0 {
		opts.TTL = 7 * 24 * time.Hour
	}
	return &authSvc{users: users, key: []byte(opts.Secret), ttl: opts.TTL, clock: opts.Clock, logger: logger}
}

func (s *authSvc) Login(username, password string) (*service.Session, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find user: %w", err)
		}
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.clock.Now()
	exp := now.Add(s.ttl)
	claims := sessionClaims{
		Username: u.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(u.ID), 10),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        uuid.NewString(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return nil, fmt.Errorf("sign session: %w", err)
	}
	s.logger.Info("user logged in", "user_id", u.ID, "username", u.Username)
	return &service.Session{Token: token, ExpiresAt: exp, User: *u}, nil
}

func (s *authSvc) Authenticate(token string) (entities.User, error) {
	if token == "" {
		return entities.User{}, ErrInvalidSession
	}
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return entities.User{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return entities.User{}, fmt.Errorf("%w: bad subject", ErrInvalidSession)
	}
	u, err := s.users.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.User{}, fmt.Errorf("%w: user %d gone", ErrInvalidSession, id)
		}
		return entities.User{}, fmt.Errorf("find user: %w", err)
	}
	return *u, nil
}

// EnsureDefaultUser seeds one account when the users table is empty.
// Runs once at startup, so the count-then-insert is not wrapped in a transaction.
func (s *authSvc) EnsureDefaultUser(username, password string) error {
	n, err := s.users.Count()
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		return nil
	}
	if username == "" || password == "" {
		return errors.New("default username and password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.Create(&entities.User{Username: username, PasswordHash: string(hash)}); err != nil {
		return fmt.Errorf("create default user: %w", err)
	}
	s.logger.Info("seeded default user", "username", username)
	return nil
}
