package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
	"golang.org/x/crypto/bcrypt"
)

// dummyPassword is hashed once at construction. Login compares against its
// hash when the e-mail is unknown so both failure paths cost one bcrypt run.
const dummyPassword = "go-notes-keeper-dummy-password"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks the shape of e-mails and passwords.
	validator validators.Validator

	// ids issues new user identifiers.
	ids IDGenerator

	// hashCost is the bcrypt work factor used for new password hashes.
	hashCost int

	// dummyHash is compared against on login for unknown e-mails.
	dummyHash []byte

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, ids IDGenerator, cfg config.App, logger *logger.Logger) AuthService {
	dummyHash, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), cfg.PasswordHashCost)
	if err != nil {
		logger.Err(err).Str("func", "NewAuthService").Msg("failed to prepare dummy password hash")
	}

	return &authService{
		userRepository: userRepository,
		validator:      validators.NewCredentialsValidator(),
		ids:            ids,
		hashCost:       cfg.PasswordHashCost,
		dummyHash:      dummyHash,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Signup creates a new user account.
//
// The e-mail is trimmed and lower-cased, then both fields are validated.
// The password is hashed with bcrypt and the account is persisted with an
// empty note reference list.
//
// Returns the persisted user or:
//   - ErrInvalidCredentialsInput if the e-mail or password is malformed.
//   - ErrEmailAlreadyExists if the e-mail is already registered.
//   - A wrapped storage or hashing error otherwise.
func (a *authService) Signup(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	creds.Email = normalizeEmail(creds.Email)
	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Signup").Str("email", creds.Email).Msg("invalid credentials provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredentialsInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), a.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredentialsInput, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashFailed, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		UserID:       a.ids.Generate(),
		Email:        creds.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.User{}, ErrEmailAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Str("email", creds.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "*authService.Signup").Str("user_id", user.UserID).Msg("user registered")
	return user, nil
}

// Login authenticates an existing user.
//
// Unknown e-mails and wrong passwords both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	creds.Email = normalizeEmail(creds.Email)
	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Login").Str("email", creds.Email).Msg("invalid credentials provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredentialsInput, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, creds.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(creds.Password))
		log.Debug().Str("func", "*authService.Login").Str("email", creds.Email).Msg("unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("email", creds.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(creds.Password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Warn().Err(err).Str("func", "*authService.Login").Str("user_id", foundUser.UserID).Msg("password comparison failed")
		}
		log.Debug().Str("func", "*authService.Login").Str("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, models.Identity{UserID: user.UserID, Email: user.Email}, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, wrong algorithm, malformed,
// missing userID) is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
