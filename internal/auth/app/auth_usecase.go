package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"notekeep/internal/auth/domain/entities"
	"notekeep/internal/auth/domain/services"
	"notekeep/internal/auth/ports/api"
	"notekeep/internal/auth/ports/repositories"
	svc "notekeep/internal/auth/ports/services"
	"notekeep/pkg/logger"

	"go.uber.org/zap"
)

const (
	methodRegister   = "Register"
	methodLogin      = "Login"
	methodGetProfile = "GetUserProfile"

	msgStartRegistration  = "starting user registration"
	msgInvalidUsername    = "invalid username provided"
	msgInvalidPassword    = "invalid password provided"
	msgUsernameExists     = "user with this username already exists"
	msgUserRegistered     = "user registered successfully"
	msgLoginAttempt       = "login attempt"
	msgLoginNonExistent   = "login attempt with non-existent username"
	msgWrongPassword      = "wrong password provided"
	msgUserLoggedIn       = "user logged in successfully"
	msgSessionIssued      = "authentication token issued"
	msgFetchingProfile    = "fetching user profile"
	msgProfileFetched     = "user profile fetched"
	msgErrCheckExisting   = "failed to check existing user"
	msgErrHashPassword    = "failed to hash password"
	msgErrCreateUser      = "failed to create user"
	msgErrFindingUser     = "error finding user by username"
	msgErrVerifyPassword  = "error verifying password"
	msgErrGenerateToken   = "failed to generate token"
	msgErrFindingUserByID = "error finding user by id"

	errCtxValidatingUsername = "validating username"
	errCtxValidatingPassword = "validating password"
	errCtxCheckingUser       = "checking existing user"
	errCtxUsernameRegistered = "username already registered"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingUser       = "creating user"
	errCtxInvalidCredentials = "invalid credentials"
	errCtxFindingUser        = "finding user"
	errCtxVerifyingPassword  = "verifying password"
	errCtxGeneratingToken    = "generating token"
	errCtxFindingProfile     = "finding user profile"
)

// dummyPasswordHash - корректный bcrypt-хэш, используемый для выравнивания
// времени ответа, когда пользователь не найден: стоимость сравнения должна
// совпадать со стоимостью проверки реального пароля.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" //nolint:gosec

// AuthUseCaseImpl реализует интерфейс AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

// NewAuthUseCase создает новый экземпляр сервиса аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// Register создает нового пользователя с предоставленными учетными данными.
func (a *AuthUseCaseImpl) Register(ctx context.Context, username, password string) (*entities.User, error) {
	username = strings.TrimSpace(username)

	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("username", username))
	log.Debug(ctx, msgStartRegistration)

	if err := validateUsername(username); err != nil {
		log.Debug(ctx, msgInvalidUsername, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUsername, err)
	}
	if err := validatePassword(password); err != nil {
		log.Debug(ctx, msgInvalidPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingPassword, err)
	}

	existingUser, err := a.userRepo.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, msgErrCheckExisting, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUser, err)
	}
	if existingUser != nil {
		log.Debug(ctx, msgUsernameExists)
		return nil, fmt.Errorf("%s: %w", errCtxUsernameRegistered, services.ErrUsernameAlreadyExists)
	}

	hashedPassword, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	createdUser, err := a.userRepo.Create(ctx, &entities.User{
		Username:     username,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		if errors.Is(err, entities.ErrUsernameTaken) {
			log.Debug(ctx, msgUsernameExists)
			return nil, fmt.Errorf("%s: %w", errCtxUsernameRegistered, services.ErrUsernameAlreadyExists)
		}
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", createdUser.ID))
	return createdUser, nil
}

// Login аутентифицирует пользователя по имени и паролю.
// Отсутствие пользователя и неверный пароль неразличимы для вызывающего:
// одна и та же ошибка и сравнимое время ответа.
func (a *AuthUseCaseImpl) Login(ctx context.Context, username, password string) (*services.Session, error) {
	username = strings.TrimSpace(username)

	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("username", username))
	log.Debug(ctx, msgLoginAttempt)

	if username == "" || password == "" {
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	user, err := a.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			// Холостое сравнение: путь "нет такого пользователя" не должен
			// завершаться быстрее пути "неверный пароль".
			_, _ = a.passwordSvc.Verify(ctx, password, dummyPasswordHash)
			log.Debug(ctx, msgLoginNonExistent)
			return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyPassword, zap.Error(err), zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !valid {
		log.Debug(ctx, msgWrongPassword, zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrInvalidCredentials)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("userID", user.ID))

	token, expiresAt, err := a.tokenSvc.GenerateToken(ctx, user.ID, user.Username)
	if err != nil {
		log.Error(ctx, msgErrGenerateToken, zap.Error(err), zap.String("userID", user.ID))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingToken, services.ErrTokenGenerationFailed)
	}

	log.Info(ctx, msgSessionIssued, zap.String("userID", user.ID), zap.Time("expiresAt", expiresAt))

	return &services.Session{
		UserID:    user.ID,
		Username:  user.Username,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// GetUserProfile возвращает профиль пользователя по его ID.
func (a *AuthUseCaseImpl) GetUserProfile(ctx context.Context, userID string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetProfile), zap.String("userID", userID))
	log.Debug(ctx, msgFetchingProfile)

	if userID == "" {
		return nil, fmt.Errorf("%s: %w", errCtxFindingProfile, entities.ErrEmptyUserID)
	}

	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, fmt.Errorf("%s: %w", errCtxFindingProfile, entities.ErrUserNotFound)
		}
		log.Error(ctx, msgErrFindingUserByID, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingProfile, err)
	}

	log.Debug(ctx, msgProfileFetched)
	return user, nil
}

// Валидация имени пользователя.
func validateUsername(username string) error {
	if username == "" {
		return entities.ErrEmptyUsername
	}
	if len(username) < entities.MinUsernameLength {
		return entities.ErrUsernameTooShort
	}
	return nil
}

// Валидация пароля.
func validatePassword(password string) error {
	if len(password) < services.MinPasswordLength {
		return entities.ErrPasswordTooShort
	}
	return nil
}
