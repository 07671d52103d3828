package usecase

import (
	"context"
	"errors"

	"snoozetax/internal/domain/user"
	"snoozetax/internal/infra"
	"snoozetax/internal/pkg/errs"
	"snoozetax/internal/pkg/jwt"
	"snoozetax/internal/pkg/password"
	"snoozetax/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyTaken  = errors.New("email already registered")
	ErrUserDeactivated    = errors.New("user account is deactivated")
)

type SignUpInput struct {
	Email       string
	Password    string
	DisplayName string
}

type LoginResult struct {
	Token string
	User  *readmodel.UserRM
}

type SettingsInput struct {
	Currency      string
	SnoozeMinutes int
}

type AuthUseCase interface {
	SignUp(ctx context.Context, input SignUpInput) (*LoginResult, error)
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.UserRM, error)
	UpdateSettings(ctx context.Context, userID uuid.UUID, input SettingsInput) (*readmodel.UserRM, error)
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type authUseCaseImpl struct {
	userRepo UserRepository
	jwtSvc   *jwt.Service
	db       *pgxpool.Pool
}

func NewAuthUseCase(userRepo UserRepository, jwtSvc *jwt.Service, db *pgxpool.Pool) AuthUseCase {
	return &authUseCaseImpl{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
		db:       db,
	}
}

func (a *authUseCaseImpl) SignUp(ctx context.Context, input SignUpInput) (*LoginResult, error) {
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	usr := user.NewUser(email, hash, input.DisplayName)
	if err := a.userRepo.Create(ctx, a.db, usr); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailAlreadyTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	token, err := a.jwtSvc.GenerateToken(usr.ID())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginResult{Token: token, User: readmodel.NewUserRM(usr)}, nil
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	emailVO, err := user.NewEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	usr, err := a.userRepo.FindByEmail(ctx, emailVO)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !usr.IsActive() {
		return nil, ErrUserDeactivated
	}

	if err := password.ComparePassword(usr.PasswordHash(), rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtSvc.GenerateToken(usr.ID())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &LoginResult{Token: token, User: readmodel.NewUserRM(usr)}, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.UserRM, error) {
	usr, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return readmodel.NewUserRM(usr), nil
}

func (a *authUseCaseImpl) UpdateSettings(ctx context.Context, userID uuid.UUID, input SettingsInput) (*readmodel.UserRM, error) {
	usr, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	settings, err := user.NewSettings(input.Currency, input.SnoozeMinutes)
	if err != nil {
		return nil, err
	}
	usr.ApplySettings(settings)

	if err := a.userRepo.UpdateSettings(ctx, a.db, usr); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return readmodel.NewUserRM(usr), nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (*jwt.Claims, error) {
	return a.jwtSvc.ValidateToken(tokenString)
}
