package user

import (
	"context"
	"testing"

	"anoa.com/skillswap/internal/entity"
	userDto "anoa.com/skillswap/internal/modules/user/dto"
	"anoa.com/skillswap/pkg/apperror"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type fakeProfileRepo struct {
	byEmail map[string]*entity.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byEmail: make(map[string]*entity.Profile)}
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	f.byEmail[profile.Email] = profile
	return nil
}

func (f *fakeProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	for _, p := range f.byEmail {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperror.ErrNotFound
}

func (f *fakeProfileRepo) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	p, ok := f.byEmail[email]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) FindPublicActive(ctx context.Context, limit int) ([]*entity.Profile, error) {
	return nil, nil
}

func (f *fakeProfileRepo) FindAll(ctx context.Context, offset, limit int) ([]*entity.Profile, int64, error) {
	return nil, 0, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, profile *entity.Profile) error { return nil }

func (f *fakeProfileRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	for _, p := range f.byEmail {
		if p.ID == id {
			p.Status = status
			return nil
		}
	}
	return apperror.ErrNotFound
}

func (f *fakeProfileRepo) SetRating(ctx context.Context, id uuid.UUID, rating float64) error {
	return nil
}

func (f *fakeProfileRepo) IncrementCompletedSwaps(ctx context.Context, id uuid.UUID) error {
	return nil
}

func register(t *testing.T, svc AuthService, email string) *userDto.AuthResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), userDto.RegisterInput{
		Name:     "Alice",
		Email:    email,
		Password: "correct horse battery",
		Location: "Berlin",
		Skills:   []string{"React"},
	})
	require.NoError(t, err)
	return resp
}

func TestRegisterIssuesUsableToken(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewAuthService(repo, nil, testSecret)

	resp := register(t, svc, "alice@example.com")
	require.NotNil(t, resp.Profile)
	assert.Equal(t, entity.RoleUser, resp.Profile.Role)
	assert.True(t, resp.Profile.IsPublic)
	assert.NotEqual(t, "correct horse battery", resp.Profile.PasswordHash)

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, resp.Profile.ID.String(), claims.Subject)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeProfileRepo(), nil, testSecret)

	register(t, svc, "alice@example.com")
	_, err := svc.Register(context.Background(), userDto.RegisterInput{
		Name:     "Other Alice",
		Email:    "alice@example.com",
		Password: "another password",
	})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestLoginRoundTrip(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewAuthService(repo, nil, testSecret)
	register(t, svc, "alice@example.com")

	resp, err := svc.Login(context.Background(), userDto.LoginInput{
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(newFakeProfileRepo(), nil, testSecret)
	register(t, svc, "alice@example.com")

	_, err := svc.Login(context.Background(), userDto.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeProfileRepo(), nil, testSecret)

	_, err := svc.Login(context.Background(), userDto.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestLoginBannedUser(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewAuthService(repo, nil, testSecret)
	resp := register(t, svc, "alice@example.com")

	require.NoError(t, repo.UpdateStatus(context.Background(), resp.Profile.ID, entity.ProfileStatusBanned))

	_, err := svc.Login(context.Background(), userDto.LoginInput{
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}
