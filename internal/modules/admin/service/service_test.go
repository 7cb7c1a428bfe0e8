package admin

import (
	"context"
	"errors"
	"testing"

	"anoa.com/skillswap/internal/entity"
	"anoa.com/skillswap/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileRepo struct {
	statuses map[uuid.UUID]string
}

func newFakeProfileRepo(ids ...uuid.UUID) *fakeProfileRepo {
	f := &fakeProfileRepo{statuses: make(map[uuid.UUID]string)}
	for _, id := range ids {
		f.statuses[id] = entity.ProfileStatusActive
	}
	return f
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *entity.Profile) error { return nil }
func (f *fakeProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	status, ok := f.statuses[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return &entity.Profile{ID: id, Status: status}, nil
}
func (f *fakeProfileRepo) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	return nil, apperror.ErrNotFound
}
func (f *fakeProfileRepo) FindPublicActive(ctx context.Context, limit int) ([]*entity.Profile, error) {
	return nil, nil
}
func (f *fakeProfileRepo) FindAll(ctx context.Context, offset, limit int) ([]*entity.Profile, int64, error) {
	var out []*entity.Profile
	for id, status := range f.statuses {
		out = append(out, &entity.Profile{ID: id, Status: status})
	}
	return out, int64(len(out)), nil
}
func (f *fakeProfileRepo) Update(ctx context.Context, profile *entity.Profile) error { return nil }
func (f *fakeProfileRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if _, ok := f.statuses[id]; !ok {
		return apperror.ErrNotFound
	}
	f.statuses[id] = status
	return nil
}
func (f *fakeProfileRepo) SetRating(ctx context.Context, id uuid.UUID, rating float64) error {
	return nil
}
func (f *fakeProfileRepo) IncrementCompletedSwaps(ctx context.Context, id uuid.UUID) error {
	return nil
}

type fakeActionRepo struct {
	actions    []entity.AdminAction
	failCreate bool
}

func (f *fakeActionRepo) Create(ctx context.Context, action *entity.AdminAction) error {
	if f.failCreate {
		return errors.New("insert failed")
	}
	f.actions = append(f.actions, *action)
	return nil
}

func (f *fakeActionRepo) FindAll(ctx context.Context, limit int) ([]entity.AdminAction, error) {
	if limit > len(f.actions) {
		limit = len(f.actions)
	}
	return f.actions[:limit], nil
}

type fakeSearchService struct {
	removed []uuid.UUID
}

func (f *fakeSearchService) IndexProfile(p *entity.Profile) error { return nil }
func (f *fakeSearchService) RemoveProfile(id uuid.UUID) error {
	f.removed = append(f.removed, id)
	return nil
}
func (f *fakeSearchService) SearchProfiles(query string, limit int) ([]uuid.UUID, error) {
	return nil, nil
}

func TestBanUserFlipsStatusAndAudits(t *testing.T) {
	user := uuid.New()
	admin := uuid.New()

	profiles := newFakeProfileRepo(user)
	actions := &fakeActionRepo{}
	searchSvc := &fakeSearchService{}
	svc := NewAdminService(profiles, actions, searchSvc)

	require.NoError(t, svc.BanUser(context.Background(), user, admin))

	assert.Equal(t, entity.ProfileStatusBanned, profiles.statuses[user])
	require.Len(t, actions.actions, 1)
	assert.Equal(t, "ban_user", actions.actions[0].ActionType)
	assert.Equal(t, admin, actions.actions[0].AdminID)
	assert.Equal(t, user, actions.actions[0].TargetID)
	assert.Equal(t, []uuid.UUID{user}, searchSvc.removed)
}

func TestBanUserUnknownUser(t *testing.T) {
	svc := NewAdminService(newFakeProfileRepo(), &fakeActionRepo{}, nil)

	err := svc.BanUser(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestBanUserSurvivesAuditFailure(t *testing.T) {
	user := uuid.New()
	profiles := newFakeProfileRepo(user)
	svc := NewAdminService(profiles, &fakeActionRepo{failCreate: true}, nil)

	require.NoError(t, svc.BanUser(context.Background(), user, uuid.New()))
	assert.Equal(t, entity.ProfileStatusBanned, profiles.statuses[user])
}

func TestListActionsCapsAtLogLimit(t *testing.T) {
	actions := &fakeActionRepo{}
	for i := 0; i < actionLogLimit+20; i++ {
		actions.actions = append(actions.actions, entity.AdminAction{ID: uuid.New()})
	}
	svc := NewAdminService(newFakeProfileRepo(), actions, nil)

	list, err := svc.ListActions(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, actionLogLimit)
}
