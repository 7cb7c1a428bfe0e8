package swap

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"anoa.com/skillswap/internal/entity"
	"anoa.com/skillswap/pkg/apperror"
	"github.com/google/uuid"
)

type fakeSwapRepo struct {
	mu         sync.Mutex
	requests   map[uuid.UUID]*entity.SwapRequest
	failFetch  bool
	failUpdate bool
}

func newFakeSwapRepo() *fakeSwapRepo {
	return &fakeSwapRepo{requests: make(map[uuid.UUID]*entity.SwapRequest)}
}

func (f *fakeSwapRepo) Create(ctx context.Context, request *entity.SwapRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now
	clone := *request
	f.requests[request.ID] = &clone
	return nil
}

func (f *fakeSwapRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.SwapRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.requests[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	clone := *req
	return &clone, nil
}

func (f *fakeSwapRepo) FindReceived(ctx context.Context, userID uuid.UUID) ([]entity.SwapRequest, error) {
	return f.find(func(r *entity.SwapRequest) bool { return r.ToUserID == userID })
}

func (f *fakeSwapRepo) FindSent(ctx context.Context, userID uuid.UUID) ([]entity.SwapRequest, error) {
	return f.find(func(r *entity.SwapRequest) bool { return r.FromUserID == userID })
}

func (f *fakeSwapRepo) find(match func(*entity.SwapRequest) bool) ([]entity.SwapRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFetch {
		return nil, errors.New("store unavailable")
	}
	var out []entity.SwapRequest
	for _, req := range f.requests {
		if match(req) {
			out = append(out, *req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeSwapRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SwapStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdate {
		return errors.New("store unavailable")
	}
	req, ok := f.requests[id]
	if !ok {
		return apperror.ErrNotFound
	}
	req.Status = status
	req.UpdatedAt = time.Now()
	return nil
}

type fakeProfileRepo struct {
	mu         sync.Mutex
	profiles   map[uuid.UUID]*entity.Profile
	unresolved map[uuid.UUID]bool
	completed  map[uuid.UUID]int
}

func newFakeProfileRepo(profiles ...*entity.Profile) *fakeProfileRepo {
	f := &fakeProfileRepo{
		profiles:   make(map[uuid.UUID]*entity.Profile),
		unresolved: make(map[uuid.UUID]bool),
		completed:  make(map[uuid.UUID]int),
	}
	for _, p := range profiles {
		f.profiles[p.ID] = p
	}
	return f
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unresolved[id] {
		return nil, errors.New("store unavailable")
	}
	p, ok := f.profiles[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProfileRepo) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	return nil, apperror.ErrNotFound
}

func (f *fakeProfileRepo) FindPublicActive(ctx context.Context, limit int) ([]*entity.Profile, error) {
	return nil, nil
}

func (f *fakeProfileRepo) FindAll(ctx context.Context, offset, limit int) ([]*entity.Profile, int64, error) {
	return nil, 0, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, profile *entity.Profile) error {
	return f.Create(ctx, profile)
}

func (f *fakeProfileRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[id]
	if !ok {
		return apperror.ErrNotFound
	}
	p.Status = status
	return nil
}

func (f *fakeProfileRepo) SetRating(ctx context.Context, id uuid.UUID, rating float64) error {
	return nil
}

func (f *fakeProfileRepo) IncrementCompletedSwaps(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed[id]++
	return nil
}

type sentNotification struct {
	UserID          uuid.UUID
	Message         string
	Type            string
	RelatedEntityID uuid.UUID
}

type fakeNotificationService struct {
	mu         sync.Mutex
	sent       []sentNotification
	failCreate bool
}

func (f *fakeNotificationService) CreateNotification(ctx context.Context, n *entity.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return errors.New("notification store unavailable")
	}
	var related uuid.UUID
	if n.RelatedEntityID != nil {
		related = *n.RelatedEntityID
	}
	f.sent = append(f.sent, sentNotification{
		UserID:          n.UserID,
		Message:         n.Message,
		Type:            n.Type,
		RelatedEntityID: related,
	})
	return nil
}

func (f *fakeNotificationService) Notify(ctx context.Context, userID uuid.UUID, message, notifType string, relatedEntityID uuid.UUID) {
	_ = f.CreateNotification(ctx, &entity.Notification{
		UserID:          userID,
		Message:         message,
		Type:            notifType,
		RelatedEntityID: &relatedEntityID,
	})
}

func (f *fakeNotificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]entity.Notification, error) {
	return nil, nil
}

func (f *fakeNotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (f *fakeNotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return nil
}

func (f *fakeNotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeNotificationService) all() []sentNotification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentNotification(nil), f.sent...)
}

func newTestProfile(name string, skillsOffered ...string) *entity.Profile {
	return &entity.Profile{
		ID:            uuid.New(),
		Name:          name,
		Email:         name + "@example.com",
		SkillsOffered: skillsOffered,
		IsPublic:      true,
		Status:        entity.ProfileStatusActive,
	}
}
