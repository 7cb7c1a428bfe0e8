package swap

import (
	"context"
	"log"
	"sync"

	"anoa.com/skillswap/internal/entity"
	profileDto "anoa.com/skillswap/internal/modules/profile/dto"
	profileRepo "anoa.com/skillswap/internal/modules/profile/repository"
	swapDto "anoa.com/skillswap/internal/modules/swap/dto"
	swapRepo "anoa.com/skillswap/internal/modules/swap/repository"
	"anoa.com/skillswap/internal/watch"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Aggregator maintains per-user live views of swap requests. It runs two live
// queries (requests I received, requests I sent), joins them against profiles
// and partitions the union into the received/sent/completed views.
type Aggregator struct {
	repo        swapRepo.SwapRequestRepository
	profiles    profileRepo.ProfileRepository
	redisClient *redis.Client
}

func NewAggregator(repo swapRepo.SwapRequestRepository, profiles profileRepo.ProfileRepository, redisClient *redis.Client) *Aggregator {
	return &Aggregator{
		repo:        repo,
		profiles:    profiles,
		redisClient: redisClient,
	}
}

// subscription gates callback delivery: once closed, no further onUpdate
// invocation can start, and Close does not return while one is in flight.
type subscription struct {
	mu       sync.Mutex
	closed   bool
	onUpdate func(swapDto.RequestViews)
}

func (s *subscription) emit(views swapDto.RequestViews) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.onUpdate(views)
}

func (s *subscription) close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// Subscribe delivers the combined request views for userID, first once both
// underlying queries have reported, then again after every change. An empty
// or unparseable userID yields one empty view synchronously and registers
// nothing. The returned function cancels the subscription; after it returns,
// onUpdate is never invoked again.
func (a *Aggregator) Subscribe(userID string, onUpdate func(swapDto.RequestViews)) (unsubscribe func()) {
	uid, err := uuid.Parse(userID)
	if userID == "" || err != nil {
		onUpdate(swapDto.EmptyViews())
		return func() {}
	}

	ctx, cancel := context.WithCancel(context.Background())
	sub := &subscription{onUpdate: onUpdate}

	receivedFeed := watch.NewFeed(a.redisClient, RequestsChannel(uid), func(ctx context.Context) ([]entity.SwapRequest, error) {
		return a.repo.FindReceived(ctx, uid)
	})
	sentFeed := watch.NewFeed(a.redisClient, RequestsChannel(uid), func(ctx context.Context) ([]entity.SwapRequest, error) {
		return a.repo.FindSent(ctx, uid)
	})

	go a.run(ctx, uid, sub, receivedFeed.Subscribe(ctx), sentFeed.Subscribe(ctx))

	return func() {
		sub.close()
		cancel()
	}
}

func (a *Aggregator) run(ctx context.Context, uid uuid.UUID, sub *subscription, receivedCh, sentCh <-chan watch.Snapshot[entity.SwapRequest]) {
	var (
		received, sent           []entity.SwapRequest
		receivedReady, sentReady bool
	)

	for {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-receivedCh:
			if !ok {
				receivedCh = nil
				if sentCh == nil {
					return
				}
				continue
			}
			if snap.Err != nil {
				log.Printf("aggregator: received stream for %s failed: %v", uid, snap.Err)
				sub.emit(swapDto.EmptyViews())
				return
			}
			received = snap.Items
			receivedReady = true
		case snap, ok := <-sentCh:
			if !ok {
				sentCh = nil
				if receivedCh == nil {
					return
				}
				continue
			}
			if snap.Err != nil {
				log.Printf("aggregator: sent stream for %s failed: %v", uid, snap.Err)
				sub.emit(swapDto.EmptyViews())
				return
			}
			sent = snap.Items
			sentReady = true
		}

		// Combine only once both streams have reported at least one snapshot,
		// empty ones included. The combine is idempotent over current buffer
		// state, so cross-stream ordering does not matter.
		if receivedReady && sentReady {
			sub.emit(a.combine(ctx, uid, received, sent))
		}
	}
}

func (a *Aggregator) combine(ctx context.Context, uid uuid.UUID, received, sent []entity.SwapRequest) swapDto.RequestViews {
	union := make([]entity.SwapRequest, 0, len(received)+len(sent))
	union = append(union, received...)
	union = append(union, sent...)

	profiles := a.resolveProfiles(ctx, union)

	views := swapDto.EmptyViews()
	for _, req := range union {
		enriched := swapDto.EnrichedRequest{
			SwapRequest: req,
			From:        profiles[req.FromUserID],
			To:          profiles[req.ToUserID],
		}

		switch {
		case req.ToUserID == uid && req.Status == entity.SwapStatusPending:
			views.Received = append(views.Received, enriched)
		case req.FromUserID == uid &&
			(req.Status == entity.SwapStatusPending || req.Status == entity.SwapStatusAccepted):
			views.Sent = append(views.Sent, enriched)
		case req.Status == entity.SwapStatusCompleted:
			views.Completed = append(views.Completed, completedEntry(uid, enriched))
		}
	}
	return views
}

// resolveProfiles looks up every distinct party in the union concurrently.
// A failed lookup is logged and leaves a gap; it never blocks the others.
func (a *Aggregator) resolveProfiles(ctx context.Context, requests []entity.SwapRequest) map[uuid.UUID]*profileDto.PublicProfile {
	ids := make(map[uuid.UUID]struct{})
	for _, req := range requests {
		ids[req.FromUserID] = struct{}{}
		ids[req.ToUserID] = struct{}{}
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		profiles = make(map[uuid.UUID]*profileDto.PublicProfile, len(ids))
	)
	for id := range ids {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			p, err := a.profiles.FindByID(ctx, id)
			if err != nil {
				log.Printf("aggregator: profile %s unresolved: %v", id, err)
				return
			}
			mu.Lock()
			profiles[id] = profileDto.ToPublicProfile(p)
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	return profiles
}

func completedEntry(uid uuid.UUID, enriched swapDto.EnrichedRequest) swapDto.CompletedSwap {
	partner := enriched.From
	if enriched.FromUserID == uid {
		partner = enriched.To
	}

	offered := "N/A"
	if partner != nil && len(partner.SkillsOffered) > 0 {
		offered = partner.SkillsOffered[0]
	}

	// Display format the web client expects: "<wanted> ↔ <offered>".
	return swapDto.CompletedSwap{
		EnrichedRequest: enriched,
		Partner:         partner,
		SkillExchanged:  enriched.SkillWanted + " ↔ " + offered,
		CompletedDate:   enriched.UpdatedAt,
	}
}
