package profile

import (
	"context"
	"errors"
	"log"
	"strings"

	"anoa.com/skillswap/internal/entity"
	profileDto "anoa.com/skillswap/internal/modules/profile/dto"
	profileRepo "anoa.com/skillswap/internal/modules/profile/repository"
	search "anoa.com/skillswap/internal/modules/search/service"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// listFetchLimit is how many rows the browse query pulls before skill
// filtering. The store query only supports equality predicates, so substring
// matching against skillsOffered happens here, after retrieval.
const listFetchLimit = 50

type ProfileService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	ListPublicActive(ctx context.Context, skillFilter string) ([]*profileDto.PublicProfile, error)
	// SearchPublic resolves a free-text query through the search index and
	// falls back to ListPublicActive when no index is configured or the
	// query fails.
	SearchPublic(ctx context.Context, query string) ([]*profileDto.PublicProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input profileDto.UpdateProfileInput) (*entity.Profile, error)
}

type profileService struct {
	repo      profileRepo.ProfileRepository
	searchSvc search.SearchService
	sanitizer *bluemonday.Policy
}

func NewProfileService(repo profileRepo.ProfileRepository, searchSvc search.SearchService) ProfileService {
	return &profileService{
		repo:      repo,
		searchSvc: searchSvc,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *profileService) GetProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *profileService) ListPublicActive(ctx context.Context, skillFilter string) ([]*profileDto.PublicProfile, error) {
	profiles, err := s.repo.FindPublicActive(ctx, listFetchLimit)
	if err != nil {
		return nil, err
	}

	filter := strings.ToLower(strings.TrimSpace(skillFilter))

	result := make([]*profileDto.PublicProfile, 0, len(profiles))
	for _, p := range profiles {
		if filter != "" && !offersSkill(p, filter) {
			continue
		}
		result = append(result, profileDto.ToPublicProfile(p))
	}
	return result, nil
}

func offersSkill(p *entity.Profile, filter string) bool {
	for _, skill := range p.SkillsOffered {
		if strings.Contains(strings.ToLower(skill), filter) {
			return true
		}
	}
	return false
}

func (s *profileService) SearchPublic(ctx context.Context, query string) ([]*profileDto.PublicProfile, error) {
	if s.searchSvc == nil {
		return s.ListPublicActive(ctx, query)
	}

	ids, err := s.searchSvc.SearchProfiles(query, listFetchLimit)
	if errors.Is(err, search.ErrUnavailable) {
		return s.ListPublicActive(ctx, query)
	}
	if err != nil {
		log.Printf("profile search %q failed, falling back to store scan: %v", query, err)
		return s.ListPublicActive(ctx, query)
	}

	// The index filter excludes private and banned profiles, but the store
	// is authoritative: a stale index entry must not leak either kind.
	result := make([]*profileDto.PublicProfile, 0, len(ids))
	for _, id := range ids {
		p, err := s.repo.FindByID(ctx, id)
		if err != nil {
			log.Printf("profile %s indexed but not readable: %v", id, err)
			continue
		}
		if !p.IsPublic || p.Status != entity.ProfileStatusActive {
			continue
		}
		result = append(result, profileDto.ToPublicProfile(p))
	}
	return result, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input profileDto.UpdateProfileInput) (*entity.Profile, error) {
	profile, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		profile.Name = strings.TrimSpace(*input.Name)
	}
	if input.Location != nil {
		profile.Location = strings.TrimSpace(*input.Location)
	}
	if input.Bio != nil {
		bio := s.sanitizer.Sanitize(strings.TrimSpace(*input.Bio))
		if bio == "" {
			profile.Bio = nil
		} else {
			profile.Bio = &bio
		}
	}
	if input.SkillsOffered != nil {
		profile.SkillsOffered = normalizeSkills(input.SkillsOffered)
	}
	if input.SkillsWanted != nil {
		profile.SkillsWanted = normalizeSkills(input.SkillsWanted)
	}
	if input.IsPublic != nil {
		profile.IsPublic = *input.IsPublic
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}

	// Index refresh is advisory; a search outage must not fail the update.
	if s.searchSvc != nil {
		if err := s.searchSvc.IndexProfile(profile); err != nil {
			log.Printf("profile %s: search index update failed: %v", profile.ID, err)
		}
	}

	return profile, nil
}

func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		trimmed := strings.TrimSpace(skill)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
