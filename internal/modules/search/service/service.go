package search

import (
	"encoding/json"
	"errors"
	"log"

	"anoa.com/skillswap/internal/entity"
	"github.com/google/uuid"
	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"
)

// ErrUnavailable reports that no search index is configured; callers fall
// back to their store-backed query path.
var ErrUnavailable = errors.New("search index not configured")

// SearchService keeps the profiles index in sync with the store. Indexing is
// advisory: every failure is logged and the triggering mutation still
// succeeds, the same way notification writes behave.
type SearchService interface {
	IndexProfile(profile *entity.Profile) error
	RemoveProfile(id uuid.UUID) error
	SearchProfiles(query string, limit int) ([]uuid.UUID, error)
}

type searchService struct {
	client    meilisearch.ServiceManager
	sanitizer *bluemonday.Policy
}

type profileDocument struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	Bio           string   `json:"bio"`
	SkillsOffered []string `json:"skills_offered"`
	SkillsWanted  []string `json:"skills_wanted"`
	IsPublic      bool     `json:"is_public"`
	Status        string   `json:"status"`
	CreatedAt     int64    `json:"created_at"`
}

func NewSearchService(client meilisearch.ServiceManager) SearchService {
	s := &searchService{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
	}
	if client != nil {
		s.initIndexes()
	}
	return s
}

func (s *searchService) initIndexes() {
	filterableAttrs := []string{"is_public", "status"}
	filterableInterface := make([]any, len(filterableAttrs))
	for i, v := range filterableAttrs {
		filterableInterface[i] = v
	}
	if _, err := s.client.Index("profiles").UpdateFilterableAttributes(&filterableInterface); err != nil {
		log.Printf("Failed to update profiles filterable attributes: %v", err)
	}

	sortableAttrs := []string{"created_at"}
	if _, err := s.client.Index("profiles").UpdateSortableAttributes(&sortableAttrs); err != nil {
		log.Printf("Failed to update profiles sortable attributes: %v", err)
	}

	searchableAttrs := []string{"name", "skills_offered", "skills_wanted", "location", "bio"}
	if _, err := s.client.Index("profiles").UpdateSearchableAttributes(&searchableAttrs); err != nil {
		log.Printf("Failed to update profiles searchable attributes: %v", err)
	}
}

func (s *searchService) IndexProfile(profile *entity.Profile) error {
	if s.client == nil {
		return nil
	}

	bio := ""
	if profile.Bio != nil {
		bio = s.sanitizer.Sanitize(*profile.Bio)
	}

	doc := profileDocument{
		ID:            profile.ID.String(),
		Name:          s.sanitizer.Sanitize(profile.Name),
		Location:      profile.Location,
		Bio:           bio,
		SkillsOffered: profile.SkillsOffered,
		SkillsWanted:  profile.SkillsWanted,
		IsPublic:      profile.IsPublic,
		Status:        profile.Status,
		CreatedAt:     profile.CreatedAt.Unix(),
	}

	if _, err := s.client.Index("profiles").AddDocuments([]profileDocument{doc}, strPtr("id")); err != nil {
		log.Printf("Failed to index profile %s: %v", profile.ID, err)
		return err
	}
	return nil
}

func (s *searchService) RemoveProfile(id uuid.UUID) error {
	if s.client == nil {
		return nil
	}
	if _, err := s.client.Index("profiles").DeleteDocument(id.String()); err != nil {
		log.Printf("Failed to remove profile %s from index: %v", id, err)
		return err
	}
	return nil
}

func (s *searchService) SearchProfiles(query string, limit int) ([]uuid.UUID, error) {
	if s.client == nil {
		return nil, ErrUnavailable
	}

	res, err := s.client.Index("profiles").Search(query, &meilisearch.SearchRequest{
		Limit:  int64(limit),
		Filter: "is_public = true AND status = active",
	})
	if err != nil {
		return nil, err
	}

	return hitIDs(res.Hits), nil
}

// hitIDs extracts the document ids from raw search hits, skipping any hit
// whose id field is missing or malformed.
func hitIDs(hits []meilisearch.Hit) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(hits))
	for _, hit := range hits {
		var raw string
		if err := json.Unmarshal(hit["id"], &raw); err != nil {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func strPtr(s string) *string {
	return &s
}
