package admin

import (
	"context"
	"fmt"
	"log"

	"anoa.com/skillswap/internal/entity"
	adminRepo "anoa.com/skillswap/internal/modules/admin/repository"
	profileRepo "anoa.com/skillswap/internal/modules/profile/repository"
	search "anoa.com/skillswap/internal/modules/search/service"
	"anoa.com/skillswap/pkg/apperror"
	"github.com/google/uuid"
)

const actionLogLimit = 100

type AdminService interface {
	// BanUser deactivates the profile and appends an audit record. The
	// profile row stays; only its status flips.
	BanUser(ctx context.Context, userID, adminID uuid.UUID) error
	ListUsers(ctx context.Context, offset, limit int) ([]*entity.Profile, int64, error)
	ListActions(ctx context.Context) ([]entity.AdminAction, error)
}

type adminService struct {
	profiles  profileRepo.ProfileRepository
	actions   adminRepo.AdminActionRepository
	searchSvc search.SearchService
}

func NewAdminService(profiles profileRepo.ProfileRepository, actions adminRepo.AdminActionRepository, searchSvc search.SearchService) AdminService {
	return &adminService{
		profiles:  profiles,
		actions:   actions,
		searchSvc: searchSvc,
	}
}

func (s *adminService) BanUser(ctx context.Context, userID, adminID uuid.UUID) error {
	if err := s.profiles.UpdateStatus(ctx, userID, entity.ProfileStatusBanned); err != nil {
		if err == apperror.ErrNotFound {
			return err
		}
		return fmt.Errorf("%w: %v", apperror.ErrStore, err)
	}

	action := &entity.AdminAction{
		AdminID:    adminID,
		ActionType: "ban_user",
		TargetID:   userID,
		Details:    "User banned by admin",
	}
	if err := s.actions.Create(ctx, action); err != nil {
		log.Printf("admin action for ban of %s not recorded: %v", userID, err)
	}

	// Banned profiles must stop surfacing in search results.
	if s.searchSvc != nil {
		if err := s.searchSvc.RemoveProfile(userID); err != nil {
			log.Printf("banned profile %s not removed from search index: %v", userID, err)
		}
	}

	return nil
}

func (s *adminService) ListUsers(ctx context.Context, offset, limit int) ([]*entity.Profile, int64, error) {
	return s.profiles.FindAll(ctx, offset, limit)
}

func (s *adminService) ListActions(ctx context.Context) ([]entity.AdminAction, error) {
	return s.actions.FindAll(ctx, actionLogLimit)
}
