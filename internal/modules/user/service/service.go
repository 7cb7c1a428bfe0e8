package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"anoa.com/skillswap/internal/entity"
	profileRepo "anoa.com/skillswap/internal/modules/profile/repository"
	search "anoa.com/skillswap/internal/modules/search/service"
	userDto "anoa.com/skillswap/internal/modules/user/dto"
	"anoa.com/skillswap/pkg/apperror"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

type AuthService interface {
	Register(ctx context.Context, input userDto.RegisterInput) (*userDto.AuthResponse, error)
	Login(ctx context.Context, input userDto.LoginInput) (*userDto.AuthResponse, error)
}

type authService struct {
	profiles  profileRepo.ProfileRepository
	searchSvc search.SearchService
	jwtSecret string
}

func NewAuthService(profiles profileRepo.ProfileRepository, searchSvc search.SearchService, jwtSecret string) AuthService {
	return &authService{
		profiles:  profiles,
		searchSvc: searchSvc,
		jwtSecret: jwtSecret,
	}
}

func (s *authService) Register(ctx context.Context, input userDto.RegisterInput) (*userDto.AuthResponse, error) {
	if _, err := s.profiles.FindByEmail(ctx, input.Email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", apperror.ErrValidation)
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile := &entity.Profile{
		Name:          input.Name,
		Email:         input.Email,
		PasswordHash:  string(hashed),
		Role:          entity.RoleUser,
		Location:      input.Location,
		SkillsOffered: input.Skills,
		IsPublic:      true,
		Status:        entity.ProfileStatusActive,
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrStore, err)
	}

	if s.searchSvc != nil {
		if err := s.searchSvc.IndexProfile(profile); err != nil {
			log.Printf("profile %s: initial search indexing failed: %v", profile.ID, err)
		}
	}

	token, err := s.issueToken(profile)
	if err != nil {
		return nil, err
	}

	return &userDto.AuthResponse{Token: token, Profile: profile}, nil
}

func (s *authService) Login(ctx context.Context, input userDto.LoginInput) (*userDto.AuthResponse, error) {
	profile, err := s.profiles.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, apperror.ErrUnauthorized
	}

	if profile.Status == entity.ProfileStatusBanned {
		return nil, apperror.ErrForbidden
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperror.ErrUnauthorized
	}

	token, err := s.issueToken(profile)
	if err != nil {
		return nil, err
	}

	return &userDto.AuthResponse{Token: token, Profile: profile}, nil
}

func (s *authService) issueToken(profile *entity.Profile) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   profile.ID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
