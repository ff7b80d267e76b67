package user

import (
	"context"
	"fmt"
	"time"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const roleCacheTTL = 15 * time.Minute

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
	// RoleCache is optional; when nil or unreachable every role lookup
	// goes to the store.
	RoleCache *redis.Client
	TokenTTL  time.Duration
}

// SignIn upserts the user record keyed by email and issues a fresh token.
// Roles are never written here; a sign-in cannot change privilege.
func (s *DefaultUserService) SignIn(u *models.User) (string, error) {
	if err := s.Repo.Upsert(u); err != nil {
		return "", fmt.Errorf("failed to upsert user: %w", err)
	}

	token, err := utils.GenerateToken(u.Email, s.TokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// ResolveRole looks up the stored role for the email, consulting the role
// cache first. Cache errors fall back to the store.
func (s *DefaultUserService) ResolveRole(email string) (string, error) {
	cacheKey := utils.RoleCachePrefix + email

	if s.RoleCache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		cached, err := s.RoleCache.Get(ctx, cacheKey).Result()
		cancel()
		if err == nil && cached != "" {
			return cached, nil
		}
		if err != nil && err != redis.Nil {
			zap.L().Warn("role cache read failed, falling back to store",
				zap.String("email", email), zap.Error(err))
		}
	}

	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return "", fmt.Errorf("failed to resolve role for %s: %w", email, err)
	}
	if usr == nil {
		return "", ErrUserNotFound
	}

	role := usr.EffectiveRole()
	if s.RoleCache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := s.RoleCache.Set(ctx, cacheKey, role, roleCacheTTL).Err(); err != nil {
			zap.L().Warn("role cache write failed", zap.String("email", email), zap.Error(err))
		}
		cancel()
	}
	return role, nil
}

// IsAdmin reports whether the email resolves to the admin role. An unknown
// email is not an error here; it is simply not an admin.
func (s *DefaultUserService) IsAdmin(email string) (bool, error) {
	role, err := s.ResolveRole(email)
	if err == ErrUserNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return role == models.RoleAdmin, nil
}

// GetAllUsers retrieves all users.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}
