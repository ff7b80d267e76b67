package user

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/models"
	"doctorsportal/utils"

	"go.uber.org/zap"
)

// Promote sets role=admin on the target user. The underlying update does
// not upsert, so promoting an unknown email fails with ErrUserNotFound
// instead of creating a placeholder admin record.
func (s *DefaultUserService) Promote(email string) error {
	matched, err := s.Repo.SetRole(email, models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to promote user %s: %w", email, err)
	}
	if !matched {
		return ErrUserNotFound
	}

	// Drop the cached role so the promotion is visible immediately.
	if s.RoleCache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.RoleCache.Del(ctx, utils.RoleCachePrefix+email).Err(); err != nil {
			zap.L().Warn("failed to invalidate role cache entry",
				zap.String("email", email), zap.Error(err))
		}
	}
	return nil
}
