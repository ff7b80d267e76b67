package utils

import (
	"context"
	"log"
	"time"

	"doctorsportal/config"

	"github.com/go-redis/redis/v8"
)

// RoleCacheClient is the dedicated client for caching resolved user roles.
var RoleCacheClient *redis.Client

// RoleCachePrefix namespaces role cache keys.
const RoleCachePrefix = "role:"

// InitRoleCache initializes the Redis client used by the admin guard for
// role lookups. The guard falls back to the store when Redis is down, so a
// failed ping is logged, not fatal.
func InitRoleCache() {
	RoleCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRoleDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := RoleCacheClient.Ping(ctx).Result(); err != nil {
		log.Printf("WARNING: Failed to connect to Redis (Role Cache): %v", err)
	}
}

// GetRoleCacheClient returns the Redis client for role caching.
func GetRoleCacheClient() *redis.Client {
	if RoleCacheClient == nil {
		InitRoleCache()
	}
	return RoleCacheClient
}
