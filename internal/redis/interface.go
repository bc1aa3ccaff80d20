package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so save storage can run against a
// real server or miniredis in tests
type Client interface {
	redis.UniversalClient
}
