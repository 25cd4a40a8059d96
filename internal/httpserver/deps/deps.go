package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/foyer/internal/feed"
	"github.com/MrSnakeDoc/foyer/internal/logger"
	"github.com/MrSnakeDoc/foyer/internal/player"
	redisstore "github.com/MrSnakeDoc/foyer/internal/store/redis"
)

type Deps struct {
	Logger             logger.Logger
	StartTime          time.Time
	Version            string
	Commit             string
	BuildDate          string
	GoVersion          string
	AllowedHosts       []string      // Host headers allowed to access the server
	AllowedCIDRS       []string      // IPs allowed to hit mutating endpoints
	TrustProxy         bool          // true if running behind a trusted reverse proxy
	RedisClient        *redis.Client // Redis client connection (nil in memory-only mode)
	Store              *redisstore.Store
	Player             *player.Player
	Ticker             *feed.Ticker
	FeedRefreshTrigger chan struct{} // Channel to trigger a manual feed refresh
}
