package infrastructure

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/Demureaxs/weaver-final-v1/internal/config"
)

// RedisService backs session revocation and the webhook fast path. When no
// Redis is reachable the service stays usable: every method degrades to a
// no-op so a cache outage never takes the API down.
type RedisService struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisService(cfg *config.Config, log *zap.Logger) *RedisService {
	var client *redis.Client

	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Warn("invalid REDIS_URL, redis disabled", zap.Error(err))
			return &RedisService{log: log}
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, continuing without it", zap.Error(err))
		return &RedisService{log: log}
	}

	return &RedisService{client: client, log: log}
}

func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "revoked:" + hex.EncodeToString(sum[:])
}

// RevokeToken marks a session token dead for the remainder of its life.
func (r *RedisService) RevokeToken(ctx context.Context, token string, ttl time.Duration) error {
	if r.client == nil || token == "" {
		return nil
	}
	return r.client.Set(ctx, tokenKey(token), "1", ttl).Err()
}

// IsTokenRevoked reports whether the token was revoked. Errors count as not
// revoked; revocation is best-effort hardening, not the source of truth.
func (r *RedisService) IsTokenRevoked(ctx context.Context, token string) bool {
	if r.client == nil || token == "" {
		return false
	}
	n, err := r.client.Exists(ctx, tokenKey(token)).Result()
	if err != nil {
		return false
	}
	return n > 0
}

// SeenWebhookEvent is the fast path in front of the durable idempotency
// record: true means this event ID was already accepted recently.
func (r *RedisService) SeenWebhookEvent(ctx context.Context, eventID string, ttl time.Duration) bool {
	if r.client == nil || eventID == "" {
		return false
	}
	ok, err := r.client.SetNX(ctx, "webhook:"+eventID, "1", ttl).Result()
	if err != nil {
		return false
	}
	return !ok
}

// UnseeWebhookEvent drops the fast-path marker after a failed grant so a
// retry is not silently swallowed.
func (r *RedisService) UnseeWebhookEvent(ctx context.Context, eventID string) {
	if r.client == nil || eventID == "" {
		return
	}
	if err := r.client.Del(ctx, "webhook:"+eventID).Err(); err != nil {
		r.log.Warn("failed to clear webhook marker", zap.String("event_id", eventID), zap.Error(err))
	}
}

func (r *RedisService) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}
