package deduplicator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"spamwatch/internal/pkg/config"
	"spamwatch/internal/pkg/logger"
	"spamwatch/internal/pkg/models"
)

// Defines the interface for duplicate-batch checking. The detection engine
// itself is stateless; skipping whole identical batches is service
// plumbing so that a rescheduled scan does not re-analyze unchanged
// comment sections.
type Deduper interface {
	IsDuplicate(signature string) bool
	StoreSignature(signature string)
}

// Implements the Deduper interface with Redis as the backing store.
type redisDeduper struct {
	client         *redis.Client
	redisKeyPrefix string
}

// Creates a new instance of redisDeduper. Batch signatures live in a
// Redis SET.
func NewRedisDeduper(config *config.Config) (Deduper, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.RedisHost, config.RedisPort),
		Password: config.RedisPassword, // "" if no auth
		DB:       config.RedisDB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Error("Failed to connect to Redis", zap.Error(err))
		return nil, err
	}

	logger.Log.Info("Connected to Redis successfully",
		zap.String("host", config.RedisHost),
		zap.String("port", config.RedisPort),
	)

	return &redisDeduper{
		client:         rdb,
		redisKeyPrefix: "batch_signatures",
	}, nil
}

// IsDuplicate checks if the signature is in Redis.
func (rd *redisDeduper) IsDuplicate(signature string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	exists, err := rd.client.SIsMember(ctx, rd.redisKeyPrefix, signature).Result()
	if err != nil {
		// On error, assume not duplicate so a Redis hiccup never blocks analysis.
		logger.Log.Error("Redis IsDuplicate check failed", zap.Error(err))
		return false
	}
	return exists
}

// Adds the signature to the Redis SET.
func (rd *redisDeduper) StoreSignature(signature string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := rd.client.SAdd(ctx, rd.redisKeyPrefix, signature).Err(); err != nil {
		logger.Log.Error("Failed to store signature in Redis", zap.Error(err))
	}
}

// Creates a SHA-256 signature over the batch's comment ids and texts.
// Order-sensitive: the same comments in the same order hash equal.
func GenerateSignature(comments []models.Comment) string {
	var builder strings.Builder
	for _, comment := range comments {
		builder.WriteString(comment.ID)
		builder.WriteByte('\x1f')
		builder.WriteString(comment.Text)
		builder.WriteByte('\x1e')
	}
	sum := sha256.Sum256([]byte(builder.String()))
	return hex.EncodeToString(sum[:])
}
