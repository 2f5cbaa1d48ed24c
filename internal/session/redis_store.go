package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/wellnessbuddy/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel/attribute"
)

const redisKeyPrefix = "wellness::session::"

// RedisStore keeps sessions in redis, so they survive service restarts
// and are shared between instances. Keys expire after the TTL.
type RedisStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisStore(redisClient *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func redisKey(id string) string {
	return redisKeyPrefix + id
}

func (s *RedisStore) Get(ctx context.Context, id string) (_ State, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.redis.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	data, err := s.redisClient.Get(ctx, redisKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			span.SetAttributes(attribute.Bool("session.found", false))
			return State{}, nil
		}
		return State{}, fmt.Errorf("get session: %w", err)
	}
	span.SetAttributes(attribute.Bool("session.found", true))

	var state State
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return State{}, fmt.Errorf("unmarshal session: %w", err)
	}

	return state, nil
}

func (s *RedisStore) Save(ctx context.Context, id string, state State) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "session.redis.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := s.redisClient.Set(ctx, redisKey(id), string(data), s.ttl).Err(); err != nil {
		return fmt.Errorf("set session: %w", err)
	}

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.redisClient.Del(ctx, redisKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
