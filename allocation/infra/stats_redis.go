package infra

import (
	"context"
	"strings"
	"time"

	"gym-allocator/allocation/domain"

	"github.com/redis/go-redis/v9"
)

// RedisStats acumula contadores de outcome em Redis.
//
// Chaves:
//   - <prefix>:total       hash {allocated, unallocated, invalid} (cumulativo)
//   - <prefix>:slot        hash rótulo -> concessões (cumulativo)
//   - <prefix>:run:<id>    hash {allocated, unallocated, invalid} por execução
//
// ttl aplica apenas nas chaves por execução; os cumulativos não expiram.
type RedisStats struct {
	rdb *redis.Client

	prefix string
	ttl    time.Duration
}

type RedisStatsOption func(*RedisStats)

func WithStatsPrefix(prefix string) RedisStatsOption {
	return func(s *RedisStats) {
		s.prefix = strings.Trim(prefix, ":")
	}
}

func WithStatsTTL(d time.Duration) RedisStatsOption {
	return func(s *RedisStats) { s.ttl = d }
}

func NewRedisStats(rdb *redis.Client, opts ...RedisStatsOption) *RedisStats {
	s := &RedisStats{
		rdb:    rdb,
		prefix: "allocator:stats",
		ttl:    30 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStats) Record(ctx context.Context, ev domain.StatsEvent) error {
	if s == nil || s.rdb == nil {
		return nil
	}

	field := "unallocated"
	switch {
	case ev.Outcome.Allocated():
		field = "allocated"
	case ev.Outcome == domain.InvalidEmailDomain:
		field = "invalid"
	}

	pipe := s.rdb.Pipeline()
	pipe.HIncrBy(ctx, s.prefix+":total", field, 1)

	if ev.Outcome.Allocated() {
		pipe.HIncrBy(ctx, s.prefix+":slot", string(ev.Outcome), 1)
	}

	if runID := strings.TrimSpace(ev.RunID); runID != "" {
		runKey := s.prefix + ":run:" + runID
		pipe.HIncrBy(ctx, runKey, field, 1)
		if s.ttl > 0 {
			pipe.Expire(ctx, runKey, s.ttl)
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}
