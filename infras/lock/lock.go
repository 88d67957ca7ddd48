package lock

import (
	"context"
	"errors"
	"fmt"
	"time"
	"tourbase/config"
	"tourbase/shared/failure"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const unitKeyPrefix = "lock:unit:"

// Locker serializes availability writes per unit. Every code path that checks
// the ledger and then mutates it (booking creation, pending approval, the
// reconciler's diff apply) must hold the unit lock for the duration of the
// check-then-mutate, so two workers cannot both observe a free range.
type Locker interface {
	AcquireUnit(ctx context.Context, unitID string) (Lock, error)
}

// Lock is a held mutual-exclusion scope. Release is safe to defer.
type Lock interface {
	Release(ctx context.Context)
}

type lockerImpl struct {
	client *redislock.Client
	cfg    *config.Config
}

func New(redisClient *redis.Client, cfg *config.Config) Locker {
	return &lockerImpl{
		client: redislock.New(redisClient),
		cfg:    cfg,
	}
}

func (l *lockerImpl) AcquireUnit(ctx context.Context, unitID string) (Lock, error) {
	key := unitKeyPrefix + unitID
	ttl := time.Duration(l.cfg.Sync.LockTTLSeconds) * time.Second
	backoff := time.Duration(l.cfg.Sync.LockRetryMillis) * time.Millisecond

	opts := &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(backoff), l.cfg.Sync.LockMaxRetries),
	}

	held, err := l.client.Obtain(ctx, key, ttl, opts)
	if errors.Is(err, redislock.ErrNotObtained) {
		log.Warn().Str("key", key).Msg("could not obtain unit lock")

		return nil, failure.Conflict("unit is busy, try again") //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to obtain unit lock")

		return nil, fmt.Errorf("failed to obtain unit lock: %w", err)
	}

	return &lockImpl{held: held}, nil
}

type lockImpl struct {
	held *redislock.Lock
}

func (l *lockImpl) Release(ctx context.Context) {
	if err := l.held.Release(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to release unit lock")
	}
}
