package editlock

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// ErrLockHeld is returned by Acquire when another operator holds the lock.
var ErrLockHeld = errors.New("edit lock held by another operator")

// LockStore is the remote store that owns all lock state. This package never
// caches lock state in process; absence of a lock is a normal condition.
type LockStore interface {
	// Acquire takes (or refreshes) the per-record lock for the operator.
	Acquire(ctx context.Context, parentID, subject string) error
	// ReleaseAllHeldBy drops every lock held by the operator. Calling it
	// with no held locks is a no-op, not an error.
	ReleaseAllHeldBy(ctx context.Context, subject string) error
	// HeldBy returns the subject currently holding the lock, if any.
	HeldBy(ctx context.Context, parentID string) (string, bool, error)
}

// RedisLockStore keeps one key per locked record plus a per-operator set of
// held record ids, both expiring on the configured TTL. Expiry is the store's
// concern; callers treat the TTL as opaque.
type RedisLockStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisLockStore(client *redis.Client, prefix string, ttl time.Duration) *RedisLockStore {
	if prefix == "" {
		prefix = "editlock"
	}
	return &RedisLockStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisLockStore) lockKey(parentID string) string {
	return s.prefix + ":" + parentID
}

func (s *RedisLockStore) heldKey(subject string) string {
	return s.prefix + ":held:" + subject
}

func (s *RedisLockStore) Acquire(ctx context.Context, parentID, subject string) error {
	ok, err := s.client.SetNX(ctx, s.lockKey(parentID), subject, s.ttl).Result()
	if err != nil {
		return errors.Wrap(err, "editlock acquire")
	}
	if !ok {
		holder, err := s.client.Get(ctx, s.lockKey(parentID)).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return errors.Wrap(err, "editlock holder lookup")
		}
		if holder != subject {
			return ErrLockHeld
		}
		// Same operator revisiting the record: refresh the TTL.
		if err := s.client.Expire(ctx, s.lockKey(parentID), s.ttl).Err(); err != nil {
			return errors.Wrap(err, "editlock refresh")
		}
	}

	pipe := s.client.Pipeline()
	pipe.SAdd(ctx, s.heldKey(subject), parentID)
	pipe.Expire(ctx, s.heldKey(subject), s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "editlock held-set update")
	}
	return nil
}

func (s *RedisLockStore) ReleaseAllHeldBy(ctx context.Context, subject string) error {
	parents, err := s.client.SMembers(ctx, s.heldKey(subject)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return errors.Wrap(err, "editlock held-set lookup")
	}

	for _, parentID := range parents {
		holder, err := s.client.Get(ctx, s.lockKey(parentID)).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue // already expired
			}
			return errors.Wrap(err, "editlock holder lookup")
		}
		// Never delete a lock another operator took over after expiry.
		if holder != subject {
			continue
		}
		if err := s.client.Del(ctx, s.lockKey(parentID)).Err(); err != nil {
			return errors.Wrap(err, "editlock release")
		}
	}

	if err := s.client.Del(ctx, s.heldKey(subject)).Err(); err != nil {
		return errors.Wrap(err, "editlock held-set clear")
	}
	return nil
}

func (s *RedisLockStore) HeldBy(ctx context.Context, parentID string) (string, bool, error) {
	holder, err := s.client.Get(ctx, s.lockKey(parentID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, errors.Wrap(err, "editlock holder lookup")
	}
	return holder, true, nil
}
