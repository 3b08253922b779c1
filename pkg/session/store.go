package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("session not found")

// Session is the identity handed to this service by the sign-in flow. The
// operator subject is the stable per-operator identifier every lock and audit
// entry is scoped to.
type Session struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	CSRFToken string    `json:"csrfToken"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Store interface {
	Get(ctx context.Context, sid string) (*Session, error)
	Put(ctx context.Context, sess *Session, ttl time.Duration) error
	Delete(ctx context.Context, sid string) error
}

// New mints a session with fresh random identifiers.
func New(subject string, ttl time.Duration) *Session {
	return &Session{
		ID:        uuid.New().String(),
		Subject:   subject,
		CSRFToken: uuid.New().String(),
		ExpiresAt: time.Now().Add(ttl),
	}
}

type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "session"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(sid string) string {
	return s.prefix + ":" + sid
}

func (s *RedisStore) Get(ctx context.Context, sid string) (*Session, error) {
	raw, err := s.client.Get(ctx, s.key(sid)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "session get")
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, errors.Wrap(err, "session decode")
	}
	return &sess, nil
}

func (s *RedisStore) Put(ctx context.Context, sess *Session, ttl time.Duration) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return errors.Wrap(err, "session encode")
	}
	if err := s.client.Set(ctx, s.key(sess.ID), raw, ttl).Err(); err != nil {
		return errors.Wrap(err, "session put")
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, s.key(sid)).Err(); err != nil {
		return errors.Wrap(err, "session delete")
	}
	return nil
}
