package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore 会话存 redis，key = session:<sid>，value = user id
type SessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionStore(rdb *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{rdb: rdb, ttl: ttl}
}

func (s *SessionStore) key(sid string) string { return "session:" + sid }

// Put 写入会话并续期
func (s *SessionStore) Put(ctx context.Context, sid string, userID uint) error {
	return s.rdb.Set(ctx, s.key(sid), strconv.FormatUint(uint64(userID), 10), s.ttl).Err()
}

// Get 读取会话对应的用户；不存在返回 (0, false, nil)
func (s *SessionStore) Get(ctx context.Context, sid string) (uint, bool, error) {
	val, err := s.rdb.Get(ctx, s.key(sid)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt session value: %w", err)
	}
	return uint(id), true, nil
}

// Delete 注销会话
func (s *SessionStore) Delete(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, s.key(sid)).Err()
}
