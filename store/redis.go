package store

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/stylekit/stylerec/core"
)

// RedisTrackerStore 是 Redis 持久化的 TrackerStore。
// 交互日志以 JSON 形式追加到每个用户的 Redis List（追加写天然匹配
// 交互只追加、不删改的模型），进程重启后按日志重建偏好状态。
//
// 读路径走进程内的 tracker 缓存；缓存未命中时从 Redis 回放日志。
type RedisTrackerStore struct {
	client    *redis.Client
	keyPrefix string
	cache     *MemoryTrackerStore
}

// NewRedisTrackerStore 创建 Redis 实现，构造时做连通性检查。
// keyPrefix 为空时使用 "stylerec:interactions"。
func NewRedisTrackerStore(addr string, db int, keyPrefix string) (*RedisTrackerStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	if keyPrefix == "" {
		keyPrefix = "stylerec:interactions"
	}
	return &RedisTrackerStore{
		client:    client,
		keyPrefix: keyPrefix,
		cache:     NewMemoryTrackerStore(),
	}, nil
}

func (r *RedisTrackerStore) Name() string { return "redis" }

// Record 实现 core.TrackerStore 接口
func (r *RedisTrackerStore) Record(ctx context.Context, userID string, in core.Interaction) error {
	t, err := r.load(ctx, userID)
	if err != nil {
		return err
	}
	t.Add(in)

	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return r.client.RPush(ctx, r.key(userID), data).Err()
}

// Tracker 实现 core.TrackerStore 接口
func (r *RedisTrackerStore) Tracker(ctx context.Context, userID string) (*core.PreferenceTracker, bool, error) {
	if t, ok, _ := r.cache.Tracker(ctx, userID); ok {
		return t, true, nil
	}

	entries, err := r.client.LRange(ctx, r.key(userID), 0, -1).Result()
	if err != nil {
		return nil, false, err
	}
	if len(entries) == 0 {
		return nil, false, nil
	}

	t, err := r.replay(ctx, userID, entries)
	if err != nil {
		return nil, false, err
	}
	return t, true, nil
}

func (r *RedisTrackerStore) Close() error {
	return r.client.Close()
}

func (r *RedisTrackerStore) key(userID string) string {
	return r.keyPrefix + ":" + userID
}

// load 返回用户的缓存 tracker；缓存未命中时先从 Redis 回放历史日志。
func (r *RedisTrackerStore) load(ctx context.Context, userID string) (*core.PreferenceTracker, error) {
	if t, ok, _ := r.cache.Tracker(ctx, userID); ok {
		return t, nil
	}
	entries, err := r.client.LRange(ctx, r.key(userID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return r.cache.getOrCreate(userID), nil
	}
	return r.replay(ctx, userID, entries)
}

// replay 把 Redis 中的交互日志回放进缓存 tracker。
// 无法解析的日志条目跳过，不让单条脏数据拖垮整个用户状态。
func (r *RedisTrackerStore) replay(_ context.Context, userID string, entries []string) (*core.PreferenceTracker, error) {
	t := r.cache.getOrCreate(userID)
	if t.Len() > 0 {
		return t, nil
	}
	for _, raw := range entries {
		var in core.Interaction
		if err := json.Unmarshal([]byte(raw), &in); err != nil {
			continue
		}
		t.Add(in)
	}
	return t, nil
}

var _ core.TrackerStore = (*RedisTrackerStore)(nil)
