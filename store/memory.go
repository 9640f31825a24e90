package store

import (
	"context"
	"sync"

	"github.com/stylekit/stylerec/core"
)

// MemoryTrackerStore 是内存实现的 TrackerStore，用于测试/开发/单实例部署。
// 进程重启后用户偏好状态丢失。
//
// 并发模型：map 本身由 RWMutex 保护；单个用户的交互列表由
// PreferenceTracker 的内部锁串行化，不同用户之间互不阻塞。
type MemoryTrackerStore struct {
	mu       sync.RWMutex
	trackers map[string]*core.PreferenceTracker
}

func NewMemoryTrackerStore() *MemoryTrackerStore {
	return &MemoryTrackerStore{
		trackers: make(map[string]*core.PreferenceTracker),
	}
}

func (m *MemoryTrackerStore) Name() string { return "memory" }

// Record 实现 core.TrackerStore 接口
func (m *MemoryTrackerStore) Record(_ context.Context, userID string, in core.Interaction) error {
	m.getOrCreate(userID).Add(in)
	return nil
}

// Tracker 实现 core.TrackerStore 接口
func (m *MemoryTrackerStore) Tracker(_ context.Context, userID string) (*core.PreferenceTracker, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.trackers[userID]
	return t, ok, nil
}

func (m *MemoryTrackerStore) Close() error { return nil }

func (m *MemoryTrackerStore) getOrCreate(userID string) *core.PreferenceTracker {
	m.mu.RLock()
	t, ok := m.trackers[userID]
	m.mu.RUnlock()
	if ok {
		return t
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.trackers[userID]; ok {
		return t
	}
	t = core.NewPreferenceTracker()
	m.trackers[userID] = t
	return t
}

var _ core.TrackerStore = (*MemoryTrackerStore)(nil)
