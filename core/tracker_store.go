package core

import "context"

// TrackerStore 是用户偏好状态的存储领域接口。
//
// 设计原则：
//   - 定义在领域层（core），由基础设施层（store）实现
//   - 遵循依赖倒置原则：更换内存 / Redis / 分片后端不影响 Engine 的契约
//   - 用户状态在首次交互或首次推荐请求时惰性创建，进程生命周期内不过期
//
// 实现：
//   - store.MemoryTrackerStore 实现此接口
//   - store.RedisTrackerStore 实现此接口（交互日志落 Redis，重启可恢复）
type TrackerStore interface {
	// Name 返回存储后端名称（用于日志/监控）
	Name() string

	// Record 为用户追加一次交互，不存在的用户惰性创建。
	// 同一用户的并发 Record 必须串行化，避免交互列表丢失更新。
	Record(ctx context.Context, userID string, in Interaction) error

	// Tracker 返回用户的偏好追踪器。
	// 用户不存在时返回 (nil, false, nil)——这不是错误，未知用户等价于零交互用户。
	Tracker(ctx context.Context, userID string) (*PreferenceTracker, bool, error)

	// Close 关闭连接/释放资源
	Close() error
}

// TrackerStore 错误定义（使用统一的 DomainError）
var (
	// ErrTrackerUnavailable 表示后端不可用（例如 Redis 连接失败）
	ErrTrackerUnavailable = NewDomainError(ModuleTracker, ErrorCodeUnavailable, "tracker: store unavailable")
)
