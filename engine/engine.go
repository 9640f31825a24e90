// Package engine 编排推荐全链路：偏好查询 → 向量检索 → 候选过滤 →
// MMR 重排，或在无偏好信号时回退到冷启动采样。
package engine

import (
	"go.uber.org/zap"

	"github.com/stylekit/stylerec/catalog"
	"github.com/stylekit/stylerec/core"
	"github.com/stylekit/stylerec/recall"
	"github.com/stylekit/stylerec/rerank"
)

// DefaultCount 是未指定返回数量时的默认值。
const DefaultCount = 10

// Options 是 Engine 的可选配置。
type Options struct {
	// Lambda 是 MMR 的相关性/多样性权衡系数，0 表示使用 rerank.DefaultLambda。
	Lambda float64

	// MaxCandidates 是进入 MMR 前保留的候选上限（按检索的相关性序截断）。
	// 0 表示不截断：全量候选进入 MMR，这是基础契约；
	// 超大目录的部署应设置上限，这是容量边界而非行为修正。
	MaxCandidates int

	// Logger 为 nil 时使用 zap.NewNop()。
	Logger *zap.Logger
}

// Engine 是推荐引擎。索引与目录在启动后只读，可被并发请求共享；
// 用户偏好状态的并发控制由 TrackerStore 负责。
type Engine struct {
	index         core.VectorIndex
	catalog       *catalog.Directory
	trackers      core.TrackerStore
	reranker      *rerank.MMR
	sampler       *recall.DiverseSampler
	maxCandidates int
	logger        *zap.Logger
}

// New 构建 Engine。索引、目录或存储缺失是致命的初始化错误：
// 服务不应在这种状态下接受请求。
func New(index core.VectorIndex, dir *catalog.Directory, trackers core.TrackerStore, opts Options) (*Engine, error) {
	if index == nil {
		return nil, core.NewDomainError(core.ModuleEngine, core.ErrorCodeInvalidInput, "engine: nil vector index")
	}
	if dir == nil {
		return nil, core.NewDomainError(core.ModuleEngine, core.ErrorCodeInvalidInput, "engine: nil catalog directory")
	}
	if trackers == nil {
		return nil, core.NewDomainError(core.ModuleEngine, core.ErrorCodeInvalidInput, "engine: nil tracker store")
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		index:         index,
		catalog:       dir,
		trackers:      trackers,
		reranker:      &rerank.MMR{Lambda: opts.Lambda},
		sampler:       &recall.DiverseSampler{Catalog: dir},
		maxCandidates: opts.MaxCandidates,
		logger:        logger,
	}, nil
}
