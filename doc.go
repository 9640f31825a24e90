// Package stylerec 是一个个性化目录排序服务（Style Recommender）。
//
// 设计要点：
// - 偏好累积: 用户评分加权平均成单位偏好向量（core.PreferenceTracker）
// - 全量检索: 以偏好向量对只读向量索引做 k=N 检索，索引只排序不截断（core.VectorIndex）
// - 多样性重排: MMR 贪心选择，λ 权衡相关性与多样性（rerank.MMR）
// - 冷启动: 无偏好信号时对目录等距采样（recall.DiverseSampler）
package stylerec

import (
	"github.com/stylekit/stylerec/core"
	"github.com/stylekit/stylerec/engine"
)

// 轻量 facade：便于用户直接 import "stylerec" 使用核心抽象。
type Engine = engine.Engine
type Request = engine.Request
type Product = core.Product
type Recommendation = core.Recommendation
type Rating = core.Rating
type Interaction = core.Interaction
