package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/stylekit/stylerec/core"
	"github.com/stylekit/stylerec/filter"
	"github.com/stylekit/stylerec/pkg/vecmath"
)

// Request 是一次推荐请求。
type Request struct {
	UserID     string
	Count      int      // <=0 时使用 DefaultCount
	Colors     []string // 颜色过滤，空表示不过滤
	Categories []string // 品类过滤，空表示不过滤
	Expr       string   // 可选的 CEL 过滤表达式，空表示不启用
}

// GetRecommendations 返回至多 Count 条有序推荐。
//
// 流程（个性化路径）：
//  1. 查用户偏好追踪器，未知用户等价于零交互用户
//  2. 计算偏好向量；无偏好信号时走冷启动采样（冷启动结果不做重排）
//  3. 以偏好向量对索引做全量检索（k = N）：索引在这里只负责按邻近度
//     排序语料，不负责截断候选
//  4. 按返回序扫描：序号越界、已评分、颜色/品类不匹配的跳过；
//     存活者成为候选，相关性分数 = (cos+1)/2
//  5. 全部候选交给 MMR 选出最终的 Count 条
//
// 过滤后候选为空不是错误，返回空列表。
func (e *Engine) GetRecommendations(ctx context.Context, req Request) ([]core.Recommendation, error) {
	count := req.Count
	if count <= 0 {
		count = DefaultCount
	}

	filters, err := e.buildFilters(req)
	if err != nil {
		return nil, err
	}

	tracker, ok, err := e.trackers.Tracker(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return e.coldStart(ctx, req.UserID, count, filters), nil
	}

	// 已评分集合取快照，检索期间不持有用户锁。
	// 冷启动路径同样排除已评分商品：中性评分没有偏好贡献，但商品已被看过。
	filters = append(filter.Chain{filter.NewRatedFilter(tracker.RatedSet())}, filters...)

	pref, has := tracker.PreferenceVector()
	if !has {
		return e.coldStart(ctx, req.UserID, count, filters), nil
	}

	ordinals, _, err := e.index.Search(ctx, pref, e.index.Count())
	if err != nil {
		return nil, err
	}

	candidates := e.collectCandidates(ctx, ordinals, pref, filters)
	selected := e.reranker.Rerank(candidates, pref, count)

	out := make([]core.Recommendation, 0, len(selected))
	for _, c := range selected {
		out = append(out, core.NewRecommendation(c))
	}
	e.logger.Debug("personalized recommendations",
		zap.String("user_id", req.UserID),
		zap.Int("candidates", len(candidates)),
		zap.Int("returned", len(out)))
	return out, nil
}

// collectCandidates 按索引返回序扫描语料，应用过滤器并为存活者打相关性分。
func (e *Engine) collectCandidates(ctx context.Context, ordinals []int, pref []float64, filters filter.Chain) []*core.Candidate {
	limit := e.maxCandidates
	candidates := make([]*core.Candidate, 0, len(ordinals))

	for _, ord := range ordinals {
		p, ok := e.catalog.ByOrdinal(ord)
		if !ok {
			continue
		}
		if filters.ShouldFilter(ctx, p) {
			continue
		}

		emb, err := e.catalog.Embedding(ord)
		if err != nil {
			continue
		}
		cos, err := vecmath.Dot(pref, emb)
		if err != nil {
			continue
		}

		candidates = append(candidates, &core.Candidate{
			Ordinal:   ord,
			Product:   p,
			Embedding: emb,
			Score:     (cos + 1) / 2,
		})
		if limit > 0 && len(candidates) >= limit {
			break
		}
	}
	return candidates
}

// coldStart 走冷启动路径：等距采样，结果不带相似度分数，不做重排。
func (e *Engine) coldStart(ctx context.Context, userID string, count int, filters filter.Chain) []core.Recommendation {
	products := e.sampler.Sample(ctx, count, filters)
	out := make([]core.Recommendation, 0, len(products))
	for _, p := range products {
		out = append(out, core.Recommendation{Product: p})
	}
	e.logger.Debug("cold start recommendations",
		zap.String("user_id", userID),
		zap.Int("returned", len(out)))
	return out
}

// buildFilters 构建请求级过滤链（不含已评分过滤，它依赖用户状态）。
func (e *Engine) buildFilters(req Request) (filter.Chain, error) {
	var filters filter.Chain
	if len(req.Colors) > 0 {
		filters = append(filters, filter.NewColorFilter(req.Colors))
	}
	if len(req.Categories) > 0 {
		filters = append(filters, filter.NewCategoryFilter(req.Categories))
	}
	if req.Expr != "" {
		f, err := filter.NewExprFilter(req.Expr)
		if err != nil {
			return nil, core.NewDomainError(core.ModuleEngine, core.ErrorCodeInvalidInput, "engine: invalid filter expression: "+err.Error())
		}
		filters = append(filters, f)
	}
	return filters, nil
}
