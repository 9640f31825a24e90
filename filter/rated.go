package filter

import (
	"context"

	"github.com/stylekit/stylerec/core"
)

// RatedFilter 过滤掉用户已经评过分的商品。
// 负向评分同样算已评分：评过分的商品永久退出该用户的候选集。
// Rated 是请求开始时从用户偏好状态取出的快照，请求期间无锁使用。
type RatedFilter struct {
	Rated map[string]struct{}
}

// NewRatedFilter 创建已评分过滤器。
func NewRatedFilter(rated map[string]struct{}) *RatedFilter {
	return &RatedFilter{Rated: rated}
}

func (f *RatedFilter) Name() string {
	return "filter.rated"
}

func (f *RatedFilter) ShouldFilter(_ context.Context, p core.Product) (bool, error) {
	if len(f.Rated) == 0 {
		return false, nil
	}
	_, ok := f.Rated[p.ID]
	return ok, nil
}
