// Package recall 提供候选生成。个性化路径的候选来自向量索引检索；
// 本包承担无信号场景：对目录做等距采样的冷启动召回。
package recall

import (
	"context"

	"github.com/stylekit/stylerec/catalog"
	"github.com/stylekit/stylerec/core"
	"github.com/stylekit/stylerec/filter"
)

// DiverseSampler 是冷启动采样器：用户没有任何偏好信号时，
// 在目录的整个序号区间上等距取样，让结果覆盖全目录而非聚集在开头。
//
// stride = max(1, total / (count × 5))。×5 的过采样倍数刻意压小步长：
// 过滤器淘汰不匹配的商品后，剩余命中仍能保持空间分布。
type DiverseSampler struct {
	Catalog *catalog.Directory
}

func (s *DiverseSampler) Name() string { return "recall.diverse" }

// Sample 按序号 0, stride, 2×stride, … 遍历目录，应用过滤器后
// 依序接受，直到凑满 count 个或区间耗尽。
// 结果不携带相似度分数——无偏好信号时相关性概念不成立。
func (s *DiverseSampler) Sample(ctx context.Context, count int, filters filter.Chain) []core.Product {
	if s.Catalog == nil || count <= 0 {
		return nil
	}

	total := s.Catalog.Count()
	stride := total / (count * 5)
	if stride < 1 {
		stride = 1
	}

	out := make([]core.Product, 0, count)
	for i := 0; i < total; i += stride {
		p, ok := s.Catalog.ByOrdinal(i)
		if !ok {
			continue
		}
		if filters.ShouldFilter(ctx, p) {
			continue
		}
		out = append(out, p)
		if len(out) >= count {
			break
		}
	}
	return out
}
