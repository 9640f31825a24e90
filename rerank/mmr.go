// Package rerank 提供多样性重排：在相关性排序的候选上做 MMR 贪心选择。
package rerank

import (
	"math"

	"github.com/stylekit/stylerec/core"
)

// DefaultLambda 是相关性/多样性的默认权衡系数。
// 0.7 偏向相关性，同时仍惩罚近重复结果（例如同一商品的多个配色）。
const DefaultLambda = 0.7

// MMR 实现 Maximal Marginal Relevance 重排。
//
// 迭代贪心选择：
//   - 第一轮取预计算相关性分数最高的候选
//   - 之后每轮对剩余候选计算
//     mmr = λ × dot(query, emb) − (1−λ) × max(dot(emb, 已选 emb))
//     取最大者
//   - 同分保留输入顺序靠前者（输入顺序即索引检索的邻近序，可复现）
//
// λ→1 退化为纯相关性排序，λ→0 退化为纯多样性。
// 复杂度 O(count × |candidates|)，候选集受目录规模约束时可接受；
// 超大目录应在进入 MMR 前按相关性预截断。
type MMR struct {
	// Lambda 为 0 时使用 DefaultLambda。
	Lambda float64
}

func (m *MMR) Name() string { return "rerank.mmr" }

// Rerank 从候选集中选出至多 count 个并排序，候选为空时返回空。
// 入参的 query 与候选 embedding 均须是单位向量。
func (m *MMR) Rerank(candidates []*core.Candidate, query []float64, count int) []*core.Candidate {
	if len(candidates) == 0 || count <= 0 {
		return nil
	}

	lambda := m.Lambda
	if lambda == 0 {
		lambda = DefaultLambda
	}

	remaining := make([]*core.Candidate, len(candidates))
	copy(remaining, candidates)
	selected := make([]*core.Candidate, 0, count)

	for len(selected) < count && len(remaining) > 0 {
		bestIdx := 0
		if len(selected) == 0 {
			// 第一轮：预计算的相关性分数，严格大于才替换，保证同分取先出现者
			best := remaining[0].Score
			for i, c := range remaining[1:] {
				if c.Score > best {
					best = c.Score
					bestIdx = i + 1
				}
			}
		} else {
			best := math.Inf(-1)
			for i, c := range remaining {
				relevance := dot(query, c.Embedding)
				maxSim := math.Inf(-1)
				for _, s := range selected {
					if sim := dot(c.Embedding, s.Embedding); sim > maxSim {
						maxSim = sim
					}
				}
				score := lambda*relevance - (1-lambda)*maxSim
				if score > best {
					best = score
					bestIdx = i
				}
			}
		}

		selected = append(selected, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return selected
}

func dot(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
