package core

import (
	"math"
	"sync"

	"github.com/stylekit/stylerec/pkg/vecmath"
)

// Interaction 是一次已评分的交互记录，追加后不再修改。
// Embedding 在记录时刻从目录取出并已归一化。
type Interaction struct {
	ProductID string    `json:"product_id"`
	Embedding []float64 `json:"embedding"`
	Stars     int       `json:"stars"`
	Weight    float64   `json:"weight"`
}

// NewInteraction 由商品 embedding 与评分构建交互记录。
func NewInteraction(productID string, embedding []float64, rating Rating) Interaction {
	return Interaction{
		ProductID: productID,
		Embedding: embedding,
		Stars:     rating.Stars,
		Weight:    rating.Weight(),
	}
}

// PreferenceTracker 是单个用户的偏好累积器。
//
// 设计要点：
//   - 交互列表只追加、从不删除或修改；同一商品重复评分会累加贡献，而不是覆盖
//   - 已评分商品集合单调不减；被评过分的商品永久退出该用户的候选集（负向评分同样如此）
//   - 同一用户的并发写由内部锁串行化；不同用户之间无需任何协调
type PreferenceTracker struct {
	mu           sync.RWMutex
	interactions []Interaction
	rated        map[string]struct{}
}

func NewPreferenceTracker() *PreferenceTracker {
	return &PreferenceTracker{
		rated: make(map[string]struct{}),
	}
}

// Add 追加一次交互并把商品标记为已评分。
// 中性评分（权重 0）不产生偏好贡献，但仍会把商品从候选集中排除。
func (t *PreferenceTracker) Add(in Interaction) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.interactions = append(t.interactions, in)
	t.rated[in.ProductID] = struct{}{}
}

// PreferenceVector 计算用户偏好向量：
//
//	weighted_sum = Σ(weight_i × embedding_i)
//	total_weight = Σ|weight_i|
//	preference   = normalize(weighted_sum / total_weight)
//
// 以绝对权重（而非有符号计数）归一化，使尺度不依赖正负评分的比例；
// 强信号（love）天然压过弱信号（like），无需时间衰减。
//
// total_weight 为 0（没有交互，或全部为中性评分）时返回 (nil, false)，
// 表示"无偏好"信号——它与零向量不同，调用方必须据此走冷启动路径。
// 加权和归一化后得到零范数向量时同样返回无偏好。
func (t *PreferenceTracker) PreferenceVector() ([]float64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.interactions) == 0 {
		return nil, false
	}

	dim := len(t.interactions[0].Embedding)
	sum := make([]float64, dim)
	totalWeight := 0.0
	for _, in := range t.interactions {
		if len(in.Embedding) != dim {
			continue
		}
		for i, v := range in.Embedding {
			sum[i] += in.Weight * v
		}
		totalWeight += math.Abs(in.Weight)
	}
	if totalWeight == 0 {
		return nil, false
	}
	for i := range sum {
		sum[i] /= totalWeight
	}
	if !vecmath.Normalize(sum) {
		return nil, false
	}
	return sum, true
}

// HasRated 判断商品是否已被该用户评分。
func (t *PreferenceTracker) HasRated(productID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.rated[productID]
	return ok
}

// RatedSet 返回已评分商品 ID 集合的副本，供请求期间无锁使用。
func (t *PreferenceTracker) RatedSet() map[string]struct{} {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]struct{}, len(t.rated))
	for id := range t.rated {
		out[id] = struct{}{}
	}
	return out
}

// Interactions 返回交互记录的副本。
func (t *PreferenceTracker) Interactions() []Interaction {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Interaction, len(t.interactions))
	copy(out, t.interactions)
	return out
}

// Len 返回交互次数。
func (t *PreferenceTracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.interactions)
}
