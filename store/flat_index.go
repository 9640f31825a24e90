package store

import (
	"context"
	"sort"

	"github.com/stylekit/stylerec/core"
)

// FlatIndex 是内存实现的精确向量索引，实现 core.VectorIndex。
// 平替 FAISS 等第三方索引库，用于测试/开发/中小规模目录。
//
// 特点：
//   - 向量在构造时整体载入并做维度检查，之后只读，可被并发请求无同步共享
//   - Search 做穷举内积检索（向量归一化后即余弦相似度），结果精确
//   - 相同分数按序号升序排列，保证结果可复现
type FlatIndex struct {
	dim     int
	vectors [][]float64
}

// NewFlatIndex 由向量集合构建索引。
// 所有向量维度必须一致——维度不一致是构造期的致命配置错误。
func NewFlatIndex(vectors [][]float64) (*FlatIndex, error) {
	if len(vectors) == 0 {
		return nil, core.NewDomainError(core.ModuleVector, core.ErrorCodeInvalidInput, "flat index: empty vector set")
	}
	dim := len(vectors[0])
	if dim == 0 {
		return nil, core.NewDomainError(core.ModuleVector, core.ErrorCodeInvalidInput, "flat index: zero-dimension vector")
	}

	copied := make([][]float64, len(vectors))
	for i, v := range vectors {
		if len(v) != dim {
			return nil, core.ErrDimensionMismatch
		}
		cv := make([]float64, dim)
		copy(cv, v)
		copied[i] = cv
	}

	return &FlatIndex{dim: dim, vectors: copied}, nil
}

func (f *FlatIndex) Name() string { return "flat" }

// Dimension 返回向量维度 D。
func (f *FlatIndex) Dimension() int { return f.dim }

// Count 实现 core.VectorIndex 接口
func (f *FlatIndex) Count() int { return len(f.vectors) }

// Reconstruct 实现 core.VectorIndex 接口
func (f *FlatIndex) Reconstruct(ordinal int) ([]float64, error) {
	if ordinal < 0 || ordinal >= len(f.vectors) {
		return nil, core.ErrOrdinalOutOfRange
	}
	out := make([]float64, f.dim)
	copy(out, f.vectors[ordinal])
	return out, nil
}

// Search 实现 core.VectorIndex 接口
func (f *FlatIndex) Search(_ context.Context, query []float64, k int) ([]int, []float64, error) {
	if len(query) != f.dim {
		return nil, nil, core.ErrDimensionMismatch
	}
	if k <= 0 || k > len(f.vectors) {
		k = len(f.vectors)
	}

	type scored struct {
		ordinal int
		score   float64
	}
	results := make([]scored, len(f.vectors))
	for i, v := range f.vectors {
		var dot float64
		for j := range v {
			dot += query[j] * v[j]
		}
		results[i] = scored{ordinal: i, score: dot}
	}

	// 稳定排序 + 序号升序初始顺序 = 确定性的同分排序
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})
	results = results[:k]

	ordinals := make([]int, k)
	scores := make([]float64, k)
	for i, r := range results {
		ordinals[i] = r.ordinal
		scores[i] = r.score
	}
	return ordinals, scores, nil
}

var _ core.VectorIndex = (*FlatIndex)(nil)
