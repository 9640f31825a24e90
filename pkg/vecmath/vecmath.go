// Package vecmath 提供固定维度的向量运算：点积、L2 范数、归一化、余弦相似度。
// 所有运算都显式检查维度，维度不匹配按错误处理，绝不做隐式广播。
package vecmath

import (
	"errors"
	"math"
)

// ErrDimensionMismatch 表示参与运算的向量维度不一致。
var ErrDimensionMismatch = errors.New("vecmath: dimension mismatch")

// Dot 计算两个向量的点积。维度不一致时返回错误。
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return dot, nil
}

// Norm 计算向量的 L2 范数。
func Norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Normalize 就地把向量缩放为单位长度。
// 零范数向量无法归一化，返回 false 且不做任何修改。
func Normalize(v []float64) bool {
	norm := Norm(v)
	if norm == 0 {
		return false
	}
	for i := range v {
		v[i] /= norm
	}
	return true
}

// NormalizedCopy 返回归一化后的副本，不修改输入。
// 零范数向量返回 (nil, false)。
func NormalizedCopy(v []float64) ([]float64, bool) {
	out := make([]float64, len(v))
	copy(out, v)
	if !Normalize(out) {
		return nil, false
	}
	return out, true
}

// CosineSimilarity 计算两个向量的余弦相似度。
// 任一向量为零向量或维度不一致时返回 0。
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
