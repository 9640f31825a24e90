package core

import "context"

// VectorIndex 是向量最近邻检索结构的消费契约。
//
// 设计原则：
//   - 索引被视为黑盒（FAISS、Milvus、内存平替等都可以实现此接口）
//   - 本仓库只消费它：索引的构建、训练与持久化不在此处发生
//   - 索引内容在进程启动后只读，可被并发请求无同步共享
//
// 实现：
//   - store.FlatIndex 实现此接口（内存精确检索，测试/开发/小规模场景）
type VectorIndex interface {
	// Count 返回索引中的向量总数 N。
	Count() int

	// Reconstruct 按序号取回原始向量。
	// 返回值可能带原始模长，调用方在参与打分前必须先归一化。
	Reconstruct(ordinal int) ([]float64, error)

	// Search 返回与查询向量最相似的 k 个序号及其分数（按相似度降序）。
	// k 可以等于 Count()，用于对整个语料做全量重排。
	Search(ctx context.Context, query []float64, k int) ([]int, []float64, error)
}

// VectorIndex 错误定义（使用统一的 DomainError）
var (
	// ErrOrdinalOutOfRange 表示序号越界
	ErrOrdinalOutOfRange = NewDomainError(ModuleVector, ErrorCodeInvalidInput, "vector: ordinal out of range")

	// ErrDimensionMismatch 表示向量维度不一致——这是构造期的致命配置错误，不是运行期广播
	ErrDimensionMismatch = NewDomainError(ModuleVector, ErrorCodeInvalidInput, "vector: dimension mismatch")
)
