// Package catalog 维护目录映射：序号 → 商品元数据、外部商品 ID → 序号。
// 两套映射在启动时构建一次、互为双射，进程生命周期内只读。
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/stylekit/stylerec/core"
	"github.com/stylekit/stylerec/pkg/vecmath"
)

// Directory 是目录映射的载体。
//
// 序号顺序由元数据键的数值序决定：键 "0"、"1"、…、"N-1" 的数值序
// 必须与向量索引的插入序一致，这是序号↔元数据双射成立的前提。
// 无法解析为整数的键使映射失去定义，按初始化失败处理。
type Directory struct {
	index      core.VectorIndex
	products   []core.Product // 按序号排列
	ordinalOf  map[string]int // 外部商品 ID → 序号
	embeddings [][]float64    // 预取的归一化 embedding，未启用预取时为 nil
}

// Option 是 Directory 的构建选项。
type Option func(*options)

type options struct {
	prefetch    bool
	concurrency int
}

// WithPrefetch 在构建时并发预取并归一化全部 embedding，
// 用启动时间换请求时延。concurrency <= 0 时默认 8。
func WithPrefetch(concurrency int) Option {
	return func(o *options) {
		o.prefetch = true
		if concurrency <= 0 {
			concurrency = 8
		}
		o.concurrency = concurrency
	}
}

// NewDirectory 由向量索引与元数据快照构建目录。
// 元数据键按数值排序后逐一映射到序号 0..N-1；键无法解析为整数、
// 或外部商品 ID 重复时返回错误（致命的初始化失败，服务不应继续启动）。
func NewDirectory(index core.VectorIndex, meta map[string]core.Product, opts ...Option) (*Directory, error) {
	if index == nil {
		return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeInvalidInput, "catalog: nil vector index")
	}
	if len(meta) == 0 {
		return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeInvalidInput, "catalog: empty metadata")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	type keyed struct {
		num int
		key string
	}
	keys := make([]keyed, 0, len(meta))
	for k := range meta {
		n, err := strconv.Atoi(k)
		if err != nil {
			return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeInvalidInput,
				fmt.Sprintf("catalog: metadata key %q is not numerically sortable", k))
		}
		keys = append(keys, keyed{num: n, key: k})
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].num < keys[j].num })

	products := make([]core.Product, len(keys))
	ordinalOf := make(map[string]int, len(keys))
	for i, k := range keys {
		p := meta[k.key]
		p.Ordinal = i
		if _, dup := ordinalOf[p.ID]; dup {
			return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeInvalidInput,
				fmt.Sprintf("catalog: duplicate product id %q", p.ID))
		}
		products[i] = p
		ordinalOf[p.ID] = i
	}

	d := &Directory{
		index:     index,
		products:  products,
		ordinalOf: ordinalOf,
	}

	if o.prefetch {
		if err := d.prefetch(o.concurrency); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Count 返回目录中的商品数。
func (d *Directory) Count() int { return len(d.products) }

// ByOrdinal 按序号返回商品。
func (d *Directory) ByOrdinal(ordinal int) (core.Product, bool) {
	if ordinal < 0 || ordinal >= len(d.products) {
		return core.Product{}, false
	}
	return d.products[ordinal], true
}

// OrdinalOf 按外部商品 ID 返回序号。
func (d *Directory) OrdinalOf(productID string) (int, bool) {
	ord, ok := d.ordinalOf[productID]
	return ord, ok
}

// Embedding 返回序号对应的归一化 embedding。
// 索引的原始重建结果可能带模长，这里统一归一化；零范数向量原样返回
// （参与打分时点积恒为 0，不会污染结果）。
func (d *Directory) Embedding(ordinal int) ([]float64, error) {
	if d.embeddings != nil {
		if ordinal < 0 || ordinal >= len(d.embeddings) {
			return nil, core.ErrOrdinalOutOfRange
		}
		return d.embeddings[ordinal], nil
	}

	raw, err := d.index.Reconstruct(ordinal)
	if err != nil {
		return nil, err
	}
	if normalized, ok := vecmath.NormalizedCopy(raw); ok {
		return normalized, nil
	}
	return raw, nil
}

// prefetch 并发预取全部归一化 embedding。
func (d *Directory) prefetch(concurrency int) error {
	n := len(d.products)
	if c := d.index.Count(); c < n {
		n = c
	}
	cache := make([][]float64, n)

	eg, _ := errgroup.WithContext(context.Background())
	eg.SetLimit(concurrency)
	for i := 0; i < n; i++ {
		ordinal := i
		eg.Go(func() error {
			raw, err := d.index.Reconstruct(ordinal)
			if err != nil {
				return err
			}
			if normalized, ok := vecmath.NormalizedCopy(raw); ok {
				cache[ordinal] = normalized
			} else {
				cache[ordinal] = raw
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	d.embeddings = cache
	return nil
}
