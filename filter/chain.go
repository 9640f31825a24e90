package filter

import (
	"context"

	"github.com/stylekit/stylerec/core"
)

// Chain 组合多个过滤器：任何一个过滤器命中，商品就会被过滤掉。
// 单个过滤器报错时跳过该过滤器，不中断整条链。
type Chain []Filter

// ShouldFilter 依次检查每个过滤器。
func (c Chain) ShouldFilter(ctx context.Context, p core.Product) bool {
	for _, f := range c {
		ok, err := f.ShouldFilter(ctx, p)
		if err != nil {
			continue
		}
		if ok {
			return true
		}
	}
	return false
}
