// Package filter 提供候选过滤器：在候选扫描阶段剔除不符合约束的商品。
package filter

import (
	"context"

	"github.com/stylekit/stylerec/core"
)

// Filter 是过滤器的抽象接口，用于判断一个商品是否应该被过滤掉。
// 返回 true 表示应该过滤（移除），false 表示保留。
type Filter interface {
	// Name 返回过滤器名称
	Name() string

	// ShouldFilter 判断商品是否应该被过滤
	ShouldFilter(ctx context.Context, p core.Product) (bool, error)
}
