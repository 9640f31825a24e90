package filter

import (
	"context"
	"strings"

	"github.com/stylekit/stylerec/core"
)

// ColorFilter 只保留颜色命中集合的商品，匹配大小写不敏感。
// 集合为空时不过滤任何商品。
type ColorFilter struct {
	colors map[string]struct{}
}

// NewColorFilter 创建颜色过滤器。
func NewColorFilter(colors []string) *ColorFilter {
	return &ColorFilter{colors: lowerSet(colors)}
}

func (f *ColorFilter) Name() string {
	return "filter.color"
}

func (f *ColorFilter) ShouldFilter(_ context.Context, p core.Product) (bool, error) {
	if len(f.colors) == 0 {
		return false, nil
	}
	_, ok := f.colors[strings.ToLower(p.Color)]
	return !ok, nil
}

// CategoryFilter 只保留品类命中集合的商品，匹配大小写不敏感。
// 集合为空时不过滤任何商品。
type CategoryFilter struct {
	categories map[string]struct{}
}

// NewCategoryFilter 创建品类过滤器。
func NewCategoryFilter(categories []string) *CategoryFilter {
	return &CategoryFilter{categories: lowerSet(categories)}
}

func (f *CategoryFilter) Name() string {
	return "filter.category"
}

func (f *CategoryFilter) ShouldFilter(_ context.Context, p core.Product) (bool, error) {
	if len(f.categories) == 0 {
		return false, nil
	}
	_, ok := f.categories[strings.ToLower(p.Category)]
	return !ok, nil
}

func lowerSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = struct{}{}
	}
	return set
}
