package filter

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/stylekit/stylerec/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
	celEnvErr  error
)

func getCELEnv() (*cel.Env, error) {
	celEnvOnce.Do(func() {
		celEnv, celEnvErr = cel.NewEnv(
			cel.Variable("product", cel.DynType),
		)
	})
	return celEnv, celEnvErr
}

// ExprFilter 用 CEL (Common Expression Language) 表达式过滤候选商品。
// 表达式对 product 求值，返回 true 表示保留该商品。
//
// 表达式语法（CEL 标准语法）：
//   - 数值：product.price < 100.0 / product.price >= 39.99
//   - 字符串：product.color == "black" / product.category.contains("Knee")
//   - 逻辑：product.color == "black" && product.price < 80.0
//
// 表达式在构造时编译一次，之后可被并发求值。
type ExprFilter struct {
	expr string
	prg  cel.Program
}

// NewExprFilter 编译表达式并创建过滤器。表达式非法时返回错误。
func NewExprFilter(expr string) (*ExprFilter, error) {
	env, err := getCELEnv()
	if err != nil {
		return nil, fmt.Errorf("cel env: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile error: %v", issues.Err())
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}

	return &ExprFilter{expr: expr, prg: prg}, nil
}

func (f *ExprFilter) Name() string {
	return "filter.expr"
}

func (f *ExprFilter) ShouldFilter(_ context.Context, p core.Product) (bool, error) {
	out, _, err := f.prg.Eval(map[string]interface{}{
		"product": map[string]interface{}{
			"id":       p.ID,
			"title":    p.Title,
			"category": p.Category,
			"color":    p.Color,
			"price":    p.Price,
		},
	})
	if err != nil {
		return false, fmt.Errorf("eval error: %w", err)
	}

	keep, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}
	return !keep, nil
}
