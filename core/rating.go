package core

import (
	"strings"

	"github.com/stylekit/stylerec/pkg/conv"
)

// Rating 是一次交互的评分。
//
// API 边界上评分是一个动态值：既可能是 1~5 的整数，也可能是
// love/like/dislike/hate 四种符号。入口处统一归一化为星级，
// 核心逻辑只见数值，不再接触联合类型。
type Rating struct {
	Stars int // 1~5；未识别的输入归一化为 3（中性）
}

// 符号评分到星级的映射：love=5、like=4、dislike=2、hate=1。
var symbolStars = map[string]int{
	"love":    5,
	"like":    4,
	"dislike": 2,
	"hate":    1,
}

// ParseRating 把任意形态的评分（int / float / string）归一化为 Rating。
// 未识别的符号与越界的数值都归一化为中性 3——中性评分没有偏好贡献，
// 但仍会把商品标记为已评分。
func ParseRating(v any) Rating {
	if s, ok := conv.ToString(v); ok {
		return RatingFromSymbol(s)
	}
	if n, ok := conv.ToInt(v); ok {
		return RatingFromStars(n)
	}
	return Rating{Stars: 3}
}

// RatingFromStars 由星级构建 Rating，越界值归一化为 3。
func RatingFromStars(stars int) Rating {
	if stars < 1 || stars > 5 {
		return Rating{Stars: 3}
	}
	return Rating{Stars: stars}
}

// RatingFromSymbol 由符号评分构建 Rating（大小写不敏感）。
func RatingFromSymbol(s string) Rating {
	if stars, ok := symbolStars[strings.ToLower(strings.TrimSpace(s))]; ok {
		return Rating{Stars: stars}
	}
	return Rating{Stars: 3}
}

// Weight 把星级映射为 [-1.0, +1.0] 的有符号权重：
// 5→+1.0、4→+0.5、3→0、2→-0.5、1→-1.0。
func (r Rating) Weight() float64 {
	return float64(r.Stars-3) / 2.0
}

// Neutral 表示该评分不产生偏好贡献（权重为 0）。
func (r Rating) Neutral() bool {
	return r.Stars == 3
}
