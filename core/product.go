package core

// Product 是目录中的单个商品记录，进程启动后只读。
// Ordinal 是商品在向量索引中的序号（0..N-1），是与索引 join 的键；
// ID 是对外暴露的商品 ID，是 API 调用方使用的键。两套键一一对应，启动时建立。
type Product struct {
	Ordinal       int     `json:"-"`
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Category      string  `json:"category"`
	Color         string  `json:"color"`
	Price         float64 `json:"price"`
	ImageHref     string  `json:"image_href,omitempty"`
	AffiliateHref string  `json:"affiliate_href,omitempty"`
}

// Candidate 是请求级的候选商品：携带归一化后的 embedding 与相关性分数，
// 仅在一次推荐请求内存活，响应构建完成后即被丢弃。
type Candidate struct {
	Ordinal   int
	Product   Product
	Embedding []float64 // 单位向量
	Score     float64   // 余弦相似度经 (cos+1)/2 缩放后的相关性分数，范围 [0,1]
}

// Recommendation 是返回给调用方的单条推荐结果。
// Score 仅在个性化结果中存在；冷启动结果没有相关性概念，Score 为 nil。
type Recommendation struct {
	Product
	Score *float64 `json:"similarity_score,omitempty"`
}

// NewRecommendation 由候选构建带分数的推荐结果。
func NewRecommendation(c *Candidate) Recommendation {
	score := c.Score
	return Recommendation{Product: c.Product, Score: &score}
}
