package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/stylekit/stylerec/core"
)

// metadataRecord 是元数据快照里的单条记录。
// price 字段在抓取数据中既可能是数字也可能是字符串（"39.99"、"$39.99"），
// 解码时统一归一化为 float64。
type metadataRecord struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Color         string    `json:"color"`
	Price         flexPrice `json:"price"`
	ImageHref     string    `json:"image_href"`
	AffiliateHref string    `json:"affiliate_href"`
}

type flexPrice float64

func (p *flexPrice) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*p = flexPrice(num)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("price: unsupported value %s", data)
	}
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		*p = 0
		return nil
	}
	num, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*p = 0
		return nil
	}
	*p = flexPrice(num)
	return nil
}

// LoadMetadata 从 JSON 快照读取元数据：键为数值字符串（与索引插入序一致），
// 值为商品记录。键的排序校验在 NewDirectory 中完成。
func LoadMetadata(path string) (map[string]core.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}
	return ParseMetadata(data)
}

// ParseMetadata 解析元数据快照。
func ParseMetadata(data []byte) (map[string]core.Product, error) {
	var raw map[string]metadataRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse metadata: %w", err)
	}

	out := make(map[string]core.Product, len(raw))
	for k, r := range raw {
		out[k] = core.Product{
			ID:            r.ID,
			Title:         r.Title,
			Category:      r.Category,
			Color:         r.Color,
			Price:         float64(r.Price),
			ImageHref:     r.ImageHref,
			AffiliateHref: r.AffiliateHref,
		}
	}
	return out, nil
}
