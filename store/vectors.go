package store

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadVectors 读取向量快照：JSON 二维数组，外层下标即索引序号。
// 快照由离线的 embedding 生产流程导出，本服务只消费。
func LoadVectors(path string) ([][]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vectors: %w", err)
	}
	var vectors [][]float64
	if err := json.Unmarshal(data, &vectors); err != nil {
		return nil, fmt.Errorf("parse vectors: %w", err)
	}
	return vectors, nil
}
