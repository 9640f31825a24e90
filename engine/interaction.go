package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/stylekit/stylerec/core"
)

// RecordInteraction 记录一次用户评分。
//
// 未知商品 ID 按即发即弃处理：记一条警告日志、不改变任何状态、
// 对调用方返回成功——宁可丢一次信号，也不让打分回路阻塞前端交互。
// 存储后端失败（如 Redis 不可用）则如实上抛。
func (e *Engine) RecordInteraction(ctx context.Context, userID, productID string, rating core.Rating) error {
	ord, ok := e.catalog.OrdinalOf(productID)
	if !ok {
		e.logger.Warn("interaction for unknown product dropped",
			zap.String("user_id", userID),
			zap.String("product_id", productID))
		return nil
	}

	emb, err := e.catalog.Embedding(ord)
	if err != nil {
		e.logger.Warn("interaction dropped: embedding unavailable",
			zap.String("user_id", userID),
			zap.String("product_id", productID),
			zap.Error(err))
		return nil
	}

	in := core.NewInteraction(productID, emb, rating)
	if err := e.trackers.Record(ctx, userID, in); err != nil {
		return err
	}

	e.logger.Debug("interaction recorded",
		zap.String("user_id", userID),
		zap.String("product_id", productID),
		zap.Int("stars", rating.Stars),
		zap.Float64("weight", rating.Weight()))
	return nil
}
