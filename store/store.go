package store

// 注意：此包只包含实现，接口定义在 core 包。
// 使用 core.TrackerStore 和 core.VectorIndex 接口。
//
// 示例：
//   var trackers core.TrackerStore = NewMemoryTrackerStore()
//   var index core.VectorIndex = 由 NewFlatIndex(vectors) 构建
