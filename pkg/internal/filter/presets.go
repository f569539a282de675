package filter

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"

	"github.com/yeisme/stagevault/pkg/internal/storage/kv"
)

const presetKeyPrefix = "filter:presets:"

// PresetStore 预设的 KV 持久化, 整个 JSON 数组一次读写, 无增量协议.
// 读写失败一律降级为"没有预设", 绝不向上层暴露.
type PresetStore struct {
	store     kv.KVStore
	namespace string
}

// NewPresetStore 构造以 namespace 分键的预设存储.
func NewPresetStore(store kv.KVStore, namespace string) *PresetStore {
	return &PresetStore{store: store, namespace: namespace}
}

// Key 返回该命名空间的存储键.
func (s *PresetStore) Key() string {
	return presetKeyPrefix + s.namespace
}

// Load 读取预设列表. 缺失/损坏的数据返回空列表而非错误.
func (s *PresetStore) Load() []Preset {
	data, err := s.store.Get(context.Background(), s.Key())
	if err != nil || len(data) == 0 {
		return nil
	}

	var presets []Preset
	if err := sonic.Unmarshal(data, &presets); err != nil {
		// 损坏的持久化数据视为没有预设
		return nil
	}

	return presets
}

// Save 整体覆盖写入预设列表, 不做合并与版本控制. 预设不设 TTL.
func (s *PresetStore) Save(presets []Preset) error {
	data, err := sonic.Marshal(presets)
	if err != nil {
		return fmt.Errorf("序列化预设失败: %w", err)
	}

	if err := s.store.Set(context.Background(), s.Key(), data, time.Duration(0)); err != nil {
		return fmt.Errorf("写入预设失败: %w", err)
	}

	return nil
}

// Clear 删除该命名空间的全部预设.
func (s *PresetStore) Clear() error {
	return s.store.Delete(context.Background(), s.Key())
}
