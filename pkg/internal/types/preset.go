package types

import "github.com/yeisme/stagevault/pkg/internal/filter"

// SavePresetRequest 保存过滤预设请求, 只快照条件本身.
type SavePresetRequest struct {
	Name     string             `json:"name"     rule:"required,max=255"`
	Criteria []filter.Criterion `json:"criteria"`
}

// PresetListResponse 预设列表响应.
// 存储损坏或不可用时返回空列表而非错误.
type PresetListResponse struct {
	Namespace string          `json:"namespace"`
	Presets   []filter.Preset `json:"presets"`
}
