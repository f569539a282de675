package types

import (
	"encoding/json"
	"time"
)

// CreatePerformanceRequest 创建剧目请求.
type CreatePerformanceRequest struct {
	Title       string     `json:"title"    rule:"required,max=512"`
	Director    string     `json:"director,omitempty"`
	Status      string     `json:"status,omitempty"`
	PremiereAt  *time.Time `json:"premiere_at,omitempty"`
	Description string     `json:"description,omitempty"`
}

// UpdatePerformanceRequest 更新剧目请求, nil 字段不修改.
type UpdatePerformanceRequest struct {
	Title       *string    `json:"title,omitempty"`
	Director    *string    `json:"director,omitempty"`
	Status      *string    `json:"status,omitempty"`
	PremiereAt  *time.Time `json:"premiere_at,omitempty"`
	Description *string    `json:"description,omitempty"`
}

// PerformanceResponse 剧目响应.
type PerformanceResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Director    string     `json:"director,omitempty"`
	Status      string     `json:"status"`
	PremiereAt  *time.Time `json:"premiere_at,omitempty"`
	Description string     `json:"description,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ListPerformancesRequest 剧目列表请求.
type ListPerformancesRequest struct {
	FilterQuery
	Pagination
}

// ListPerformancesResponse 剧目列表响应.
type ListPerformancesResponse struct {
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	Size         int                   `json:"size"`
	Performances []PerformanceResponse `json:"performances"`
}

// UpdatePassportRequest 更新技术护照请求, 分区整体覆盖.
type UpdatePassportRequest struct {
	Sections map[string]json.RawMessage `json:"sections" rule:"required"`
}

// PassportResponse 技术护照响应.
type PassportResponse struct {
	PerformanceID uint                       `json:"performance_id"`
	Sections      map[string]json.RawMessage `json:"sections"`
	Version       int                        `json:"version"`
	UpdatedBy     string                     `json:"updated_by,omitempty"`
	UpdatedAt     time.Time                  `json:"updated_at"`
}
