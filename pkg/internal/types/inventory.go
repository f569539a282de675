package types

import "time"

// CreateInventoryItemRequest 创建库存物品请求.
type CreateInventoryItemRequest struct {
	Name        string            `json:"name"        rule:"required,max=512"`
	Category    string            `json:"category"    rule:"required,max=128"`
	Status      string            `json:"status,omitempty"`
	Quantity    int               `json:"quantity"    rule:"gte=0"`
	MinQuantity int               `json:"min_quantity,omitempty"`
	Location    string            `json:"location,omitempty"`
	Description string            `json:"description,omitempty"`
	Tags        map[string]string `json:"tags,omitempty"`
}

// UpdateInventoryItemRequest 更新库存物品请求, nil 字段不修改.
type UpdateInventoryItemRequest struct {
	Name        *string            `json:"name,omitempty"`
	Category    *string            `json:"category,omitempty"`
	Status      *string            `json:"status,omitempty"`
	Quantity    *int               `json:"quantity,omitempty"`
	MinQuantity *int               `json:"min_quantity,omitempty"`
	Location    *string            `json:"location,omitempty"`
	Description *string            `json:"description,omitempty"`
	Tags        *map[string]string `json:"tags,omitempty"`
}

// InventoryItemResponse 库存物品响应.
type InventoryItemResponse struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Status      string            `json:"status"`
	Quantity    int               `json:"quantity"`
	MinQuantity int               `json:"min_quantity"`
	Location    string            `json:"location,omitempty"`
	Description string            `json:"description,omitempty"`
	Tags        map[string]string `json:"tags,omitempty"`
	LowStock    bool              `json:"low_stock"`
	UpdatedBy   string            `json:"updated_by,omitempty"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// SearchInventoryRequest 库存搜索请求 (POST).
type SearchInventoryRequest struct {
	FilterQuery
	Pagination
}

// SearchInventoryResponse 库存搜索响应.
type SearchInventoryResponse struct {
	Total int64                   `json:"total"`
	Page  int                     `json:"page"`
	Size  int                     `json:"size"`
	Items []InventoryItemResponse `json:"items"`
}
