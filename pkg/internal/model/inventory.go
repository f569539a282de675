// Package model 定义数据库模型.
package model

import (
	"time"

	"gorm.io/gorm"
)

// InventoryItem 库存物品: 道具、服装、灯光/音响设备等.
type InventoryItem struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// 所属剧院/租户标识
	Tenant   string `gorm:"size:255;index" json:"tenant"`
	Name     string `gorm:"size:512;index" json:"name"`
	Category string `gorm:"size:128;index" json:"category"`
	// 状态：available|in_use|maintenance|retired
	Status   string `gorm:"size:64;index"  json:"status"`
	Quantity int    `json:"quantity"`
	// 告警阈值，低于该值视为低库存
	MinQuantity int    `json:"min_quantity"`
	Location    string `gorm:"size:255"  json:"location"`
	Description string `gorm:"type:text" json:"description"`
	// Tags 以 JSON 字符串形式存储，便于模糊搜索
	TagsJSON  string `gorm:"type:text" json:"tags_json"`
	UpdatedBy string `gorm:"size:255"  json:"updated_by"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
