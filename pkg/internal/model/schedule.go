package model

import (
	"time"

	"gorm.io/gorm"
)

// ScheduleEvent 排期事件: 排练、演出或场地维护.
// 原系统不做冲突校验，这里同样不做.
type ScheduleEvent struct {
	ID     uint   `gorm:"primaryKey"     json:"id"`
	Tenant string `gorm:"size:255;index" json:"tenant"`
	// 事件类型：rehearsal|performance|maintenance
	Kind          string    `gorm:"size:64;index"  json:"kind"`
	Title         string    `gorm:"size:512"       json:"title"`
	PerformanceID *uint     `gorm:"index"          json:"performance_id,omitempty"`
	Venue         string    `gorm:"size:255;index" json:"venue"`
	StartsAt      time.Time `gorm:"index"          json:"starts_at"`
	EndsAt        time.Time `gorm:"index"          json:"ends_at"`
	Notes         string    `gorm:"type:text"      json:"notes"`
	// 提醒事件是否已发出，避免重复投递
	ReminderSent bool `gorm:"index" json:"reminder_sent"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
