package types

import "time"

// CreateScheduleEventRequest 创建排期事件请求.
type CreateScheduleEventRequest struct {
	Kind          string    `json:"kind"      rule:"required,oneof=rehearsal performance maintenance"`
	Title         string    `json:"title"     rule:"required,max=512"`
	PerformanceID *uint     `json:"performance_id,omitempty"`
	Venue         string    `json:"venue,omitempty"`
	StartsAt      time.Time `json:"starts_at" rule:"required"`
	EndsAt        time.Time `json:"ends_at"   rule:"required"`
	Notes         string    `json:"notes,omitempty"`
}

// UpdateScheduleEventRequest 更新排期事件请求, nil 字段不修改.
type UpdateScheduleEventRequest struct {
	Kind          *string    `json:"kind,omitempty"`
	Title         *string    `json:"title,omitempty"`
	PerformanceID *uint      `json:"performance_id,omitempty"`
	Venue         *string    `json:"venue,omitempty"`
	StartsAt      *time.Time `json:"starts_at,omitempty"`
	EndsAt        *time.Time `json:"ends_at,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
}

// ScheduleEventResponse 排期事件响应.
type ScheduleEventResponse struct {
	ID            uint      `json:"id"`
	Kind          string    `json:"kind"`
	Title         string    `json:"title"`
	PerformanceID *uint     `json:"performance_id,omitempty"`
	Venue         string    `json:"venue,omitempty"`
	StartsAt      time.Time `json:"starts_at"`
	EndsAt        time.Time `json:"ends_at"`
	Notes         string    `json:"notes,omitempty"`
}

// ListScheduleRequest 排期查询请求, 时间范围可选.
type ListScheduleRequest struct {
	From time.Time `form:"from" json:"from,omitzero"`
	To   time.Time `form:"to"   json:"to,omitzero"`
	Kind string    `form:"kind" json:"kind,omitempty"`
	Pagination
}

// ListScheduleResponse 排期查询响应.
type ListScheduleResponse struct {
	Total  int64                   `json:"total"`
	Page   int                     `json:"page"`
	Size   int                     `json:"size"`
	Events []ScheduleEventResponse `json:"events"`
}
