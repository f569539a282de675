package queue

// -------------------------- 演出文档领域 --------------------------

// ObjectRef 标识对象在对象存储中的位置与基础元数据.
type ObjectRef struct {
	Bucket      string            `json:"bucket"`
	ObjectKey   string            `json:"object_key"`
	ETag        string            `json:"etag,omitempty"`
	Size        int64             `json:"size,omitempty"`
	ContentType string            `json:"content_type,omitempty"`
	Tags        map[string]string `json:"tags,omitempty"`
}

// DocumentStoredPayload 文档已写入对象存储（含基础元数据）.
type DocumentStoredPayload struct {
	Object        ObjectRef `json:"object"`
	DocumentID    uint      `json:"document_id,omitempty"`
	PerformanceID uint      `json:"performance_id,omitempty"`
	FileName      string    `json:"file_name,omitempty"`
	UploadedBy    string    `json:"uploaded_by,omitempty"`
}

// DocumentAccessedPayload 文档被预览或下载.
type DocumentAccessedPayload struct {
	Object     ObjectRef `json:"object"`
	DocumentID uint      `json:"document_id,omitempty"`
	// Mode 访问方式：preview 或 download.
	Mode string `json:"mode"`
	// ViewerKind 预览时选中的查看器类型（pdf/word/spreadsheet/...）.
	ViewerKind string `json:"viewer_kind,omitempty"`
	AccessedBy string `json:"accessed_by,omitempty"`
}

// DocumentTrashedPayload 文档移入回收站.
type DocumentTrashedPayload struct {
	Object     ObjectRef `json:"object"`
	DocumentID uint      `json:"document_id"`
	TrashedBy  string    `json:"trashed_by,omitempty"`
}

// DocumentRestoredPayload 文档从回收站恢复.
type DocumentRestoredPayload struct {
	Object     ObjectRef `json:"object"`
	DocumentID uint      `json:"document_id"`
	RestoredBy string    `json:"restored_by,omitempty"`
}

// DocumentPurgedPayload 文档被彻底删除.
type DocumentPurgedPayload struct {
	Object     ObjectRef `json:"object"`
	DocumentID uint      `json:"document_id"`
	// AutoClean 是否由回收站定时清理触发.
	AutoClean bool `json:"auto_clean,omitempty"`
}

// -------------------------- 道具库存领域 --------------------------

// InventoryChangedPayload 库存条目变更.
type InventoryChangedPayload struct {
	ItemID uint `json:"item_id"`
	// Action 变更动作：created/updated/deleted.
	Action    string `json:"action"`
	Name      string `json:"name,omitempty"`
	Category  string `json:"category,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
	ChangedBy string `json:"changed_by,omitempty"`
}

// InventoryLowStockPayload 库存低于告警阈值.
type InventoryLowStockPayload struct {
	ItemID    uint   `json:"item_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Threshold int    `json:"threshold"`
}

// -------------------------- 排期领域 --------------------------

// ScheduleChangedPayload 演出排期新增或调整.
type ScheduleChangedPayload struct {
	EventID       uint `json:"event_id"`
	PerformanceID uint `json:"performance_id,omitempty"`
	// Action 变更动作：created/updated/cancelled.
	Action   string `json:"action"`
	Venue    string `json:"venue,omitempty"`
	StartsAt string `json:"starts_at,omitempty"` // RFC3339
}

// ScheduleReminderPayload 临近演出提醒.
type ScheduleReminderPayload struct {
	EventID       uint   `json:"event_id"`
	PerformanceID uint   `json:"performance_id,omitempty"`
	Title         string `json:"title,omitempty"`
	Venue         string `json:"venue,omitempty"`
	StartsAt      string `json:"starts_at"` // RFC3339
	HoursUntil    int    `json:"hours_until"`
}

// -------------------------- 技术护照领域 --------------------------

// PassportUpdatedPayload 演出技术护照内容更新.
type PassportUpdatedPayload struct {
	PerformanceID uint `json:"performance_id"`
	// Sections 本次更新涉及的护照分区（stage/light/sound/props...）.
	Sections  []string `json:"sections,omitempty"`
	UpdatedBy string   `json:"updated_by,omitempty"`
}

// -------------------------- 筛选预设领域 --------------------------

// PresetSavedPayload 用户保存筛选预设.
type PresetSavedPayload struct {
	PresetID  string `json:"preset_id"`
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	Owner     string `json:"owner,omitempty"`
}

// PresetDeletedPayload 用户删除筛选预设.
type PresetDeletedPayload struct {
	PresetID  string `json:"preset_id"`
	Namespace string `json:"namespace"`
	Owner     string `json:"owner,omitempty"`
}
