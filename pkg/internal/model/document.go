package model

import (
	"time"

	"gorm.io/gorm"
)

// Document 文档元数据，对象本体存放在 S3.
type Document struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Tenant string `gorm:"size:255;index:idx_tenant_key,unique;index" json:"tenant"`
	// 对象键（S3 key），在 tenant 下唯一
	ObjectKey   string `gorm:"size:1024;index:idx_tenant_key,unique;index" json:"object_key"`
	FileName    string `gorm:"size:512;index" json:"file_name"`
	Size        int64  `gorm:"index"          json:"size"`
	ETag        string `gorm:"size:64"        json:"etag"`
	ContentType string `gorm:"size:255;index" json:"content_type"`
	// 关联剧目，可空（剧院通用文档）
	PerformanceID *uint  `gorm:"index"     json:"performance_id,omitempty"`
	Category      string `gorm:"size:128;index" json:"category"`
	Description   string `gorm:"type:text" json:"description"`
	TagsJSON      string `gorm:"type:text" json:"tags_json"`
	Bucket        string `gorm:"size:255"  json:"bucket"`
	UploadedBy    string `gorm:"size:255"  json:"uploaded_by"`
	// 来自对象存储的最后修改时间
	LastModified time.Time `gorm:"index" json:"last_modified"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
