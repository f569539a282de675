package types

import "time"

// UploadDocumentsRequest 批量文档上传请求, 返回预签名 PUT URL.
type UploadDocumentsRequest struct {
	Files []UploadDocumentItem `binding:"required" json:"files"`
}

// UploadDocumentItem 单个文档上传请求.
type UploadDocumentItem struct {
	FileName      string            `json:"file_name" rule:"required,max=512"`
	ContentType   string            `json:"content_type,omitempty"`
	PerformanceID *uint             `json:"performance_id,omitempty"`
	Category      string            `json:"category,omitempty"`
	Description   string            `json:"description,omitempty"`
	Tags          map[string]string `json:"tags,omitempty"`
}

// UploadDocumentsResponse 预签名上传结果.
type UploadDocumentsResponse struct {
	Results []PresignedPutItem `json:"results"`
}

// PresignedPutItem 预签名 PUT 上传单个结果项.
type PresignedPutItem struct {
	ObjectKey string `json:"object_key"` // 对象键 (上传后的路径)
	PutURL    string `json:"put_url"`    // 上传 URL
	ExpiresIn int    `json:"expires_in"` // 过期时间 (秒)
}

// DocumentResponse 文档元数据响应.
type DocumentResponse struct {
	ID            uint              `json:"id"`
	ObjectKey     string            `json:"object_key"`
	FileName      string            `json:"file_name"`
	Size          int64             `json:"size"`
	ContentType   string            `json:"content_type,omitempty"`
	PerformanceID *uint             `json:"performance_id,omitempty"`
	Category      string            `json:"category,omitempty"`
	Description   string            `json:"description,omitempty"`
	Tags          map[string]string `json:"tags,omitempty"`
	UploadedBy    string            `json:"uploaded_by,omitempty"`
	LastModified  time.Time         `json:"last_modified"`
}

// SearchDocumentsRequest 文档搜索请求 (POST).
type SearchDocumentsRequest struct {
	FilterQuery
	Pagination
}

// SearchDocumentsResponse 文档搜索响应.
type SearchDocumentsResponse struct {
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	Size      int                `json:"size"`
	Documents []DocumentResponse `json:"documents"`
}

// DocumentURLResponse 预签名 GET URL 响应.
type DocumentURLResponse struct {
	GetURL    string `json:"get_url"`
	ExpiresIn int    `json:"expires_in"`
}

// TrashListResponse 回收站列表响应.
type TrashListResponse struct {
	Total     int64               `json:"total"`
	Page      int                 `json:"page"`
	Size      int                 `json:"size"`
	Documents []TrashDocumentItem `json:"documents"`
}

// TrashDocumentItem 回收站中的文档.
type TrashDocumentItem struct {
	ID        uint      `json:"id"`
	ObjectKey string    `json:"object_key"`
	FileName  string    `json:"file_name"`
	Size      int64     `json:"size"`
	DeletedAt time.Time `json:"deleted_at"`
}

// TrashRestoreRequest 回收站恢复/清除请求.
type TrashRestoreRequest struct {
	IDs []uint `binding:"required" json:"ids"`
}

// TrashOperationResponse 回收站操作结果.
type TrashOperationResponse struct {
	Affected int `json:"affected"`
}
