package model

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Performance 剧目.
type Performance struct {
	ID       uint   `gorm:"primaryKey"     json:"id"`
	Tenant   string `gorm:"size:255;index" json:"tenant"`
	Title    string `gorm:"size:512;index" json:"title"`
	Director string `gorm:"size:255"       json:"director"`
	// 状态：planning|rehearsal|running|archived
	Status      string     `gorm:"size:64;index" json:"status"`
	PremiereAt  *time.Time `json:"premiere_at,omitempty"`
	Description string     `gorm:"type:text" json:"description"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// Passport 剧目技术护照: 舞台/灯光/音响/道具各分区的技术文档.
// 分区内容以 JSON 文本存储，整体读写，按版本递增.
type Passport struct {
	ID            uint   `gorm:"primaryKey"                json:"id"`
	PerformanceID uint   `gorm:"uniqueIndex"               json:"performance_id"`
	SectionsJSON  string `gorm:"type:text"                 json:"-"`
	Version       int    `json:"version"`
	UpdatedBy     string `gorm:"size:255"                  json:"updated_by"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PassportSections 护照分区，键为分区名 (stage/lighting/sound/props)，值为任意 JSON 文档.
type PassportSections map[string]json.RawMessage

// Sections 反序列化分区内容.
func (p *Passport) Sections() (PassportSections, error) {
	if p.SectionsJSON == "" {
		return PassportSections{}, nil
	}

	var sections PassportSections
	if err := json.Unmarshal([]byte(p.SectionsJSON), &sections); err != nil {
		return nil, fmt.Errorf("unmarshal passport sections: %w", err)
	}

	return sections, nil
}

// SetSections 序列化并写入分区内容.
func (p *Passport) SetSections(sections PassportSections) error {
	data, err := json.Marshal(sections)
	if err != nil {
		return fmt.Errorf("marshal passport sections: %w", err)
	}

	p.SectionsJSON = string(data)

	return nil
}
