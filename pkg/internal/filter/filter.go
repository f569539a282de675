// Package filter 提供列表页的过滤/排序/预设状态容器.
//
// Controller 是状态唯一的变更入口: 激活的过滤条件、自由文本搜索、
// 多列排序序列、已命名预设, 以及可选的 KV 预设持久化.
// 每次变更都会发出一份不可变 Snapshot, 订阅方据此刷新视图.
package filter

import (
	"fmt"

	"github.com/bytedance/sonic"
)

// Direction 排序方向.
type Direction string

const (
	DirectionAscending  Direction = "ascending"
	DirectionDescending Direction = "descending"
)

// Value 过滤值, 单个字符串或字符串列表 (JSON 编码为 string 或 array).
type Value struct {
	single string
	list   []string
	isList bool
}

// NewValue 构造单值.
func NewValue(s string) Value {
	return Value{single: s}
}

// NewValues 构造列表值.
func NewValues(vs ...string) Value {
	list := make([]string, len(vs))
	copy(list, vs)

	return Value{list: list, isList: true}
}

// IsList 报告该值是否为列表.
func (v Value) IsList() bool { return v.isList }

// String 返回单值形式; 列表值返回第一个元素.
func (v Value) String() string {
	if v.isList {
		if len(v.list) == 0 {
			return ""
		}

		return v.list[0]
	}

	return v.single
}

// Strings 返回列表形式; 单值返回单元素切片.
func (v Value) Strings() []string {
	if v.isList {
		out := make([]string, len(v.list))
		copy(out, v.list)

		return out
	}

	return []string{v.single}
}

// IsZero 报告该值是否为空 (空字符串或空列表).
func (v Value) IsZero() bool {
	if v.isList {
		return len(v.list) == 0
	}

	return v.single == ""
}

// Equal 比较两个值.
func (v Value) Equal(o Value) bool {
	if v.isList != o.isList {
		return false
	}

	if !v.isList {
		return v.single == o.single
	}

	if len(v.list) != len(o.list) {
		return false
	}

	for i := range v.list {
		if v.list[i] != o.list[i] {
			return false
		}
	}

	return true
}

// MarshalJSON 实现 json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.isList {
		return sonic.Marshal(v.list)
	}

	return sonic.Marshal(v.single)
}

// UnmarshalJSON 实现 json.Unmarshaler, 接受 string 或 array 两种形态.
func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := sonic.Unmarshal(data, &s); err == nil {
		*v = Value{single: s}
		return nil
	}

	var list []string
	if err := sonic.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("过滤值必须是字符串或字符串数组: %w", err)
	}

	*v = Value{list: list, isList: true}

	return nil
}

// Criterion 一条激活的过滤条件.
// 不变式: 同一 Field 至多一条激活条件, 重复添加按 Field 原位替换.
type Criterion struct {
	ID        string `json:"id"`
	Field     string `json:"field"`
	Label     string `json:"label"`
	Value     Value  `json:"value"`
	Removable bool   `json:"removable"`
}

// SortCriterion 一条排序规则. 激活排序为有序序列, 每个 Field 至多一条.
type SortCriterion struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// Preset 一份已命名的过滤条件快照. 保存时生成 ID, 只增删不原位修改.
type Preset struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Criteria []Criterion `json:"criteria"`
}

// Snapshot 控制器状态的不可变视图, 每次变更后发出新实例.
type Snapshot struct {
	Criteria []Criterion
	Search   string
	Sort     []SortCriterion
	Presets  []Preset

	HasActiveFilters bool
	FilterCount      int
}

// CriterionPatch 部分更新, nil 字段保持原值.
type CriterionPatch struct {
	Field     *string
	Label     *string
	Value     *Value
	Removable *bool
}

func cloneCriteria(in []Criterion) []Criterion {
	out := make([]Criterion, len(in))
	copy(out, in)

	return out
}

func cloneSort(in []SortCriterion) []SortCriterion {
	out := make([]SortCriterion, len(in))
	copy(out, in)

	return out
}

func clonePresets(in []Preset) []Preset {
	out := make([]Preset, len(in))
	for i, p := range in {
		out[i] = Preset{ID: p.ID, Name: p.Name, Criteria: cloneCriteria(p.Criteria)}
	}

	return out
}
