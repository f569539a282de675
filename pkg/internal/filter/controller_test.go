package filter

import (
	"testing"
)

func crit(id, field, value string) Criterion {
	return Criterion{ID: id, Field: field, Label: field, Value: NewValue(value), Removable: true}
}

func TestController_AddFilter_DistinctFields(t *testing.T) {
	c := NewController(Options{})

	c.AddFilter(crit("1", "category", "props"))
	c.AddFilter(crit("2", "status", "active"))
	c.AddFilter(crit("3", "venue", "main-stage"))

	if got := c.FilterCount(); got != 3 {
		t.Fatalf("FilterCount = %d, want 3", got)
	}
}

func TestController_AddFilter_ReplaceSameField(t *testing.T) {
	c := NewController(Options{})

	c.AddFilter(crit("1", "category", "props"))
	c.AddFilter(crit("2", "status", "active"))
	// 同 field 不同 id: 原位替换, 位置不变
	c.AddFilter(crit("3", "category", "costumes"))

	snap := c.Snapshot()
	if len(snap.Criteria) != 2 {
		t.Fatalf("len(Criteria) = %d, want 2", len(snap.Criteria))
	}

	first := snap.Criteria[0]
	if first.Field != "category" {
		t.Fatalf("替换后第一个条件的 field = %q, want category", first.Field)
	}

	if first.ID != "3" || first.Value.String() != "costumes" {
		t.Fatalf("替换后条件 = %+v, want id=3 value=costumes", first)
	}
}

func TestController_RemoveAndUpdateFilter(t *testing.T) {
	c := NewController(Options{})
	c.AddFilter(crit("1", "category", "props"))
	c.AddFilter(crit("2", "status", "active"))

	c.RemoveFilter("no-such-id") // no-op
	if c.FilterCount() != 2 {
		t.Fatalf("移除不存在的 id 不应改变数量")
	}

	c.RemoveFilter("1")
	if c.FilterCount() != 1 {
		t.Fatalf("FilterCount = %d, want 1", c.FilterCount())
	}

	newVal := NewValue("archived")
	c.UpdateFilter("2", CriterionPatch{Value: &newVal})

	snap := c.Snapshot()
	if snap.Criteria[0].Value.String() != "archived" {
		t.Fatalf("UpdateFilter 未生效: %+v", snap.Criteria[0])
	}

	if snap.Criteria[0].Label != "status" {
		t.Fatalf("未指定的字段不应被修改")
	}

	c.UpdateFilter("no-such-id", CriterionPatch{Value: &newVal}) // no-op
}

func TestController_ToggleSort_SingleMode(t *testing.T) {
	c := NewController(Options{})

	c.ToggleSort("name")

	snap := c.Snapshot()
	if len(snap.Sort) != 1 || snap.Sort[0].Field != "name" || snap.Sort[0].Direction != DirectionAscending {
		t.Fatalf("第一次 toggle: %+v, want [{name ascending}]", snap.Sort)
	}

	c.ToggleSort("name")

	snap = c.Snapshot()
	if len(snap.Sort) != 1 || snap.Sort[0].Direction != DirectionDescending {
		t.Fatalf("第二次 toggle: %+v, want [{name descending}]", snap.Sort)
	}

	c.ToggleSort("name")

	snap = c.Snapshot()
	if len(snap.Sort) != 0 {
		t.Fatalf("第三次 toggle: %+v, want []", snap.Sort)
	}
}

func TestController_ToggleSort_SingleModeReplaces(t *testing.T) {
	c := NewController(Options{})

	c.ToggleSort("name")
	c.ToggleSort("date") // 单排序: 替换整个序列

	snap := c.Snapshot()
	if len(snap.Sort) != 1 || snap.Sort[0].Field != "date" {
		t.Fatalf("单排序切换新字段应替换序列: %+v", snap.Sort)
	}
}

func TestController_ToggleSort_MultiMode(t *testing.T) {
	c := NewController(Options{MultiSort: true})

	c.ToggleSort("name")
	c.ToggleSort("date")

	snap := c.Snapshot()
	if len(snap.Sort) != 2 {
		t.Fatalf("len(Sort) = %d, want 2", len(snap.Sort))
	}

	if snap.Sort[0].Field != "name" || snap.Sort[1].Field != "date" {
		t.Fatalf("多排序应保持加入顺序: %+v", snap.Sort)
	}

	if snap.Sort[0].Direction != DirectionAscending || snap.Sort[1].Direction != DirectionAscending {
		t.Fatalf("新字段应为升序: %+v", snap.Sort)
	}

	// 只循环 name, date 不受影响
	c.ToggleSort("name")
	c.ToggleSort("name")

	snap = c.Snapshot()
	if len(snap.Sort) != 1 || snap.Sort[0].Field != "date" {
		t.Fatalf("多排序移除 name 后: %+v, want [{date ascending}]", snap.Sort)
	}
}

func TestController_SaveAndLoadPreset(t *testing.T) {
	c := NewController(Options{})
	c.AddFilter(crit("1", "category", "props"))
	c.AddFilter(crit("2", "status", "active"))

	p := c.SavePreset("道具筛选")
	if p.ID == "" || p.Name != "道具筛选" || len(p.Criteria) != 2 {
		t.Fatalf("SavePreset 返回: %+v", p)
	}

	// 保存后随意增删, loadPreset 必须精确恢复到保存时刻
	c.ClearFilters()
	c.AddFilter(crit("9", "venue", "annex"))
	c.SetSearchQuery("ghost light")
	c.ToggleSort("name")

	c.LoadPreset(p)

	snap := c.Snapshot()
	if len(snap.Criteria) != 2 || snap.Criteria[0].Field != "category" || snap.Criteria[1].Field != "status" {
		t.Fatalf("LoadPreset 恢复的条件: %+v", snap.Criteria)
	}
	// 搜索与排序不被 loadPreset 触碰
	if snap.Search != "ghost light" || len(snap.Sort) != 1 {
		t.Fatalf("LoadPreset 不应影响搜索与排序: search=%q sort=%+v", snap.Search, snap.Sort)
	}
}

func TestController_PresetSnapshotIsolation(t *testing.T) {
	c := NewController(Options{})
	c.AddFilter(crit("1", "category", "props"))

	p := c.SavePreset("X")

	// 保存后修改激活条件不应影响已保存的预设内容
	newVal := NewValue("costumes")
	c.UpdateFilter("1", CriterionPatch{Value: &newVal})

	if p.Criteria[0].Value.String() != "props" {
		t.Fatalf("预设快照被后续修改污染: %+v", p.Criteria[0])
	}
}

func TestController_Reset(t *testing.T) {
	initial := []Criterion{crit("init-1", "status", "active")}
	initSort := []SortCriterion{{Field: "date", Direction: DirectionDescending}}
	c := NewController(Options{
		InitialCriteria: initial,
		InitialSearch:   "hamlet",
		InitialSort:     initSort,
	})

	c.ClearFilters()
	c.SetSearchQuery("")
	c.ClearSort()
	c.AddFilter(crit("9", "venue", "annex"))

	c.Reset()

	snap := c.Snapshot()
	if len(snap.Criteria) != 1 || snap.Criteria[0].ID != "init-1" {
		t.Fatalf("Reset 后条件: %+v, want 初始条件", snap.Criteria)
	}

	if snap.Search != "hamlet" {
		t.Fatalf("Reset 后搜索 = %q, want hamlet", snap.Search)
	}

	if len(snap.Sort) != 1 || snap.Sort[0].Field != "date" || snap.Sort[0].Direction != DirectionDescending {
		t.Fatalf("Reset 后排序: %+v, want 初始排序", snap.Sort)
	}
}

func TestController_HasActiveFilters(t *testing.T) {
	c := NewController(Options{})

	if c.HasActiveFilters() {
		t.Fatalf("初始状态不应有激活过滤")
	}

	c.SetSearchQuery("lear")

	if !c.HasActiveFilters() {
		t.Fatalf("搜索串非空时应为 true")
	}

	c.SetSearchQuery("")
	c.AddFilter(crit("1", "category", "props"))

	if !c.HasActiveFilters() {
		t.Fatalf("存在激活条件时应为 true")
	}

	if c.FilterCount() != 1 {
		t.Fatalf("FilterCount = %d, want 1 (搜索不计数)", c.FilterCount())
	}

	c.ClearFilters()

	if c.HasActiveFilters() {
		t.Fatalf("完全清空后应为 false")
	}
}

func TestController_ClearFiltersKeepsSearchAndSort(t *testing.T) {
	c := NewController(Options{})
	c.AddFilter(crit("1", "category", "props"))
	c.SetSearchQuery("macbeth")
	c.ToggleSort("name")

	c.ClearFilters()

	snap := c.Snapshot()
	if len(snap.Criteria) != 0 {
		t.Fatalf("ClearFilters 后条件应为空")
	}

	if snap.Search != "macbeth" || len(snap.Sort) != 1 {
		t.Fatalf("ClearFilters 不应影响搜索与排序")
	}
}

func TestController_Subscribe(t *testing.T) {
	c := NewController(Options{})

	var got []Snapshot

	unsub := c.Subscribe(func(s Snapshot) { got = append(got, s) })

	c.AddFilter(crit("1", "category", "props"))
	c.SetSearchQuery("tempest")

	if len(got) != 2 {
		t.Fatalf("收到 %d 次快照, want 2", len(got))
	}

	last := got[len(got)-1]
	if !last.HasActiveFilters || last.FilterCount != 1 || last.Search != "tempest" {
		t.Fatalf("快照派生字段: %+v", last)
	}

	// 快照不可变: 修改收到的副本不影响控制器
	last.Criteria[0].Field = "mutated"

	if c.Snapshot().Criteria[0].Field != "category" {
		t.Fatalf("快照应为深拷贝")
	}

	unsub()
	c.ClearFilters()

	if len(got) != 2 {
		t.Fatalf("取消订阅后仍收到快照")
	}
}

func TestValue_JSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		json string
	}{
		{"single", NewValue("props"), `"props"`},
		{"list", NewValues("a", "b"), `["a","b"]`},
		{"empty", NewValue(""), `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.in.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON: %v", err)
			}

			if string(data) != tt.json {
				t.Fatalf("MarshalJSON = %s, want %s", data, tt.json)
			}

			var out Value
			if err := out.UnmarshalJSON(data); err != nil {
				t.Fatalf("UnmarshalJSON: %v", err)
			}

			if !out.Equal(tt.in) {
				t.Fatalf("round trip: %+v != %+v", out, tt.in)
			}
		})
	}
}

func BenchmarkController_AddFilter(b *testing.B) {
	c := NewController(Options{})

	for b.Loop() {
		c.AddFilter(crit("1", "category", "props"))
	}
}

func BenchmarkController_Snapshot(b *testing.B) {
	c := NewController(Options{})
	for i := range 20 {
		c.AddFilter(crit(string(rune('a'+i)), string(rune('a'+i)), "v"))
	}

	for b.Loop() {
		_ = c.Snapshot()
	}
}
