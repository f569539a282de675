package filter

import (
	crand "crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid"

	"github.com/yeisme/stagevault/pkg/internal/storage/kv"
)

var presetEntropy = ulid.Monotonic(crand.Reader, 0)

// Options 控制器的构造参数. Initial* 为 Reset 的恢复目标.
type Options struct {
	InitialCriteria []Criterion
	InitialSearch   string
	InitialSort     []SortCriterion

	// MultiSort 为 false 时 ToggleSort 新字段会替换整个排序序列
	MultiSort bool

	// Namespace 非空且 Store 非 nil 时启用预设持久化
	Namespace string
	Store     kv.KVStore
}

// Controller 过滤/排序/预设状态容器, 状态的唯一变更者.
// 单个实例服务单个视图, 不跨视图共享; mutex 仅保护订阅簿记.
type Controller struct {
	opts Options

	criteria []Criterion
	search   string
	sort     []SortCriterion
	presets  []Preset

	store *PresetStore

	mu      sync.Mutex
	subs    map[int]func(Snapshot)
	nextSub int
}

// NewController 构造控制器并从持久化存储水合预设.
// 读取/解析失败一律视为"没有预设", 不向调用方暴露.
func NewController(opts Options) *Controller {
	c := &Controller{
		opts:     opts,
		criteria: cloneCriteria(opts.InitialCriteria),
		search:   opts.InitialSearch,
		sort:     cloneSort(opts.InitialSort),
		subs:     make(map[int]func(Snapshot)),
	}

	if opts.Namespace != "" && opts.Store != nil {
		c.store = NewPresetStore(opts.Store, opts.Namespace)
		c.presets = c.store.Load()
	}

	return c
}

// Snapshot 返回当前状态的不可变视图.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Criteria:         cloneCriteria(c.criteria),
		Search:           c.search,
		Sort:             cloneSort(c.sort),
		Presets:          clonePresets(c.presets),
		HasActiveFilters: c.HasActiveFilters(),
		FilterCount:      c.FilterCount(),
	}
}

// Subscribe 注册快照订阅, 返回取消函数. 每次变更后同步回调.
func (c *Controller) Subscribe(fn func(Snapshot)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

func (c *Controller) notify() {
	c.mu.Lock()
	fns := make([]func(Snapshot), 0, len(c.subs))

	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	if len(fns) == 0 {
		return
	}

	snap := c.Snapshot()
	for _, fn := range fns {
		fn(snap)
	}
}

// AddFilter 插入过滤条件; 同 Field 已存在时在原位置替换 (按 Field 而非 ID).
func (c *Controller) AddFilter(cr Criterion) {
	for i := range c.criteria {
		if c.criteria[i].Field == cr.Field {
			c.criteria[i] = cr
			c.notify()

			return
		}
	}

	c.criteria = append(c.criteria, cr)
	c.notify()
}

// RemoveFilter 按 ID 移除; 不存在则无事发生.
func (c *Controller) RemoveFilter(id string) {
	for i := range c.criteria {
		if c.criteria[i].ID == id {
			c.criteria = append(c.criteria[:i], c.criteria[i+1:]...)
			c.notify()

			return
		}
	}
}

// UpdateFilter 按 ID 合并部分更新; 不存在则无事发生.
func (c *Controller) UpdateFilter(id string, patch CriterionPatch) {
	for i := range c.criteria {
		if c.criteria[i].ID != id {
			continue
		}

		if patch.Field != nil {
			c.criteria[i].Field = *patch.Field
		}

		if patch.Label != nil {
			c.criteria[i].Label = *patch.Label
		}

		if patch.Value != nil {
			c.criteria[i].Value = *patch.Value
		}

		if patch.Removable != nil {
			c.criteria[i].Removable = *patch.Removable
		}

		c.notify()

		return
	}
}

// ClearFilters 清空激活条件; 搜索与排序不受影响.
func (c *Controller) ClearFilters() {
	c.criteria = c.criteria[:0:0]
	c.notify()
}

// SetSearchQuery 原样替换搜索串, 不校验不去抖.
func (c *Controller) SetSearchQuery(text string) {
	c.search = text
	c.notify()
}

// ToggleSort 对单个字段做三态循环: 缺失 → 升序 → 降序 → 移除.
// 单排序模式下切换新字段会用单元素序列替换整个排序;
// 多排序模式下只增改删该字段的条目, 其余顺序保持.
func (c *Controller) ToggleSort(field string) {
	idx := -1

	for i := range c.sort {
		if c.sort[i].Field == field {
			idx = i
			break
		}
	}

	switch {
	case idx < 0: // 缺失 → 升序
		entry := SortCriterion{Field: field, Direction: DirectionAscending}
		if c.opts.MultiSort {
			c.sort = append(c.sort, entry)
		} else {
			c.sort = []SortCriterion{entry}
		}
	case c.sort[idx].Direction == DirectionAscending: // 升序 → 降序
		c.sort[idx].Direction = DirectionDescending
	default: // 降序 → 移除
		c.sort = append(c.sort[:idx], c.sort[idx+1:]...)
	}

	c.notify()
}

// ClearSort 清空排序序列.
func (c *Controller) ClearSort() {
	c.sort = c.sort[:0:0]
	c.notify()
}

// SavePreset 用当前激活条件创建预设 (不含搜索与排序), 追加到列表
// 并整体重写持久化存储. 写入失败被吞掉, 不影响内存状态.
func (c *Controller) SavePreset(name string) Preset {
	p := Preset{
		ID:       ulid.MustNew(ulid.Timestamp(time.Now()), presetEntropy).String(),
		Name:     name,
		Criteria: cloneCriteria(c.criteria),
	}

	c.presets = append(c.presets, p)
	c.persistPresets()
	c.notify()

	return p
}

// LoadPreset 用预设条件整体替换激活条件; 搜索/排序/预设列表不受影响.
func (c *Controller) LoadPreset(p Preset) {
	c.criteria = cloneCriteria(p.Criteria)
	c.notify()
}

// DeletePreset 按 ID 移除预设并重写持久化的完整列表.
func (c *Controller) DeletePreset(id string) {
	for i := range c.presets {
		if c.presets[i].ID == id {
			c.presets = append(c.presets[:i], c.presets[i+1:]...)
			c.persistPresets()
			c.notify()

			return
		}
	}
}

// Reset 恢复到构造时提供的初始值, 而非清零.
func (c *Controller) Reset() {
	c.criteria = cloneCriteria(c.opts.InitialCriteria)
	c.search = c.opts.InitialSearch
	c.sort = cloneSort(c.opts.InitialSort)
	c.notify()
}

// HasActiveFilters 激活条件非空或搜索串非空时为 true.
func (c *Controller) HasActiveFilters() bool {
	return len(c.criteria) > 0 || c.search != ""
}

// FilterCount 激活条件数量, 不计搜索串.
func (c *Controller) FilterCount() int {
	return len(c.criteria)
}

// Presets 返回当前预设列表的副本.
func (c *Controller) Presets() []Preset {
	return clonePresets(c.presets)
}

func (c *Controller) persistPresets() {
	if c.store == nil {
		return
	}

	// best-effort: 存储故障永远不阻塞界面
	_ = c.store.Save(c.presets)
}
