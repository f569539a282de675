package filter

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeStore 内存版 KVStore, failing 打开后所有操作返回错误.
type fakeStore struct {
	data    map[string][]byte
	failing bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][]byte)}
}

var errFakeStore = errors.New("store unavailable")

func (s *fakeStore) Get(_ context.Context, key string) ([]byte, error) {
	if s.failing {
		return nil, errFakeStore
	}

	v, ok := s.data[key]
	if !ok {
		return nil, errors.New("key not found")
	}

	return v, nil
}

func (s *fakeStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	if s.failing {
		return errFakeStore
	}

	s.data[key] = value

	return nil
}

func (s *fakeStore) Delete(_ context.Context, key string) error {
	if s.failing {
		return errFakeStore
	}

	delete(s.data, key)

	return nil
}

func (s *fakeStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := s.data[key]
	return ok, nil
}

func (s *fakeStore) Keys(_ context.Context, _ string) ([]string, error) {
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}

	return keys, nil
}

func (s *fakeStore) Close() error { return nil }

func TestPresetStore_PersistAcrossControllers(t *testing.T) {
	store := newFakeStore()

	c1 := NewController(Options{Namespace: "inventory", Store: store})
	c1.AddFilter(crit("1", "category", "props"))
	saved := c1.SavePreset("道具")

	// 新控制器从同一命名空间水合
	c2 := NewController(Options{Namespace: "inventory", Store: store})

	presets := c2.Presets()
	if len(presets) != 1 || presets[0].ID != saved.ID || presets[0].Name != "道具" {
		t.Fatalf("水合的预设: %+v", presets)
	}

	if len(presets[0].Criteria) != 1 || presets[0].Criteria[0].Field != "category" {
		t.Fatalf("预设条件: %+v", presets[0].Criteria)
	}
}

func TestPresetStore_NamespaceIsolation(t *testing.T) {
	store := newFakeStore()

	c1 := NewController(Options{Namespace: "inventory", Store: store})
	c1.AddFilter(crit("1", "category", "props"))
	c1.SavePreset("A")

	c2 := NewController(Options{Namespace: "documents", Store: store})
	if len(c2.Presets()) != 0 {
		t.Fatalf("不同命名空间不应看到彼此的预设")
	}
}

func TestPresetStore_DeleteRepersists(t *testing.T) {
	store := newFakeStore()

	c := NewController(Options{Namespace: "ns", Store: store})
	a := c.SavePreset("A")
	b := c.SavePreset("B")

	c.DeletePreset(a.ID)

	fresh := NewController(Options{Namespace: "ns", Store: store})

	presets := fresh.Presets()
	if len(presets) != 1 || presets[0].ID != b.ID {
		t.Fatalf("删除后重新持久化的列表: %+v", presets)
	}
}

func TestPresetStore_CorruptedDataDegradesToEmpty(t *testing.T) {
	store := newFakeStore()
	store.data["filter:presets:ns"] = []byte("{not json[")

	c := NewController(Options{Namespace: "ns", Store: store})
	if len(c.Presets()) != 0 {
		t.Fatalf("损坏的持久化数据应降级为空预设列表")
	}
}

func TestPresetStore_WriteFailureSwallowed(t *testing.T) {
	store := newFakeStore()
	store.failing = true

	c := NewController(Options{Namespace: "ns", Store: store})
	c.AddFilter(crit("1", "category", "props"))

	// 写入失败不向调用方暴露, 内存状态照常更新
	p := c.SavePreset("X")
	if p.ID == "" || len(c.Presets()) != 1 {
		t.Fatalf("存储故障不应影响内存预设: %+v", c.Presets())
	}

	c.DeletePreset(p.ID)

	if len(c.Presets()) != 0 {
		t.Fatalf("存储故障不应影响内存删除")
	}
}

func TestPresetStore_NoNamespaceNoPersistence(t *testing.T) {
	store := newFakeStore()

	c := NewController(Options{Store: store}) // 未配置命名空间
	c.AddFilter(crit("1", "category", "props"))
	c.SavePreset("X")

	if len(store.data) != 0 {
		t.Fatalf("未配置命名空间时不应写存储")
	}
}
