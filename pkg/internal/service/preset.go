package service

import (
	"context"
	"fmt"

	ctxPkg "github.com/yeisme/stagevault/pkg/context"
	"github.com/yeisme/stagevault/pkg/internal/filter"
	"github.com/yeisme/stagevault/pkg/internal/storage/kv"
	"github.com/yeisme/stagevault/pkg/internal/storage/mq"
	"github.com/yeisme/stagevault/pkg/internal/types"
	slog "github.com/yeisme/stagevault/pkg/log"
	"github.com/yeisme/stagevault/pkg/queue"
)

// PresetService 过滤预设的 REST 侧封装: 按 (租户, 命名空间) 即时物化
// 一个过滤控制器, 复用其预设语义与吞错的持久化策略.
type PresetService struct {
	kvClient *kv.Client
	mqClient *mq.Client
}

func NewPresetService(c context.Context) *PresetService {
	return &PresetService{
		kvClient: ctxPkg.GetKVClient(c),
		mqClient: ctxPkg.GetMQClient(c),
	}
}

// controller 物化 (租户, 命名空间) 对应的控制器.
// 存储不可用或数据损坏时控制器以空预设列表启动.
func (s *PresetService) controller(tenant, namespace string) *filter.Controller {
	opts := filter.Options{Namespace: fmt.Sprintf("%s/%s", tenant, namespace)}
	if s.kvClient != nil {
		opts.Store = s.kvClient
	}

	return filter.NewController(opts)
}

// List 列出命名空间下的全部预设.
func (s *PresetService) List(_ context.Context, tenant, namespace string) *types.PresetListResponse {
	c := s.controller(tenant, namespace)

	presets := c.Presets()
	if presets == nil {
		presets = []filter.Preset{}
	}

	return &types.PresetListResponse{Namespace: namespace, Presets: presets}
}

// Save 以当前提交的条件保存一份新预设.
func (s *PresetService) Save(_ context.Context, tenant, namespace string,
	req *types.SavePresetRequest,
) filter.Preset {
	c := s.controller(tenant, namespace)

	for _, cr := range req.Criteria {
		c.AddFilter(cr)
	}

	p := c.SavePreset(req.Name)

	s.publishSaved(p, namespace, tenant)

	return p
}

// Delete 删除预设并重写持久化列表.
func (s *PresetService) Delete(_ context.Context, tenant, namespace, id string) {
	c := s.controller(tenant, namespace)
	c.DeletePreset(id)

	s.publishDeleted(id, namespace, tenant)
}

func (s *PresetService) publishSaved(p filter.Preset, namespace, owner string) {
	if s.mqClient == nil || s.mqClient.Publisher() == nil {
		return
	}

	err := queue.PublishPresetSaved(s.mqClient.Publisher(), queue.PresetSavedPayload{
		PresetID:  p.ID,
		Namespace: namespace,
		Name:      p.Name,
		Owner:     owner,
	}, queue.WithProducer("preset-service"))
	if err != nil {
		slog.Logger().Warn().Err(err).Str("preset_id", p.ID).Msg("publish preset saved failed")
	}
}

func (s *PresetService) publishDeleted(id, namespace, owner string) {
	if s.mqClient == nil || s.mqClient.Publisher() == nil {
		return
	}

	err := queue.PublishPresetDeleted(s.mqClient.Publisher(), queue.PresetDeletedPayload{
		PresetID:  id,
		Namespace: namespace,
		Owner:     owner,
	}, queue.WithProducer("preset-service"))
	if err != nil {
		slog.Logger().Warn().Err(err).Str("preset_id", id).Msg("publish preset deleted failed")
	}
}
