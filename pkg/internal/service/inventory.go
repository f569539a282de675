package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/cespare/xxhash/v2"
	"gorm.io/gorm"

	"github.com/yeisme/stagevault/pkg/cache"
	ctxPkg "github.com/yeisme/stagevault/pkg/context"
	"github.com/yeisme/stagevault/pkg/internal/filter"
	"github.com/yeisme/stagevault/pkg/internal/model"
	"github.com/yeisme/stagevault/pkg/internal/storage/db"
	"github.com/yeisme/stagevault/pkg/internal/storage/kv"
	"github.com/yeisme/stagevault/pkg/internal/storage/mq"
	"github.com/yeisme/stagevault/pkg/internal/types"
	slog "github.com/yeisme/stagevault/pkg/log"
	"github.com/yeisme/stagevault/pkg/queue"
)

// inventoryColumns 搜索条件/排序字段白名单.
var inventoryColumns = filter.ColumnMap{
	"name":     "name",
	"category": "category",
	"status":   "status",
	"location": "location",
}

// inventorySearchColumns 自由文本搜索命中的列.
var inventorySearchColumns = []string{"name", "description", "tags_json"}

type InventoryService struct {
	dbClient *db.Client
	kvClient *kv.Client
	mqClient *mq.Client
}

func NewInventoryService(c context.Context) *InventoryService {
	return &InventoryService{
		dbClient: ctxPkg.GetDBClient(c),
		kvClient: ctxPkg.GetKVClient(c),
		mqClient: ctxPkg.GetMQClient(c),
	}
}

// Create 创建库存物品.
func (s *InventoryService) Create(ctx context.Context, tenant string,
	req *types.CreateInventoryItemRequest,
) (*types.InventoryItemResponse, error) {
	status := req.Status
	if status == "" {
		status = "available"
	}

	item := model.InventoryItem{
		Tenant:      tenant,
		Name:        req.Name,
		Category:    req.Category,
		Status:      status,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		Location:    req.Location,
		Description: req.Description,
		TagsJSON:    encodeTags(req.Tags),
		UpdatedBy:   tenant,
	}

	if err := s.dbClient.GetDB().WithContext(ctx).Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create inventory item: %w", err)
	}

	s.publishChanged(&item, "created", tenant)

	return inventoryToResponse(&item), nil
}

// Get 查询单个库存物品.
func (s *InventoryService) Get(ctx context.Context, tenant string, id uint) (*types.InventoryItemResponse, error) {
	var item model.InventoryItem
	if err := s.dbClient.GetDB().WithContext(ctx).
		Where("tenant = ? AND id = ?", tenant, id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("inventory item %d not found", id)
		}

		return nil, fmt.Errorf("query inventory item: %w", err)
	}

	return inventoryToResponse(&item), nil
}

// Update 部分更新库存物品, nil 字段保持原值.
func (s *InventoryService) Update(ctx context.Context, tenant string, id uint,
	req *types.UpdateInventoryItemRequest,
) (*types.InventoryItemResponse, error) {
	dbx := s.dbClient.GetDB().WithContext(ctx)

	var item model.InventoryItem
	if err := dbx.Where("tenant = ? AND id = ?", tenant, id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("inventory item %d not found", id)
		}

		return nil, fmt.Errorf("query inventory item: %w", err)
	}

	applyInventoryPatch(&item, req)
	item.UpdatedBy = tenant

	if err := dbx.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update inventory item: %w", err)
	}

	s.publishChanged(&item, "updated", tenant)

	// 低库存告警
	if item.MinQuantity > 0 && item.Quantity < item.MinQuantity {
		s.publishLowStock(&item)
	}

	return inventoryToResponse(&item), nil
}

// Delete 软删除库存物品.
func (s *InventoryService) Delete(ctx context.Context, tenant string, id uint) error {
	tx := s.dbClient.GetDB().WithContext(ctx).
		Where("tenant = ? AND id = ?", tenant, id).Delete(&model.InventoryItem{})
	if tx.Error != nil {
		return fmt.Errorf("delete inventory item: %w", tx.Error)
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("inventory item %d not found", id)
	}

	s.publishChanged(&model.InventoryItem{ID: id}, "deleted", tenant)

	return nil
}

// Search 按过滤条件搜索库存, 响应短暂缓存在 KV 中.
func (s *InventoryService) Search(ctx context.Context, tenant string,
	req *types.SearchInventoryRequest,
) (*types.SearchInventoryResponse, error) {
	req.Normalize()

	cacheKey := s.searchCacheKey(tenant, req)
	if s.kvClient != nil {
		c := cache.NewCache(s.kvClient)
		if cached, err := cache.Get[types.SearchInventoryResponse](ctx, c, cacheKey); err == nil {
			return &cached, nil
		}
	}

	dbx := s.dbClient.GetDB().WithContext(ctx).Model(&model.InventoryItem{}).
		Where("tenant = ?", tenant)
	dbx = filter.ApplyCriteria(dbx, req.Criteria, inventoryColumns)
	dbx = filter.ApplySearch(dbx, req.Search, inventorySearchColumns)

	var total int64
	if err := dbx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count inventory items: %w", err)
	}

	dbx = filter.ApplySort(dbx, req.Sort, inventoryColumns)
	if len(req.Sort) == 0 {
		dbx = dbx.Order("updated_at DESC")
	}

	var rows []model.InventoryItem
	if err := dbx.Offset(req.Offset()).Limit(req.PageSize).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("search inventory items: %w", err)
	}

	items := make([]types.InventoryItemResponse, 0, len(rows))
	for i := range rows {
		items = append(items, *inventoryToResponse(&rows[i]))
	}

	resp := &types.SearchInventoryResponse{
		Total: total,
		Page:  req.Page,
		Size:  req.PageSize,
		Items: items,
	}

	if s.kvClient != nil {
		c := cache.NewCache(s.kvClient)
		_ = cache.Set(ctx, c, cacheKey, *resp, searchCacheTTL)
	}

	return resp, nil
}

func (s *InventoryService) searchCacheKey(tenant string, req *types.SearchInventoryRequest) string {
	raw, _ := sonic.Marshal(req)
	return fmt.Sprintf("search:inventory:%s:%x", tenant, xxhash.Sum64(raw))
}

func (s *InventoryService) publishChanged(item *model.InventoryItem, action, by string) {
	if s.mqClient == nil || s.mqClient.Publisher() == nil {
		return
	}

	err := queue.PublishInventoryChanged(s.mqClient.Publisher(), queue.InventoryChangedPayload{
		ItemID:    item.ID,
		Action:    action,
		Name:      item.Name,
		Category:  item.Category,
		Quantity:  item.Quantity,
		ChangedBy: by,
	}, queue.WithProducer("inventory-service"))
	if err != nil {
		slog.Logger().Warn().Err(err).Uint("item_id", item.ID).Msg("publish inventory changed failed")
	}
}

func (s *InventoryService) publishLowStock(item *model.InventoryItem) {
	if s.mqClient == nil || s.mqClient.Publisher() == nil {
		return
	}

	err := queue.PublishInventoryLowStock(s.mqClient.Publisher(), queue.InventoryLowStockPayload{
		ItemID:    item.ID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		Threshold: item.MinQuantity,
	}, queue.WithProducer("inventory-service"))
	if err != nil {
		slog.Logger().Warn().Err(err).Uint("item_id", item.ID).Msg("publish low stock failed")
	}
}

func applyInventoryPatch(item *model.InventoryItem, req *types.UpdateInventoryItemRequest) {
	if req.Name != nil {
		item.Name = *req.Name
	}

	if req.Category != nil {
		item.Category = *req.Category
	}

	if req.Status != nil {
		item.Status = *req.Status
	}

	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}

	if req.MinQuantity != nil {
		item.MinQuantity = *req.MinQuantity
	}

	if req.Location != nil {
		item.Location = *req.Location
	}

	if req.Description != nil {
		item.Description = *req.Description
	}

	if req.Tags != nil {
		item.TagsJSON = encodeTags(*req.Tags)
	}
}

func inventoryToResponse(item *model.InventoryItem) *types.InventoryItemResponse {
	return &types.InventoryItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Category:    item.Category,
		Status:      item.Status,
		Quantity:    item.Quantity,
		MinQuantity: item.MinQuantity,
		Location:    item.Location,
		Description: item.Description,
		Tags:        decodeTags(item.TagsJSON),
		LowStock:    item.MinQuantity > 0 && item.Quantity < item.MinQuantity,
		UpdatedBy:   item.UpdatedBy,
		UpdatedAt:   item.UpdatedAt,
	}
}
