package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	ctxPkg "github.com/yeisme/stagevault/pkg/context"
	"github.com/yeisme/stagevault/pkg/internal/filter"
	"github.com/yeisme/stagevault/pkg/internal/model"
	"github.com/yeisme/stagevault/pkg/internal/storage/db"
	"github.com/yeisme/stagevault/pkg/internal/storage/mq"
	"github.com/yeisme/stagevault/pkg/internal/types"
	slog "github.com/yeisme/stagevault/pkg/log"
	"github.com/yeisme/stagevault/pkg/queue"
)

var performanceColumns = filter.ColumnMap{
	"title":    "title",
	"director": "director",
	"status":   "status",
}

var performanceSearchColumns = []string{"title", "director", "description"}

type PerformanceService struct {
	dbClient *db.Client
	mqClient *mq.Client
}

func NewPerformanceService(c context.Context) *PerformanceService {
	return &PerformanceService{
		dbClient: ctxPkg.GetDBClient(c),
		mqClient: ctxPkg.GetMQClient(c),
	}
}

// Create 创建剧目.
func (s *PerformanceService) Create(ctx context.Context, tenant string,
	req *types.CreatePerformanceRequest,
) (*types.PerformanceResponse, error) {
	status := req.Status
	if status == "" {
		status = "planning"
	}

	p := model.Performance{
		Tenant:      tenant,
		Title:       req.Title,
		Director:    req.Director,
		Status:      status,
		PremiereAt:  req.PremiereAt,
		Description: req.Description,
	}

	if err := s.dbClient.GetDB().WithContext(ctx).Create(&p).Error; err != nil {
		return nil, fmt.Errorf("create performance: %w", err)
	}

	return performanceToResponse(&p), nil
}

// Get 查询单个剧目.
func (s *PerformanceService) Get(ctx context.Context, tenant string, id uint) (*types.PerformanceResponse, error) {
	p, err := s.find(ctx, tenant, id)
	if err != nil {
		return nil, err
	}

	return performanceToResponse(p), nil
}

// Update 部分更新剧目.
func (s *PerformanceService) Update(ctx context.Context, tenant string, id uint,
	req *types.UpdatePerformanceRequest,
) (*types.PerformanceResponse, error) {
	p, err := s.find(ctx, tenant, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		p.Title = *req.Title
	}

	if req.Director != nil {
		p.Director = *req.Director
	}

	if req.Status != nil {
		p.Status = *req.Status
	}

	if req.PremiereAt != nil {
		p.PremiereAt = req.PremiereAt
	}

	if req.Description != nil {
		p.Description = *req.Description
	}

	if err := s.dbClient.GetDB().WithContext(ctx).Save(p).Error; err != nil {
		return nil, fmt.Errorf("update performance: %w", err)
	}

	return performanceToResponse(p), nil
}

// Delete 软删除剧目.
func (s *PerformanceService) Delete(ctx context.Context, tenant string, id uint) error {
	tx := s.dbClient.GetDB().WithContext(ctx).
		Where("tenant = ? AND id = ?", tenant, id).Delete(&model.Performance{})
	if tx.Error != nil {
		return fmt.Errorf("delete performance: %w", tx.Error)
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("performance %d not found", id)
	}

	return nil
}

// List 按过滤条件列出剧目.
func (s *PerformanceService) List(ctx context.Context, tenant string,
	req *types.ListPerformancesRequest,
) (*types.ListPerformancesResponse, error) {
	req.Normalize()

	dbx := s.dbClient.GetDB().WithContext(ctx).Model(&model.Performance{}).
		Where("tenant = ?", tenant)
	dbx = filter.ApplyCriteria(dbx, req.Criteria, performanceColumns)
	dbx = filter.ApplySearch(dbx, req.Search, performanceSearchColumns)

	var total int64
	if err := dbx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count performances: %w", err)
	}

	dbx = filter.ApplySort(dbx, req.Sort, performanceColumns)
	if len(req.Sort) == 0 {
		dbx = dbx.Order("updated_at DESC")
	}

	var rows []model.Performance
	if err := dbx.Offset(req.Offset()).Limit(req.PageSize).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list performances: %w", err)
	}

	out := make([]types.PerformanceResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *performanceToResponse(&rows[i]))
	}

	return &types.ListPerformancesResponse{
		Total:        total,
		Page:         req.Page,
		Size:         req.PageSize,
		Performances: out,
	}, nil
}

// GetPassport 读取剧目技术护照; 尚未创建时返回空分区的零版本.
func (s *PerformanceService) GetPassport(ctx context.Context, tenant string, performanceID uint) (*types.PassportResponse, error) {
	if _, err := s.find(ctx, tenant, performanceID); err != nil {
		return nil, err
	}

	var pp model.Passport
	if err := s.dbClient.GetDB().WithContext(ctx).
		Where("performance_id = ?", performanceID).First(&pp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.PassportResponse{
				PerformanceID: performanceID,
				Sections:      map[string]json.RawMessage{},
			}, nil
		}

		return nil, fmt.Errorf("query passport: %w", err)
	}

	sections, err := pp.Sections()
	if err != nil {
		return nil, err
	}

	return &types.PassportResponse{
		PerformanceID: performanceID,
		Sections:      sections,
		Version:       pp.Version,
		UpdatedBy:     pp.UpdatedBy,
		UpdatedAt:     pp.UpdatedAt,
	}, nil
}

// UpdatePassport 整体覆盖护照分区并递增版本.
func (s *PerformanceService) UpdatePassport(ctx context.Context, tenant string, performanceID uint,
	req *types.UpdatePassportRequest,
) (*types.PassportResponse, error) {
	if _, err := s.find(ctx, tenant, performanceID); err != nil {
		return nil, err
	}

	dbx := s.dbClient.GetDB().WithContext(ctx)

	var pp model.Passport

	err := dbx.Where("performance_id = ?", performanceID).First(&pp).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("query passport: %w", err)
	}

	pp.PerformanceID = performanceID
	pp.Version++
	pp.UpdatedBy = tenant

	if err := pp.SetSections(req.Sections); err != nil {
		return nil, err
	}

	if err := dbx.Save(&pp).Error; err != nil {
		return nil, fmt.Errorf("save passport: %w", err)
	}

	s.publishPassportUpdated(performanceID, req.Sections, tenant)

	return &types.PassportResponse{
		PerformanceID: performanceID,
		Sections:      req.Sections,
		Version:       pp.Version,
		UpdatedBy:     pp.UpdatedBy,
		UpdatedAt:     pp.UpdatedAt,
	}, nil
}

func (s *PerformanceService) find(ctx context.Context, tenant string, id uint) (*model.Performance, error) {
	var p model.Performance
	if err := s.dbClient.GetDB().WithContext(ctx).
		Where("tenant = ? AND id = ?", tenant, id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("performance %d not found", id)
		}

		return nil, fmt.Errorf("query performance: %w", err)
	}

	return &p, nil
}

func (s *PerformanceService) publishPassportUpdated(performanceID uint, sections map[string]json.RawMessage, by string) {
	if s.mqClient == nil || s.mqClient.Publisher() == nil {
		return
	}

	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}

	err := queue.PublishPassportUpdated(s.mqClient.Publisher(), queue.PassportUpdatedPayload{
		PerformanceID: performanceID,
		Sections:      names,
		UpdatedBy:     by,
	}, queue.WithProducer("performance-service"))
	if err != nil {
		slog.Logger().Warn().Err(err).Uint("performance_id", performanceID).Msg("publish passport updated failed")
	}
}

func performanceToResponse(p *model.Performance) *types.PerformanceResponse {
	return &types.PerformanceResponse{
		ID:          p.ID,
		Title:       p.Title,
		Director:    p.Director,
		Status:      p.Status,
		PremiereAt:  p.PremiereAt,
		Description: p.Description,
		UpdatedAt:   p.UpdatedAt,
	}
}
