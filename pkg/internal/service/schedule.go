package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	ctxPkg "github.com/yeisme/stagevault/pkg/context"
	"github.com/yeisme/stagevault/pkg/internal/model"
	"github.com/yeisme/stagevault/pkg/internal/storage/db"
	"github.com/yeisme/stagevault/pkg/internal/storage/mq"
	"github.com/yeisme/stagevault/pkg/internal/types"
	slog "github.com/yeisme/stagevault/pkg/log"
	"github.com/yeisme/stagevault/pkg/queue"
)

type ScheduleService struct {
	dbClient *db.Client
	mqClient *mq.Client
}

func NewScheduleService(c context.Context) *ScheduleService {
	return &ScheduleService{
		dbClient: ctxPkg.GetDBClient(c),
		mqClient: ctxPkg.GetMQClient(c),
	}
}

// Create 创建排期事件. 原系统不做场地冲突校验.
func (s *ScheduleService) Create(ctx context.Context, tenant string,
	req *types.CreateScheduleEventRequest,
) (*types.ScheduleEventResponse, error) {
	ev := model.ScheduleEvent{
		Tenant:        tenant,
		Kind:          req.Kind,
		Title:         req.Title,
		PerformanceID: req.PerformanceID,
		Venue:         req.Venue,
		StartsAt:      req.StartsAt,
		EndsAt:        req.EndsAt,
		Notes:         req.Notes,
	}

	if err := s.dbClient.GetDB().WithContext(ctx).Create(&ev).Error; err != nil {
		return nil, fmt.Errorf("create schedule event: %w", err)
	}

	s.publishChanged(&ev, "created")

	return scheduleToResponse(&ev), nil
}

// Get 查询单个排期事件.
func (s *ScheduleService) Get(ctx context.Context, tenant string, id uint) (*types.ScheduleEventResponse, error) {
	ev, err := s.find(ctx, tenant, id)
	if err != nil {
		return nil, err
	}

	return scheduleToResponse(ev), nil
}

// Update 部分更新排期事件.
func (s *ScheduleService) Update(ctx context.Context, tenant string, id uint,
	req *types.UpdateScheduleEventRequest,
) (*types.ScheduleEventResponse, error) {
	ev, err := s.find(ctx, tenant, id)
	if err != nil {
		return nil, err
	}

	if req.Kind != nil {
		ev.Kind = *req.Kind
	}

	if req.Title != nil {
		ev.Title = *req.Title
	}

	if req.PerformanceID != nil {
		ev.PerformanceID = req.PerformanceID
	}

	if req.Venue != nil {
		ev.Venue = *req.Venue
	}

	if req.StartsAt != nil {
		ev.StartsAt = *req.StartsAt
		// 时间调整后允许重新提醒
		ev.ReminderSent = false
	}

	if req.EndsAt != nil {
		ev.EndsAt = *req.EndsAt
	}

	if req.Notes != nil {
		ev.Notes = *req.Notes
	}

	if err := s.dbClient.GetDB().WithContext(ctx).Save(ev).Error; err != nil {
		return nil, fmt.Errorf("update schedule event: %w", err)
	}

	s.publishChanged(ev, "updated")

	return scheduleToResponse(ev), nil
}

// Delete 软删除排期事件.
func (s *ScheduleService) Delete(ctx context.Context, tenant string, id uint) error {
	ev, err := s.find(ctx, tenant, id)
	if err != nil {
		return err
	}

	if err := s.dbClient.GetDB().WithContext(ctx).Delete(ev).Error; err != nil {
		return fmt.Errorf("delete schedule event: %w", err)
	}

	s.publishChanged(ev, "cancelled")

	return nil
}

// List 按时间范围和类型查询排期.
func (s *ScheduleService) List(ctx context.Context, tenant string,
	req *types.ListScheduleRequest,
) (*types.ListScheduleResponse, error) {
	req.Normalize()

	dbx := s.dbClient.GetDB().WithContext(ctx).Model(&model.ScheduleEvent{}).
		Where("tenant = ?", tenant)

	if !req.From.IsZero() {
		dbx = dbx.Where("starts_at >= ?", req.From)
	}

	if !req.To.IsZero() {
		dbx = dbx.Where("starts_at < ?", req.To)
	}

	if req.Kind != "" {
		dbx = dbx.Where("kind = ?", req.Kind)
	}

	var total int64
	if err := dbx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count schedule events: %w", err)
	}

	var rows []model.ScheduleEvent
	if err := dbx.Order("starts_at ASC").
		Offset(req.Offset()).Limit(req.PageSize).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list schedule events: %w", err)
	}

	events := make([]types.ScheduleEventResponse, 0, len(rows))
	for i := range rows {
		events = append(events, *scheduleToResponse(&rows[i]))
	}

	return &types.ListScheduleResponse{
		Total:  total,
		Page:   req.Page,
		Size:   req.PageSize,
		Events: events,
	}, nil
}

// PublishDueReminders 为窗口内即将开始且未提醒过的事件发出提醒事件.
// 由定时任务调用, 返回发出的提醒数.
func (s *ScheduleService) PublishDueReminders(ctx context.Context, within time.Duration) (int, error) {
	now := time.Now()
	dbx := s.dbClient.GetDB().WithContext(ctx)

	var rows []model.ScheduleEvent
	if err := dbx.Where("starts_at > ? AND starts_at <= ? AND reminder_sent = ?", now, now.Add(within), false).
		Find(&rows).Error; err != nil {
		return 0, fmt.Errorf("query due schedule events: %w", err)
	}

	sent := 0

	for i := range rows {
		ev := &rows[i]
		if s.mqClient == nil || s.mqClient.Publisher() == nil {
			break
		}

		payload := queue.ScheduleReminderPayload{
			EventID:    ev.ID,
			Title:      ev.Title,
			Venue:      ev.Venue,
			StartsAt:   ev.StartsAt.Format(time.RFC3339),
			HoursUntil: int(time.Until(ev.StartsAt).Hours()),
		}
		if ev.PerformanceID != nil {
			payload.PerformanceID = *ev.PerformanceID
		}

		if err := queue.PublishScheduleReminder(s.mqClient.Publisher(), payload,
			queue.WithProducer("schedule-service")); err != nil {
			slog.Logger().Warn().Err(err).Uint("event_id", ev.ID).Msg("publish schedule reminder failed")
			continue
		}

		if err := dbx.Model(ev).Update("reminder_sent", true).Error; err != nil {
			slog.Logger().Warn().Err(err).Uint("event_id", ev.ID).Msg("mark reminder sent failed")
			continue
		}

		sent++
	}

	return sent, nil
}

func (s *ScheduleService) find(ctx context.Context, tenant string, id uint) (*model.ScheduleEvent, error) {
	var ev model.ScheduleEvent
	if err := s.dbClient.GetDB().WithContext(ctx).
		Where("tenant = ? AND id = ?", tenant, id).First(&ev).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("schedule event %d not found", id)
		}

		return nil, fmt.Errorf("query schedule event: %w", err)
	}

	return &ev, nil
}

func (s *ScheduleService) publishChanged(ev *model.ScheduleEvent, action string) {
	if s.mqClient == nil || s.mqClient.Publisher() == nil {
		return
	}

	payload := queue.ScheduleChangedPayload{
		EventID:  ev.ID,
		Action:   action,
		Venue:    ev.Venue,
		StartsAt: ev.StartsAt.Format(time.RFC3339),
	}
	if ev.PerformanceID != nil {
		payload.PerformanceID = *ev.PerformanceID
	}

	if err := queue.PublishScheduleChanged(s.mqClient.Publisher(), payload,
		queue.WithProducer("schedule-service")); err != nil {
		slog.Logger().Warn().Err(err).Uint("event_id", ev.ID).Msg("publish schedule changed failed")
	}
}

func scheduleToResponse(ev *model.ScheduleEvent) *types.ScheduleEventResponse {
	return &types.ScheduleEventResponse{
		ID:            ev.ID,
		Kind:          ev.Kind,
		Title:         ev.Title,
		PerformanceID: ev.PerformanceID,
		Venue:         ev.Venue,
		StartsAt:      ev.StartsAt,
		EndsAt:        ev.EndsAt,
		Notes:         ev.Notes,
	}
}
