package service

import (
	"context"
	"fmt"
	"time"

	minio "github.com/minio/minio-go/v7"

	"github.com/yeisme/stagevault/pkg/internal/model"
	"github.com/yeisme/stagevault/pkg/internal/types"
	slog "github.com/yeisme/stagevault/pkg/log"
	"github.com/yeisme/stagevault/pkg/queue"
)

// TrashService 文档回收站（基于 DB 软删除标记）.
type TrashService struct{ *DocumentService }

func NewTrashService(c context.Context) *TrashService { return &TrashService{NewDocumentService(c)} }

// List 列出回收站中的文档（DeletedAt 非空）.
func (t *TrashService) List(ctx context.Context, tenant string, page, size int) (*types.TrashListResponse, error) {
	p := types.Pagination{Page: page, PageSize: size}
	p.Normalize()

	dbx := t.dbClient.GetDB().WithContext(ctx).Model(&model.Document{}).Unscoped().
		Where("tenant = ? AND deleted_at IS NOT NULL", tenant)

	var total int64
	if err := dbx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count trashed documents: %w", err)
	}

	var rows []model.Document
	if err := dbx.Order("deleted_at DESC").Offset(p.Offset()).Limit(p.PageSize).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list trashed documents: %w", err)
	}

	docs := make([]types.TrashDocumentItem, 0, len(rows))
	for _, r := range rows {
		docs = append(docs, types.TrashDocumentItem{
			ID:        r.ID,
			ObjectKey: r.ObjectKey,
			FileName:  r.FileName,
			Size:      r.Size,
			DeletedAt: r.DeletedAt.Time,
		})
	}

	return &types.TrashListResponse{Total: total, Page: p.Page, Size: p.PageSize, Documents: docs}, nil
}

// Restore 恢复指定文档（取消软删除）.
func (t *TrashService) Restore(ctx context.Context, tenant string, ids []uint) (int, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("ids required")
	}

	dbx := t.dbClient.GetDB().WithContext(ctx).Model(&model.Document{}).Unscoped()

	tx := dbx.Where("tenant = ? AND id IN ?", tenant, ids).Update("deleted_at", nil)
	if tx.Error != nil {
		return 0, fmt.Errorf("restore documents: %w", tx.Error)
	}

	t.publishRestored(ctx, tenant, ids)

	return int(tx.RowsAffected), nil
}

// Purge 永久删除文档记录并移除对象本体.
func (t *TrashService) Purge(ctx context.Context, tenant string, ids []uint) (int, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("ids required")
	}

	return t.purgeRows(ctx, "tenant = ? AND id IN ? AND deleted_at IS NOT NULL",
		[]any{tenant, ids}, false)
}

// AutoClean 清理删除时间早于 before 的回收站记录, 由定时任务调用.
func (t *TrashService) AutoClean(ctx context.Context, before time.Time) (int, error) {
	if before.IsZero() {
		return 0, fmt.Errorf("before required")
	}

	return t.purgeRows(ctx, "deleted_at IS NOT NULL AND deleted_at < ?", []any{before}, true)
}

func (t *TrashService) purgeRows(ctx context.Context, cond string, args []any, autoClean bool) (int, error) {
	dbx := t.dbClient.GetDB().WithContext(ctx)

	var rows []model.Document
	if err := dbx.Unscoped().Where(cond, args...).Find(&rows).Error; err != nil {
		return 0, fmt.Errorf("query trashed documents: %w", err)
	}

	if len(rows) == 0 {
		return 0, nil
	}

	purged := 0

	for i := range rows {
		doc := &rows[i]

		// 先移除对象本体, 再硬删记录
		if t.s3Client != nil {
			if err := t.s3Client.RemoveObject(ctx, doc.Bucket, doc.ObjectKey, minio.RemoveObjectOptions{}); err != nil {
				slog.Logger().Warn().Err(err).Str("object_key", doc.ObjectKey).Msg("remove object failed")
			}
		}

		if err := dbx.Unscoped().Delete(doc).Error; err != nil {
			slog.Logger().Warn().Err(err).Uint("document_id", doc.ID).Msg("purge document row failed")
			continue
		}

		t.publishPurged(doc, autoClean)
		purged++
	}

	return purged, nil
}

func (t *TrashService) publishRestored(ctx context.Context, tenant string, ids []uint) {
	if t.mqClient == nil || t.mqClient.Publisher() == nil {
		return
	}

	var rows []model.Document
	if err := t.dbClient.GetDB().WithContext(ctx).
		Where("tenant = ? AND id IN ?", tenant, ids).Find(&rows).Error; err != nil {
		return
	}

	for i := range rows {
		doc := &rows[i]

		err := queue.PublishDocumentRestored(t.mqClient.Publisher(), queue.DocumentRestoredPayload{
			Object:     t.objectRef(doc),
			DocumentID: doc.ID,
			RestoredBy: tenant,
		}, queue.WithProducer("trash-service"))
		if err != nil {
			slog.Logger().Warn().Err(err).Uint("document_id", doc.ID).Msg("publish document restored failed")
		}
	}
}

func (t *TrashService) publishPurged(doc *model.Document, autoClean bool) {
	if t.mqClient == nil || t.mqClient.Publisher() == nil {
		return
	}

	err := queue.PublishDocumentPurged(t.mqClient.Publisher(), queue.DocumentPurgedPayload{
		Object:     t.objectRef(doc),
		DocumentID: doc.ID,
		AutoClean:  autoClean,
	}, queue.WithProducer("trash-service"))
	if err != nil {
		slog.Logger().Warn().Err(err).Uint("document_id", doc.ID).Msg("publish document purged failed")
	}
}
