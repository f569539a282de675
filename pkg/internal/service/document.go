package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cespare/xxhash/v2"
	minio "github.com/minio/minio-go/v7"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yeisme/stagevault/pkg/cache"
	ctxPkg "github.com/yeisme/stagevault/pkg/context"
	"github.com/yeisme/stagevault/pkg/internal/filter"
	"github.com/yeisme/stagevault/pkg/internal/model"
	"github.com/yeisme/stagevault/pkg/internal/storage/db"
	"github.com/yeisme/stagevault/pkg/internal/storage/kv"
	"github.com/yeisme/stagevault/pkg/internal/storage/mq"
	"github.com/yeisme/stagevault/pkg/internal/storage/s3"
	"github.com/yeisme/stagevault/pkg/internal/types"
	slog "github.com/yeisme/stagevault/pkg/log"
	"github.com/yeisme/stagevault/pkg/queue"
)

var documentColumns = filter.ColumnMap{
	"file_name":    "file_name",
	"category":     "category",
	"content_type": "content_type",
	"performance":  "performance_id",
}

var documentSearchColumns = []string{"file_name", "description", "tags_json"}

type DocumentService struct {
	s3Client *s3.Client
	dbClient *db.Client
	kvClient *kv.Client
	mqClient *mq.Client
}

func NewDocumentService(c context.Context) *DocumentService {
	return &DocumentService{
		s3Client: ctxPkg.GetS3Client(c),
		dbClient: ctxPkg.GetDBClient(c),
		kvClient: ctxPkg.GetKVClient(c),
		mqClient: ctxPkg.GetMQClient(c),
	}
}

// PresignedPutURLs 批量生成预签名 PUT URL 并预写文档元数据行.
// 各文件的预签名并发执行, 任一失败则整体失败.
func (s *DocumentService) PresignedPutURLs(ctx context.Context, tenant string,
	req *types.UploadDocumentsRequest,
) (*types.UploadDocumentsResponse, error) {
	bucket := s.s3Client.Bucket()
	results := make([]types.PresignedPutItem, len(req.Files))

	g, gctx := errgroup.WithContext(ctx)

	for i, file := range req.Files {
		g.Go(func() error {
			objectKey := buildObjectKey(tenant, file.FileName)

			url, err := s.s3Client.PresignedPutObject(gctx, bucket, objectKey, DefaultPresignedOpTimeout)
			if err != nil {
				return fmt.Errorf("presign put for %s: %w", file.FileName, err)
			}

			results[i] = types.PresignedPutItem{
				ObjectKey: objectKey,
				PutURL:    url.String(),
				ExpiresIn: int(DefaultPresignedOpTimeout.Seconds()),
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// 预写元数据行, 对象落桶后由同步任务补全大小/ETag
	for i, file := range req.Files {
		doc := model.Document{
			Tenant:        tenant,
			ObjectKey:     results[i].ObjectKey,
			FileName:      file.FileName,
			ContentType:   file.ContentType,
			PerformanceID: file.PerformanceID,
			Category:      file.Category,
			Description:   file.Description,
			TagsJSON:      encodeTags(file.Tags),
			Bucket:        bucket,
			UploadedBy:    tenant,
			LastModified:  time.Now(),
		}
		if err := s.dbClient.GetDB().WithContext(ctx).Create(&doc).Error; err != nil {
			return nil, fmt.Errorf("create document meta for %s: %w", file.FileName, err)
		}

		s.publishStored(&doc)
	}

	return &types.UploadDocumentsResponse{Results: results}, nil
}

// Get 查询文档元数据.
func (s *DocumentService) Get(ctx context.Context, tenant string, id uint) (*types.DocumentResponse, error) {
	doc, err := s.find(ctx, tenant, id)
	if err != nil {
		return nil, err
	}

	return documentToResponse(doc), nil
}

// Search 按过滤条件搜索文档, 响应短暂缓存在 KV 中.
func (s *DocumentService) Search(ctx context.Context, tenant string,
	req *types.SearchDocumentsRequest,
) (*types.SearchDocumentsResponse, error) {
	req.Normalize()

	cacheKey := s.searchCacheKey(tenant, req)
	if s.kvClient != nil {
		c := cache.NewCache(s.kvClient)
		if cached, err := cache.Get[types.SearchDocumentsResponse](ctx, c, cacheKey); err == nil {
			return &cached, nil
		}
	}

	dbx := s.dbClient.GetDB().WithContext(ctx).Model(&model.Document{}).
		Where("tenant = ?", tenant)
	dbx = filter.ApplyCriteria(dbx, req.Criteria, documentColumns)
	dbx = filter.ApplySearch(dbx, req.Search, documentSearchColumns)

	var total int64
	if err := dbx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count documents: %w", err)
	}

	dbx = filter.ApplySort(dbx, req.Sort, documentColumns)
	if len(req.Sort) == 0 {
		dbx = dbx.Order("last_modified DESC")
	}

	var rows []model.Document
	if err := dbx.Offset(req.Offset()).Limit(req.PageSize).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("search documents: %w", err)
	}

	docs := make([]types.DocumentResponse, 0, len(rows))
	for i := range rows {
		docs = append(docs, *documentToResponse(&rows[i]))
	}

	resp := &types.SearchDocumentsResponse{
		Total:     total,
		Page:      req.Page,
		Size:      req.PageSize,
		Documents: docs,
	}

	if s.kvClient != nil {
		c := cache.NewCache(s.kvClient)
		_ = cache.Set(ctx, c, cacheKey, *resp, searchCacheTTL)
	}

	return resp, nil
}

// ListByPerformance 列出挂在某剧目下的全部文档.
func (s *DocumentService) ListByPerformance(ctx context.Context, tenant string,
	performanceID uint, p types.Pagination,
) (*types.SearchDocumentsResponse, error) {
	p.Normalize()

	dbx := s.dbClient.GetDB().WithContext(ctx).Model(&model.Document{}).
		Where("tenant = ? AND performance_id = ?", tenant, performanceID)

	var total int64
	if err := dbx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count performance documents: %w", err)
	}

	var rows []model.Document
	if err := dbx.Order("last_modified DESC").
		Offset(p.Offset()).Limit(p.PageSize).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list performance documents: %w", err)
	}

	docs := make([]types.DocumentResponse, 0, len(rows))
	for i := range rows {
		docs = append(docs, *documentToResponse(&rows[i]))
	}

	return &types.SearchDocumentsResponse{
		Total:     total,
		Page:      p.Page,
		Size:      p.PageSize,
		Documents: docs,
	}, nil
}

// Delete 软删除文档 (移入回收站), 对象本体保留.
func (s *DocumentService) Delete(ctx context.Context, tenant string, id uint) error {
	doc, err := s.find(ctx, tenant, id)
	if err != nil {
		return err
	}

	if err := s.dbClient.GetDB().WithContext(ctx).Delete(doc).Error; err != nil {
		return fmt.Errorf("trash document: %w", err)
	}

	s.publishTrashed(doc, tenant)

	return nil
}

// PresignedGetURL 生成预签名 GET URL 并发出访问事件.
func (s *DocumentService) PresignedGetURL(ctx context.Context, tenant string, id uint) (*types.DocumentURLResponse, error) {
	doc, err := s.find(ctx, tenant, id)
	if err != nil {
		return nil, err
	}

	url, err := s.s3Client.PresignedGetObject(ctx, doc.Bucket, doc.ObjectKey, DefaultPresignedOpTimeout, nil)
	if err != nil {
		return nil, fmt.Errorf("presign get for %s: %w", doc.ObjectKey, err)
	}

	s.publishAccessed(doc, "download", "", tenant)

	return &types.DocumentURLResponse{
		GetURL:    url.String(),
		ExpiresIn: int(DefaultPresignedOpTimeout.Seconds()),
	}, nil
}

// SyncObjectMeta 用对象存储中的真实元数据回填文档行 (大小/ETag/最后修改时间).
// 预签名上传不会经过服务端, 因此由定时任务定期对账. 返回更新的行数.
func (s *DocumentService) SyncObjectMeta(ctx context.Context) (int, error) {
	if s.s3Client == nil {
		return 0, fmt.Errorf("s3 client not initialized")
	}

	bucket := s.s3Client.Bucket()
	dbx := s.dbClient.GetDB().WithContext(ctx)
	updated := 0

	for obj := range s.s3Client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return updated, fmt.Errorf("list objects: %w", obj.Err)
		}

		tx := dbx.Model(&model.Document{}).
			Where("object_key = ? AND (size <> ? OR etag <> ?)", obj.Key, obj.Size, obj.ETag).
			Updates(map[string]any{
				"size":          obj.Size,
				"etag":          obj.ETag,
				"last_modified": obj.LastModified,
			})
		if tx.Error != nil {
			slog.Logger().Warn().Err(tx.Error).Str("object_key", obj.Key).Msg("sync object meta failed")
			continue
		}

		updated += int(tx.RowsAffected)
	}

	return updated, nil
}

func (s *DocumentService) find(ctx context.Context, tenant string, id uint) (*model.Document, error) {
	var doc model.Document
	if err := s.dbClient.GetDB().WithContext(ctx).
		Where("tenant = ? AND id = ?", tenant, id).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("document %d not found", id)
		}

		return nil, fmt.Errorf("query document: %w", err)
	}

	return &doc, nil
}

func (s *DocumentService) searchCacheKey(tenant string, req *types.SearchDocumentsRequest) string {
	raw, _ := sonic.Marshal(req)
	return fmt.Sprintf("search:documents:%s:%x", tenant, xxhash.Sum64(raw))
}

func (s *DocumentService) objectRef(doc *model.Document) queue.ObjectRef {
	return queue.ObjectRef{
		Bucket:      doc.Bucket,
		ObjectKey:   doc.ObjectKey,
		ETag:        doc.ETag,
		Size:        doc.Size,
		ContentType: doc.ContentType,
		Tags:        decodeTags(doc.TagsJSON),
	}
}

func (s *DocumentService) publishStored(doc *model.Document) {
	if s.mqClient == nil || s.mqClient.Publisher() == nil {
		return
	}

	payload := queue.DocumentStoredPayload{
		Object:     s.objectRef(doc),
		DocumentID: doc.ID,
		FileName:   doc.FileName,
		UploadedBy: doc.UploadedBy,
	}
	if doc.PerformanceID != nil {
		payload.PerformanceID = *doc.PerformanceID
	}

	if err := queue.PublishDocumentStored(s.mqClient.Publisher(), payload,
		queue.WithProducer("document-service")); err != nil {
		slog.Logger().Warn().Err(err).Str("object_key", doc.ObjectKey).Msg("publish document stored failed")
	}
}

func (s *DocumentService) publishAccessed(doc *model.Document, mode, viewerKind, by string) {
	if s.mqClient == nil || s.mqClient.Publisher() == nil {
		return
	}

	err := queue.PublishDocumentAccessed(s.mqClient.Publisher(), queue.DocumentAccessedPayload{
		Object:     s.objectRef(doc),
		DocumentID: doc.ID,
		Mode:       mode,
		ViewerKind: viewerKind,
		AccessedBy: by,
	}, queue.WithProducer("document-service"))
	if err != nil {
		slog.Logger().Warn().Err(err).Str("object_key", doc.ObjectKey).Msg("publish document accessed failed")
	}
}

func (s *DocumentService) publishTrashed(doc *model.Document, by string) {
	if s.mqClient == nil || s.mqClient.Publisher() == nil {
		return
	}

	err := queue.PublishDocumentTrashed(s.mqClient.Publisher(), queue.DocumentTrashedPayload{
		Object:     s.objectRef(doc),
		DocumentID: doc.ID,
		TrashedBy:  by,
	}, queue.WithProducer("document-service"))
	if err != nil {
		slog.Logger().Warn().Err(err).Str("object_key", doc.ObjectKey).Msg("publish document trashed failed")
	}
}

func documentToResponse(doc *model.Document) *types.DocumentResponse {
	return &types.DocumentResponse{
		ID:            doc.ID,
		ObjectKey:     doc.ObjectKey,
		FileName:      doc.FileName,
		Size:          doc.Size,
		ContentType:   doc.ContentType,
		PerformanceID: doc.PerformanceID,
		Category:      doc.Category,
		Description:   doc.Description,
		Tags:          decodeTags(doc.TagsJSON),
		UploadedBy:    doc.UploadedBy,
		LastModified:  doc.LastModified,
	}
}
