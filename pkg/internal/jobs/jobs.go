// Package jobs 注册后台定时任务: 回收站清理、对象元数据对账与排期提醒.
package jobs

import (
	"context"
	"time"

	ctxPkg "github.com/yeisme/stagevault/pkg/context"
	"github.com/yeisme/stagevault/pkg/internal/service"
	"github.com/yeisme/stagevault/pkg/internal/storage"
	slog "github.com/yeisme/stagevault/pkg/log"
	"github.com/yeisme/stagevault/pkg/scheduler"
)

// 任务名称, 也是调度器 API 中的标识.
const (
	JobTrashAutoClean = "trash-auto-clean"
	JobSyncObjectMeta = "sync-object-meta"
	JobScheduleRemind = "schedule-reminders"
)

const (
	// trashRetention 回收站保留期, 超期的软删除文档被硬删.
	trashRetention = 30 * 24 * time.Hour
	// reminderWindow 提前多久发出排期提醒.
	reminderWindow = 24 * time.Hour

	cronDaily  = "0 3 * * *" // 每天 03:00
	cronHourly = "0 * * * *" // 每小时整点
)

// Register 把全部定时任务挂到调度器上.
// 任务通过携带存储管理器的 context 构造各自的 service.
func Register(sched *scheduler.Scheduler, mgr *storage.Manager) error {
	base := ctxPkg.WithStorageManager(context.Background(), mgr)

	if err := sched.AddCron(JobTrashAutoClean, cronDaily, runTrashAutoClean, base); err != nil {
		return err
	}

	if err := sched.AddCron(JobSyncObjectMeta, cronDaily, runSyncObjectMeta, base); err != nil {
		return err
	}

	return sched.AddCron(JobScheduleRemind, cronHourly, runScheduleReminders, base)
}

func runTrashAutoClean(ctx context.Context) {
	svc := service.NewTrashService(ctx)

	purged, err := svc.AutoClean(ctx, time.Now().Add(-trashRetention))
	if err != nil {
		slog.Logger().Error().Err(err).Msg("trash auto clean failed")
		return
	}

	if purged > 0 {
		slog.Logger().Info().Int("purged", purged).Msg("trash auto clean done")
	}
}

func runSyncObjectMeta(ctx context.Context) {
	svc := service.NewDocumentService(ctx)

	updated, err := svc.SyncObjectMeta(ctx)
	if err != nil {
		slog.Logger().Error().Err(err).Msg("sync object meta failed")
		return
	}

	if updated > 0 {
		slog.Logger().Info().Int("updated", updated).Msg("object meta synced")
	}
}

func runScheduleReminders(ctx context.Context) {
	svc := service.NewScheduleService(ctx)

	sent, err := svc.PublishDueReminders(ctx, reminderWindow)
	if err != nil {
		slog.Logger().Error().Err(err).Msg("publish schedule reminders failed")
		return
	}

	if sent > 0 {
		slog.Logger().Info().Int("sent", sent).Msg("schedule reminders published")
	}
}
