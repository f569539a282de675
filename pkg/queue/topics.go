// Package queue 定义消息主题常量与分组，供发布/订阅使用.
package queue

// 主题命名规范：sv.<域>.<动作>[.<状态>]，尽量稳定且向后兼容.
// 域：document(演出文档)、inventory(道具库存)、schedule(排期)、passport(技术护照)、preset(筛选预设)
// 动作：存储相关(stored/deleted/restored)、变更相关(changed/updated)
// 状态：请求(requested)、完成(ed)、失败(failed)

const (
	// 演出文档领域.
	TopicDocumentStored   = "sv.document.stored"   // 文档已写入对象存储且元数据入库
	TopicDocumentAccessed = "sv.document.accessed" // 文档被预览或下载（用于热点统计）
	TopicDocumentTrashed  = "sv.document.trashed"  // 文档移入回收站
	TopicDocumentRestored = "sv.document.restored" // 文档从回收站恢复
	TopicDocumentPurged   = "sv.document.purged"   // 文档被彻底删除（含对象存储清理）

	// 道具库存领域.
	TopicInventoryChanged  = "sv.inventory.changed"  // 库存条目创建/更新/删除
	TopicInventoryLowStock = "sv.inventory.lowstock" // 库存数量低于告警阈值

	// 排期领域.
	TopicScheduleChanged  = "sv.schedule.changed"  // 演出排期新增或调整
	TopicScheduleReminder = "sv.schedule.reminder" // 临近演出提醒（定时任务产出）

	// 技术护照领域.
	TopicPassportUpdated = "sv.passport.updated" // 演出技术护照内容更新

	// 筛选预设领域.
	TopicPresetSaved   = "sv.preset.saved"   // 用户保存筛选预设
	TopicPresetDeleted = "sv.preset.deleted" // 用户删除筛选预设
)

// 主题分组，用于批量操作或权限控制.
var (
	// 文档相关主题集合.
	DocumentTopics = []string{
		TopicDocumentStored, TopicDocumentAccessed, TopicDocumentTrashed,
		TopicDocumentRestored, TopicDocumentPurged,
	}

	// 库存相关主题集合.
	InventoryTopics = []string{
		TopicInventoryChanged, TopicInventoryLowStock,
	}

	// 排期相关主题集合.
	ScheduleTopics = []string{
		TopicScheduleChanged, TopicScheduleReminder,
	}

	// 预设相关主题集合.
	PresetTopics = []string{
		TopicPresetSaved, TopicPresetDeleted,
	}
)
