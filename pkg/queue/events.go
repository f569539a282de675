package queue

import "github.com/ThreeDotsLabs/watermill/message"

// -------------------------- 基于业务封装 events --------------------------

// PublishDocumentStored 发布 sv.document.stored 事件。
// 用于将文档写入对象存储并同步元数据到数据库后，通知下游流程。
// 可通过可选项 opts 注入 TraceID、Producer 等头部信息。
func PublishDocumentStored(pub message.Publisher, payload DocumentStoredPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicDocumentStored, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicDocumentStored, msg)
}

// ParseDocumentStored 将 Watermill 消息解析为强类型 Envelope（DocumentStoredPayload）。
func ParseDocumentStored(msg *message.Message) (Message[DocumentStoredPayload], error) {
	return ParseWatermillMessage[DocumentStoredPayload](msg)
}

// PublishDocumentAccessed 发布 sv.document.accessed 事件，用于热点统计.
func PublishDocumentAccessed(pub message.Publisher, payload DocumentAccessedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicDocumentAccessed, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicDocumentAccessed, msg)
}

// PublishDocumentTrashed 发布 sv.document.trashed 事件.
func PublishDocumentTrashed(pub message.Publisher, payload DocumentTrashedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicDocumentTrashed, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicDocumentTrashed, msg)
}

// PublishDocumentRestored 发布 sv.document.restored 事件.
func PublishDocumentRestored(pub message.Publisher, payload DocumentRestoredPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicDocumentRestored, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicDocumentRestored, msg)
}

// PublishDocumentPurged 发布 sv.document.purged 事件.
func PublishDocumentPurged(pub message.Publisher, payload DocumentPurgedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicDocumentPurged, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicDocumentPurged, msg)
}

// PublishInventoryChanged 发布 sv.inventory.changed 事件.
func PublishInventoryChanged(pub message.Publisher, payload InventoryChangedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicInventoryChanged, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicInventoryChanged, msg)
}

// PublishInventoryLowStock 发布 sv.inventory.lowstock 事件.
func PublishInventoryLowStock(pub message.Publisher, payload InventoryLowStockPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicInventoryLowStock, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicInventoryLowStock, msg)
}

// PublishScheduleChanged 发布 sv.schedule.changed 事件.
func PublishScheduleChanged(pub message.Publisher, payload ScheduleChangedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicScheduleChanged, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicScheduleChanged, msg)
}

// PublishScheduleReminder 发布 sv.schedule.reminder 事件（定时任务产出）.
func PublishScheduleReminder(pub message.Publisher, payload ScheduleReminderPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicScheduleReminder, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicScheduleReminder, msg)
}

// PublishPassportUpdated 发布 sv.passport.updated 事件.
func PublishPassportUpdated(pub message.Publisher, payload PassportUpdatedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicPassportUpdated, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicPassportUpdated, msg)
}

// PublishPresetSaved 发布 sv.preset.saved 事件.
func PublishPresetSaved(pub message.Publisher, payload PresetSavedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicPresetSaved, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicPresetSaved, msg)
}

// PublishPresetDeleted 发布 sv.preset.deleted 事件.
func PublishPresetDeleted(pub message.Publisher, payload PresetDeletedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicPresetDeleted, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicPresetDeleted, msg)
}
