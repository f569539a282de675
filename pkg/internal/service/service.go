// Package service 实现业务逻辑层, 按请求构造, 依赖从 context 注入的存储管理器.
package service

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
)

const (
	// DefaultPresignedOpTimeout 默认预签名操作超时时间.
	DefaultPresignedOpTimeout = 15 * time.Minute

	// searchCacheTTL 搜索响应的 KV 缓存时长.
	searchCacheTTL = 60 * time.Second
)

// encodeTags 将标签序列化为 JSON 文本存储.
func encodeTags(tags map[string]string) string {
	if len(tags) == 0 {
		return ""
	}

	data, err := sonic.Marshal(tags)
	if err != nil {
		return ""
	}

	return string(data)
}

// decodeTags 反序列化标签; 损坏的数据返回 nil.
func decodeTags(raw string) map[string]string {
	if raw == "" {
		return nil
	}

	var tags map[string]string
	if err := sonic.Unmarshal([]byte(raw), &tags); err != nil {
		return nil
	}

	return tags
}

// buildObjectKey 构建对象存储路径. 放在 service 层便于未来统一策略（如目录分桶、版本号等）.
func buildObjectKey(tenant, fileName string) string {
	datePath := time.Now().UTC().Format("2006/01") // 只到月，避免目录过深

	return fmt.Sprintf("%s/%s/%s", tenant, datePath, fileName)
}
