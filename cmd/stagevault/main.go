// Package main 启动应用程序
package main

import "github.com/yeisme/stagevault/pkg/cmd"

//	@title			StageVault API
//	@version		1.0
//	@description	StageVault 是一个剧院运营管理服务，提供库存管理、剧目与技术护照、排期提醒、文档存储与在线预览等功能。

//	@license.name	MIT
//	@license.url	https://opensource.org/license/mit/

//	@contact.name	yeisme
//	@contact.email	yefun2004@gmail.com.

func main() {
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
