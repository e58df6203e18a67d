// Package main 启动应用程序
package main

import "github.com/mshahid/portfolio-server/pkg/cmd"

//	@title			Portfolio Server API
//	@version		1.0
//	@description	个人作品集网站后端，提供联系表单、浏览统计、简历管理与站点助手等接口。

//	@license.name	MIT
//	@license.url	https://opensource.org/license/mit/

//	@securityDefinitions.apikey	AdminAuth
//	@in							header
//	@name						password
//	@description				管理端共享密钥，随每次请求携带。

func main() {
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
