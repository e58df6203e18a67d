// Package service 实现业务逻辑层，不处理 HTTP 细节.
//
// 每个服务通过 New 系列构造函数从 context 中取出存储客户端
// （由 StorageMiddleware 注入），服务方法返回领域错误，
// 由 handle 层映射为 HTTP 状态码.
package service

import (
	"errors"
)

// 领域错误，handle 层据此映射状态码.
var (
	// ErrNotFound 目标资源不存在.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidStatus 非法的消息状态值.
	ErrInvalidStatus = errors.New("invalid status value")

	// ErrInvalidPage 页面名不在允许的枚举中.
	ErrInvalidPage = errors.New("invalid page name")

	// ErrInvalidDate 日期参数不是 YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")

	// ErrFileTooLarge 上传文件超出大小上限.
	ErrFileTooLarge = errors.New("file exceeds size limit")

	// ErrUnsupportedFileType 上传文件扩展名不被允许.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrNoCV 当前没有任何简历记录.
	ErrNoCV = errors.New("no cv uploaded")

	// ErrCVFileMissing 简历记录存在但对象存储中的文件缺失（完整性破坏）.
	ErrCVFileMissing = errors.New("cv file missing from storage")
)

// 列表默认值.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 200

	DefaultSliceCapacity = 16
)
