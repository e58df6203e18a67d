package handle

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mshahid/portfolio-server/pkg/internal/service"
	"github.com/mshahid/portfolio-server/pkg/internal/types"
	nlog "github.com/mshahid/portfolio-server/pkg/log"
)

// cvFormField 上传表单中的文件字段名.
const cvFormField = "cv"

// GetCV 获取当前简历信息.
//
//	@Summary		获取当前简历
//	@Description	返回当前生效的简历元信息（ID、访问 URL、原始文件名）
//	@Tags			简历
//	@Produce		json
//	@Success		200	{object}	types.Response	"简历信息"
//	@Failure		404	{object}	types.Response	"尚未上传简历"
//	@Failure		500	{object}	types.Response	"服务器内部错误"
//	@Router			/api/v1/cv [get]
func GetCV(c *gin.Context) {
	svc := service.NewCVService(c.Request.Context())

	info, err := svc.GetCurrent(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.OK(info))
}

// UploadCV 上传并替换简历.
//
//	@Summary		上传简历
//	@Description	接收 multipart 表单中的 cv 文件，替换当前简历（同一时刻至多一份）
//	@Tags			简历
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			cv	formData	file			true	"简历文件（pdf/doc/docx）"
//	@Success		201	{object}	types.Response	"新简历信息"
//	@Failure		400	{object}	types.Response	"缺少文件、类型不支持或超出大小限制"
//	@Failure		500	{object}	types.Response	"服务器内部错误"
//	@Security		AdminAuth
//	@Router			/api/v1/cv/upload [post]
func UploadCV(c *gin.Context) {
	l := nlog.Logger()

	fh, err := c.FormFile(cvFormField)
	if err != nil {
		l.Warn().Err(err).Msg("missing cv form file")
		c.JSON(http.StatusBadRequest, types.Fail("missing form file \""+cvFormField+"\""))

		return
	}

	f, err := fh.Open()
	if err != nil {
		l.Error().Err(err).Msg("open uploaded cv failed")
		c.JSON(http.StatusInternalServerError, types.Fail("read uploaded file failed"))

		return
	}

	defer func() { _ = f.Close() }()

	svc := service.NewCVService(c.Request.Context())

	record, err := svc.Upload(c.Request.Context(), &service.UploadInput{
		OriginalName: fh.Filename,
		MimeType:     fh.Header.Get("Content-Type"),
		Size:         fh.Size,
		Reader:       f,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.OK(record))
}

// DownloadCV 按 ID 下载简历文件.
//
//	@Summary		下载简历
//	@Description	以附件形式返回指定简历的文件流
//	@Tags			简历
//	@Produce		application/octet-stream
//	@Param			id	path		string			true	"简历记录 ID"
//	@Success		200	{file}		file			"简历文件流"
//	@Failure		404	{object}	types.Response	"简历不存在或文件不可用"
//	@Failure		500	{object}	types.Response	"服务器内部错误"
//	@Router			/api/v1/cv/{id}/download [get]
func DownloadCV(c *gin.Context) {
	svc := service.NewCVService(c.Request.Context())

	out, err := svc.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	defer func() { _ = out.Reader.Close() }()

	contentType := out.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Type", contentType)

	if out.Size > 0 {
		c.Header("Content-Length", strconv.FormatInt(out.Size, 10))
	}

	c.Header("Content-Disposition", "attachment; filename=\""+sanitizeFileName(out.OriginalName)+"\"")

	if _, err := io.Copy(c.Writer, out.Reader); err != nil {
		nlog.Logger().Error().Err(err).Msg("stream cv to client failed")
	}
}

// DeleteCV 按 ID 删除简历.
//
//	@Summary		删除简历
//	@Description	删除简历记录并移除对应的存储对象
//	@Tags			简历
//	@Produce		json
//	@Param			id	path		string			true	"简历记录 ID"
//	@Success		200	{object}	types.Response	"删除成功"
//	@Failure		404	{object}	types.Response	"简历不存在"
//	@Failure		500	{object}	types.Response	"服务器内部错误"
//	@Security		AdminAuth
//	@Router			/api/v1/cv/{id} [delete]
func DeleteCV(c *gin.Context) {
	svc := service.NewCVService(c.Request.Context())

	if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.OKMessage("cv deleted"))
}

// sanitizeFileName 转义下载文件名中的控制与分隔字符.
func sanitizeFileName(s string) string {
	if s == "" {
		return "cv"
	}

	replacer := strings.NewReplacer("\\", "_", "\"", "_", ";", "_", "\n", "_", "\r", "_")

	return replacer.Replace(s)
}
