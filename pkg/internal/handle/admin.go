package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mshahid/portfolio-server/pkg/internal/service"
	"github.com/mshahid/portfolio-server/pkg/internal/types"
)

// ListMessages 分页列出留言.
//
//	@Summary		留言列表
//	@Description	按时间倒序分页返回留言，支持状态过滤与关键字搜索
//	@Tags			留言管理
//	@Produce		json
//	@Param			page	query		int				false	"页码，默认 1"
//	@Param			limit	query		int				false	"每页条数，默认 20"
//	@Param			status	query		string			false	"状态过滤 new/read/replied/archived"
//	@Param			search	query		string			false	"在姓名/邮箱/主题/正文中搜索"
//	@Success		200		{object}	types.Response	"留言列表与分页信息"
//	@Failure		400		{object}	types.Response	"参数错误"
//	@Failure		500		{object}	types.Response	"服务器内部错误"
//	@Security		AdminAuth
//	@Router			/api/v1/admin/messages [get]
func ListMessages(c *gin.Context) {
	var q types.ListMessagesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, types.Fail(err.Error()))
		return
	}

	svc := service.NewAdminService(c.Request.Context())

	messages, pagination, err := svc.ListMessages(c.Request.Context(), &q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.Paginated(messages, pagination))
}

// GetMessage 查看单条留言.
//
//	@Summary		留言详情
//	@Description	按 ID 返回单条留言
//	@Tags			留言管理
//	@Produce		json
//	@Param			id	path		int				true	"留言 ID"
//	@Success		200	{object}	types.Response	"留言详情"
//	@Failure		400	{object}	types.Response	"ID 非法"
//	@Failure		404	{object}	types.Response	"留言不存在"
//	@Security		AdminAuth
//	@Router			/api/v1/admin/messages/{id} [get]
func GetMessage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	svc := service.NewAdminService(c.Request.Context())

	msg, err := svc.GetMessage(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.OK(msg))
}

// UpdateMessageStatus 修改留言状态.
//
//	@Summary		更新留言状态
//	@Description	将留言状态置为 new/read/replied/archived 之一
//	@Tags			留言管理
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"留言 ID"
//	@Param			status	body		types.UpdateStatusRequest	true	"目标状态"
//	@Success		200		{object}	types.Response				"更新后的留言"
//	@Failure		400		{object}	types.Response				"状态非法"
//	@Failure		404		{object}	types.Response				"留言不存在"
//	@Security		AdminAuth
//	@Router			/api/v1/admin/messages/{id}/status [patch]
func UpdateMessageStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req types.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.Fail(err.Error()))
		return
	}

	svc := service.NewAdminService(c.Request.Context())

	msg, err := svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.OK(msg))
}

// DeleteMessage 删除留言.
//
//	@Summary		删除留言
//	@Description	按 ID 删除留言
//	@Tags			留言管理
//	@Produce		json
//	@Param			id	path		int				true	"留言 ID"
//	@Success		200	{object}	types.Response	"删除成功"
//	@Failure		400	{object}	types.Response	"ID 非法"
//	@Failure		404	{object}	types.Response	"留言不存在"
//	@Security		AdminAuth
//	@Router			/api/v1/admin/messages/{id} [delete]
func DeleteMessage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	svc := service.NewAdminService(c.Request.Context())

	if err := svc.DeleteMessage(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.OKMessage("message deleted"))
}

// MessageStats 留言统计.
//
//	@Summary		留言统计
//	@Description	返回留言总数与按状态的计数
//	@Tags			留言管理
//	@Produce		json
//	@Success		200	{object}	types.Response	"统计数据"
//	@Failure		500	{object}	types.Response	"服务器内部错误"
//	@Security		AdminAuth
//	@Router			/api/v1/admin/messages/stats [get]
func MessageStats(c *gin.Context) {
	svc := service.NewAdminService(c.Request.Context())

	stats, err := svc.MessageStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.OK(stats))
}
