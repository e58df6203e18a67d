package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mshahid/portfolio-server/pkg/internal/service"
	"github.com/mshahid/portfolio-server/pkg/internal/types"
	"github.com/mshahid/portfolio-server/pkg/log"
)

// SubmitContact 接收联系表单提交.
//
//	@Summary		提交联系消息
//	@Description	接收访客的联系表单，校验后落库并触发通知旁路
//	@Tags			联系
//	@Accept			json
//	@Produce		json
//	@Param			message	body		types.SubmitContactRequest	true	"联系表单内容"
//	@Success		201		{object}	types.Response				"提交成功的确认信息"
//	@Failure		400		{object}	types.Response				"请求参数错误"
//	@Failure		500		{object}	types.Response				"服务器内部错误"
//	@Router			/api/v1/contact [post]
func SubmitContact(c *gin.Context) {
	var req types.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Logger().Warn().Err(err).Msg("invalid contact request")
		c.JSON(http.StatusBadRequest, types.Fail(err.Error()))

		return
	}

	svc := service.NewContactService(c.Request.Context())

	// 响应只回确认信息，落库的记录（含 IP 等）不回给访客
	if _, err := svc.Submit(c.Request.Context(), &req, c.ClientIP(), c.Request.UserAgent()); err != nil {
		log.Logger().Warn().Err(err).Msg("contact submit failed")
		respondError(c, err)

		return
	}

	c.JSON(http.StatusCreated, types.OKMessage("message received, thank you"))
}
