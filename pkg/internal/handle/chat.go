package handle

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/mshahid/portfolio-server/pkg/ai"
	"github.com/mshahid/portfolio-server/pkg/configs"
	"github.com/mshahid/portfolio-server/pkg/internal/types"
	nlog "github.com/mshahid/portfolio-server/pkg/log"
	"github.com/mshahid/portfolio-server/pkg/rule"
)

// assistant 懒加载的站点助手，进程内共享.
var assistant = sync.OnceValue(func() *ai.Composite {
	return ai.NewComposite(configs.GetConfig().AI)
})

// Chat 站点助手对话.
//
//	@Summary		助手对话
//	@Description	接收访客消息，优先调用远端推理服务，失败时回退到基于档案的关键词应答，始终返回非空回复
//	@Tags			助手
//	@Accept			json
//	@Produce		json
//	@Param			req	body		types.ChatRequest	true	"对话请求"
//	@Success		200	{object}	types.Response		"助手回复"
//	@Failure		400	{object}	types.Response		"请求参数错误"
//	@Router			/api/v1/chat [post]
func Chat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.Fail(err.Error()))
		return
	}

	if err := rule.ValidateStruct(&req); err != nil {
		respondError(c, err)
		return
	}

	reply, err := assistant().Generate(c.Request.Context(), req.Message, req.Context)
	if err != nil {
		// 兜底应答不依赖外部服务，理论上不会到这里
		nlog.Logger().Error().Err(err).Msg("assistant generate failed")
		reply = "Sorry, I can't answer that right now. Please try again later."
	}

	c.JSON(http.StatusOK, types.OK(types.ChatResponse{Reply: reply}))
}
