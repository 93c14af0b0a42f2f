package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/aadarsh726/smart-life/api/transport"
	"github.com/aadarsh726/smart-life/pkg/httpcontext"
	chatUC "github.com/aadarsh726/smart-life/usecase/chat"
)

type ChatHandler struct {
	baseHandler
	uc *chatUC.UseCase
}

func NewChatHandler(uc *chatUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Rule-based assistant chat
// @Tags ai
// @Router /api/ai/chat [post]
func (h *ChatHandler) Chat(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.ChatRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	reply, err := h.uc.Chat(stdCtx, userID, req.Message)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.ChatResponse{Reply: reply})
}
