package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/aadarsh726/smart-life/api/transport"
	"github.com/aadarsh726/smart-life/pkg/httpcontext"
	journalUC "github.com/aadarsh726/smart-life/usecase/journal"
)

type JournalHandler struct {
	baseHandler
	uc *journalUC.UseCase
}

func NewJournalHandler(uc *journalUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *JournalHandler {
	return &JournalHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List journal entries
// @Tags journal
// @Router /api/journal [get]
func (h *JournalHandler) GetEntries(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	entries, err := h.uc.ListEntries(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, entries)
}

// @Summary Create a journal entry with sentiment analysis
// @Tags journal
// @Router /api/journal [post]
func (h *JournalHandler) CreateEntry(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.JournalCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	entry, err := h.uc.CreateEntry(stdCtx, userID, req.Content)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, entry)
}
