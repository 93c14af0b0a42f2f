package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/aadarsh726/smart-life/api/transport"
	"github.com/aadarsh726/smart-life/domain"
	"github.com/aadarsh726/smart-life/pkg/httpcontext"
	"github.com/aadarsh726/smart-life/repository"
	activityUC "github.com/aadarsh726/smart-life/usecase/activity"
)

type ActivityHandler struct {
	baseHandler
	uc *activityUC.UseCase
}

func NewActivityHandler(uc *activityUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List activities, optionally filtered by type
// @Tags activities
// @Router /api/activities [get]
func (h *ActivityHandler) GetActivities(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	filter := repository.ActivityFilter{
		UserID: userID,
		Type:   string(ctx.QueryArgs().Peek("type")),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	activities, err := h.uc.ListActivities(stdCtx, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, activities)
}

// @Summary Log an activity
// @Tags activities
// @Router /api/activities [post]
func (h *ActivityHandler) LogActivity(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.ActivityCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	activity := &domain.ActivityLog{
		UserID: userID,
		Type:   req.Type,
		Data:   req.Data,
	}
	if req.Date != "" {
		date, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			h.respondInvalid(ctx, "date must be RFC3339")
			return
		}
		activity.Date = date
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.LogActivity(stdCtx, activity)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}
