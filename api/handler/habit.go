package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/aadarsh726/smart-life/api/transport"
	"github.com/aadarsh726/smart-life/domain"
	"github.com/aadarsh726/smart-life/pkg/httpcontext"
	habitUC "github.com/aadarsh726/smart-life/usecase/habit"
)

type HabitHandler struct {
	baseHandler
	uc *habitUC.UseCase
}

func NewHabitHandler(uc *habitUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *HabitHandler {
	return &HabitHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List habits
// @Tags habits
// @Router /api/habits [get]
func (h *HabitHandler) GetHabits(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	habits, err := h.uc.ListHabits(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, habits)
}

// @Summary Create habit
// @Tags habits
// @Router /api/habits [post]
func (h *HabitHandler) CreateHabit(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.HabitCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateHabit(stdCtx, &domain.Habit{
		UserID:    userID,
		Title:     req.Title,
		Frequency: req.Frequency,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Check in a habit for today
// @Tags habits
// @Router /api/habits/{id}/checkin [post]
func (h *HabitHandler) CheckIn(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing habit id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	habit, err := h.uc.CheckIn(stdCtx, userID, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, habit)
}
