package handler

import (
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/aadarsh726/smart-life/internal/infrastructure/mlservice"
	"github.com/aadarsh726/smart-life/pkg/httpcontext"
)

// MLHandler proxies prediction requests to the external ML service. Bodies
// and upstream status codes pass through verbatim in both directions; the only
// local behavior is the 503 on transport failure, never a fabricated result.
type MLHandler struct {
	baseHandler
	client *mlservice.Client
}

func NewMLHandler(client *mlservice.Client, adapter *httpcontext.Adapter, logger *zap.Logger) *MLHandler {
	return &MLHandler{
		baseHandler: newBaseHandler(adapter, logger),
		client:      client,
	}
}

// @Summary Productivity prediction
// @Tags ml
// @Router /api/ml/predict-productivity [post]
func (h *MLHandler) PredictProductivity(ctx *fasthttp.RequestCtx) {
	h.proxy(ctx, mlservice.PathProductivity)
}

// @Summary Task completion probability
// @Tags ml
// @Router /api/ml/predict-task-completion [post]
func (h *MLHandler) PredictTaskCompletion(ctx *fasthttp.RequestCtx) {
	h.proxy(ctx, mlservice.PathTaskCompletion)
}

// @Summary AI optimized schedule
// @Tags ml
// @Router /api/ml/optimize-schedule [post]
func (h *MLHandler) OptimizeSchedule(ctx *fasthttp.RequestCtx) {
	h.proxy(ctx, mlservice.PathSchedule)
}

func (h *MLHandler) proxy(ctx *fasthttp.RequestCtx, path string) {
	if userID := h.userID(ctx); userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	status, body, err := h.client.Forward(stdCtx, path, ctx.PostBody())
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
