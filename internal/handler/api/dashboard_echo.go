package api

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"ChainPulse/internal/domain/models"
	"ChainPulse/internal/service/ratelimit"
	"ChainPulse/internal/services/charts"
	"ChainPulse/internal/usecase"
	xhttp "ChainPulse/pkg/http"
	xlogger "ChainPulse/pkg/logger"
)

// DashboardProvider is the use case behind the dashboard routes.
type DashboardProvider interface {
	Snapshot(ctx context.Context) (*usecase.Snapshot, error)
	Refresh(ctx context.Context) (*usecase.Snapshot, error)
	Figures(ctx context.Context, window int) ([]charts.Figure, error)
}

// DashboardEchoHandler serves the HTML dashboard and its JSON API.
type DashboardEchoHandler struct {
	logger       *xlogger.Logger
	dash         DashboardProvider
	limiter      *ratelimit.Limiter
	window       int
	liveInterval time.Duration
	page         *template.Template
}

func NewDashboardEchoHandler(logger *xlogger.Logger, dash DashboardProvider, limiter *ratelimit.Limiter, window int, liveInterval time.Duration) *DashboardEchoHandler {
	return &DashboardEchoHandler{
		logger:       logger,
		dash:         dash,
		limiter:      limiter,
		window:       window,
		liveInterval: liveInterval,
		page:         dashboardTemplate,
	}
}

func (h *DashboardEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Index)
	e.GET("/healthz", h.Health)
	e.GET("/ws", h.Live)

	g := e.Group("/api")
	g.GET("/report", h.Report)
	g.GET("/charts", h.Charts)
	g.GET("/series", h.Series)
	g.POST("/refresh", h.Refresh)
}

type pageData struct {
	Snapshot *usecase.Snapshot
	Figures  template.JS
	Columns  []string
	Error    string
	Live     bool
}

func (h *DashboardEchoHandler) Index(c echo.Context) error {
	snap, err := h.dash.Snapshot(c.Request().Context())
	if err != nil {
		h.logger.Error("dashboard snapshot error", xlogger.Error(err))
		status := http.StatusInternalServerError
		if models.IsDataError(err) {
			status = http.StatusUnprocessableEntity
		}
		return h.render(c, status, pageData{Error: err.Error()})
	}

	figs, err := json.Marshal(snap.Figures)
	if err != nil {
		return xhttp.AppErrorResponse(c, xhttp.InternalError("encode figures").WithError(err))
	}

	data := pageData{
		Snapshot: snap,
		Figures:  template.JS(figs),
		Columns:  models.RequiredFields(),
		Live:     h.liveInterval > 0,
	}
	return h.render(c, http.StatusOK, data)
}

func (h *DashboardEchoHandler) render(c echo.Context, status int, data pageData) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	if err := h.page.Execute(c.Response(), data); err != nil {
		h.logger.Error("dashboard render error", xlogger.Error(err))
		return err
	}
	return nil
}

func (h *DashboardEchoHandler) Report(c echo.Context) error {
	snap, err := h.dash.Snapshot(c.Request().Context())
	if err != nil {
		return h.fail(c, "report", err)
	}
	return xhttp.SuccessResponse(c, snap.Report)
}

func (h *DashboardEchoHandler) Charts(c echo.Context) error {
	req := &models.ChartsRequest{}
	if verr := xhttp.BindAndValidate(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	window := req.Window
	if window == 0 {
		window = h.window
	}

	figs, err := h.dash.Figures(c.Request().Context(), window)
	if err != nil {
		return h.fail(c, "charts", err)
	}
	return xhttp.SuccessResponse(c, figs)
}

func (h *DashboardEchoHandler) Series(c echo.Context) error {
	snap, err := h.dash.Snapshot(c.Request().Context())
	if err != nil {
		return h.fail(c, "series", err)
	}
	return xhttp.SuccessResponse(c, snap.Rows)
}

func (h *DashboardEchoHandler) Refresh(c echo.Context) error {
	if h.limiter != nil && !h.limiter.Allow(c.RealIP()) {
		return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError("refresh rate limit exceeded"))
	}

	snap, err := h.dash.Refresh(c.Request().Context())
	if err != nil {
		return h.fail(c, "refresh", err)
	}
	return xhttp.SuccessResponse(c, snap)
}

func (h *DashboardEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

// fail maps table problems to 422 ERR_DATA and everything else to 500.
func (h *DashboardEchoHandler) fail(c echo.Context, op string, err error) error {
	h.logger.Error(op+" usecase error", xlogger.Error(err))
	if models.IsDataError(err) {
		return xhttp.AppErrorResponse(c, xhttp.UnprocessableError("ERR_DATA", err.Error()).WithError(err))
	}
	if errors.Is(err, context.Canceled) {
		return xhttp.AppErrorResponse(c, xhttp.NewAppError("ERR_CANCELED", "", "request canceled", 499))
	}
	return xhttp.AppErrorResponse(c, xhttp.InternalError("internal error").WithError(err))
}
