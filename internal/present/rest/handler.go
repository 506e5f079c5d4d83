package rest

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/lafoolehh-stack/SomaliPin-V1/internal/domain"
	"github.com/lafoolehh-stack/SomaliPin-V1/internal/present/rest/middleware"
	"github.com/lafoolehh-stack/SomaliPin-V1/internal/present/rest/presenter"
	"github.com/lafoolehh-stack/SomaliPin-V1/internal/service"
	"github.com/lafoolehh-stack/SomaliPin-V1/internal/usecase"
)

type Handler struct {
	directory *usecase.DirectoryUsecase
	search    *usecase.SearchUsecase
	auth      *service.AuthService
	mode      string
}

func NewHandler(
	directory *usecase.DirectoryUsecase,
	search *usecase.SearchUsecase,
	auth *service.AuthService,
	mode string,
) *Handler {
	return &Handler{
		directory: directory,
		search:    search,
		auth:      auth,
		mode:      mode,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo, admin *middleware.AdminMiddleware) {
	e.GET("/api/v1/status", h.handleStatus)
	e.GET("/api/v1/profiles", h.handleProfiles)
	e.GET("/api/v1/profiles/:id", h.handleProfile)
	e.GET("/api/v1/search", h.handleSearch)
	e.POST("/api/v1/admin/login", h.handleAdminLogin)

	g := e.Group("/api/v1/dossiers", admin.RequireAdmin)
	g.POST("", h.handleCreate)
	g.PUT("/:id", h.handleUpdate)
	g.DELETE("/:id", h.handleDelete)
	g.POST("/image", h.handleUploadImage)
}

func (h *Handler) handleStatus(c echo.Context) error {
	return presenter.OK(c, echo.Map{
		"mode":       h.mode,
		"configured": h.mode != "demo",
	})
}

func (h *Handler) handleProfiles(c echo.Context) error {
	ctx := c.Request().Context()
	lang := domain.ParseLanguage(c.QueryParam("lang"))

	return presenter.OK(c, h.directory.FetchAll(ctx, lang))
}

func (h *Handler) handleProfile(c echo.Context) error {
	ctx := c.Request().Context()
	lang := domain.ParseLanguage(c.QueryParam("lang"))

	profile, err := h.directory.Get(ctx, c.Param("id"), lang)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "profile not found")
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, profile)
}

func (h *Handler) handleSearch(c echo.Context) error {
	ctx := c.Request().Context()

	query := c.QueryParam("q")
	if query == "" {
		return presenter.BadRequestMessage(c, "q parameter is required")
	}
	lang := domain.ParseLanguage(c.QueryParam("lang"))

	return presenter.OK(c, h.search.Resolve(ctx, query, lang))
}

type loginRequest struct {
	Secret string `json:"secret"`
}

func (h *Handler) handleAdminLogin(c echo.Context) error {
	ctx := c.Request().Context()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	result, err := h.auth.Authenticate(ctx, req.Secret)
	if err != nil {
		return presenter.Unauthorized(c, "invalid credentials")
	}
	return presenter.OK(c, echo.Map{"status": "ok", "role": result.Role})
}

func (h *Handler) handleCreate(c echo.Context) error {
	return h.save(c, "")
}

func (h *Handler) handleUpdate(c echo.Context) error {
	return h.save(c, c.Param("id"))
}

func (h *Handler) save(c echo.Context, id string) error {
	ctx := c.Request().Context()
	lang := domain.ParseLanguage(c.QueryParam("lang"))

	var form domain.DossierEdit
	if err := c.Bind(&form); err != nil {
		return presenter.BadRequest(c, err)
	}
	if id != "" {
		form.ID = id
	}

	if err := h.directory.Save(ctx, form, lang); err != nil {
		var verr domain.ValidationError
		if errors.As(err, &verr) {
			return presenter.BadRequest(c, err)
		}
		// Backend failures reach the admin verbatim; they operate the
		// data and need the raw message to diagnose.
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleDelete(c echo.Context) error {
	ctx := c.Request().Context()
	lang := domain.ParseLanguage(c.QueryParam("lang"))

	if err := h.directory.Delete(ctx, c.Param("id"), lang); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return presenter.NotFound(c, "dossier not found")
		}
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleUploadImage(c echo.Context) error {
	ctx := c.Request().Context()

	file, err := c.FormFile("file")
	if err != nil {
		return presenter.BadRequestMessage(c, "file is required")
	}

	src, err := file.Open()
	if err != nil {
		return presenter.InternalError(c, err)
	}
	defer src.Close()

	url, err := h.directory.UploadImage(ctx, file.Filename, file.Header.Get("Content-Type"), src)
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return presenter.OK(c, echo.Map{"url": url})
}
