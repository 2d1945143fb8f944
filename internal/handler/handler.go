package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"library-catalog/internal/errs"
	"library-catalog/internal/model"
	md "library-catalog/pkg/middleware"
	"library-catalog/pkg/validate"
)

type Handler struct {
	catalogSvc CatalogService
	log        *zap.Logger
}

func New(catalogSvc CatalogService, log *zap.Logger) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/books", h.AddBook)
	api.GET("/books/:isbn", h.GetBook)
	api.PATCH("/books/:isbn", h.EditBook)
	api.DELETE("/books/:isbn", h.RemoveBook)
	api.GET("/books/:isbn/stats", h.BookStats)

	api.POST("/users", h.AddUser)
	api.GET("/users/:username", h.GetUser)
	api.PATCH("/users/:username", h.EditUser)
	api.DELETE("/users/:username", h.RemoveUser)
	api.GET("/users/:username/stats", h.UserStats)
	api.GET("/users/:username/recommendations", h.Recommend)

	api.POST("/checkout", h.CheckOut)
	api.POST("/return", h.ReturnBook)
	api.POST("/ratings", h.Rate)

	api.GET("/search", h.Find)
	api.GET("/sorted", h.SortBy)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps engine error kinds to statuses. Store errors surface their
// native message with a 500.
func httpError(err error) *echo.HTTPError {
	var dup *errs.DuplicateRatingError
	switch {
	case errors.Is(err, errs.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.As(err, &dup),
		errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrOutOfStock),
		errors.Is(err, errs.ErrNotBorrowed):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func (h *Handler) AddBook(c echo.Context) error {
	var book model.Book
	if err := c.Bind(&book); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(book); err != nil {
		return err
	}
	if err := h.catalogSvc.AddBook(c.Request().Context(), book); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *Handler) GetBook(c echo.Context) error {
	book, err := h.catalogSvc.GetBook(c.Request().Context(), c.Param("isbn"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) EditBook(c echo.Context) error {
	type Req struct {
		Field  string   `json:"field"`
		Values []string `json:"values"`
	}
	var req Req
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.catalogSvc.EditBook(c.Request().Context(), c.Param("isbn"), req.Field, req.Values); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) RemoveBook(c echo.Context) error {
	if err := h.catalogSvc.RemoveBook(c.Request().Context(), c.Param("isbn")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) BookStats(c echo.Context) error {
	stats, err := h.catalogSvc.BookStats(c.Request().Context(), c.Param("isbn"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) AddUser(c echo.Context) error {
	var user model.User
	if err := c.Bind(&user); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(user); err != nil {
		return err
	}
	if err := h.catalogSvc.AddUser(c.Request().Context(), user); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *Handler) GetUser(c echo.Context) error {
	user, err := h.catalogSvc.GetUser(c.Request().Context(), c.Param("username"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) EditUser(c echo.Context) error {
	type Req struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	var req Req
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.catalogSvc.EditUser(c.Request().Context(), c.Param("username"), req.Field, req.Value); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) RemoveUser(c echo.Context) error {
	if err := h.catalogSvc.RemoveUser(c.Request().Context(), c.Param("username")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) UserStats(c echo.Context) error {
	stats, err := h.catalogSvc.UserStats(c.Request().Context(), c.Param("username"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) Recommend(c echo.Context) error {
	books, err := h.catalogSvc.Recommend(c.Request().Context(), c.Param("username"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) CheckOut(c echo.Context) error {
	var req model.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.catalogSvc.CheckOut(c.Request().Context(), req.ISBN, req.Username); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) ReturnBook(c echo.Context) error {
	var req model.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.catalogSvc.ReturnBook(c.Request().Context(), req.ISBN, req.Username); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) Rate(c echo.Context) error {
	var req model.Rating
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.catalogSvc.Rate(c.Request().Context(), req.Username, req.ISBN, req.Score); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *Handler) Find(c echo.Context) error {
	ctx := c.Request().Context()
	field := c.QueryParam("field")
	values := c.QueryParams()["value"]
	switch model.Entity(c.QueryParam("entity")) {
	case model.EntityBook:
		books, err := h.catalogSvc.FindBooks(ctx, field, values)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, books)
	case model.EntityUser:
		if len(values) != 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "exactly one value is required")
		}
		users, err := h.catalogSvc.FindUsers(ctx, field, values[0])
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, users)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "entity must be book or user")
	}
}

func (h *Handler) SortBy(c echo.Context) error {
	ctx := c.Request().Context()
	field := c.QueryParam("field")
	switch model.Entity(c.QueryParam("entity")) {
	case model.EntityBook:
		books, err := h.catalogSvc.SortBooksBy(ctx, field)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, books)
	case model.EntityUser:
		users, err := h.catalogSvc.SortUsersBy(ctx, field)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, users)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "entity must be book or user")
	}
}
