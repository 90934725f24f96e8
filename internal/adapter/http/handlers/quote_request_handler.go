package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/geovanereis/website-gsreistecnologia/internal/adapter/http/dto/request"
	response "github.com/geovanereis/website-gsreistecnologia/internal/adapter/http/dto/response"
	"github.com/geovanereis/website-gsreistecnologia/internal/usecase"
	"github.com/geovanereis/website-gsreistecnologia/internal/usecase/interfaces"
	"github.com/geovanereis/website-gsreistecnologia/pkg"

	"github.com/gin-gonic/gin"
)

// QuoteRequestHandler handles HTTP requests for quote-request submissions.

type QuoteRequestHandler struct {
	usecase usecase.IQuoteRequestUseCase
}

func NewQuoteRequestHandler(uc usecase.IQuoteRequestUseCase) *QuoteRequestHandler {
	return &QuoteRequestHandler{usecase: uc}
}

// CreateQuoteRequest accepts a form submission, validates it and persists
// the quote request.
//
// @Summary      Submit a quote request
// @Description  Validates and stores a service quote request from the site contact form.
// @Tags         quote-requests
// @Accept       json
// @Produce      json
// @Param        payload  body      request.QuoteRequestRequest  true  "Quote request form"
// @Success      201      {object}  response.APIResponse
// @Failure      400      {object}  response.APIResponse
// @Failure      500      {object}  response.APIResponse
// @Router       /quote-requests [post]
func (h *QuoteRequestHandler) CreateQuoteRequest(c *gin.Context) {
	var payload request.QuoteRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[quote][handler] malformed body err=%v", err)
		c.JSON(http.StatusBadRequest, response.ValidationFailed(nil))
		return
	}

	input := payload.ToInput()
	created, err := h.usecase.Create(c.Request.Context(), input)
	if err != nil {
		var invalid *usecase.ErrQuoteRequestInvalid
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, response.ValidationFailed(invalid.Fields))
			return
		}

		appErr := mapQuoteRequestError(err)
		log.Printf("[quote][handler] create failed code=%s err=%v", appErr.Code, err)
		c.JSON(appErr.HTTPStatus, response.InternalError())
		return
	}

	c.JSON(http.StatusCreated, response.QuoteRequestCreated(created))
}

// ListQuoteRequests returns every stored quote request, newest first. The
// route is not registered yet: it must stay off the public router until the
// admin area gets authentication.
func (h *QuoteRequestHandler) ListQuoteRequests(c *gin.Context) {
	quotes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapQuoteRequestError(err)
		log.Printf("[quote][handler] list failed code=%s err=%v", appErr.Code, err)
		c.JSON(appErr.HTTPStatus, response.InternalError())
		return
	}

	c.JSON(http.StatusOK, response.APIResponse{
		Success: true,
		Data:    response.FromQuoteRequests(quotes),
		Message: "OK",
	})
}

func mapQuoteRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrStorageUnavailable):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", response.MsgInternalError, err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", response.MsgInternalError, err, http.StatusInternalServerError)
	}
}
