package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"autoparts-storefront/internal/commerce"
	"autoparts-storefront/internal/i18n"
	"autoparts-storefront/internal/state/lang"
	"autoparts-storefront/internal/storefront"
	"autoparts-storefront/internal/storefront/checkout"
)

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func statusFor(err error) int {
	var fe *storefront.FieldErrors
	switch {
	case errors.As(err, &fe):
		return http.StatusUnprocessableEntity
	case errors.Is(err, checkout.ErrSubmitInProgress):
		return http.StatusConflict
	case errors.Is(err, lang.ErrUnsupportedLang):
		return http.StatusUnprocessableEntity
	case commerce.IsAuthentication(err):
		return http.StatusUnauthorized
	case commerce.IsNotFound(err):
		return http.StatusNotFound
	case commerce.IsValidation(err):
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadGateway
}

func messageFor(err error, l lang.Lang) string {
	var fe *storefront.FieldErrors
	switch {
	case errors.As(err, &fe):
		return fe.First()
	case errors.Is(err, checkout.ErrSubmitInProgress):
		return i18n.T(l, "errors.submitInProgress")
	case commerce.IsAuthentication(err):
		return i18n.T(l, "errors.loginRequired")
	case commerce.IsNotFound(err):
		return i18n.T(l, "errors.notFound")
	}
	return i18n.T(l, "errors.general")
}

// fail writes err with its mapped status. msg overrides the default text when set.
func (h *handlers) fail(c *gin.Context, l lang.Lang, err error, msg string) {
	status := statusFor(err)
	if status == http.StatusBadGateway {
		h.logger.Printf("httpserver: %s %s err=%v", c.Request.Method, c.FullPath(), err)
	}
	if msg == "" {
		msg = messageFor(err, l)
	}
	resp := errorResponse{Error: msg}
	var fe *storefront.FieldErrors
	if errors.As(err, &fe) {
		resp.Fields = fe.Fields
	}
	c.AbortWithStatusJSON(status, resp)
}

func (h *handlers) storageFailed(c *gin.Context, err error) {
	h.logger.Printf("httpserver: session storage session=%s err=%v", sessionOf(c).id, err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: i18n.T(lang.Arabic, "errors.general")})
}

func (h *handlers) badRequest(c *gin.Context, l lang.Lang) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: i18n.T(l, "errors.general")})
}
