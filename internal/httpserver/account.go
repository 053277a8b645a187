package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autoparts-storefront/internal/commerce"
	"autoparts-storefront/internal/domain"
	"autoparts-storefront/internal/i18n"
	"autoparts-storefront/internal/storefront/account"
)

type customerResponse struct {
	Customer *domain.Customer `json:"customer"`
	Message  string           `json:"message,omitempty"`
}

func (h *handlers) login(c *gin.Context) {
	l := h.language(c)
	var in account.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.badRequest(c, l)
		return
	}
	a, ok := h.auth(c)
	if !ok {
		return
	}
	cust, err := h.deps.Account.Login(c.Request.Context(), l, a, in)
	if err != nil {
		h.fail(c, l, err, "")
		return
	}
	c.JSON(http.StatusOK, customerResponse{Customer: cust, Message: i18n.T(l, "auth.welcome")})
}

func (h *handlers) signup(c *gin.Context) {
	l := h.language(c)
	var in account.SignupInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.badRequest(c, l)
		return
	}
	a, ok := h.auth(c)
	if !ok {
		return
	}
	cust, err := h.deps.Account.Signup(c.Request.Context(), l, a, in)
	if err != nil {
		h.fail(c, l, err, "")
		return
	}
	c.JSON(http.StatusCreated, customerResponse{Customer: cust, Message: i18n.T(l, "auth.accountCreated")})
}

func (h *handlers) logout(c *gin.Context) {
	a, ok := h.auth(c)
	if !ok {
		return
	}
	if err := h.deps.Account.Logout(c.Request.Context(), a); err != nil {
		h.storageFailed(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) authSession(c *gin.Context) {
	a, ok := h.auth(c)
	if !ok {
		return
	}
	id, loggedIn := a.CustomerID()
	c.JSON(http.StatusOK, gin.H{"loggedIn": loggedIn, "customerId": id})
}

func (h *handlers) profile(c *gin.Context) {
	l := h.language(c)
	a, ok := h.auth(c)
	if !ok {
		return
	}
	p, err := h.deps.Account.Profile(c.Request.Context(), l, a)
	if err != nil {
		h.fail(c, l, err, "")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) updateProfile(c *gin.Context) {
	l := h.language(c)
	var in account.ProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.badRequest(c, l)
		return
	}
	a, ok := h.auth(c)
	if !ok {
		return
	}
	cust, err := h.deps.Account.UpdateProfile(c.Request.Context(), l, a, in)
	if err != nil {
		h.fail(c, l, err, "")
		return
	}
	c.JSON(http.StatusOK, customerResponse{Customer: cust})
}

func (h *handlers) addAddress(c *gin.Context) {
	l := h.language(c)
	var in commerce.AddressRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		h.badRequest(c, l)
		return
	}
	a, ok := h.auth(c)
	if !ok {
		return
	}
	cust, err := h.deps.Account.AddAddress(c.Request.Context(), l, a, in)
	if err != nil {
		h.fail(c, l, err, "")
		return
	}
	c.JSON(http.StatusCreated, customerResponse{Customer: cust})
}

func (h *handlers) removeAddress(c *gin.Context) {
	l := h.language(c)
	a, ok := h.auth(c)
	if !ok {
		return
	}
	cust, err := h.deps.Account.RemoveAddress(c.Request.Context(), a, c.Param("id"))
	if err != nil {
		h.fail(c, l, err, "")
		return
	}
	c.JSON(http.StatusOK, customerResponse{Customer: cust})
}

func (h *handlers) setDefaultAddress(c *gin.Context) {
	l := h.language(c)
	a, ok := h.auth(c)
	if !ok {
		return
	}
	cust, err := h.deps.Account.SetDefaultAddress(c.Request.Context(), a, c.Param("id"))
	if err != nil {
		h.fail(c, l, err, "")
		return
	}
	c.JSON(http.StatusOK, customerResponse{Customer: cust})
}

func (h *handlers) order(c *gin.Context) {
	l := h.language(c)
	a, ok := h.auth(c)
	if !ok {
		return
	}
	view, err := h.deps.Account.Order(c.Request.Context(), l, a, c.Param("id"))
	if err != nil {
		h.fail(c, l, err, "")
		return
	}
	c.JSON(http.StatusOK, view)
}
