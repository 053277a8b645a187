package httpserver

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"autoparts-storefront/internal/i18n"
	"autoparts-storefront/internal/storefront/checkout"
)

// checkoutRequest is the delivery form. AddressID picks a saved address and
// takes precedence over the typed fields except notes.
type checkoutRequest struct {
	checkout.Form
	AddressID string `json:"addressId"`
}

func (h *handlers) checkoutSummary(c *gin.Context) {
	crt, ok := h.cart(c)
	if !ok {
		return
	}
	a, ok := h.auth(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.deps.Checkout.Summary(c.Request.Context(), h.language(c), crt, a))
}

func (h *handlers) submitCheckout(c *gin.Context) {
	l := h.language(c)
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, l)
		return
	}
	crt, ok := h.cart(c)
	if !ok {
		return
	}
	a, ok := h.auth(c)
	if !ok {
		return
	}

	form, isNew := req.Form, true
	if req.AddressID != "" {
		sel := checkout.NewSelection(h.deps.Checkout.SavedAddresses(c.Request.Context(), a))
		if sel.Select(req.AddressID) {
			form = sel.Form
			form.Notes = req.Notes
			isNew = false
		}
	}

	res, err := h.deps.Checkout.Submit(c.Request.Context(), checkout.Request{
		SessionID:  sessionOf(c).id,
		Lang:       l,
		Cart:       crt,
		Auth:       a,
		Form:       form,
		NewAddress: isNew,
	})
	if err != nil {
		h.fail(c, l, err, checkout.UserMessage(err, l))
		return
	}
	res.Redirect += "?" + url.Values{"order": {res.Order.OrderNumber}}.Encode()
	c.JSON(http.StatusCreated, res)
}

func (h *handlers) orderSuccess(c *gin.Context) {
	l := h.language(c)
	c.JSON(http.StatusOK, gin.H{
		"orderNumber": c.Query("order"),
		"strings":     i18n.For(l)["orderSuccess"],
	})
}
