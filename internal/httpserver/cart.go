package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"autoparts-storefront/internal/state/cart"
)

type updateQtyRequest struct {
	Quantity *int `json:"quantity"`
}

func (h *handlers) writeCart(c *gin.Context, crt *cart.Cart) {
	c.JSON(http.StatusOK, h.deps.Checkout.CartView(c.Request.Context(), h.language(c), crt))
}

func (h *handlers) getCart(c *gin.Context) {
	crt, ok := h.cart(c)
	if !ok {
		return
	}
	h.writeCart(c, crt)
}

// addCartItem takes the line as the product card shows it. The price is for
// display only; orders are priced by the backend.
func (h *handlers) addCartItem(c *gin.Context) {
	var item cart.CartItem
	if err := c.ShouldBindJSON(&item); err != nil || strings.TrimSpace(item.ProductID) == "" {
		h.badRequest(c, h.language(c))
		return
	}
	crt, ok := h.cart(c)
	if !ok {
		return
	}
	if err := crt.AddItem(c.Request.Context(), item); err != nil {
		h.storageFailed(c, err)
		return
	}
	h.writeCart(c, crt)
}

func (h *handlers) updateCartItem(c *gin.Context) {
	var req updateQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		h.badRequest(c, h.language(c))
		return
	}
	crt, ok := h.cart(c)
	if !ok {
		return
	}
	if err := crt.UpdateQty(c.Request.Context(), c.Param("productId"), *req.Quantity); err != nil {
		h.storageFailed(c, err)
		return
	}
	h.writeCart(c, crt)
}

func (h *handlers) removeCartItem(c *gin.Context) {
	crt, ok := h.cart(c)
	if !ok {
		return
	}
	if err := crt.RemoveItem(c.Request.Context(), c.Param("productId")); err != nil {
		h.storageFailed(c, err)
		return
	}
	h.writeCart(c, crt)
}

func (h *handlers) clearCart(c *gin.Context) {
	crt, ok := h.cart(c)
	if !ok {
		return
	}
	if err := crt.Clear(c.Request.Context()); err != nil {
		h.storageFailed(c, err)
		return
	}
	h.writeCart(c, crt)
}
