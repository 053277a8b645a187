package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autoparts-storefront/internal/i18n"
	"autoparts-storefront/internal/state/lang"
)

type langResponse struct {
	Lang lang.Lang `json:"lang"`
	Dir  string    `json:"dir"`
}

type setLangRequest struct {
	Lang string `json:"lang"`
}

func (h *handlers) preference(c *gin.Context) (*lang.Preference, bool) {
	pref, err := lang.Open(c.Request.Context(), sessionOf(c).store)
	if err != nil {
		h.storageFailed(c, err)
		return nil, false
	}
	return pref, true
}

func (h *handlers) getLang(c *gin.Context) {
	pref, ok := h.preference(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, langResponse{Lang: pref.Lang(), Dir: pref.Dir()})
}

func (h *handlers) setLang(c *gin.Context) {
	pref, ok := h.preference(c)
	if !ok {
		return
	}
	var req setLangRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, pref.Lang())
		return
	}
	l, err := lang.Parse(req.Lang)
	if err != nil {
		h.fail(c, pref.Lang(), err, "")
		return
	}
	if err := pref.Set(c.Request.Context(), l); err != nil {
		h.storageFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, langResponse{Lang: pref.Lang(), Dir: pref.Dir()})
}

func (h *handlers) toggleLang(c *gin.Context) {
	pref, ok := h.preference(c)
	if !ok {
		return
	}
	if err := pref.Toggle(c.Request.Context()); err != nil {
		h.storageFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, langResponse{Lang: pref.Lang(), Dir: pref.Dir()})
}

// strings serves the whole UI table for the current language.
func (h *handlers) strings(c *gin.Context) {
	l := h.language(c)
	c.JSON(http.StatusOK, gin.H{"lang": l, "dir": l.Dir(), "strings": i18n.For(l)})
}
