package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autoparts-storefront/internal/storefront/catalog"
)

type yearOption struct {
	Year int    `json:"year"`
	URL  string `json:"url"`
}

func (h *handlers) home(c *gin.Context) {
	l := h.language(c)
	home, err := h.deps.Catalog.Home(c.Request.Context(), l)
	if err != nil {
		h.fail(c, l, err, "")
		return
	}
	c.JSON(http.StatusOK, home)
}

func (h *handlers) categories(c *gin.Context) {
	l := h.language(c)
	cats, err := h.deps.Catalog.Categories(c.Request.Context(), l)
	if err != nil {
		h.fail(c, l, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": cats})
}

func (h *handlers) catalog(c *gin.Context) {
	l := h.language(c)
	listing, err := h.deps.Catalog.Catalog(c.Request.Context(), l, catalog.ParseQuery(c.Request.URL.Query()))
	if err != nil {
		h.fail(c, l, err, "")
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (h *handlers) part(c *gin.Context) {
	l := h.language(c)
	detail, err := h.deps.Catalog.Part(c.Request.Context(), l, c.Param("oem"))
	if err != nil {
		h.fail(c, l, err, "")
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *handlers) brands(c *gin.Context) {
	brands, err := h.deps.Catalog.Brands(c.Request.Context())
	if err != nil {
		h.fail(c, h.language(c), err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": brands})
}

func (h *handlers) models(c *gin.Context) {
	models, err := h.deps.Catalog.Models(c.Request.Context(), c.Param("brandId"))
	if err != nil {
		h.fail(c, h.language(c), err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": models})
}

// years also returns the catalog URL each choice leads to; pass ?brand= to
// carry the brand name into the heading.
func (h *handlers) years(c *gin.Context) {
	modelID := c.Param("modelId")
	years, err := h.deps.Catalog.Years(c.Request.Context(), modelID)
	if err != nil {
		h.fail(c, h.language(c), err, "")
		return
	}
	brand := c.Query("brand")
	out := make([]yearOption, 0, len(years))
	for _, y := range years {
		out = append(out, yearOption{Year: y, URL: catalog.SelectionURL(brand, modelID, y)})
	}
	c.JSON(http.StatusOK, gin.H{"results": out})
}
