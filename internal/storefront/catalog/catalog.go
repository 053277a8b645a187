// Package catalog assembles the home page, catalog listings, part detail pages
// and the car selector from the commerce backend.
package catalog

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"

	"autoparts-storefront/internal/commerce"
	"autoparts-storefront/internal/domain"
	"autoparts-storefront/internal/i18n"
	"autoparts-storefront/internal/state/lang"
	"autoparts-storefront/internal/storefront/pricing"
)

const (
	featuredCount = 6
	relatedCount  = 4
	// extra days on top of the stated lead time
	leadTimeSpread = 7
)

type Service struct {
	client   commerce.Client
	prices   *pricing.Display
	whatsApp string
	logger   *log.Logger
}

func New(client commerce.Client, prices *pricing.Display, whatsAppNumber string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{client: client, prices: prices, whatsApp: whatsAppNumber, logger: logger}
}

// PartView is a part as rendered on a card.
type PartView struct {
	ID         string        `json:"id"`
	OEM        string        `json:"oem"`
	Name       string        `json:"name"`
	NameAr     string        `json:"nameAr"`
	NameEn     string        `json:"nameEn"`
	CategoryID string        `json:"categoryId,omitempty"`
	Image      string        `json:"image,omitempty"`
	InStock    bool          `json:"inStock"`
	Price      pricing.Price `json:"price"`
}

type CategoryView struct {
	ID           string `json:"id"`
	Key          string `json:"key"`
	Name         string `json:"name"`
	Icon         string `json:"icon,omitempty"`
	ProductCount int    `json:"productCount"`
}

func (s *Service) partView(ctx context.Context, l lang.Lang, p domain.Product) PartView {
	return PartView{
		ID:         p.ID,
		OEM:        p.OEM,
		Name:       p.LocalizedName(l == lang.Arabic),
		NameAr:     p.NameAr,
		NameEn:     p.Name,
		CategoryID: p.CategoryID,
		Image:      p.MainImage(),
		InStock:    p.InStock(),
		Price:      s.prices.Quote(ctx, l, p.BasePriceCents),
	}
}

func (s *Service) partViews(ctx context.Context, l lang.Lang, products []domain.Product) []PartView {
	out := make([]PartView, 0, len(products))
	for _, p := range products {
		out = append(out, s.partView(ctx, l, p))
	}
	return out
}

func categoryViews(l lang.Lang, cats []domain.Category) []CategoryView {
	out := make([]CategoryView, 0, len(cats))
	for _, c := range cats {
		out = append(out, CategoryView{
			ID:           c.ID,
			Key:          c.Key,
			Name:         c.LocalizedName(l == lang.Arabic),
			Icon:         c.Icon,
			ProductCount: c.ProductCount,
		})
	}
	return out
}

type Home struct {
	Categories []CategoryView `json:"categories"`
	Featured   []PartView     `json:"featured"`
}

// Home lists the categories and the most expensive in-stock parts.
func (s *Service) Home(ctx context.Context, l lang.Lang) (*Home, error) {
	cats, err := s.client.Categories().List(ctx)
	if err != nil {
		return nil, err
	}
	featured, err := s.client.Products().List(ctx, commerce.ListParams{
		Sort:        domain.SortPriceDesc,
		InStockOnly: true,
	})
	if err != nil {
		return nil, err
	}
	if len(featured) > featuredCount {
		featured = featured[:featuredCount]
	}
	return &Home{Categories: categoryViews(l, cats), Featured: s.partViews(ctx, l, featured)}, nil
}

func (s *Service) Categories(ctx context.Context, l lang.Lang) ([]CategoryView, error) {
	cats, err := s.client.Categories().List(ctx)
	if err != nil {
		return nil, err
	}
	return categoryViews(l, cats), nil
}

// Search picks the backend call for q: OEM search, fitment listing or plain listing.
func (s *Service) Search(ctx context.Context, q Query) ([]domain.Product, error) {
	if text := strings.TrimSpace(q.Q); text != "" {
		return s.client.OEM().Search(ctx, text)
	}
	if q.ModelID != "" {
		return s.client.Fitment().Products(ctx, commerce.FitmentQuery{
			ModelID:    q.ModelID,
			Year:       q.Year,
			CategoryID: q.CategoryID,
		})
	}
	sort := q.Sort
	if sort == "" {
		sort = domain.SortNameAsc
	}
	return s.client.Products().List(ctx, commerce.ListParams{CategoryID: q.CategoryID, Sort: sort})
}

type Listing struct {
	Query      Query          `json:"query"`
	Heading    string         `json:"heading"`
	Count      string         `json:"count"`
	Categories []CategoryView `json:"categories"`
	Parts      []PartView     `json:"parts"`
}

func (s *Service) Catalog(ctx context.Context, l lang.Lang, q Query) (*Listing, error) {
	cats, err := s.client.Categories().List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	return &Listing{
		Query:      q,
		Heading:    Heading(l, q, cats),
		Count:      i18n.PartsCount(l, len(products)),
		Categories: categoryViews(l, cats),
		Parts:      s.partViews(ctx, l, products),
	}, nil
}

// LiveResults is what the live search pushes after each debounced query.
type LiveResults struct {
	Q     string     `json:"q"`
	Count string     `json:"count"`
	Parts []PartView `json:"parts"`
	Error string     `json:"error,omitempty"`
}

func (s *Service) Live(ctx context.Context, l lang.Lang, text string, parts []domain.Product, err error) LiveResults {
	if err != nil {
		s.logger.Printf("catalog: live search q=%q err=%v", text, err)
		return LiveResults{Q: text, Error: i18n.T(l, "errors.general")}
	}
	return LiveResults{Q: text, Count: i18n.PartsCount(l, len(parts)), Parts: s.partViews(ctx, l, parts)}
}

type LeadTime struct {
	MinDays int `json:"minDays"`
	MaxDays int `json:"maxDays"`
}

type Detail struct {
	Part        PartView                   `json:"part"`
	Specs       domain.Specifications      `json:"specifications"`
	LeadTime    *LeadTime                  `json:"leadTime,omitempty"`
	Compatible  []domain.CompatibleVehicle `json:"compatibleVehicles"`
	Related     []PartView                 `json:"related"`
	WhatsAppURL string                     `json:"whatsAppUrl"`
}

// Part loads the detail page for an OEM number using the first search hit.
func (s *Service) Part(ctx context.Context, l lang.Lang, oem string) (*Detail, error) {
	hits, err := s.client.OEM().Search(ctx, oem)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, commerce.NewError(commerce.KindNotFound, "catalog.part", fmt.Errorf("%w: oem %s", domain.ErrNotFound, oem))
	}
	p := hits[0]

	vehicles, err := s.client.Fitment().CompatibleVehicles(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	var related []domain.Product
	if p.CategoryID != "" {
		sameCat, err := s.client.Products().List(ctx, commerce.ListParams{CategoryID: p.CategoryID})
		if err != nil {
			return nil, err
		}
		for _, r := range sameCat {
			if r.ID == p.ID {
				continue
			}
			related = append(related, r)
			if len(related) == relatedCount {
				break
			}
		}
	}

	d := &Detail{
		Part:        s.partView(ctx, l, p),
		Specs:       p.Specifications,
		Compatible:  vehicles,
		Related:     s.partViews(ctx, l, related),
		WhatsAppURL: WhatsAppLink(s.whatsApp, p),
	}
	if days := p.Specifications.LeadTimeDays; days > 0 {
		d.LeadTime = &LeadTime{MinDays: days, MaxDays: days + leadTimeSpread}
	}
	return d, nil
}

// WhatsAppLink builds the wa.me inquiry link for a part.
func WhatsAppLink(number string, p domain.Product) string {
	name := p.NameAr
	if name == "" {
		name = p.Name
	}
	oem := p.Specifications.OEMNumber
	if oem == "" {
		oem = "—"
	}
	text := fmt.Sprintf("استفسار عن قطعة: %s — OEM: %s", name, oem)
	return "https://wa.me/" + number + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
