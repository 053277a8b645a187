package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"strconv"
	"strings"

	"autoparts-storefront/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

type CategoryWriter interface {
	Upsert(ctx context.Context, c domain.Category) (*domain.Category, error)
}

type FitmentWriter interface {
	UpsertBrand(ctx context.Context, name string) (*domain.VehicleBrand, error)
	UpsertModel(ctx context.Context, m domain.VehicleModel) (*domain.VehicleModel, error)
	LinkProduct(ctx context.Context, productID, modelID string, yearFrom, yearTo int) error
}

// Writers are the repositories a price list is written through.
type Writers struct {
	Products   ProductWriter
	Categories CategoryWriter
	Fitment    FitmentWriter
}

// rowSource yields raw records and io.EOF at the end.
type rowSource interface {
	Read() ([]string, error)
}

// Importer reads a parts price list and upserts products, categories,
// vehicles and fitment links.
type Importer struct {
	rows   rowSource
	w      Writers
	logger *log.Logger

	categories map[string]string
	brands     map[string]string
}

func NewCSVImporter(r io.Reader, w Writers, logger *log.Logger) *Importer {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // supplier sheets often drop trailing empty columns
	csvr.TrimLeadingSpace = true
	return newImporter(csvr, w, logger)
}

func newImporter(rows rowSource, w Writers, logger *log.Logger) *Importer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Importer{
		rows:       rows,
		w:          w,
		logger:     logger,
		categories: map[string]string{},
		brands:     map[string]string{},
	}
}

type Summary struct {
	Products int
	Links    int
	Skipped  int
}

type row struct {
	line       int
	OEM        string
	NameEn     string
	NameAr     string
	Category   string
	PriceCents int64
	Stock      int
	Brand      string
	Model      string
	Chassis    string
	YearFrom   int
	YearTo     int
	Image      string
	AltOEMs    []string
}

// Run parses every row after the header. Rows without an OEM or English name are skipped.
func (i *Importer) Run(ctx context.Context) (Summary, error) {
	var sum Summary
	headers, err := i.rows.Read()
	if err != nil {
		return sum, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["oem"]; !ok {
		return sum, errors.New("missing oem column")
	}

	line := 1
	for {
		record, err := i.rows.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return sum, fmt.Errorf("read row: %w", err)
		}
		line++

		r, err := parseRow(record, index)
		if err != nil {
			i.logger.Printf("importer: skip line=%d err=%v", line, err)
			sum.Skipped++
			continue
		}
		if r == nil {
			continue
		}
		r.line = line
		linked, err := i.save(ctx, r)
		if err != nil {
			return sum, err
		}
		sum.Products++
		if linked {
			sum.Links++
		}
	}
	return sum, nil
}

func (i *Importer) save(ctx context.Context, r *row) (bool, error) {
	categoryID, err := i.categoryID(ctx, r.Category)
	if err != nil {
		return false, fmt.Errorf("line %d: category %q: %w", r.line, r.Category, err)
	}

	p := domain.Product{
		OEM:            r.OEM,
		Name:           r.NameEn,
		NameAr:         r.NameAr,
		CategoryID:     categoryID,
		BasePriceCents: r.PriceCents,
		Stock:          r.Stock,
		Specifications: domain.Specifications{
			OEMNumber:       r.OEM,
			AlternativeOEMs: r.AltOEMs,
		},
	}
	if r.Image != "" {
		p.Images = []string{r.Image}
		p.Specifications.ThumbnailURL = r.Image
	}
	saved, err := i.w.Products.Upsert(ctx, p)
	if err != nil {
		return false, fmt.Errorf("line %d: upsert product %q: %w", r.line, r.OEM, err)
	}

	if r.Brand == "" || r.Model == "" || r.YearFrom == 0 {
		return false, nil
	}
	modelID, err := i.modelID(ctx, r)
	if err != nil {
		return false, fmt.Errorf("line %d: vehicle %s %s: %w", r.line, r.Brand, r.Model, err)
	}
	if err := i.w.Fitment.LinkProduct(ctx, saved.ID, modelID, r.YearFrom, r.YearTo); err != nil {
		return false, fmt.Errorf("line %d: link %q: %w", r.line, r.OEM, err)
	}
	return true, nil
}

func (i *Importer) categoryID(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}
	if id, ok := i.categories[key]; ok {
		return id, nil
	}
	c, err := i.w.Categories.Upsert(ctx, domain.Category{Key: key, Name: key})
	if err != nil {
		return "", err
	}
	i.categories[key] = c.ID
	return c.ID, nil
}

func (i *Importer) modelID(ctx context.Context, r *row) (string, error) {
	brandID, ok := i.brands[r.Brand]
	if !ok {
		b, err := i.w.Fitment.UpsertBrand(ctx, r.Brand)
		if err != nil {
			return "", err
		}
		brandID = b.ID
		i.brands[r.Brand] = brandID
	}
	// not cached: each row may widen the model's year range
	m, err := i.w.Fitment.UpsertModel(ctx, domain.VehicleModel{
		BrandID:  brandID,
		Name:     r.Model,
		Chassis:  r.Chassis,
		YearFrom: r.YearFrom,
		YearTo:   r.YearTo,
	})
	if err != nil {
		return "", err
	}
	return m.ID, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	return idx
}

// parseRow returns nil for blank rows.
func parseRow(record []string, index map[string]int) (*row, error) {
	r := &row{
		OEM:      strings.ToUpper(pick(record, index, "oem")),
		NameEn:   pick(record, index, "nameEn"),
		NameAr:   pick(record, index, "nameAr"),
		Category: pick(record, index, "category"),
		Brand:    pick(record, index, "brand"),
		Model:    pick(record, index, "model"),
		Chassis:  pick(record, index, "chassis"),
		Image:    pick(record, index, "image"),
		Stock:    1,
	}
	if r.OEM == "" && r.NameEn == "" {
		return nil, nil
	}
	if r.OEM == "" || r.NameEn == "" {
		return nil, fmt.Errorf("oem and nameEn are required")
	}

	if s := pick(record, index, "priceUsd"); s != "" {
		usd, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
		if err != nil || usd < 0 {
			return nil, fmt.Errorf("bad priceUsd %q", s)
		}
		r.PriceCents = int64(math.Round(usd * 100))
	}
	if s := pick(record, index, "stock"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad stock %q", s)
		}
		r.Stock = n
	}
	if s := pick(record, index, "years"); s != "" {
		from, to, err := parseYears(s)
		if err != nil {
			return nil, err
		}
		r.YearFrom, r.YearTo = from, to
	}
	for _, alt := range strings.FieldsFunc(pick(record, index, "alternativeOems"), func(c rune) bool {
		return c == ';' || c == '|'
	}) {
		if alt = strings.ToUpper(strings.TrimSpace(alt)); alt != "" {
			r.AltOEMs = append(r.AltOEMs, alt)
		}
	}
	return r, nil
}

// parseYears accepts "2014-2021" or a single year.
func parseYears(s string) (int, int, error) {
	fromStr, toStr, ranged := strings.Cut(s, "-")
	from, err := strconv.Atoi(strings.TrimSpace(fromStr))
	if err != nil {
		return 0, 0, fmt.Errorf("bad years %q", s)
	}
	to := from
	if ranged {
		if to, err = strconv.Atoi(strings.TrimSpace(toStr)); err != nil {
			return 0, 0, fmt.Errorf("bad years %q", s)
		}
	}
	if to < from {
		return 0, 0, fmt.Errorf("bad years %q", s)
	}
	return from, to, nil
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
