// Package importer loads catalog products from CSV files.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"
	"modernshop/internal/domain"
)

type CategoryStore interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Upsert(ctx context.Context, c domain.Category) (*domain.Category, error)
}

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// Row is one product line. The category column holds a category slug; the
// category is created with category_name (or the slug) when it does not exist.
type Row struct {
	Category      string  `csv:"category"`
	CategoryName  string  `csv:"category_name"`
	Name          string  `csv:"name"`
	Slug          string  `csv:"slug"`
	Description   string  `csv:"description"`
	ImageURL      string  `csv:"image_url"`
	Price         string  `csv:"price"`
	OriginalPrice string  `csv:"original_price"`
	Featured      csvFlag `csv:"featured"`
	NewArrival    csvFlag `csv:"new_arrival"`
	Sale          csvFlag `csv:"sale"`
	Stock         csvInt  `csv:"stock"`
	Rating        string  `csv:"rating"`
	Reviews       csvInt  `csv:"reviews"`
}

// Result counts what a run wrote.
type Result struct {
	Products          int
	CategoriesCreated int
}

// CSVImporter upserts products by slug.
type CSVImporter struct {
	categories CategoryStore
	products   ProductWriter
	logger     *zap.Logger
}

func NewCSVImporter(categories CategoryStore, products ProductWriter, logger *zap.Logger) *CSVImporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CSVImporter{categories: categories, products: products, logger: logger}
}

// Run parses the whole file before writing so a malformed row aborts the
// import without partial writes.
func (i *CSVImporter) Run(ctx context.Context, r io.Reader) (Result, error) {
	var res Result
	var rows []*Row
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return res, fmt.Errorf("read csv: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	slugs := make([]string, 0, len(rows))
	for n, row := range rows {
		// Line 1 is the header.
		line := n + 2
		p, err := row.toDomain()
		if err != nil {
			return res, fmt.Errorf("line %d: %w", line, err)
		}
		products = append(products, p)
		slugs = append(slugs, strings.TrimSpace(row.Category))
	}

	categoryIDs := make(map[string]int64)
	for n, p := range products {
		slug := slugs[n]
		id, ok := categoryIDs[slug]
		if !ok {
			var created bool
			var err error
			id, created, err = i.ensureCategory(ctx, slug, rows[n].CategoryName)
			if err != nil {
				return res, err
			}
			if created {
				res.CategoriesCreated++
			}
			categoryIDs[slug] = id
		}
		p.CategoryID = id
		if _, err := i.products.Upsert(ctx, p); err != nil {
			return res, fmt.Errorf("upsert product %q: %w", p.Slug, err)
		}
		res.Products++
	}

	i.logger.Info("catalog import finished",
		zap.Int("products", res.Products),
		zap.Int("categories_created", res.CategoriesCreated),
	)
	return res, nil
}

func (i *CSVImporter) ensureCategory(ctx context.Context, slug, name string) (int64, bool, error) {
	existing, err := i.categories.GetBySlug(ctx, slug)
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return 0, false, fmt.Errorf("lookup category %q: %w", slug, err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = slug
	}
	created, err := i.categories.Upsert(ctx, domain.Category{Name: name, Slug: slug})
	if err != nil {
		return 0, false, fmt.Errorf("create category %q: %w", slug, err)
	}
	i.logger.Info("created category", zap.String("slug", slug), zap.Int64("id", created.ID))
	return created.ID, true, nil
}

func (r *Row) toDomain() (domain.Product, error) {
	name := strings.TrimSpace(r.Name)
	slug := strings.TrimSpace(r.Slug)
	switch {
	case strings.TrimSpace(r.Category) == "":
		return domain.Product{}, errors.New("category is required")
	case name == "":
		return domain.Product{}, errors.New("name is required")
	case slug == "":
		return domain.Product{}, errors.New("slug is required")
	}

	price, err := domain.ParseMoney(strings.TrimSpace(r.Price))
	if err != nil {
		return domain.Product{}, err
	}
	if err := price.Check(); err != nil {
		return domain.Product{}, fmt.Errorf("price %s: %w", r.Price, err)
	}

	p := domain.Product{
		Name:          name,
		Slug:          slug,
		Description:   strings.TrimSpace(r.Description),
		ImageURL:      strings.TrimSpace(r.ImageURL),
		Price:         price,
		Featured:      bool(r.Featured),
		IsNewArrival:  bool(r.NewArrival),
		IsSale:        bool(r.Sale),
		StockQuantity: int(r.Stock),
		ReviewCount:   int(r.Reviews),
	}
	if s := strings.TrimSpace(r.OriginalPrice); s != "" {
		op, err := domain.ParseMoney(s)
		if err != nil {
			return domain.Product{}, err
		}
		if err := op.Check(); err != nil {
			return domain.Product{}, fmt.Errorf("original_price %s: %w", s, err)
		}
		p.OriginalPrice = &op
	}
	rating := strings.TrimSpace(r.Rating)
	if rating == "" {
		rating = "0"
	}
	if p.Rating, err = domain.ParseRating(rating); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// csvFlag accepts true/false, 1/0, yes/no and an empty cell (false).
type csvFlag bool

func (f *csvFlag) UnmarshalCSV(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "false", "no", "n":
		*f = false
	case "1", "true", "yes", "y":
		*f = true
	default:
		return fmt.Errorf("invalid flag %q", s)
	}
	return nil
}

// csvInt treats an empty cell as zero.
type csvInt int

func (n *csvInt) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid integer %q", s)
	}
	if v < 0 {
		return fmt.Errorf("negative integer %q", s)
	}
	*n = csvInt(v)
	return nil
}
