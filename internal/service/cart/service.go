package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"modernshop/internal/domain"
)

type Service struct {
	repo        cartRepo
	productRepo productRepo
	logger      *zap.Logger
}

type cartRepo interface {
	ListBySession(ctx context.Context, sessionID string) ([]domain.CartItem, error)
	AddOrMerge(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.CartItem, error)
	SetQuantity(ctx context.Context, id int64, quantity int) (*domain.CartItem, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ClearSession(ctx context.Context, sessionID string) (int64, error)
}

type productRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	ListByIDs(ctx context.Context, ids []int64) (map[int64]domain.Product, error)
}

func New(repo cartRepo, productRepo productRepo, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, productRepo: productRepo, logger: logger.Named("cart")}
}

// AddInput is the add-to-cart request body.
type AddInput struct {
	ProductID int64  `json:"productId"`
	Quantity  int    `json:"quantity"`
	SessionID string `json:"sessionId"`
}

func (in AddInput) validate() error {
	var fields []domain.FieldError
	if in.ProductID <= 0 {
		fields = append(fields, domain.FieldError{Field: "productId", Message: "must be a positive integer"})
	}
	switch {
	case in.Quantity < 1:
		fields = append(fields, domain.FieldError{Field: "quantity", Message: "must be at least 1"})
	case in.Quantity > domain.MaxCartQuantity:
		fields = append(fields, domain.QuantityLimitError().Fields...)
	}
	if strings.TrimSpace(in.SessionID) == "" {
		fields = append(fields, domain.FieldError{Field: "sessionId", Message: "required"})
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Get returns the session's items joined with their current products. An item
// whose product no longer exists fails the whole read with domain.ErrInconsistent.
func (s *Service) Get(ctx context.Context, sessionID string) ([]domain.CartLine, error) {
	items, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	lines := make([]domain.CartLine, 0, len(items))
	if len(items) == 0 {
		return lines, nil
	}

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.productRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			s.logger.Error("cart item references missing product",
				zap.Int64("cart_item_id", item.ID),
				zap.Int64("product_id", item.ProductID),
				zap.String("session_id", sessionID),
			)
			return nil, fmt.Errorf("cart item %d product %d: %w", item.ID, item.ProductID, domain.ErrInconsistent)
		}
		lines = append(lines, domain.CartLine{CartItem: item, Product: product})
	}
	return lines, nil
}

// Summary totals the session's cart using current prices.
func (s *Service) Summary(ctx context.Context, sessionID string) (domain.CartSummary, error) {
	lines, err := s.Get(ctx, sessionID)
	if err != nil {
		return domain.CartSummary{}, err
	}
	return domain.SummarizeCart(lines), nil
}

// Add puts quantity of a product into the session's cart, merging with an
// existing line for the same product. A merge that would pass
// domain.MaxCartQuantity fails with a validation error and leaves the line as is.
func (s *Service) Add(ctx context.Context, in AddInput) (*domain.CartItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if _, err := s.productRepo.GetByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return s.repo.AddOrMerge(ctx, in.SessionID, in.ProductID, in.Quantity)
}

// SetQuantity overwrites an item's quantity. A quantity of zero or less removes
// the item and returns (nil, nil), even when the item was already gone.
func (s *Service) SetQuantity(ctx context.Context, itemID int64, quantity int) (*domain.CartItem, error) {
	if quantity <= 0 {
		if _, err := s.repo.Delete(ctx, itemID); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if quantity > domain.MaxCartQuantity {
		return nil, domain.QuantityLimitError()
	}
	return s.repo.SetQuantity(ctx, itemID, quantity)
}

// Remove reports whether the item existed.
func (s *Service) Remove(ctx context.Context, itemID int64) (bool, error) {
	return s.repo.Delete(ctx, itemID)
}

func (s *Service) Clear(ctx context.Context, sessionID string) error {
	n, err := s.repo.ClearSession(ctx, sessionID)
	if err != nil {
		return err
	}
	s.logger.Debug("cart cleared", zap.String("session_id", sessionID), zap.Int64("items", n))
	return nil
}
