package cart

import (
	"context"
	"errors"
	"testing"

	"modernshop/internal/domain"
)

type stubRepo struct {
	items         []domain.CartItem
	listErr       error
	addResult     *domain.CartItem
	addErr        error
	lastAddSess   string
	lastAddProd   int64
	lastAddQty    int
	addCalls      int
	setResult     *domain.CartItem
	setErr        error
	lastSetID     int64
	lastSetQty    int
	setCalls      int
	deleteExisted bool
	deleteErr     error
	lastDeleteID  int64
	deleteCalls   int
	clearErr      error
	lastClear     string
}

func (s *stubRepo) ListBySession(_ context.Context, _ string) ([]domain.CartItem, error) {
	return s.items, s.listErr
}

func (s *stubRepo) AddOrMerge(_ context.Context, sessionID string, productID int64, quantity int) (*domain.CartItem, error) {
	s.addCalls++
	s.lastAddSess = sessionID
	s.lastAddProd = productID
	s.lastAddQty = quantity
	return s.addResult, s.addErr
}

func (s *stubRepo) SetQuantity(_ context.Context, id int64, quantity int) (*domain.CartItem, error) {
	s.setCalls++
	s.lastSetID = id
	s.lastSetQty = quantity
	return s.setResult, s.setErr
}

func (s *stubRepo) Delete(_ context.Context, id int64) (bool, error) {
	s.deleteCalls++
	s.lastDeleteID = id
	return s.deleteExisted, s.deleteErr
}

func (s *stubRepo) ClearSession(_ context.Context, sessionID string) (int64, error) {
	s.lastClear = sessionID
	return int64(len(s.items)), s.clearErr
}

type stubProductRepo struct {
	products map[int64]domain.Product
	getErr   error
	listErr  error
}

func (s *stubProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (s *stubProductRepo) ListByIDs(_ context.Context, ids []int64) (map[int64]domain.Product, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make(map[int64]domain.Product)
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func catalog() *stubProductRepo {
	return &stubProductRepo{products: map[int64]domain.Product{
		1: {ID: 1, Name: "Olive Oil", Price: domain.MustMoney("24.99")},
		3: {ID: 3, Name: "Pistachios", Price: domain.MustMoney("12.99")},
	}}
}

func TestServiceGetJoinsProducts(t *testing.T) {
	repo := &stubRepo{items: []domain.CartItem{
		{ID: 10, ProductID: 1, Quantity: 2, SessionID: "s"},
		{ID: 11, ProductID: 3, Quantity: 1, SessionID: "s"},
	}}
	svc := New(repo, catalog(), nil)

	lines, err := svc.Get(context.Background(), "s")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Product.Name != "Olive Oil" || lines[0].Quantity != 2 {
		t.Fatalf("unexpected first line %+v", lines[0])
	}
	if lines[1].Product.ID != 3 || lines[1].ID != 11 {
		t.Fatalf("unexpected second line %+v", lines[1])
	}
}

func TestServiceGetEmptyCart(t *testing.T) {
	svc := New(&stubRepo{}, catalog(), nil)
	lines, err := svc.Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lines == nil || len(lines) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", lines)
	}
}

func TestServiceGetMissingProductIsInconsistent(t *testing.T) {
	repo := &stubRepo{items: []domain.CartItem{
		{ID: 10, ProductID: 1, Quantity: 1},
		{ID: 12, ProductID: 99, Quantity: 1},
	}}
	svc := New(repo, catalog(), nil)

	_, err := svc.Get(context.Background(), "s")
	if !errors.Is(err, domain.ErrInconsistent) {
		t.Fatalf("expected inconsistency, got %v", err)
	}
}

func TestServiceGetProductLookupError(t *testing.T) {
	repo := &stubRepo{items: []domain.CartItem{{ID: 10, ProductID: 1, Quantity: 1}}}
	svc := New(repo, &stubProductRepo{listErr: errors.New("boom")}, nil)
	if _, err := svc.Get(context.Background(), "s"); err == nil || err.Error() != "boom" {
		t.Fatalf("expected repo error, got %v", err)
	}
}

func TestServiceSummary(t *testing.T) {
	repo := &stubRepo{items: []domain.CartItem{
		{ID: 10, ProductID: 1, Quantity: 2},
		{ID: 11, ProductID: 3, Quantity: 3},
	}}
	svc := New(repo, catalog(), nil)

	sum, err := svc.Summary(context.Background(), "s")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Total.String() != "88.95" || sum.Count != 5 {
		t.Fatalf("unexpected summary total=%s count=%d", sum.Total, sum.Count)
	}
}

func TestServiceAddValidation(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, catalog(), nil)

	_, err := svc.Add(context.Background(), AddInput{ProductID: 1, Quantity: 0, SessionID: " "})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("expected quantity and sessionId errors, got %+v", verr.Fields)
	}
	if repo.addCalls != 0 {
		t.Fatalf("repo should not be called on invalid input")
	}
}

func TestServiceQuantityAboveLimit(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, catalog(), nil)

	var verr *domain.ValidationError
	_, err := svc.Add(context.Background(), AddInput{ProductID: 1, Quantity: domain.MaxCartQuantity + 1, SessionID: "s"})
	if !errors.As(err, &verr) || verr.Fields[0].Field != "quantity" {
		t.Fatalf("expected quantity validation error, got %v", err)
	}
	if _, err := svc.SetQuantity(context.Background(), 5, domain.MaxCartQuantity+1); !errors.As(err, &verr) {
		t.Fatalf("expected validation error from SetQuantity, got %v", err)
	}
	if repo.addCalls != 0 || repo.setCalls != 0 {
		t.Fatalf("repo should not be called above the limit")
	}
}

func TestServiceAddUnknownProduct(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo, catalog(), nil)

	_, err := svc.Add(context.Background(), AddInput{ProductID: 42, Quantity: 1, SessionID: "s"})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected product not found, got %v", err)
	}
	if repo.addCalls != 0 {
		t.Fatalf("nothing should be stored for an unknown product")
	}
}

func TestServiceAddDelegatesMerge(t *testing.T) {
	merged := &domain.CartItem{ID: 7, ProductID: 3, Quantity: 5, SessionID: "s"}
	repo := &stubRepo{addResult: merged}
	svc := New(repo, catalog(), nil)

	got, err := svc.Add(context.Background(), AddInput{ProductID: 3, Quantity: 2, SessionID: "s"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != merged {
		t.Fatalf("unexpected item %+v", got)
	}
	if repo.lastAddSess != "s" || repo.lastAddProd != 3 || repo.lastAddQty != 2 {
		t.Fatalf("unexpected repo call %s/%d/%d", repo.lastAddSess, repo.lastAddProd, repo.lastAddQty)
	}
}

func TestServiceSetQuantityZeroRemoves(t *testing.T) {
	for _, qty := range []int{0, -3} {
		repo := &stubRepo{deleteExisted: false}
		svc := New(repo, catalog(), nil)

		item, err := svc.SetQuantity(context.Background(), 5, qty)
		if err != nil {
			t.Fatalf("qty %d: unexpected error: %v", qty, err)
		}
		if item != nil {
			t.Fatalf("qty %d: expected nil item, got %+v", qty, item)
		}
		if repo.deleteCalls != 1 || repo.lastDeleteID != 5 || repo.setCalls != 0 {
			t.Fatalf("qty %d: expected a delete of item 5", qty)
		}
	}
}

func TestServiceSetQuantityUpdates(t *testing.T) {
	repo := &stubRepo{setResult: &domain.CartItem{ID: 5, Quantity: 4}}
	svc := New(repo, catalog(), nil)

	item, err := svc.SetQuantity(context.Background(), 5, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Quantity != 4 || repo.lastSetQty != 4 {
		t.Fatalf("unexpected item %+v", item)
	}

	repo.setErr = domain.ErrNotFound
	repo.setResult = nil
	if _, err := svc.SetQuantity(context.Background(), 404, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestServiceRemoveAndClear(t *testing.T) {
	repo := &stubRepo{deleteExisted: true}
	svc := New(repo, catalog(), nil)

	existed, err := svc.Remove(context.Background(), 9)
	if err != nil || !existed {
		t.Fatalf("expected removal, got existed=%v err=%v", existed, err)
	}

	if err := svc.Clear(context.Background(), "s"); err != nil {
		t.Fatalf("unexpected clear error: %v", err)
	}
	if repo.lastClear != "s" {
		t.Fatalf("expected clear of session s, got %q", repo.lastClear)
	}
}
