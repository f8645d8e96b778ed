package order

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cnres-bot/internal/logger"
	"cnres-bot/internal/menu"
	"cnres-bot/internal/models"
)

type fakeStore struct {
	saved []*models.Order
	err   error
}

func (f *fakeStore) Save(_ context.Context, order *models.Order) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, order)
	return nil
}

type fakeNotifier struct {
	published int
}

func (f *fakeNotifier) Publish(_ context.Context, _, _ string) error {
	f.published++
	return nil
}

func newTestService(store *fakeStore, notifier *fakeNotifier) *Service {
	source := menu.NewStaticSource(menu.DefaultCatalog())
	return NewService(source, store, notifier, logger.New("order-test"))
}

func TestCreateOrder(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	s := newTestService(store, notifier)

	req := &Request{Lines: []RequestLine{
		{DishName: "kung pao chicken", Quantity: 2},
		{DishName: "wonton soup", Quantity: 1},
	}}
	resp, err := s.CreateOrder(context.Background(), req, "req-1")
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}

	// 2 x 13.25 + 9.00 = 35.50, tax 3.0175, total 38.52
	if resp.Subtotal != "35.50" {
		t.Errorf("subtotal = %s, want 35.50", resp.Subtotal)
	}
	if resp.Tax != "3.02" {
		t.Errorf("tax = %s, want 3.02", resp.Tax)
	}
	if resp.Total != "38.52" {
		t.Errorf("total = %s, want 38.52", resp.Total)
	}
	if resp.Status != models.StatusPending {
		t.Errorf("status = %s, want Pending", resp.Status)
	}

	if len(store.saved) != 2 {
		t.Fatalf("saved %d records, want one per line", len(store.saved))
	}
	if !strings.HasSuffix(store.saved[0].OrderID, "-1") || !strings.HasSuffix(store.saved[1].OrderID, "-2") {
		t.Errorf("line IDs = %s, %s, want shared ID with line suffixes",
			store.saved[0].OrderID, store.saved[1].OrderID)
	}
	if notifier.published != 2 {
		t.Errorf("published %d notifications, want one per line", notifier.published)
	}
}

func TestCreateOrderUnknownDish(t *testing.T) {
	store := &fakeStore{}
	s := newTestService(store, &fakeNotifier{})

	req := &Request{Lines: []RequestLine{
		{DishName: "kung pao chicken", Quantity: 1},
		{DishName: "Unicorn Stew", Quantity: 1},
	}}
	_, err := s.CreateOrder(context.Background(), req, "req-1")

	var unknown *UnknownDishError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want UnknownDishError", err)
	}
	if len(unknown.Dishes) != 1 || unknown.Dishes[0] != "Unicorn Stew" {
		t.Errorf("unknown dishes = %v", unknown.Dishes)
	}
	if len(store.saved) != 0 {
		t.Error("a rejected order must not be partially recorded")
	}
}

func TestCreateOrderValidation(t *testing.T) {
	s := newTestService(&fakeStore{}, &fakeNotifier{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"empty", &Request{}},
		{"missing dish", &Request{Lines: []RequestLine{{Quantity: 1}}}},
		{"zero quantity", &Request{Lines: []RequestLine{{DishName: "wonton soup"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.CreateOrder(context.Background(), tt.req, "req-1")
			var invalid *ValidationError
			if !errors.As(err, &invalid) {
				t.Errorf("error = %v, want ValidationError", err)
			}
		})
	}
}

func TestCreateOrderStoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	s := newTestService(store, &fakeNotifier{})

	req := &Request{Lines: []RequestLine{{DishName: "wonton soup", Quantity: 1}}}
	if _, err := s.CreateOrder(context.Background(), req, "req-1"); err == nil {
		t.Fatal("CreateOrder() must fail when persistence fails")
	}
}
