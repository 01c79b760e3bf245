// Package store holds the register's entire domain state: catalog,
// categories, the active basket, payment methods, the sales ledger and
// display settings. A Store is the only mutator of that state; every
// operation runs under one lock and every read returns a copy.
package store

import (
	"sync"
	"time"

	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Store struct {
	mu             sync.RWMutex
	products       []model.Product
	categories     []model.Category
	basket         []model.BasketItem
	paymentMethods []model.PaymentMethod
	sales          []model.Sale
	settings       model.Settings

	newID func() string
	now   func() time.Time
}

type Option func(*Store)

// WithIDGenerator overrides how transaction ids are minted.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithSettings(settings model.Settings) Option {
	return func(s *Store) { s.settings = settings }
}

// WithPaymentMethods replaces the default Cash and Card methods.
func WithPaymentMethods(methods ...model.PaymentMethod) Option {
	return func(s *Store) {
		s.paymentMethods = append([]model.PaymentMethod{}, methods...)
	}
}

// WithDemoCatalog seeds two categories and one product in each.
func WithDemoCatalog() Option {
	return func(s *Store) {
		s.categories = []model.Category{
			{ID: "1", Name: "Category 1"},
			{ID: "2", Name: "Category 2"},
		}
		s.products = []model.Product{
			{ID: "1", Name: "Product 1", Price: decimal.NewFromInt(10), CategoryID: "1"},
			{ID: "2", Name: "Product 2", Price: decimal.NewFromInt(20), CategoryID: "2"},
		}
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		paymentMethods: []model.PaymentMethod{
			{ID: "cash", Name: model.CashMethodName, Enabled: true},
			{ID: "card", Name: "Card", Enabled: true},
		},
		settings: model.Settings{
			SiteName: model.DefaultSiteName,
			Currency: model.DefaultCurrency,
		},
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
