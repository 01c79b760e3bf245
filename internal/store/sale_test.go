package store

import (
	"sync"
	"testing"

	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillBasket(t *testing.T, s *Store) {
	t.Helper()
	require.NoError(t, s.AddProduct(simpleProduct("a", 10, nil)))
	require.NoError(t, s.AddProduct(simpleProduct("b", 20, nil)))
	require.NoError(t, s.AddToBasket("a", ""))
	require.NoError(t, s.AddToBasket("a", ""))
	require.NoError(t, s.AddToBasket("b", ""))
}

func TestCheckout(t *testing.T) {
	s := newTestStore(t)
	fillBasket(t, s)
	before := s.Basket()

	id, err := s.Checkout("Cash")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.True(t, s.Basket().IsEmpty())

	sale, err := s.Sale(id)
	require.NoError(t, err)
	assert.Equal(t, id, sale.TransactionID)
	assert.Equal(t, "40.00", sale.Total.StringFixed(2))
	assert.Equal(t, "Cash", sale.PaymentMethod)
	assert.Equal(t, fixedNow, sale.Date)
	assert.False(t, sale.Refunded)
	assert.Equal(t, before.Items, sale.Items)

	require.NoError(t, s.AddToBasket("a", ""))
	id2, err := s.Checkout("card")
	require.NoError(t, err)
	assert.NotEqual(t, id, id2)

	sale2, err := s.Sale(id2)
	require.NoError(t, err)
	assert.Equal(t, "Card", sale2.PaymentMethod, "registered spelling is recorded")
}

func TestCheckoutUniqueIDsByDefault(t *testing.T) {
	s := New()
	require.NoError(t, s.AddCategory(model.Category{ID: "drinks", Name: "Drinks"}))
	require.NoError(t, s.AddProduct(simpleProduct("a", 1, nil)))

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		require.NoError(t, s.AddToBasket("a", ""))
		id, err := s.Checkout("Cash")
		require.NoError(t, err)
		require.False(t, seen[id])
		seen[id] = true
	}
}

func TestCheckoutRejects(t *testing.T) {
	s := newTestStore(t, WithPaymentMethods(
		model.PaymentMethod{ID: "cash", Name: "Cash", Enabled: false},
	))

	_, err := s.Checkout("Cash")
	assert.ErrorIs(t, err, model.ErrEmptyBasket)

	fillBasket(t, s)
	_, err = s.Checkout("Cash")
	assert.ErrorIs(t, err, model.ErrPaymentMethodUnavailable)
	_, err = s.Checkout("Voucher")
	assert.ErrorIs(t, err, model.ErrPaymentMethodUnavailable)

	assert.Len(t, s.Basket().Items, 2, "failed checkout leaves the basket alone")
	assert.Empty(t, s.Sales())
}

func TestCheckoutRejectsReusedID(t *testing.T) {
	s := newTestStore(t, WithIDGenerator(func() string { return "same" }))
	fillBasket(t, s)
	_, err := s.Checkout("Cash")
	require.NoError(t, err)

	require.NoError(t, s.AddToBasket("a", ""))
	_, err = s.Checkout("Cash")
	assert.ErrorIs(t, err, model.ErrDuplicateID)
	assert.Len(t, s.Sales(), 1)
}

func TestSaleIsIndependentOfLaterChanges(t *testing.T) {
	s := newTestStore(t)
	fillBasket(t, s)
	id, err := s.Checkout("Cash")
	require.NoError(t, err)
	original, err := s.Sale(id)
	require.NoError(t, err)

	p, err := s.Product("a")
	require.NoError(t, err)
	p.Price = decimal.NewFromInt(999)
	require.NoError(t, s.UpdateProduct(p))
	require.NoError(t, s.AddToBasket("a", ""))
	require.NoError(t, s.SetBasketQuantity(model.BasketKey{ProductID: "a"}, 5))

	snapshot := s.Sales()
	snapshot[0].Items[0].Quantity = 1000

	after, err := s.Sale(id)
	require.NoError(t, err)
	assert.Equal(t, original, after)
	assert.True(t, after.Total.Equal(decimal.NewFromInt(40)))
}

func TestRefundSale(t *testing.T) {
	s := newTestStore(t)
	fillBasket(t, s)
	id, err := s.Checkout("Cash")
	require.NoError(t, err)

	require.NoError(t, s.RefundSale(id, "defective"))

	sale, err := s.Sale(id)
	require.NoError(t, err)
	assert.True(t, sale.Refunded)
	assert.Equal(t, "defective", sale.RefundReason)
	require.NotNil(t, sale.RefundedAt)
	assert.Equal(t, fixedNow, *sale.RefundedAt)
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(40)))
	assert.Len(t, sale.Items, 2)

	err = s.RefundSale(id, "again")
	assert.ErrorIs(t, err, model.ErrAlreadyRefunded)
	sale, _ = s.Sale(id)
	assert.Equal(t, "defective", sale.RefundReason)

	assert.ErrorIs(t, s.RefundSale("ghost", "x"), model.ErrSaleNotFound)
	assert.ErrorIs(t, s.RefundSale(id, "  "), model.ErrInvalid)
}

func TestConcurrentCheckoutKeepsInvariants(t *testing.T) {
	s := New()
	require.NoError(t, s.AddCategory(model.Category{ID: "drinks", Name: "Drinks"}))
	require.NoError(t, s.AddProduct(simpleProduct("a", 2, nil)))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				_ = s.AddToBasket("a", "")
				_, _ = s.Checkout("Cash")
			}
		}()
	}
	wg.Wait()

	units := s.Basket().Units()
	for _, sale := range s.Sales() {
		require.Len(t, sale.Items, 1)
		assert.True(t, sale.Total.Equal(model.SumItems(sale.Items)))
		units += sale.Items[0].Quantity
	}
	assert.Equal(t, 200, units, "every added unit ends up in exactly one place")
}

func TestCheckoutTenderedRefusesShortPayment(t *testing.T) {
	s := newTestStore(t)
	fillBasket(t, s)

	_, err := s.CheckoutTendered("Cash", decimal.NewFromInt(39))
	assert.ErrorIs(t, err, model.ErrInsufficientTender)
	assert.Len(t, s.Basket().Items, 2)
	assert.Empty(t, s.Sales())

	id, err := s.CheckoutTendered("Cash", decimal.NewFromInt(40))
	require.NoError(t, err)
	sale, err := s.Sale(id)
	require.NoError(t, err)
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(40)))
}

func TestConcurrentTenderNeverCoversLess(t *testing.T) {
	s := New()
	require.NoError(t, s.AddCategory(model.Category{ID: "drinks", Name: "Drinks"}))
	require.NoError(t, s.AddProduct(simpleProduct("a", 10, nil)))
	tendered := decimal.NewFromInt(10)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = s.AddToBasket("a", "")
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = s.CheckoutTendered("Cash", tendered)
			}
		}()
	}
	wg.Wait()

	units := s.Basket().Units()
	for _, sale := range s.Sales() {
		assert.False(t, sale.Total.GreaterThan(tendered), "sale %s total %s", sale.ID, sale.Total)
		units += sale.Items[0].Quantity
	}
	assert.Equal(t, 200, units)
}
