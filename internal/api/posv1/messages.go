// Package posv1 declares the register's gRPC surface: request and response
// messages, service descriptors, registration helpers and typed clients.
// Messages travel as JSON (see internal/pkg/rpc); money is a decimal string.
package posv1

import "google.golang.org/protobuf/types/known/timestamppb"

type Category struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	ProductCount int32  `json:"product_count,omitempty"`
}

type Product struct {
	Id            string              `json:"id"`
	Name          string              `json:"name"`
	Price         string              `json:"price"`
	CategoryId    string              `json:"category_id"`
	HasVariations bool                `json:"has_variations"`
	Stock         *int32              `json:"stock,omitempty"`
	TotalStock    int32               `json:"total_stock"`
	Variations    []*ProductVariation `json:"variations,omitempty"`
}

type ProductVariation struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Stock int32  `json:"stock"`
}

type BasketItem struct {
	ProductId     string `json:"product_id"`
	Name          string `json:"name"`
	VariationId   string `json:"variation_id,omitempty"`
	VariationName string `json:"variation_name,omitempty"`
	Price         string `json:"price"`
	Quantity      int32  `json:"quantity"`
	LineTotal     string `json:"line_total"`
}

type Basket struct {
	Items []*BasketItem `json:"items"`
	Total string        `json:"total"`
	Units int32         `json:"units"`
}

type Sale struct {
	Id            string                 `json:"id"`
	TransactionId string                 `json:"transaction_id"`
	Items         []*BasketItem          `json:"items"`
	Total         string                 `json:"total"`
	PaymentMethod string                 `json:"payment_method"`
	Date          *timestamppb.Timestamp `json:"date"`
	Refunded      bool                   `json:"refunded"`
	RefundReason  string                 `json:"refund_reason,omitempty"`
	RefundedAt    *timestamppb.Timestamp `json:"refunded_at,omitempty"`
}

type Receipt struct {
	TransactionId string                 `json:"transaction_id"`
	SiteName      string                 `json:"site_name"`
	Currency      string                 `json:"currency"`
	Items         []*BasketItem          `json:"items"`
	Total         string                 `json:"total"`
	PaymentMethod string                 `json:"payment_method"`
	AmountPaid    string                 `json:"amount_paid"`
	Change        string                 `json:"change"`
	Date          *timestamppb.Timestamp `json:"date"`
}

type SalesSummary struct {
	Count         int32  `json:"count"`
	RefundedCount int32  `json:"refunded_count"`
	Gross         string `json:"gross"`
	Refunded      string `json:"refunded"`
	Net           string `json:"net"`
}

type PaymentMethod struct {
	Id      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

type Settings struct {
	SiteName            string   `json:"site_name"`
	Currency            string   `json:"currency"`
	SupportedCurrencies []string `json:"supported_currencies"`
}

// Category service

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

type GetCategoryRequest struct {
	Id string `json:"id"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []*Category `json:"categories"`
	Total      int32       `json:"total"`
}

type UpdateCategoryRequest struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type DeleteCategoryRequest struct {
	Id string `json:"id"`
}

type CategoryResponse struct {
	Category *Category `json:"category"`
}

// Product service

type CreateProductRequest struct {
	Name          string `json:"name"`
	Price         string `json:"price"`
	CategoryId    string `json:"category_id"`
	HasVariations bool   `json:"has_variations"`
	Stock         *int32 `json:"stock,omitempty"`
}

type GetProductRequest struct {
	Id string `json:"id"`
}

type ListProductsRequest struct {
	CategoryId string `json:"category_id,omitempty"`
	Query      string `json:"query,omitempty"`
	Page       int32  `json:"page,omitempty"`
	PageSize   int32  `json:"page_size,omitempty"`
}

type ListProductsResponse struct {
	Products []*Product `json:"products"`
	Total    int32      `json:"total"`
	Page     int32      `json:"page"`
	PageSize int32      `json:"page_size"`
}

// UpdateProductRequest replaces the whole product record.
type UpdateProductRequest struct {
	Id            string              `json:"id"`
	Name          string              `json:"name"`
	Price         string              `json:"price"`
	CategoryId    string              `json:"category_id"`
	HasVariations bool                `json:"has_variations"`
	Stock         *int32              `json:"stock,omitempty"`
	Variations    []*ProductVariation `json:"variations,omitempty"`
}

type DeleteProductRequest struct {
	Id string `json:"id"`
}

type ProductResponse struct {
	Product *Product `json:"product"`
}

// Inventory service

type AddVariationRequest struct {
	ProductId string `json:"product_id"`
	Name      string `json:"name"`
	Stock     int32  `json:"stock"`
}

type UpdateVariationRequest struct {
	ProductId string `json:"product_id"`
	Id        string `json:"id"`
	Name      string `json:"name"`
	Stock     int32  `json:"stock"`
}

type RemoveVariationRequest struct {
	ProductId string `json:"product_id"`
	Id        string `json:"id"`
}

type VariationResponse struct {
	Variation *ProductVariation `json:"variation"`
}

type ToggleVariationsRequest struct {
	ProductId string `json:"product_id"`
}

type GetStockRequest struct {
	ProductId string `json:"product_id"`
}

type GetStockResponse struct {
	ProductId     string              `json:"product_id"`
	HasVariations bool                `json:"has_variations"`
	TotalStock    int32               `json:"total_stock"`
	Variations    []*ProductVariation `json:"variations,omitempty"`
}

// Basket service

type GetBasketRequest struct{}

type AddItemRequest struct {
	ProductId   string `json:"product_id"`
	VariationId string `json:"variation_id,omitempty"`
}

type RemoveItemRequest struct {
	ProductId   string `json:"product_id"`
	VariationId string `json:"variation_id,omitempty"`
}

type SetQuantityRequest struct {
	ProductId   string `json:"product_id"`
	VariationId string `json:"variation_id,omitempty"`
	Quantity    int32  `json:"quantity"`
}

type ClearBasketRequest struct{}

type BasketResponse struct {
	Basket *Basket `json:"basket"`
}

type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method"`
	// AmountPaid is optional; empty means the exact total was tendered.
	AmountPaid string `json:"amount_paid,omitempty"`
}

type CheckoutResponse struct {
	TransactionId string   `json:"transaction_id"`
	Receipt       *Receipt `json:"receipt"`
}

// Sale service

type ListSalesRequest struct {
	RefundedOnly bool `json:"refunded_only,omitempty"`
}

type ListSalesResponse struct {
	Sales []*Sale `json:"sales"`
	Total int32   `json:"total"`
}

type GetSaleRequest struct {
	Id string `json:"id"`
}

type RefundSaleRequest struct {
	Id     string `json:"id"`
	Reason string `json:"reason"`
}

type SaleResponse struct {
	Sale *Sale `json:"sale"`
}

type GetSummaryRequest struct{}

type SummaryResponse struct {
	Summary *SalesSummary `json:"summary"`
}

// Payment method service

type CreatePaymentMethodRequest struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

type ListPaymentMethodsRequest struct {
	EnabledOnly bool `json:"enabled_only,omitempty"`
}

type ListPaymentMethodsResponse struct {
	PaymentMethods []*PaymentMethod `json:"payment_methods"`
}

type UpdatePaymentMethodRequest struct {
	Id      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

type DeletePaymentMethodRequest struct {
	Id string `json:"id"`
}

type PaymentMethodResponse struct {
	PaymentMethod *PaymentMethod `json:"payment_method"`
}

// Settings service

type GetSettingsRequest struct{}

type UpdateSiteNameRequest struct {
	SiteName string `json:"site_name"`
}

type UpdateCurrencyRequest struct {
	Currency string `json:"currency"`
}

type SettingsResponse struct {
	Settings *Settings `json:"settings"`
}
