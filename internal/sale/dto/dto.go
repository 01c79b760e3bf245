package dto

type SaleFilters struct {
	RefundedOnly bool
}
