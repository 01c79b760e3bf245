package dto

type ProductFilters struct {
	CategoryID  string
	SearchQuery string // case-insensitive match on name
	Page        int
	PageSize    int // 0 returns everything
}
