package queries

import (
	"eats/internal/pkg/errs"
)

// PageSize is the number of restaurants returned per page.
const PageSize = 25

// Page describes where a paginated result sits in the whole set.
type Page struct {
	Page         int   `json:"page"`
	TotalPages   int   `json:"totalPages"`
	TotalResults int64 `json:"totalResults"`
}

func newPage(page int, total int64) Page {
	return Page{
		Page:         page,
		TotalPages:   int((total + PageSize - 1) / PageSize),
		TotalResults: total,
	}
}

func validatePage(page int) error {
	if page < 1 {
		return errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}
	return nil
}

func pageOffset(page int) int {
	return (page - 1) * PageSize
}
