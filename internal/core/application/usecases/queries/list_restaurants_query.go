package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrListRestaurantsQueryIsNotConstructed = errors.New(
		"ListRestaurantsQuery must be created via NewListRestaurantsQuery constructor",
	)
	ErrSearchRestaurantsQueryIsNotConstructed = errors.New(
		"SearchRestaurantsQuery must be created via NewSearchRestaurantsQuery constructor",
	)
)

// ListRestaurantsQuery pages through the whole catalog, promoted restaurants first.
type ListRestaurantsQuery struct {
	page  int
	guard guard.ConstructorGuard
}

func NewListRestaurantsQuery(page int) (ListRestaurantsQuery, error) {
	if err := validatePage(page); err != nil {
		return ListRestaurantsQuery{}, err
	}
	return ListRestaurantsQuery{page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q ListRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrListRestaurantsQueryIsNotConstructed)
}

func (q ListRestaurantsQuery) Page() int {
	return q.page
}

// SearchRestaurantsQuery matches restaurant names case-insensitively.
type SearchRestaurantsQuery struct {
	term  string
	page  int
	guard guard.ConstructorGuard
}

func NewSearchRestaurantsQuery(term string, page int) (SearchRestaurantsQuery, error) {
	term = strings.TrimSpace(term)
	var termErr error
	if term == "" {
		termErr = errs.NewValueIsRequiredError("query")
	}
	if err := errors.Join(termErr, validatePage(page)); err != nil {
		return SearchRestaurantsQuery{}, err
	}
	return SearchRestaurantsQuery{term: term, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q SearchRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrSearchRestaurantsQueryIsNotConstructed)
}

func (q SearchRestaurantsQuery) Term() string {
	return q.term
}

func (q SearchRestaurantsQuery) Page() int {
	return q.page
}

type ListRestaurantsQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewListRestaurantsQueryHandler(db *gorm.DB) ListRestaurantsQueryHandler {
	return ListRestaurantsQueryHandler{db: db, now: time.Now}
}

func (h ListRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query ListRestaurantsQuery,
) (page RestaurantPage, err error) {
	defer func() { err = errs.Internal("could not load restaurants", err) }()

	if err = query.Validate(); err != nil {
		return RestaurantPage{}, err
	}
	return listRestaurants(ctx, h.db, h.now(), query.Page(), "1 = 1")
}

type SearchRestaurantsQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSearchRestaurantsQueryHandler(db *gorm.DB) SearchRestaurantsQueryHandler {
	return SearchRestaurantsQueryHandler{db: db, now: time.Now}
}

func (h SearchRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query SearchRestaurantsQuery,
) (page RestaurantPage, err error) {
	defer func() { err = errs.Internal("could not search restaurants", err) }()

	if err = query.Validate(); err != nil {
		return RestaurantPage{}, err
	}
	pattern := "%" + escapeLike(strings.ToLower(query.Term())) + "%"
	return listRestaurants(ctx, h.db, h.now(), query.Page(), `LOWER(name) LIKE ? ESCAPE '\'`, pattern)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(s)
}
