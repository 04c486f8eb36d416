package restaurant

import (
	"errors"
	"fmt"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// PromotionPeriod is how long a paid promotion keeps a restaurant on top of listings.
const PromotionPeriod = 7 * 24 * time.Hour

var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is owned by exactly one Owner user. Ownership decides who may edit
// the restaurant, manage its dishes, cook its orders and pay for promotion.
type Restaurant struct {
	id            kernel.UUID
	ownerID       kernel.UUID
	categoryID    *kernel.UUID
	name          string
	address       string
	coverImage    string
	promotedUntil *time.Time

	isConstructed bool
}

// NewRestaurant registers a restaurant for ownerID. categoryID may be nil.
func NewRestaurant(
	id kernel.UUID,
	ownerID kernel.UUID,
	categoryID *kernel.UUID,
	name string,
	address string,
	coverImage string,
) (*Restaurant, error) {
	r := &Restaurant{isConstructed: true, coverImage: coverImage}

	if err := errors.Join(
		r.setID(id),
		r.setOwnerID(ownerID),
		r.setCategoryID(categoryID),
		r.setName(name),
		r.setAddress(address),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRestaurant rebuilds a stored restaurant including its promotion state.
func RestoreRestaurant(
	id, ownerID kernel.UUID,
	categoryID *kernel.UUID,
	name, address, coverImage string,
	promotedUntil *time.Time,
) (*Restaurant, error) {
	r, err := NewRestaurant(id, ownerID, categoryID, name, address, coverImage)
	if err != nil {
		return nil, err
	}
	r.promotedUntil = promotedUntil
	return r, nil
}

func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

func (r *Restaurant) CategoryID() *kernel.UUID {
	return r.categoryID
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) Address() string {
	return r.address
}

func (r *Restaurant) CoverImage() string {
	return r.coverImage
}

func (r *Restaurant) PromotedUntil() *time.Time {
	return r.promotedUntil
}

// IsOwnedBy reports whether userID owns the restaurant.
func (r *Restaurant) IsOwnedBy(userID kernel.UUID) bool {
	return r.ownerID.IsEqual(userID)
}

// IsPromoted reports whether a promotion is running at now.
func (r *Restaurant) IsPromoted(now time.Time) bool {
	return r.promotedUntil != nil && now.Before(*r.promotedUntil)
}

// Promote starts (or restarts) a PromotionPeriod beginning at now.
func (r *Restaurant) Promote(now time.Time) {
	until := now.Add(PromotionPeriod)
	r.promotedUntil = &until
}

// ExpirePromotion clears a promotion that ended at or before now and reports
// whether anything changed.
func (r *Restaurant) ExpirePromotion(now time.Time) bool {
	if r.promotedUntil == nil || now.Before(*r.promotedUntil) {
		return false
	}
	r.promotedUntil = nil
	return true
}

// Edit applies the non-nil fields.
func (r *Restaurant) Edit(name, address, coverImage *string, categoryID *kernel.UUID) error {
	var errList []error
	if name != nil {
		errList = append(errList, r.setName(*name))
	}
	if address != nil {
		errList = append(errList, r.setAddress(*address))
	}
	if coverImage != nil {
		r.coverImage = *coverImage
	}
	if categoryID != nil {
		errList = append(errList, r.setCategoryID(categoryID))
	}
	return errors.Join(errList...)
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	r.ownerID = ownerID
	return nil
}

func (r *Restaurant) setCategoryID(categoryID *kernel.UUID) error {
	if categoryID != nil {
		if err := categoryID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("category", err)
		}
		id := *categoryID
		categoryID = &id
	}
	r.categoryID = categoryID
	return nil
}

func (r *Restaurant) setName(name string) error {
	if len(name) < 5 {
		return errs.NewValueIsInvalidErrorWithCause("name", fmt.Errorf("%q is shorter than 5 characters", name))
	}
	r.name = name
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	if err := requireText("address", address); err != nil {
		return err
	}
	r.address = address
	return nil
}
