package order

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// ItemOption is a selected dish option: the option name and, for choice
// groups, the chosen choice name.
type ItemOption struct {
	Name   string
	Choice *string
}

// Item is one dish selection within an order. It keeps the line price computed
// when the order was placed so later menu edits never change the order.
type Item struct {
	dishID    kernel.UUID
	options   []ItemOption
	linePrice kernel.Money
}

// NewItem validates a line. Option names must not be empty.
func NewItem(dishID kernel.UUID, options []ItemOption, linePrice kernel.Money) (Item, error) {
	if err := errors.Join(dishID.Validate(), linePrice.Validate()); err != nil {
		return Item{}, err
	}
	for _, o := range options {
		if o.Name == "" {
			return Item{}, errs.NewValueIsRequiredError("option name")
		}
	}
	return Item{dishID: dishID, options: append([]ItemOption(nil), options...), linePrice: linePrice}, nil
}

func (i Item) DishID() kernel.UUID {
	return i.dishID
}

func (i Item) Options() []ItemOption {
	return append([]ItemOption(nil), i.options...)
}

func (i Item) LinePrice() kernel.Money {
	return i.linePrice
}
