package services

import (
	"fmt"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"
)

// PriceCalculator prices dish selections.
//
// A line costs the dish base price plus, for every selected option that
// matches a dish option by name, that option's own extra: the fixed extra of a
// flat modifier or the extra of the chosen choice of a choice group. Each
// matched option is added exactly once. Unmatched options add nothing.
//
// Example:
//
//	// base 10, Size=L (+4), Pickle (+1)
//	price := calculator.ComputeLinePrice(dish, []order.ItemOption{
//	    {Name: "Size", Choice: &large},
//	    {Name: "Pickle"},
//	}) // 15
type PriceCalculator struct{}

func NewPriceCalculator() PriceCalculator {
	return PriceCalculator{}
}

// ComputeLinePrice returns the price of one item of dish with selected options.
func (PriceCalculator) ComputeLinePrice(dish *restaurant.Dish, selected []order.ItemOption) kernel.Money {
	price := dish.Price()
	for _, sel := range selected {
		price = price.Add(extraFor(dish, sel))
	}
	return price
}

// ComputeTotal sums the line prices of items.
func (PriceCalculator) ComputeTotal(items []order.Item) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.LinePrice())
	}
	return total
}

// ValidateSelection checks that every selected option exists on dish and that
// choice groups name one of their choices. Pricing itself tolerates unknown
// options; order creation does not.
func (PriceCalculator) ValidateSelection(dish *restaurant.Dish, selected []order.ItemOption) error {
	for _, sel := range selected {
		opt, ok := dish.FindOption(sel.Name)
		if !ok {
			return errs.NewValueIsInvalidErrorWithCause("options",
				fmt.Errorf("dish %q has no option %q", dish.Name(), sel.Name))
		}
		if opt.Kind() != restaurant.ChoiceGroup {
			continue
		}
		if sel.Choice == nil {
			return errs.NewValueIsRequiredErrorWithCause("choice",
				fmt.Errorf("option %q needs a choice", sel.Name))
		}
		if _, ok := opt.FindChoice(*sel.Choice); !ok {
			return errs.NewValueIsInvalidErrorWithCause("choice",
				fmt.Errorf("option %q has no choice %q", sel.Name, *sel.Choice))
		}
	}
	return nil
}

func extraFor(dish *restaurant.Dish, sel order.ItemOption) kernel.Money {
	opt, ok := dish.FindOption(sel.Name)
	if !ok {
		return kernel.ZeroMoney()
	}
	switch opt.Kind() {
	case restaurant.FlatModifier:
		return opt.Extra()
	case restaurant.ChoiceGroup:
		if sel.Choice == nil {
			return kernel.ZeroMoney()
		}
		if choice, found := opt.FindChoice(*sel.Choice); found {
			return choice.Extra()
		}
	}
	return kernel.ZeroMoney()
}
