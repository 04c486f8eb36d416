package restaurant

import (
	"errors"
	"fmt"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")

// OptionKind distinguishes the two shapes of a dish option.
type OptionKind int

const (
	// FlatModifier adds a fixed extra when selected.
	FlatModifier OptionKind = iota + 1
	// ChoiceGroup adds the extra of the chosen named choice.
	ChoiceGroup
)

// Choice is one named alternative inside a ChoiceGroup option.
type Choice struct {
	name  string
	extra kernel.Money
}

// NewChoice creates a choice; extra may be zero.
func NewChoice(name string, extra kernel.Money) (Choice, error) {
	if err := errors.Join(requireText("choice name", name), extra.Validate()); err != nil {
		return Choice{}, err
	}
	return Choice{name: name, extra: extra}, nil
}

func (c Choice) Name() string {
	return c.name
}

func (c Choice) Extra() kernel.Money {
	return c.extra
}

// Option is a customisation axis of a dish.
type Option struct {
	name    string
	kind    OptionKind
	extra   kernel.Money
	choices []Choice
}

// NewFlatOption creates a flat modifier such as "Pickle +1".
func NewFlatOption(name string, extra kernel.Money) (Option, error) {
	if err := errors.Join(requireText("option name", name), extra.Validate()); err != nil {
		return Option{}, err
	}
	return Option{name: name, kind: FlatModifier, extra: extra}, nil
}

// NewChoiceOption creates a choice group such as "Size: S/M/L". Choice names
// must be unique within the group.
func NewChoiceOption(name string, choices []Choice) (Option, error) {
	if err := requireText("option name", name); err != nil {
		return Option{}, err
	}
	if len(choices) == 0 {
		return Option{}, errs.NewValueIsRequiredError("choices")
	}
	seen := make(map[string]struct{}, len(choices))
	for _, c := range choices {
		if _, dup := seen[c.name]; dup {
			return Option{}, errs.NewValueIsInvalidErrorWithCause("choices", fmt.Errorf("duplicate choice %q", c.name))
		}
		seen[c.name] = struct{}{}
	}
	return Option{name: name, kind: ChoiceGroup, choices: append([]Choice(nil), choices...)}, nil
}

func (o Option) Name() string {
	return o.name
}

func (o Option) Kind() OptionKind {
	return o.kind
}

// Extra is the fixed extra of a FlatModifier; zero for a ChoiceGroup.
func (o Option) Extra() kernel.Money {
	if o.kind != FlatModifier {
		return kernel.ZeroMoney()
	}
	return o.extra
}

// Choices returns a copy of the group's choices; nil for a FlatModifier.
func (o Option) Choices() []Choice {
	return append([]Choice(nil), o.choices...)
}

// FindChoice looks a choice up by name.
func (o Option) FindChoice(name string) (Choice, bool) {
	for _, c := range o.choices {
		if c.name == name {
			return c, true
		}
	}
	return Choice{}, false
}

// Dish is a menu entry of exactly one restaurant.
type Dish struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	description  string
	photo        string
	price        kernel.Money
	options      []Option

	isConstructed bool
}

// NewDish validates the dish and its options. Option names must be unique.
func NewDish(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	description string,
	photo string,
	price kernel.Money,
	options []Option,
) (*Dish, error) {
	d := &Dish{isConstructed: true, photo: photo}

	if err := errors.Join(
		d.setID(id),
		d.setRestaurantID(restaurantID),
		d.setName(name),
		d.setDescription(description),
		d.setPrice(price),
		d.setOptions(options),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

func (d *Dish) ID() kernel.UUID {
	return d.id
}

func (d *Dish) RestaurantID() kernel.UUID {
	return d.restaurantID
}

func (d *Dish) Name() string {
	return d.name
}

func (d *Dish) Description() string {
	return d.description
}

func (d *Dish) Photo() string {
	return d.photo
}

func (d *Dish) Price() kernel.Money {
	return d.price
}

// Options returns the option definitions in menu order.
func (d *Dish) Options() []Option {
	return append([]Option(nil), d.options...)
}

// FindOption looks an option definition up by name.
func (d *Dish) FindOption(name string) (Option, bool) {
	for _, o := range d.options {
		if o.name == name {
			return o, true
		}
	}
	return Option{}, false
}

// Edit applies the non-nil fields. Orders already placed keep the price they
// were created with.
func (d *Dish) Edit(name, description, photo *string, price *kernel.Money, options []Option) error {
	var errList []error
	if name != nil {
		errList = append(errList, d.setName(*name))
	}
	if description != nil {
		errList = append(errList, d.setDescription(*description))
	}
	if photo != nil {
		d.photo = *photo
	}
	if price != nil {
		errList = append(errList, d.setPrice(*price))
	}
	if options != nil {
		errList = append(errList, d.setOptions(options))
	}
	return errors.Join(errList...)
}

func (d *Dish) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dish) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant", err)
	}
	d.restaurantID = id
	return nil
}

func (d *Dish) setName(name string) error {
	if len(name) < 5 {
		return errs.NewValueIsInvalidErrorWithCause("name", fmt.Errorf("%q is shorter than 5 characters", name))
	}
	d.name = name
	return nil
}

func (d *Dish) setDescription(description string) error {
	if len(description) < 5 || len(description) > 140 {
		return errs.NewValueIsOutOfRangeError("description length", len(description), 5, 140)
	}
	d.description = description
	return nil
}

func (d *Dish) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("price", err)
	}
	d.price = price
	return nil
}

func (d *Dish) setOptions(options []Option) error {
	seen := make(map[string]struct{}, len(options))
	for _, o := range options {
		if o.kind != FlatModifier && o.kind != ChoiceGroup {
			return errs.NewValueIsInvalidErrorWithCause("options", fmt.Errorf("option %q was not constructed", o.name))
		}
		if _, dup := seen[o.name]; dup {
			return errs.NewValueIsInvalidErrorWithCause("options", fmt.Errorf("duplicate option %q", o.name))
		}
		seen[o.name] = struct{}{}
	}
	d.options = append([]Option(nil), options...)
	return nil
}
