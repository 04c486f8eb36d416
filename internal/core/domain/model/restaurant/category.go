package restaurant

import (
	"errors"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// Category groups restaurants for browsing.
type Category struct {
	id         kernel.UUID
	name       string
	slug       string
	coverImage string

	isConstructed bool
}

// NormalizeCategoryName lower-cases and trims raw and derives the slug by
// replacing spaces with dashes.
func NormalizeCategoryName(raw string) (name string, slug string) {
	name = strings.ToLower(strings.TrimSpace(raw))
	slug = strings.ReplaceAll(name, " ", "-")
	return name, slug
}

// NewCategory creates a category from a user supplied name.
func NewCategory(id kernel.UUID, rawName string, coverImage string) (*Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	name, slug := NormalizeCategoryName(rawName)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("category name")
	}
	return &Category{id: id, name: name, slug: slug, coverImage: coverImage, isConstructed: true}, nil
}

// RestoreCategory rebuilds a stored category without renormalising it.
func RestoreCategory(id kernel.UUID, name, slug, coverImage string) (*Category, error) {
	if err := errors.Join(id.Validate(), requireText("category name", name), requireText("slug", slug)); err != nil {
		return nil, err
	}
	return &Category{id: id, name: name, slug: slug, coverImage: coverImage, isConstructed: true}, nil
}

func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

func (c *Category) ID() kernel.UUID {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Slug() string {
	return c.slug
}

func (c *Category) CoverImage() string {
	return c.coverImage
}

func requireText(param, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
