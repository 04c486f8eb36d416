package http

import (
	"net/http"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type createRestaurantRequest struct {
	Name         string `json:"name"         validate:"required"`
	Address      string `json:"address"      validate:"required"`
	CoverImage   string `json:"coverImage"   validate:"omitempty,url"`
	CategoryName string `json:"categoryName"`
}

type editRestaurantRequest struct {
	Name         *string `json:"name,omitempty"`
	Address      *string `json:"address,omitempty"`
	CoverImage   *string `json:"coverImage,omitempty"   validate:"omitempty,url"`
	CategoryName *string `json:"categoryName,omitempty"`
}

type dishChoiceRequest struct {
	Name  string           `json:"name"  validate:"required"`
	Extra *decimal.Decimal `json:"extra,omitempty"`
}

// dishOptionRequest is a flat modifier when Choices is empty and a choice
// group otherwise.
type dishOptionRequest struct {
	Name    string              `json:"name"              validate:"required"`
	Extra   *decimal.Decimal    `json:"extra,omitempty"`
	Choices []dishChoiceRequest `json:"choices,omitempty" validate:"dive"`
}

type createDishRequest struct {
	Name        string              `json:"name"        validate:"required"`
	Description string              `json:"description" validate:"min=5,max=140"`
	Photo       string              `json:"photo"       validate:"omitempty,url"`
	Price       decimal.Decimal     `json:"price"`
	Options     []dishOptionRequest `json:"options"     validate:"dive"`
}

type editDishRequest struct {
	Name        *string             `json:"name,omitempty"`
	Description *string             `json:"description,omitempty" validate:"omitempty,min=5,max=140"`
	Photo       *string             `json:"photo,omitempty"       validate:"omitempty,url"`
	Price       *decimal.Decimal    `json:"price,omitempty"`
	Options     []dishOptionRequest `json:"options,omitempty"     validate:"dive"`
}

func money(amount *decimal.Decimal) (kernel.Money, error) {
	if amount == nil {
		return kernel.ZeroMoney(), nil
	}
	m, err := kernel.NewMoney(*amount)
	if err != nil {
		return kernel.Money{}, badRequest("price", err)
	}
	return m, nil
}

func dishOptions(in []dishOptionRequest) ([]restaurant.Option, error) {
	options := make([]restaurant.Option, 0, len(in))
	for _, o := range in {
		if len(o.Choices) == 0 {
			extra, err := money(o.Extra)
			if err != nil {
				return nil, err
			}
			option, err := restaurant.NewFlatOption(o.Name, extra)
			if err != nil {
				return nil, err
			}
			options = append(options, option)
			continue
		}

		choices := make([]restaurant.Choice, 0, len(o.Choices))
		for _, ch := range o.Choices {
			extra, err := money(ch.Extra)
			if err != nil {
				return nil, err
			}
			choice, err := restaurant.NewChoice(ch.Name, extra)
			if err != nil {
				return nil, err
			}
			choices = append(choices, choice)
		}
		option, err := restaurant.NewChoiceOption(o.Name, choices)
		if err != nil {
			return nil, err
		}
		options = append(options, option)
	}
	return options, nil
}

func (s *Server) Restaurants(c echo.Context) error {
	page, err := queryPage(c)
	if err != nil {
		return err
	}
	query, err := queries.NewListRestaurantsQuery(page)
	if err != nil {
		return err
	}
	result, err := s.h.Restaurants.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(envelope{
		"page":         result.Page.Page,
		"totalPages":   result.TotalPages,
		"totalResults": result.TotalResults,
		"restaurants":  result.Restaurants,
	}))
}

func (s *Server) SearchRestaurants(c echo.Context) error {
	term, err := queryString(c, "query", true)
	if err != nil {
		return err
	}
	page, err := queryPage(c)
	if err != nil {
		return err
	}
	query, err := queries.NewSearchRestaurantsQuery(term, page)
	if err != nil {
		return err
	}
	result, err := s.h.SearchRestaurants.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(envelope{
		"page":         result.Page.Page,
		"totalPages":   result.TotalPages,
		"totalResults": result.TotalResults,
		"restaurants":  result.Restaurants,
	}))
}

func (s *Server) Restaurant(c echo.Context) error {
	id, err := pathUUID(c, "restaurantId")
	if err != nil {
		return err
	}
	query, err := queries.NewGetRestaurantQuery(id)
	if err != nil {
		return err
	}
	details, err := s.h.Restaurant.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(envelope{"restaurant": details}))
}

func (s *Server) Categories(c echo.Context) error {
	categories, err := s.h.Categories.Handle(c.Request().Context(), queries.NewListCategoriesQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(envelope{"categories": categories}))
}

func (s *Server) Category(c echo.Context) error {
	slug, err := pathString(c, "slug")
	if err != nil {
		return err
	}
	page, err := queryPage(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetCategoryQuery(slug, page)
	if err != nil {
		return err
	}
	result, err := s.h.Category.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(envelope{
		"category":     result.Category,
		"page":         result.Page.Page,
		"totalPages":   result.TotalPages,
		"totalResults": result.TotalResults,
		"restaurants":  result.Restaurants,
	}))
}

func (s *Server) CreateRestaurant(c echo.Context) error {
	var req createRestaurantRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateRestaurantCommand(
		kernel.NewUUID(), identityOf(c), req.Name, req.Address, req.CoverImage, req.CategoryName,
	)
	if err != nil {
		return err
	}
	if err := s.h.CreateRestaurant.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, success(envelope{"restaurantId": cmd.RestaurantID()}))
}

func (s *Server) EditRestaurant(c echo.Context) error {
	id, err := pathUUID(c, "restaurantId")
	if err != nil {
		return err
	}
	var req editRestaurantRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewEditRestaurantCommand(identityOf(c), id, commands.RestaurantChanges{
		Name:         req.Name,
		Address:      req.Address,
		CoverImage:   req.CoverImage,
		CategoryName: req.CategoryName,
	})
	if err != nil {
		return err
	}
	if err := s.h.EditRestaurant.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(nil))
}

func (s *Server) DeleteRestaurant(c echo.Context) error {
	id, err := pathUUID(c, "restaurantId")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteRestaurantCommand(identityOf(c), id)
	if err != nil {
		return err
	}
	if err := s.h.DeleteRestaurant.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(nil))
}

func (s *Server) CreateDish(c echo.Context) error {
	restaurantID, err := pathUUID(c, "restaurantId")
	if err != nil {
		return err
	}
	var req createDishRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	price, err := money(&req.Price)
	if err != nil {
		return err
	}
	options, err := dishOptions(req.Options)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreateDishCommand(kernel.NewUUID(), identityOf(c), restaurantID, commands.DishInput{
		Name:        req.Name,
		Description: req.Description,
		Photo:       req.Photo,
		Price:       price,
		Options:     options,
	})
	if err != nil {
		return err
	}
	if err := s.h.CreateDish.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, success(envelope{"dishId": cmd.DishID()}))
}

func (s *Server) EditDish(c echo.Context) error {
	dishID, err := pathUUID(c, "dishId")
	if err != nil {
		return err
	}
	var req editDishRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	changes := commands.DishChanges{
		Name:        req.Name,
		Description: req.Description,
		Photo:       req.Photo,
	}
	if req.Price != nil {
		price, err := money(req.Price)
		if err != nil {
			return err
		}
		changes.Price = &price
	}
	if req.Options != nil {
		if changes.Options, err = dishOptions(req.Options); err != nil {
			return err
		}
	}

	cmd, err := commands.NewEditDishCommand(identityOf(c), dishID, changes)
	if err != nil {
		return err
	}
	if err := s.h.EditDish.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(nil))
}

func (s *Server) DeleteDish(c echo.Context) error {
	dishID, err := pathUUID(c, "dishId")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteDishCommand(identityOf(c), dishID)
	if err != nil {
		return err
	}
	if err := s.h.DeleteDish.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(nil))
}
