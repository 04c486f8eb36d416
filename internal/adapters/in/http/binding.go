package http

import (
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// requestValidator plugs go-playground/validator into echo.
type requestValidator struct {
	v *validator.Validate
}

func newRequestValidator() *requestValidator {
	return &requestValidator{v: validator.New(validator.WithRequiredStructEnabled())}
}

func (rv *requestValidator) Validate(i any) error {
	if err := rv.v.Struct(i); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request", err)
	}
	return nil
}

// bindBody decodes the JSON body into dst and validates it.
func bindBody(c echo.Context, dst any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return badRequest("body", err)
	}
	return c.Validate(dst)
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var raw string
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, badRequest(name, err)
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, badRequest(name, err)
	}
	return id, nil
}

func pathString(c echo.Context, name string) (string, error) {
	var raw string
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", badRequest(name, err)
	}
	return raw, nil
}

// queryPage reads the optional page parameter; pages start at 1.
func queryPage(c echo.Context) (int, error) {
	var page *int
	if err := runtime.BindQueryParameter("form", true, false, "page", c.QueryParams(), &page); err != nil {
		return 0, badRequest("page", err)
	}
	if page == nil {
		return 1, nil
	}
	return *page, nil
}

func queryString(c echo.Context, name string, required bool) (string, error) {
	var value *string
	if err := runtime.BindQueryParameter("form", true, required, name, c.QueryParams(), &value); err != nil {
		return "", badRequest(name, err)
	}
	if value == nil {
		return "", nil
	}
	return strings.TrimSpace(*value), nil
}
