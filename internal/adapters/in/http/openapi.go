package http

import (
	"context"
	_ "embed"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var contractYAML []byte

// LoadContract parses and validates the embedded OpenAPI document.
func LoadContract(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(contractYAML)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, err
	}
	return doc, nil
}

// contractValidator rejects requests that do not match the OpenAPI document.
// Paths the document does not describe pass through untouched.
func contractValidator(router routers.Router) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
				},
			}
			// multipart bodies are checked by the upload handler
			if strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
				input.Options.ExcludeRequestBody = true
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return badRequest("request", err)
			}
			return next(c)
		}
	}
}

type swaggerDoc string

func (d swaggerDoc) ReadDoc() string {
	return string(d)
}

var registerSwaggerOnce sync.Once

// registerSwagger publishes doc to swag so echo-swagger can serve it. swag
// keeps a process wide registry, so only the first document wins.
func registerSwagger(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return err
	}
	registerSwaggerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc(raw))
	})
	return nil
}

func newContractRouter(doc *openapi3.T) (routers.Router, error) {
	return gorillamux.NewRouter(doc)
}
