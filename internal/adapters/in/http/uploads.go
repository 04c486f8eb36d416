package http

import (
	"net/http"
	"path"
	"strings"

	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const uploadField = "file"

// Upload stores an image and returns its public URL.
func (s *Server) Upload(c echo.Context) error {
	if s.opts.Storage == nil {
		return echo.NewHTTPError(http.StatusNotImplemented, "uploads are disabled")
	}

	header, err := c.FormFile(uploadField)
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause(uploadField, err)
	}
	if header.Size > s.opts.MaxUploadSize {
		return errs.NewValueIsOutOfRangeError(uploadField, header.Size, 1, s.opts.MaxUploadSize)
	}
	contentType := header.Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, "image/") {
		return errs.NewValueIsInvalidError("file must be an image")
	}

	file, err := header.Open()
	if err != nil {
		return badRequest(uploadField, err)
	}
	defer file.Close()

	key := "uploads/" + kernel.NewUUID().String() + strings.ToLower(path.Ext(header.Filename))
	url, err := s.opts.Storage.Put(c.Request().Context(), key, contentType, file)
	if err != nil {
		return errs.Internal("could not store file", err)
	}
	return c.JSON(http.StatusCreated, success(envelope{"url": url}))
}

// RestaurantQRCode renders a PNG QR code pointing at the restaurant's menu.
func (s *Server) RestaurantQRCode(c echo.Context) error {
	if s.opts.QR == nil {
		return echo.NewHTTPError(http.StatusNotImplemented, "qr codes are disabled")
	}

	id, err := pathUUID(c, "restaurantId")
	if err != nil {
		return err
	}
	query, err := queries.NewGetRestaurantQuery(id)
	if err != nil {
		return err
	}
	if _, err := s.h.Restaurant.Handle(c.Request().Context(), query); err != nil {
		return err
	}

	png, err := s.opts.QR.PNG(menuURL(s.opts.PublicBaseURL, id))
	if err != nil {
		return errs.Internal("could not render qr code", err)
	}
	return c.Blob(http.StatusOK, "image/png", png)
}

func menuURL(base string, restaurantID kernel.UUID) string {
	return strings.TrimRight(base, "/") + "/restaurants/" + restaurantID.String()
}
