package http

import (
	"errors"
	"net/http"

	"eats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// envelope is the body of every JSON response. ok is false exactly when
// error is set.
type envelope map[string]any

func success(fields envelope) envelope {
	body := envelope{"ok": true}
	for k, v := range fields {
		body[k] = v
	}
	return body
}

func failure(message string) envelope {
	return envelope{"ok": false, "error": message}
}

// statusOf maps an error kind to its HTTP status. Kinds expose their causes
// through errors.Is, so the order of the checks matters.
func statusOf(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrInternal):
		return http.StatusInternalServerError
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrConcurrentUpdate):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func messageOf(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
		return http.StatusText(httpErr.Code)
	}
	return errs.PublicMessage(err)
}

// badRequest classifies transport level input errors such as malformed JSON.
func badRequest(message string, cause error) error {
	return errs.NewValueIsInvalidErrorWithCause(message, cause)
}

// errorHandler renders every error returned by a handler as {ok:false,error}.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, failure(messageOf(err)))
	}
	if err != nil {
		s.logger.Error("failed to write error response", "error", err)
	}
}
