package ports

import (
	"context"
	"io"
)

// Mailer sends transactional e-mail.
type Mailer interface {
	SendVerification(ctx context.Context, email, code string) error
}

// ObjectStorage stores uploaded files and returns their public URL.
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}
