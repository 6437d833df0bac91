package application

import (
	"context"
	"io"
	"time"
)

// TokenIssuer issues identity tokens for authenticated users.
type TokenIssuer interface {
	IssueDefault(subjectID, email, role string) (string, time.Time, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}

// EventPublisher delivers domain events to an external broker.
type EventPublisher interface {
	PublishJSON(ctx context.Context, eventType string, body any) error
}

// ResumeUploader stores resume files and returns a URL to them.
type ResumeUploader interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

func hashPassword(h PasswordHasher, plain string) (string, error) {
	if len(plain) > MaxPasswordBytes {
		return "", invalid(map[string]string{"Password": "must be at most 72 bytes"})
	}
	return h.Hash(plain)
}
