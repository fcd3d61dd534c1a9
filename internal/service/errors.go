package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrUpstream     = errors.New("upstream service failure")
	ErrEmptyArchive = errors.New("no submissions to archive")
	ErrUnauthorized = errors.New("invalid credentials")

	// ErrFetchFailed marks a single image download that failed while archiving.
	// The archiver absorbs it; callers never see it.
	ErrFetchFailed = errors.New("image fetch failed")
)

// notFoundOr maps gorm.ErrRecordNotFound onto ErrNotFound and wraps anything else.
func notFoundOr(err error, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", msg, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
