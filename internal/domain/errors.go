package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrActionNotAllowed   = errors.New("action not available in current dev stage")
	ErrAppNotFound        = errors.New("app not found")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrDeployNotReady     = errors.New("app is not ready to deploy")
	ErrDuplicateLink      = errors.New("link with this url already exists")
	ErrIdeaNotFound       = errors.New("idea not found")
	ErrInvalidIdeaStatus  = errors.New("invalid idea status")
	ErrInvalidPriority    = errors.New("invalid bug priority")
	ErrInvalidStage       = errors.New("invalid dev stage")
	ErrInvalidStatus      = errors.New("invalid app status")
	ErrTodoNotFound       = errors.New("todo not found")
)

func invalidValue(err error, value string) error {
	return fmt.Errorf("%w: %q", err, value)
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
