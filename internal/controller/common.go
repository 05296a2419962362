package controller

import (
	"errors"
	"fittrack_backend/internal/util"
)

func isValidationError(err error) bool {
	var ve *util.ValidationError
	return errors.As(err, &ve)
}
