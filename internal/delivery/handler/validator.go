package handler

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
)

// RequestValidator plugs validator/v10 into echo's Validator hook. Failures
// surface as the domain's invalid request error so the usual mapping applies.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return fmt.Errorf("%w: %v", entities.ErrInvalidRequest, err)
	}
	return nil
}
