package handler

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/peve-dev/peve-backend/internal/domain"
)

// RegisterValidators adds the domain tags used in binding rules to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	if err := v.RegisterValidation("target_type", func(fl validator.FieldLevel) bool {
		return domain.TargetType(fl.Field().String()).IsValid()
	}); err != nil {
		return err
	}

	return v.RegisterValidation("collab_status", func(fl validator.FieldLevel) bool {
		switch domain.CollaborationStatus(fl.Field().String()) {
		case domain.CollaborationAccepted, domain.CollaborationDeclined:
			return true
		default:
			return false
		}
	})
}
