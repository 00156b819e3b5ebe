package dashboard

import (
	"errors"
	"strings"

	"projectboard/internal/config"
	"projectboard/internal/domain/models"
	"projectboard/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func validateCreateRequest(req *services.CreateProjectRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.ClientName,
			validation.Required,
			validation.Length(1, config.MaxClientNameLength),
			validation.By(notBlank),
		),
		validation.Field(&req.Description, validation.Length(0, config.MaxDescriptionLength)),
		validation.Field(&req.Status, validation.Required, validation.By(knownStatus)),
	)
}

func validateUpdateRequest(req *services.UpdateProjectRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.ClientName,
			validation.NilOrNotEmpty,
			validation.Length(1, config.MaxClientNameLength),
			validation.By(notBlank),
		),
		validation.Field(&req.Description, validation.Length(0, config.MaxDescriptionLength)),
		validation.Field(&req.Status, validation.NilOrNotEmpty, validation.By(knownStatus)),
	)
}

// notBlank rejects values that are empty after trimming
func notBlank(value interface{}) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return errors.New("must be a string")
	}
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

func knownStatus(value interface{}) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	status, ok := v.(models.Status)
	if !ok {
		return errors.New("must be a status")
	}
	if status == "" || status.IsValid() {
		return nil
	}
	return errors.New("must be one of PAYMENT_CONFIRMED, ONBOARDING, COPY, DESIGN, DEVELOPMENT, COMPLETED")
}
