package dtos

import (
	"github.com/go-playground/validator/v10"

	"github.com/openjustice/courtadmin/modules/courts/domain/records"
	"github.com/openjustice/courtadmin/pkg/constants"
)

type GeneralDTO struct {
	Name         string `form:"name" validate:"required"`
	Info         string `form:"info" validate:"omitempty,max=4000"`
	Open         bool   `form:"open"`
	AccessScheme bool   `form:"accessScheme"`
	CSRF         string `form:"_csrf"`
}

var generalMessages = map[string]string{
	"Name": "Enter a name for the court or tribunal",
	"Info": "Additional information is too long",
}

// Ok validates the DTO and returns per-field messages keyed by field name.
func (d *GeneralDTO) Ok() (map[string]string, bool) {
	errs := map[string]string{}
	err := constants.Validate.Struct(d)
	if err == nil {
		return errs, true
	}
	for _, fieldErr := range err.(validator.ValidationErrors) {
		if msg, ok := generalMessages[fieldErr.Field()]; ok {
			errs[fieldErr.Field()] = msg
		} else {
			errs[fieldErr.Field()] = fieldErr.Error()
		}
	}
	return errs, len(errs) == 0
}

func (d *GeneralDTO) ToEntity() records.General {
	return records.General{
		Name:         d.Name,
		Info:         d.Info,
		Open:         d.Open,
		AccessScheme: d.AccessScheme,
	}
}
