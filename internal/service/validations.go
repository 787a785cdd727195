package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/JuliPapp/Redimfinal-sub000/internal/error_values"
	"github.com/JuliPapp/Redimfinal-sub000/internal/scheduling"
	"github.com/JuliPapp/Redimfinal-sub000/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		// 24h HH:MM
		validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			_, _, err := scheduling.ParseClock(fl.Field().String())
			return err == nil
		})
		// Roles open to self registration
		validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
			switch entity.Role(fl.Field().String()) {
			case entity.RoleDisciple, entity.RoleLeader:
				return true
			}
			return false
		})
		validate.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			switch entity.Theme(fl.Field().String()) {
			case entity.ThemeLight, entity.ThemeDark, entity.ThemeSystem:
				return true
			}
			return false
		})
	})
}

// validateStruct wraps validation failures into ErrValidation, one line per field.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errors.New("validation unexpected error: " + err.Error())
	}
	fields := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s failed on %s", fieldErr.Namespace(), fieldErr.Tag()))
	}
	return fmt.Errorf("%w: %s", errorvalues.ErrValidation, strings.Join(fields, "; "))
}
