// Package validator provides custom validation functions for Gin's binding engine
// and maps validation failures onto per-field messages.
package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	apperrors "budgetdash/internal/errors"
	"budgetdash/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonName)
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		v.RegisterCustomTypeFunc(amountValue, models.Amount{})
		_ = v.RegisterValidation("month_key", validateMonthKey)
		_ = v.RegisterValidation("iso_date", validateISODate)
		_ = v.RegisterValidation("expense_category", validateExpenseCategory)
	}
}

// Struct validates obj against its binding tags. Failures come back as a
// VALIDATION_ERROR AppError with one message per field.
func Struct(obj any) error {
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return Translate(err)
	}
	return nil
}

// Translate converts a binding or validation error into a VALIDATION_ERROR
// AppError. Errors that are already AppErrors pass through.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	// A value of the wrong JSON type is reported against its field.
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field := typeErr.Field[strings.LastIndex(typeErr.Field, ".")+1:]
		msg := message(field, "type", "")
		out := apperrors.WithFields(apperrors.WithMessage(apperrors.ErrValidation, msg), map[string]string{field: msg})
		out.Internal = err
		return out
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.Wrap(apperrors.WithMessage(apperrors.ErrValidation, "Invalid request body"), err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; !seen {
			fields[fe.Field()] = message(fe.Field(), fe.Tag(), fe.Param())
		}
	}

	out := apperrors.WithFields(apperrors.ErrValidation, fields)
	if len(verrs) == 1 {
		out.Message = fields[verrs[0].Field()]
	}
	return out
}

func message(field, tag, param string) string {
	switch field {
	case "description":
		if tag == "max" {
			return fmt.Sprintf("Description must be at most %s characters.", param)
		}
		return "Description is required."
	case "amount":
		return "Valid amount is required."
	case "category":
		if tag == "expense_category" {
			return "Category must be one of " + categoryList() + "."
		}
		return "Category is required."
	case "date":
		if tag == "iso_date" {
			return "Date must be in YYYY-MM-DD format."
		}
		return "Date is required."
	case "limitAmount":
		return "Please enter a valid budget amount greater than zero."
	case "month":
		return "Month must be in YYYY-MM format."
	case "username":
		if tag == "required" {
			return "Username is required."
		}
		return "Username must be between 3 and 50 characters."
	case "email":
		return "A valid email is required."
	case "password":
		if tag == "required" {
			return "Password is required."
		}
		return "Password must be at least 6 characters."
	}
	return fmt.Sprintf("%s is invalid.", field)
}

func categoryList() string {
	names := make([]string, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// decimalValue lets numeric tags such as gt=0 apply to decimal fields.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// amountValue exposes a valid Amount as a number. An invalid Amount has no
// value, so required fails on it.
func amountValue(field reflect.Value) interface{} {
	if a, ok := field.Interface().(models.Amount); ok && a.Valid {
		f, _ := a.Value.Float64()
		return f
	}
	return nil
}

func validateMonthKey(fl validator.FieldLevel) bool {
	_, err := models.ParseMonth(fl.Field().String())
	return err == nil
}

func validateISODate(fl validator.FieldLevel) bool {
	_, ok := models.ParseDay(fl.Field().String())
	return ok
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).IsKnown()
}
