package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func init() {
	// Pakai nama json tag sebagai nama field di pesan error
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validation for UUID
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		if id, ok := fl.Field().Interface().(uuid.UUID); ok {
			return id != uuid.Nil
		}
		return false
	})

	// priceformat: angka dengan pemisah ribuan titik, mis. "15.000"
	validate.RegisterValidation("priceformat", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return false
		}
		for _, r := range s {
			if (r < '0' || r > '9') && r != '.' {
				return false
			}
		}
		return strings.Trim(s, ".") != ""
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.Field()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}

// ValidateStructLocalized validates data and translates failures through a
// message catalog keyed "field.tag" (e.g. "nama.required"). Failures on slice
// elements (tag dive) dicari dengan kunci "field.*.tag" dan dilaporkan di
// bawah nama field induknya. Fields missing from the catalog get a generic
// fallback so no failure is silently dropped. Returns nil when everything
// passes.
func ValidateStructLocalized(data interface{}, messages map[string]string) map[string]string {
	errs := ValidateStruct(data)
	if len(errs) == 0 {
		return nil
	}

	fieldErrs := make(map[string]string, len(errs))
	for _, e := range errs {
		field := e.FailedField
		key := field + "." + e.Tag
		if i := strings.IndexByte(field, '['); i >= 0 {
			// "kategoris[0]" dilaporkan sebagai "kategoris"
			field = field[:i]
			key = field + ".*." + e.Tag
		}

		if _, taken := fieldErrs[field]; taken {
			continue // hanya pesan pertama per field yang dipakai
		}
		if msg, ok := messages[key]; ok {
			fieldErrs[field] = msg
		} else {
			fieldErrs[field] = fmt.Sprintf("Field %s tidak valid (%s).", field, e.Tag)
		}
	}
	return fieldErrs
}
