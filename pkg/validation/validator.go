package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/oksasatya/famjamjam/pkg/helpers"
)

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers famemail and famurl on top of the helpers' validators.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}

// Register installs the tag name func and custom tags on v.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})
	_ = v.RegisterValidation("famemail", func(fl validator.FieldLevel) bool {
		return helpers.IsValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("famurl", func(fl validator.FieldLevel) bool {
		return helpers.IsValidURL(fl.Field().String())
	})
	v.RegisterAlias("nonzero", "required")
}

// ToDetails converts validation/binding errors into a map[field]message suitable for API error.details.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "invalid json"}
	}
	var te *time.ParseError
	if errors.As(err, &te) {
		return map[string]string{"payload": "timestamps must be RFC 3339"}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fieldName(fe)] = formatFieldError(fe)
		}
		return out
	}

	return map[string]string{"payload": "invalid payload"}
}

// fieldName keeps the index for slice elements, e.g. "tags[2]".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()
	kind := fe.Kind()

	switch tag {
	case "required", "nonzero":
		return "is required"
	case "required_with":
		return "is required when " + param + " is present"
	case "email", "famemail":
		return "must be a valid email address"
	case "url", "famurl":
		return "must be a valid URL"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "unique":
		return "must not contain duplicates"
	case "datetime":
		return "must match the format " + param
	case "len":
		if kind == reflect.String {
			return fmt.Sprintf("must be exactly %s characters", param)
		}
		return fmt.Sprintf("must contain exactly %s items", param)
	case "min":
		switch {
		case kind == reflect.String:
			return fmt.Sprintf("must be at least %s characters", param)
		case kind == reflect.Slice || kind == reflect.Array || kind == reflect.Map:
			return fmt.Sprintf("must contain at least %s items", param)
		default:
			return "must be at least " + param
		}
	case "max":
		switch {
		case kind == reflect.String:
			return fmt.Sprintf("must be at most %s characters", param)
		case kind == reflect.Slice || kind == reflect.Array || kind == reflect.Map:
			return fmt.Sprintf("must contain at most %s items", param)
		default:
			return "must be at most " + param
		}
	case "gt":
		if isNumberKind(kind) {
			return "must be greater than " + param
		}
		return "must be after " + param
	case "gte":
		if isNumberKind(kind) {
			return "must be greater than or equal to " + param
		}
		return "must be on or after " + param
	case "lt":
		return "must be less than " + param
	case "lte":
		return "must be less than or equal to " + param
	default:
		if param != "" {
			return fmt.Sprintf("validation failed for '%s' with parameter '%s'", tag, param)
		}
		return fmt.Sprintf("validation failed for '%s'", tag)
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
