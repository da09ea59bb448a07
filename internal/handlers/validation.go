package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/rewipay-ledger/internal/logger"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Use JSON tag names in error details
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Compare decimals numerically in gt/gte rules
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return v
}

// validationDetails converts validator errors into a map keyed by the JSON
// path of each failing field.
func validationDetails(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}

		switch fe.Tag() {
		case "required":
			details[field] = "This field is required"
		case "min":
			details[field] = "Must contain at least " + fe.Param() + " element(s)"
		case "gt":
			details[field] = "Value must be greater than " + fe.Param()
		case "gte":
			details[field] = "Value must be at least " + fe.Param()
		default:
			details[field] = "Invalid value"
		}
	}
	return details
}

// decodeRequest decodes the JSON body into dst and validates it. On failure
// it writes a 400 response and returns false.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Log.Warnw("failed to decode request", "uri", r.RequestURI, "error", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return false
	}

	if err := validate.Struct(dst); err != nil {
		logger.Log.Warnw("request validation failed", "uri", r.RequestURI, "error", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request",
			Details: validationDetails(err),
		})
		return false
	}
	return true
}
