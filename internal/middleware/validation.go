package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	apierrors "awreports/internal/errors"
	api "awreports/pkg/contracts/api/v1"
)

// Query parameter names accepted by the report endpoints
const (
	QueryParamYear   = "year"
	QueryParamFormat = "format"
)

// QueryValidator parses and validates report query parameters
type QueryValidator struct {
	validator *validator.Validate
	logger    *slog.Logger
}

// NewQueryValidator creates a validator that reports fields by their query name
func NewQueryValidator(logger *slog.Logger) *QueryValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &QueryValidator{
		validator: v,
		logger:    logger.With(slog.String("component", "query_validator")),
	}
}

// ParseReportQuery reads year and format from the URL. A year that is not an
// integer, or lies outside 1..9999, and an unknown format are validation errors.
func (v *QueryValidator) ParseReportQuery(r *http.Request) (api.ReportQuery, error) {
	var q api.ReportQuery
	values := r.URL.Query()

	if raw := strings.TrimSpace(values.Get(QueryParamYear)); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			v.logger.DebugContext(r.Context(), "invalid year parameter",
				slog.String("value", raw),
				slog.String("request_id", GetRequestID(r.Context())),
			)
			return api.ReportQuery{}, apierrors.ErrValidation(QueryParamYear, "year must be a valid integer")
		}
		q.Year = &year
	}

	q.Format = strings.ToLower(strings.TrimSpace(values.Get(QueryParamFormat)))

	if err := v.ValidateStruct(q); err != nil {
		return api.ReportQuery{}, err
	}
	return q, nil
}

// ValidateStruct validates a struct and returns validation errors.
// A single failing field is reported as {field, message}.
func (v *QueryValidator) ValidateStruct(s interface{}) error {
	err := v.validator.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apierrors.ErrInvalidRequest
	}

	validationErrors := make([]apierrors.ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		validationErrors = append(validationErrors, apierrors.ValidationError{
			Field:   fe.Field(),
			Message: formatValidationError(fe),
		})
	}

	if len(validationErrors) == 1 {
		return apierrors.ErrValidation(validationErrors[0].Field, validationErrors[0].Message)
	}
	return apierrors.NewValidationErrors(validationErrors)
}

// formatValidationError formats validation error messages
func formatValidationError(err validator.FieldError) string {
	field := err.Field()
	param := err.Param()

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(param, " ", ", "))
	default:
		return fmt.Sprintf("%s failed %s validation", field, err.Tag())
	}
}
