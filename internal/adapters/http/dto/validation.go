package dto

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/wine-collection-service/internal/domain"
)

var (
	// ErrValidation wraps validator failures returned by Validate.
	ErrValidation = errors.New("validation failed")

	// ErrBinding wraps malformed JSON bodies and unparsable query values.
	ErrBinding = errors.New("binding failed")
)

// Validator returns the shared validator. Field names in its errors are the
// json names, or the form names for query structs.
var Validator = sync.OnceValue(func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(wireName)

	_ = v.RegisterValidation("winestyle", validateWineStyle)
	_ = v.RegisterValidation("httpurl", validateHTTPURL)
	_ = v.RegisterValidation("imageext", validateImageExt)

	return v
})

func wireName(fld reflect.StructField) string {
	for _, key := range []string{"json", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
		switch name {
		case "":
			continue
		case "-":
			return ""
		default:
			return name
		}
	}

	return ""
}

// Validate runs the struct tags of v.
func Validate(v any) error {
	if err := Validator().Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}

// BindAndValidate decodes the JSON body into v, then validates it.
func BindAndValidate(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return Validate(v)
}

// BindQueryAndValidate decodes the query string into v, then validates it.
func BindQueryAndValidate(c *gin.Context, v any) error {
	if err := c.ShouldBindQuery(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return Validate(v)
}

// IsValidationError reports whether err carries validator field errors.
func IsValidationError(err error) bool {
	var fieldErrs validator.ValidationErrors
	return errors.As(err, &fieldErrs)
}

// ValidationErrors flattens validator field errors into a map keyed by the
// JSON path below the request root, such as "wineBottles[1].year".
func ValidationErrors(err error) map[string]string {
	out := make(map[string]string)

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return out
	}

	for _, fe := range fieldErrs {
		key := fe.Field()
		if _, rest, ok := strings.Cut(fe.Namespace(), "."); ok {
			key = rest
		}

		out[key] = describe(fe)
	}

	return out
}

func describe(fe validator.FieldError) string {
	p := fe.Param()

	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}

	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return "must be at least " + p + unit
	case "max":
		return "must be at most " + p + unit
	case "gte":
		return "must be greater than or equal to " + p
	case "lte":
		return "must be less than or equal to " + p
	case "gt":
		return "must be greater than " + p
	case "lt":
		return "must be less than " + p
	case "oneof":
		return "must be one of: " + p
	case "number":
		return "must be a whole number"
	case "winestyle":
		return "must be one of: " + styleList()
	case "httpurl":
		return "must be an absolute http or https URL"
	case "imageext":
		return "must be a .jpg or .png file"
	default:
		return "failed validation: " + fe.Tag()
	}
}

func styleList() string {
	styles := domain.WineStyles()

	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = s.String()
	}

	return strings.Join(names, ", ")
}

// validateWineStyle accepts a style name in any letter case.
func validateWineStyle(fl validator.FieldLevel) bool {
	_, err := domain.ParseWineStyle(fl.Field().String())
	return err == nil
}

// allowedImageExts lists accepted image extensions, lower case with the dot.
var allowedImageExts = []string{".jpg", ".png"}

// validateHTTPURL accepts an empty string or an absolute URL with an
// http or https scheme and a host.
func validateHTTPURL(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	u, err := url.Parse(value)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return false
	}

	scheme := strings.ToLower(u.Scheme)

	return scheme == "http" || scheme == "https"
}

// validateImageExt accepts an empty string or a file name or URL ending in
// one of allowedImageExts, in any letter case.
func validateImageExt(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	return slices.Contains(allowedImageExts, strings.ToLower(path.Ext(value)))
}
