package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// trans is the singleton English translator for validation errors.
var trans ut.Translator

// structValidator validates plain structs (form payloads) outside of a
// gin binding context. Uses `validate` tags.
var structValidator *govalidator.Validate

// Setup registers English translations on Gin's binding engine and on
// the standalone struct validator. Call once during startup.
func Setup() {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ = uni.GetTranslator("en")

	jsonTagName := func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	}

	if v, ok := binding.Validator.Engine().(*govalidator.Validate); ok {
		v.RegisterTagNameFunc(jsonTagName)
		en_translations.RegisterDefaultTranslations(v, trans)
	}

	structValidator = govalidator.New()
	structValidator.RegisterTagNameFunc(jsonTagName)
	en_translations.RegisterDefaultTranslations(structValidator, trans)
}

// TranslateErrors takes a binding/validation error and returns a map of
// field name → human-readable message. Non-validation errors (e.g. JSON
// syntax errors) come back under a single "detail" key.
func TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(trans)
		}
		return fields
	}

	fields["detail"] = err.Error()
	return fields
}

// Bind binds and validates the request body into dst.
// Returns nil on success or a translated field error map on failure.
func Bind(c *gin.Context, dst interface{}) map[string]string {
	if err := c.ShouldBindJSON(dst); err != nil {
		return TranslateErrors(err)
	}
	return nil
}

// Struct validates dst against its `validate` tags.
// Returns nil on success or a translated field error map on failure.
func Struct(dst interface{}) map[string]string {
	if structValidator == nil {
		Setup()
	}
	if err := structValidator.Struct(dst); err != nil {
		return TranslateErrors(err)
	}
	return nil
}
