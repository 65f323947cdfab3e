package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"skyline/shared/base64"
	"skyline/shared/constant"
	"skyline/shared/failure"
	"slices"
	"strconv"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// enumeration is implemented by the typed string enums of the domain models.
type enumeration interface {
	Valid() bool
}

func registerEnumValidation(field val.FieldLevel) bool {
	value := field.Field()

	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return true
		}

		value = value.Elem()
	}

	if enum, ok := value.Interface().(enumeration); ok {
		return enum.Valid()
	}

	return false
}

func registerMimetypeValidation(field val.FieldLevel) bool {
	var contentType string

	switch value := field.Field().Interface().(type) {
	case multipart.FileHeader:
		contentType = value.Header.Get(constant.RequestHeaderContentType)
	case string:
		contentType = base64.GetContentType(value)
	}

	if contentType == "" {
		return false
	}

	allowedTypes := strings.Split(field.Param(), " ")

	return slices.Contains(allowedTypes, contentType)
}

func registerFileSizeValidation(field val.FieldLevel) bool {
	fileSize := 0

	switch value := field.Field().Interface().(type) {
	case multipart.FileHeader:
		fileSize = int(value.Size)
	case string:
		fileSize = base64.DecodedLen(value)
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0
	maxSizeBytes := int(maxSizeMB * bytesConversion * bytesConversion)

	return fileSize <= maxSizeBytes
}

// fieldName reports fields by their JSON (or multipart form) name so messages match the request.
func fieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name != constant.Empty && name != "-" {
		return name
	}

	return field.Tag.Get("form")
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)

	validations := map[string]val.Func{
		"enum":        registerEnumValidation,
		"empty":       func(fl val.FieldLevel) bool { return fl.Field().IsZero() },
		"mimetypes":   registerMimetypeValidation,
		"maxfilesize": registerFileSizeValidation,
	}

	for tag, fn := range validations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Normalizer is implemented by requests that clean their input (trimming, lowercasing)
// before the validation rules run.
type Normalizer interface {
	Normalize()
}

// Validate decodes JSON from r into data, normalises it when data is a Normalizer, and
// checks the validation rules. https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	if n, ok := any(data).(Normalizer); ok {
		n.Normalize()
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
