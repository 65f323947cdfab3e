package shared

import (
	"context"
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"fmt"
	"math"
	"reflect"
	"skyline/shared/cache"
	"skyline/shared/constant"
	"skyline/shared/dto"
	"skyline/shared/failure"
	"skyline/shared/timezone"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// ParseOptionalBool reads a boolean query value. An empty value means the filter is absent.
func ParseOptionalBool(field, value string) (*bool, error) {
	if value == "" {
		return nil, nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return nil, failure.BadRequestFromString(field + " must be true or false") //nolint:wrapcheck
	}

	return &boolValue, nil
}

// ParseOptionalFloat reads a numeric query value. An empty value means the filter is absent.
func ParseOptionalFloat(field, value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}

	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(floatValue) || math.IsInf(floatValue, 0) {
		return nil, failure.BadRequestFromString(field + " must be a number") //nolint:wrapcheck
	}

	return &floatValue, nil
}

// ParseOptionalEnum reads a closed-set query value such as a room type.
func ParseOptionalEnum[T interface {
	~string
	Valid() bool
}](field, value string) (*T, error) {
	if value == "" {
		return nil, nil
	}

	enum := T(value)
	if !enum.Valid() {
		return nil, failure.BadRequestFromString(fmt.Sprintf("%s has an invalid value %s", field, value)) //nolint:wrapcheck
	}

	return &enum, nil
}

func Ptr[T any](value T) *T {
	return &value
}

// TransformFields converts the fields of a struct into a map of updated fields.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

// IsEmptyUpdate reports whether TransformFields found nothing besides the audit columns.
func IsEmptyUpdate(fields map[string]any) bool {
	for field := range fields {
		if field != constant.FieldModifiedAt && field != constant.FieldModifiedBy {
			return false
		}
	}

	return true
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a stable key from the rendered filter and ordering.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	raw := fmt.Sprintf("%s|%v|%s|%s|%d|%d", where, args, params.SortBy, params.SortDir, params.Page, params.Limit)
	sum := sha1.Sum([]byte(raw)) //nolint:gosec

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:]))
}

func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Wildcard); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
