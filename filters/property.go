// Package filters turns search parameters into store filters.
package filters

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrInvalidBound is wrapped by every bound that is not a base-10 integer.
var ErrInvalidBound = errors.New("filters: invalid numeric bound")

// InvalidBoundError names the offending query parameter.
type InvalidBoundError struct {
	Param string
	Value string
}

func (e *InvalidBoundError) Error() string {
	return fmt.Sprintf("%s must be an integer, got %q", e.Param, e.Value)
}

func (e *InvalidBoundError) Unwrap() error { return ErrInvalidBound }

// PropertyQuery carries the optional property search parameters exactly as
// received. Empty means absent.
type PropertyQuery struct {
	Type         string `query:"type"`
	MinPrice     string `query:"minPrice"`
	MaxPrice     string `query:"maxPrice"`
	MinBedrooms  string `query:"minBedrooms"`
	MaxBedrooms  string `query:"maxBedrooms"`
	MinBathrooms string `query:"minBathrooms"`
	MaxBathrooms string `query:"maxBathrooms"`
	MinSize      string `query:"minSize"`
	MaxSize      string `query:"maxSize"`
}

type rangeParam struct {
	field              string
	minName, maxName   string
	minValue, maxValue string
}

// Build returns the filter for q. Ranges are applied verbatim, so a minimum
// above its maximum yields a filter that matches nothing.
func Build(q PropertyQuery) (bson.M, error) {
	filter := bson.M{}

	if t := strings.TrimSpace(q.Type); t != "" {
		filter["type"] = t
	}

	ranges := []rangeParam{
		{field: "price", minName: "minPrice", maxName: "maxPrice", minValue: q.MinPrice, maxValue: q.MaxPrice},
		{field: "bedrooms", minName: "minBedrooms", maxName: "maxBedrooms", minValue: q.MinBedrooms, maxValue: q.MaxBedrooms},
		{field: "bathrooms", minName: "minBathrooms", maxName: "maxBathrooms", minValue: q.MinBathrooms, maxValue: q.MaxBathrooms},
		{field: "sizeSqft", minName: "minSize", maxName: "maxSize", minValue: q.MinSize, maxValue: q.MaxSize},
	}
	for _, r := range ranges {
		cond := bson.M{}
		if err := addBound(cond, "$gte", r.minName, r.minValue); err != nil {
			return nil, err
		}
		if err := addBound(cond, "$lte", r.maxName, r.maxValue); err != nil {
			return nil, err
		}
		if len(cond) > 0 {
			filter[r.field] = cond
		}
	}

	return filter, nil
}

func addBound(cond bson.M, op, param, raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return &InvalidBoundError{Param: param, Value: raw}
	}
	cond[op] = n
	return nil
}
