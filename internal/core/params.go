package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jellydator/validation"
)

const (
	defaultPage      int64 = 1
	defaultPageSize  int64 = 10
	defaultSortBy          = "timestamp"
	defaultSortOrder       = "desc"
)

// Params are the named arguments of a call. Numbers are kept as json.Number
// until they are bound to a statement.
type Params map[string]any

// DecodeParams decodes the params member of a request. Anything other than a
// JSON object is rejected.
func DecodeParams(raw json.RawMessage) (Params, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrParamsNotObject
	}

	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()

	var params Params
	if err := decoder.Decode(&params); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	return params, nil
}

// has reports whether key holds a truthy value: anything except a missing
// key, null, false, zero and the empty string.
func (p Params) has(key string) bool {
	return truthy(p[key])
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case float64:
		return t != 0 && !math.IsNaN(t)
	case int64:
		return t != 0
	case int:
		return t != 0
	default:
		return true
	}
}

// arg returns the value of key converted for binding to a statement.
func (p Params) arg(key string) (any, error) {
	return bindValue(p[key])
}

// args returns the bind values of keys in order. Missing keys bind as NULL.
func (p Params) args(keys []string) ([]any, error) {
	values := make([]any, len(keys))
	for i, key := range keys {
		v, err := p.arg(key)
		if err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
		values[i] = v
	}
	return values, nil
}

func bindValue(v any) (any, error) {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", t.String(), err)
		}
		return f, nil
	case map[string]any, []any:
		b, err := json.Marshal(t)
		if err != nil {
			return nil, fmt.Errorf("encode nested value: %w", err)
		}
		return string(b), nil
	default:
		return v, nil
	}
}

func (p Params) intOr(key string, fallback int64) (int64, error) {
	switch t := p[key].(type) {
	case nil:
		return fallback, nil
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			return 0, fmt.Errorf("%s: must be an integer", key)
		}
		return i, nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: must be an integer", key)
		}
		return i, nil
	case int64:
		return t, nil
	case int:
		return int64(t), nil
	default:
		return 0, fmt.Errorf("%s: must be an integer", key)
	}
}

func (p Params) stringOr(key, fallback string) (string, error) {
	switch t := p[key].(type) {
	case nil:
		return fallback, nil
	case string:
		return t, nil
	default:
		return "", fmt.Errorf("%s: must be a string", key)
	}
}

type pageOptions struct {
	Page     int64 `json:"page"`
	PageSize int64 `json:"pageSize"`
}

func (p Params) pageOptions() (pageOptions, error) {
	page, err := p.intOr("page", defaultPage)
	if err != nil {
		return pageOptions{}, err
	}
	size, err := p.intOr("pageSize", defaultPageSize)
	if err != nil {
		return pageOptions{}, err
	}

	opts := pageOptions{Page: page, PageSize: size}
	return opts, opts.Validate()
}

func (o pageOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Page, validation.Required.Error("must be no less than 1"), validation.Min(int64(1))),
		validation.Field(&o.PageSize, validation.Required.Error("must be no less than 1"), validation.Min(int64(1))),
	)
}

func (o pageOptions) offset() int64 {
	return (o.Page - 1) * o.PageSize
}

type sortOptions struct {
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
}

// sortOptions reads sortBy and sortOrder. sortBy must name a column of t, so
// both values are safe to write into the statement text.
func (p Params) sortOptions(t table) (sortOptions, error) {
	by, err := p.stringOr("sortBy", defaultSortBy)
	if err != nil {
		return sortOptions{}, err
	}
	order, err := p.stringOr("sortOrder", defaultSortOrder)
	if err != nil {
		return sortOptions{}, err
	}

	opts := sortOptions{SortBy: by, SortOrder: strings.ToLower(order)}
	err = validation.ValidateStruct(&opts,
		validation.Field(&opts.SortBy, validation.Required, validation.In(t.columnValues()...)),
		validation.Field(&opts.SortOrder, validation.Required, validation.In("asc", "desc")),
	)
	return opts, err
}

func (o sortOptions) clause() string {
	return o.SortBy + " " + strings.ToUpper(o.SortOrder)
}
