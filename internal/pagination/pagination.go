package pagination

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	// DefaultPage is the page returned when the query string names none.
	DefaultPage = 1
	// DefaultSize is the page size applied when the query string names none.
	DefaultSize = 50
)

// Params selects one page of a listing.
type Params struct {
	Page int
	Size int
}

// Page is the envelope returned by paginated listings.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
	Pages int `json:"pages"`
}

// FromQuery parses page and size from raw query values, applying defaults.
// page must be an integer >= 1 and size an integer >= 0.
func FromQuery(values url.Values) (Params, error) {
	params := Params{Page: DefaultPage, Size: DefaultSize}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return Params{}, fmt.Errorf("page must be an integer greater than 0")
		}
		params.Page = page
	}

	if raw := values.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 0 {
			return Params{}, fmt.Errorf("size must be an integer greater than or equal to 0")
		}
		params.Size = size
	}

	return params, nil
}

// Paginate slices items into the page selected by params. Out-of-range pages
// yield an empty item list, never an error. Pages is 0 when the listing is
// empty or the size is 0.
func Paginate[T any](items []T, params Params) *Page[T] {
	total := len(items)

	pages := 0
	if total > 0 && params.Size > 0 {
		pages = total / params.Size
		if total%params.Size != 0 {
			pages++
		}
	}

	// Compute offsets only for pages that exist; an arbitrarily large page or
	// size must yield the empty page, not wrap the arithmetic.
	start, end := 0, 0
	if params.Size > 0 && params.Page <= pages {
		start = (params.Page - 1) * params.Size
		end = start + params.Size
		if end > total {
			end = total
		}
	}

	pageItems := items[start:end]
	if pageItems == nil {
		// An empty page still serializes as a JSON array.
		pageItems = []T{}
	}

	return &Page[T]{
		Items: pageItems,
		Total: total,
		Page:  params.Page,
		Size:  params.Size,
		Pages: pages,
	}
}
