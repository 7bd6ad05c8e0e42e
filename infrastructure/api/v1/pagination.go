package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/openmeta/omrest/application/service"
	"github.com/openmeta/omrest/infrastructure/api/middleware"
)

// DefaultPageSize is the default number of items per page.
const DefaultPageSize = 100

// MaxPageSize is the default upper bound on pageSize.
const MaxPageSize = 1000

// Paging bounds the startFrom and pageSize query parameters.
type Paging struct {
	defaultSize int
	maxSize     int
}

// NewPaging creates paging limits. Non-positive values fall back to the defaults.
func NewPaging(defaultSize, maxSize int) Paging {
	if maxSize < 1 {
		maxSize = MaxPageSize
	}
	if defaultSize < 1 {
		defaultSize = DefaultPageSize
	}
	return Paging{
		defaultSize: min(defaultSize, maxSize),
		maxSize:     maxSize,
	}
}

// DefaultPaging returns paging limits with the package defaults.
func DefaultPaging() Paging {
	return NewPaging(DefaultPageSize, MaxPageSize)
}

// DefaultSize returns the page size used when a request names none.
func (p Paging) DefaultSize() int { return p.defaultSize }

// MaxSize returns the largest accepted page size.
func (p Paging) MaxSize() int { return p.maxSize }

// Parse reads startFrom and pageSize from the request query.
// Defaults: startFrom=0, pageSize=DefaultSize. A pageSize of 0 means the default.
// Negative values, non-numbers and sizes above MaxSize are rejected.
func (p Paging) Parse(r *http.Request) (service.Page, error) {
	page := service.Page{Limit: p.defaultSize}

	query := r.URL.Query()
	if s := query.Get("startFrom"); s != "" {
		start, err := strconv.Atoi(s)
		if err != nil || start < 0 {
			return service.Page{}, middleware.NewAPIError(http.StatusBadRequest,
				fmt.Sprintf("startFrom must be a non-negative integer, got %q", s), err)
		}
		page.Offset = start
	}

	if s := query.Get("pageSize"); s != "" {
		size, err := strconv.Atoi(s)
		if err != nil || size < 0 {
			return service.Page{}, middleware.NewAPIError(http.StatusBadRequest,
				fmt.Sprintf("pageSize must be a non-negative integer, got %q", s), err)
		}
		if size > p.maxSize {
			return service.Page{}, middleware.NewAPIError(http.StatusBadRequest,
				fmt.Sprintf("pageSize %d exceeds the maximum of %d", size, p.maxSize), nil)
		}
		if size > 0 {
			page.Limit = size
		}
	}

	return page, nil
}
