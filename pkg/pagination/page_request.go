package pagination

import "github.com/litebase/csvpager/internal/validation"

type PageRequest struct {
	Page     int `json:"page" validate:"gt=0"`
	PageSize int `json:"page_size" validate:"gt=0"`
}

var pageRequestMessages = map[string]string{
	"page.gt":      "page must be a positive integer",
	"page_size.gt": "page_size must be a positive integer",
}

// NewPageRequest validates page and pageSize and returns the request, or an
// *InvalidArgumentError when either is not positive.
func NewPageRequest(page, pageSize int) (PageRequest, error) {
	request := PageRequest{Page: page, PageSize: pageSize}

	if err := request.Validate(); err != nil {
		return PageRequest{}, err
	}

	return request, nil
}

func (r PageRequest) Validate() error {
	if errors := validation.Validate(r, pageRequestMessages); errors != nil {
		return &InvalidArgumentError{Fields: errors}
	}

	return nil
}

// Range returns the index range of the request.
func (r PageRequest) Range() (start, end int) {
	return IndexRange(r.Page, r.PageSize)
}
