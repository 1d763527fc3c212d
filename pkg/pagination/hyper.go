package pagination

// Hyper is a page of rows together with the metadata a client needs to walk
// the neighbouring pages.
type Hyper struct {
	PageSize   int        `json:"page_size"`
	Page       int        `json:"page"`
	Data       [][]string `json:"data"`
	NextPage   *int       `json:"next_page"`
	PrevPage   *int       `json:"prev_page"`
	TotalPages int        `json:"total_pages"`
}

// NewHyper describes data as page r of a dataset holding total rows.
// PageSize reports the number of rows in data, not the requested size.
func NewHyper(r PageRequest, data [][]string, total int) Hyper {
	hyper := Hyper{
		PageSize:   len(data),
		Page:       r.Page,
		Data:       data,
		TotalPages: TotalPages(total, r.PageSize),
	}

	if r.Page < hyper.TotalPages {
		next := r.Page + 1
		hyper.NextPage = &next
	}

	if r.Page > 1 {
		prev := r.Page - 1
		hyper.PrevPage = &prev
	}

	return hyper
}
