package domain

// MaxPage bounds the page number so that Offset cannot overflow for any
// allowed page size.
const MaxPage = 1_000_000

type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) Limit() int {
	return p.PageSize
}

func (p Pagination) Offset() int {
	page := min(max(p.Page, 1), MaxPage)
	return (page - 1) * p.PageSize
}

type Metadata struct {
	CurrentPage  int
	FirstPage    int
	LastPage     int
	PageSize     int
	TotalRecords int
}

func NewMetadata(totalRecords, page, pageSize int) *Metadata {
	if pageSize <= 0 {
		return &Metadata{CurrentPage: page, FirstPage: 1, TotalRecords: totalRecords}
	}

	return &Metadata{
		CurrentPage:  page,
		FirstPage:    1,
		LastPage:     (totalRecords + pageSize - 1) / pageSize,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
	}
}
