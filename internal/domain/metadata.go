package domain

// Metadata describes the page a paginated query returned.
type Metadata struct {
	CurrentPage  int
	FirstPage    int
	LastPage     int
	PageSize     int
	TotalRecords int
}

// NewMetadata builds page metadata. LastPage is 0 when there are no records.
func NewMetadata(totalRecords, page, pageSize int) *Metadata {
	lastPage := 0
	if pageSize > 0 {
		lastPage = (totalRecords + pageSize - 1) / pageSize
	}

	return &Metadata{
		CurrentPage:  page,
		FirstPage:    1,
		LastPage:     lastPage,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
	}
}
