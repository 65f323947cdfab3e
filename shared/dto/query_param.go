package dto

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries ordering and an optional row cap for list queries.
// Page is only honoured together with Limit.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

func SortedBy(column, direction string) QueryParams {
	return QueryParams{
		SortBy:  column,
		SortDir: direction,
	}
}
