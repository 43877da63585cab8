package dto

// ListResponse wraps a listing with its total count.
type ListResponse struct {
	List  interface{} `json:"list"`
	Total int         `json:"total"`
}
