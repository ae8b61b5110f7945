// AngelaMos | 2026
// dto.go

package rating

type StageRequest struct {
	Stars int `json:"stars" validate:"required,min=1,max=5"`
}

type RatingResponse struct {
	OrderID string `json:"orderId"`
	Stars   int    `json:"stars"`
}

type SubmitResponse struct {
	OrderID string `json:"orderId"`
	Rating  int    `json:"rating"`
	Changed bool   `json:"changed"`
}
