// AngelaMos | 2026
// dto.go

package cart

type AddItemRequest struct {
	ProductID int64 `json:"productId" validate:"required"`
}
