// AngelaMos | 2026
// dto.go

package product

// ProductRequest carries a full-field write. Price has no lower bound.
type ProductRequest struct {
	Name        string  `json:"name"        validate:"required,min=1,max=200"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"       validate:"omitempty,max=2048"`
	Description string  `json:"description" validate:"max=2000"`
}

func (r ProductRequest) Fields() Fields {
	return Fields{
		Name:        r.Name,
		Price:       r.Price,
		Image:       r.Image,
		Description: r.Description,
	}
}
