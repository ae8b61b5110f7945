// AngelaMos | 2026
// entity.go

package product

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// Fields is everything a seller can set on a product.
type Fields struct {
	Name        string
	Price       float64
	Image       string
	Description string
}

func (p *Product) apply(f Fields) {
	p.Name = f.Name
	p.Price = f.Price
	p.Image = f.Image
	p.Description = f.Description
}
