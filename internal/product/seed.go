// AngelaMos | 2026
// seed.go

package product

// DefaultCatalog is written on first access when no catalog is stored.
func DefaultCatalog() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Cement",
			Price:       350,
			Image:       "https://images.unsplash.com/photo-1560435650-7ec2e17ba926?q=80&w=1770&auto=format&fit=crop&ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
			Description: "High-quality cement for construction projects.",
		},
		{
			ID:          2,
			Name:        "Bricks",
			Price:       10,
			Image:       "https://plus.unsplash.com/premium_photo-1675103339078-88b54e155e71?q=80&w=1887&auto=format&fit=crop&ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
			Description: "Durable bricks for building sturdy structures.",
		},
		{
			ID:          3,
			Name:        "Steel",
			Price:       500,
			Image:       "https://images.unsplash.com/photo-1582540730843-f4418d96ccbe?q=80&w=1892&auto=format&fit=crop&ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
			Description: "High-strength steel for reinforcement and structural support.",
		},
		{
			ID:          4,
			Name:        "Sand",
			Price:       200,
			Image:       "https://plus.unsplash.com/premium_photo-1680658496041-f7575066cec2?q=80&w=1887&auto=format&fit=crop&ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
			Description: "Fine-grade sand for various construction applications.",
		},
		{
			ID:          5,
			Name:        "Gravel",
			Price:       250,
			Image:       "https://plus.unsplash.com/premium_photo-1675543163354-e4dc1f541330?q=80&w=1974&auto=format&fit=crop&ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
			Description: "Assorted gravel for landscaping and construction projects.",
		},
		{
			ID:          6,
			Name:        "Wooden Planks",
			Price:       400,
			Image:       "https://images.unsplash.com/photo-1591195853095-f1681b00e29c?q=80&w=1770&auto=format&fit=crop&ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
			Description: "High-quality wooden planks for various construction needs.",
		},
	}
}
