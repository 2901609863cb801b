package catalog

// Product is a static catalog entry. The catalog is read-only reference data
// compiled into the binary; nothing mutates it at runtime.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ShortName   string   `json:"shortName"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
	Ingredients []string `json:"ingredients"`
	ImageURL    string   `json:"imageUrl"`
	Size        string   `json:"size"`
}

var products = []Product{
	{
		ID:          "p1",
		Name:        "Magie Renewal Serum",
		ShortName:   "The Serum",
		Price:       125,
		Description: "A potent bio-active concentrate designed to accelerate cellular turnover and restore skin elasticity. The magic of youth in a bottle.",
		Benefits:    []string{"Reduces fine lines", "Boosts collagen", "Deep hydration"},
		Ingredients: []string{"Epidermal Growth Factor", "Hyaluronic Acid", "Peptides"},
		ImageURL:    "https://picsum.photos/id/1/800/1000",
		Size:        "30ml / 1.0 fl oz",
	},
	{
		ID:          "p2",
		Name:        "Magie Radiance Cream",
		ShortName:   "The Cream",
		Price:       85,
		Description: "A rich, biomimetic lipid complex that repairs the skin barrier and locks in moisture for 24 hours. Reveal your inner glow.",
		Benefits:    []string{"Repairs skin barrier", "Sooths inflammation", "Intense moisture"},
		Ingredients: []string{"Ceramides", "Squalane", "Niacinamide"},
		ImageURL:    "https://picsum.photos/id/2/800/1000",
		Size:        "50ml / 1.7 fl oz",
	},
	{
		ID:          "p3",
		Name:        "Magie Crystal Essence",
		ShortName:   "The Essence",
		Price:       65,
		Description: "A gentle exfoliating toner that refines texture and prepares the skin for maximum absorption. Crystal clear perfection.",
		Benefits:    []string{"Exfoliates gently", "Brightens tone", "Minimizes pores"},
		Ingredients: []string{"Fruit Enzymes", "PHA", "Aloe Vera"},
		ImageURL:    "https://picsum.photos/id/3/800/1000",
		Size:        "100ml / 3.4 fl oz",
	},
}

// Products returns the full catalog. Callers must not mutate the result.
func Products() []Product {
	return products
}

// FindByID returns the catalog product with the given id, if any.
func FindByID(id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
