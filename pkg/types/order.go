package types

// Customer carries the checkout form fields. The field names match the
// storefront wire format and are stored verbatim in the order record.
type Customer struct {
	Emri      string `json:"emri"`
	Mbiemri   string `json:"mbiemri"`
	Email     string `json:"email"`
	Adresa    string `json:"adresa"`
	Shteti    string `json:"shteti"`
	Qyteti    string `json:"qyteti"`
	OtherCity string `json:"otherCity,omitempty"`
}

// CityOtherSentinel marks the catch-all city choice; OtherCity is only
// meaningful when Qyteti equals it.
const CityOtherSentinel = "other"

// DisplayCity resolves the city taking the catch-all override into account.
func (c Customer) DisplayCity() string {
	if c.Qyteti == CityOtherSentinel && c.OtherCity != "" {
		return c.OtherCity
	}
	return c.Qyteti
}

// OrderProduct is the snapshot of a catalog product embedded in an order
// item. The snapshot is stored verbatim so the admin dashboard can render
// past orders even if the catalog changes.
type OrderProduct struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	ShortName   string   `json:"shortName,omitempty"`
	Price       float64  `json:"price"`
	Description string   `json:"description,omitempty"`
	Benefits    []string `json:"benefits,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Size        string   `json:"size,omitempty"`
}

// OrderItem is one cart line converted at checkout.
type OrderItem struct {
	Product  OrderProduct `json:"product"`
	Quantity int          `json:"quantity"`
}
