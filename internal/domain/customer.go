package domain

const minContactLength = 10

// Customer owns exactly one cart. The contact is validated once and never changes.
type Customer struct {
	ID      string
	Name    string
	contact string
	cart    *Cart
}

func NewCustomer(id, name, contact string) (*Customer, error) {
	if err := ValidateContact(contact); err != nil {
		return nil, err
	}
	return &Customer{
		ID:      id,
		Name:    name,
		contact: contact,
		cart:    NewCart(),
	}, nil
}

// ValidateContact accepts phone numbers of at least ten decimal digits.
func ValidateContact(contact string) error {
	if !isDigits(contact) {
		return newError(KindInvalidData, "phone number must contain digits only")
	}
	if len(contact) < minContactLength {
		return newError(KindInvalidData, "phone number is too short (minimum %d digits)", minContactLength)
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (c *Customer) Contact() string { return c.contact }

// Cart returns the customer's cart by reference.
func (c *Customer) Cart() *Cart { return c.cart }

// resetCart replaces the cart with an empty one after checkout.
func (c *Customer) resetCart() {
	c.cart = NewCart()
}
