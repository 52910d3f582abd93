package domain

import (
	"fmt"
	"strings"
)

// DefaultCurrency prefixes amounts in chat messages.
const DefaultCurrency = "₹"

// MessageFormat renders the chat messages sent to a shop.
type MessageFormat struct {
	Currency string
}

// Order renders an order message for b.
func (f MessageFormat) Order(b *Booking) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s,\n", b.shopName)
	sb.WriteString("New Order\n\n")

	sb.WriteString("Customer Details:\n")
	fmt.Fprintf(&sb, "Name: %s\n", b.customer.Name)
	fmt.Fprintf(&sb, "Phone: %s\n\n", b.customer.Phone)

	f.writeAddress(&sb, b.address)
	sb.WriteString("\n")

	sb.WriteString("*Order Details:*\n")
	for _, l := range b.items {
		fmt.Fprintf(&sb, "• %s x %d - %s\n", l.Name, l.Quantity, f.amount(l.Subtotal().String()))
	}
	fmt.Fprintf(&sb, "\n*Total: %s*", f.amount(b.total.String()))
	return sb.String()
}

// Service renders a service booking message for b.
func (f MessageFormat) Service(b *Booking) string {
	var sb strings.Builder
	name := ""
	if b.service != nil {
		name = b.service.Name
	}
	fmt.Fprintf(&sb, "Hi %s, I would like to book: %s\n", b.shopName, name)
	if b.carModel != "" {
		fmt.Fprintf(&sb, "Car/Model: %s\n", b.carModel)
	}
	sb.WriteString("\n")

	f.writeAddress(&sb, b.address)
	sb.WriteString("\n")

	sb.WriteString("My details:\n")
	fmt.Fprintf(&sb, "Name: %s\n", b.customer.Name)
	fmt.Fprintf(&sb, "Phone: %s\n\n", b.customer.Phone)

	sb.WriteString("Additional Notes:\n")
	sb.WriteString(b.notes)
	return sb.String()
}

func (f MessageFormat) writeAddress(sb *strings.Builder, a Address) {
	sb.WriteString("Delivery Address:\n")
	fmt.Fprintf(sb, "Apartment: %s\n", a.ApartmentName)
	fmt.Fprintf(sb, "Flat/Unit: %s\n", orNA(a.FlatNumber))
	fmt.Fprintf(sb, "Door No: %s\n", orNA(a.DoorNumber))
}

func (f MessageFormat) amount(s string) string {
	c := f.Currency
	if c == "" {
		c = DefaultCurrency
	}
	return c + s
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
