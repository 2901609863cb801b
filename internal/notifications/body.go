package notifications

import (
	"fmt"
	"html"
	"strings"

	"github.com/magieskin/storefront-backend/pkg/db/models"
	"github.com/magieskin/storefront-backend/pkg/types"
	"github.com/shopspring/decimal"
)

// formatMoney renders an EUR amount for display, e.g. "€125.00".
func formatMoney(value float64) string {
	return "€" + decimal.NewFromFloat(value).StringFixed(2)
}

func buildItemsText(items []types.OrderItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		name := item.Product.Name
		if name == "" {
			name = "Item"
		}
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		lines = append(lines, fmt.Sprintf("- %s x%d (%s each)", name, qty, formatMoney(item.Product.Price)))
	}
	return strings.Join(lines, "\n")
}

func buildItemsHTML(items []types.OrderItem) string {
	var b strings.Builder
	for _, item := range items {
		name := item.Product.Name
		if name == "" {
			name = "Item"
		}
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		fmt.Fprintf(&b, "<li><strong>%s</strong> x%d <span>(%s each)</span></li>",
			html.EscapeString(name), qty, formatMoney(item.Product.Price))
	}
	return b.String()
}

func customerName(c types.Customer) string {
	name := strings.TrimSpace(strings.TrimSpace(c.Emri) + " " + strings.TrimSpace(c.Mbiemri))
	if name == "" {
		return "Customer"
	}
	return name
}

func customerAddress(c types.Customer) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{c.Adresa, c.DisplayCity(), c.Shteti} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, ", ")
}

type message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

func buildAdminMessage(order models.Order, notifyTo string) message {
	name := customerName(order.Customer)
	address := customerAddress(order.Customer)
	itemsText := buildItemsText(order.Items)
	itemsHTML := buildItemsHTML(order.Items)

	subject := "New order placed"
	if order.ID != "" {
		subject = fmt.Sprintf("New order placed (#%s)", order.ID)
	}

	textLines := []string{fmt.Sprintf("New order placed by %s", name)}
	if order.Customer.Email != "" {
		textLines = append(textLines, "Email: "+order.Customer.Email)
	}
	if address != "" {
		textLines = append(textLines, "Address: "+address)
	}
	if order.Date != "" {
		textLines = append(textLines, "Date: "+order.Date)
	}
	textLines = append(textLines, "", "Items:", orDefault(itemsText, "- (no items)"), "", "Total: "+formatMoney(order.Total))

	var htmlBody strings.Builder
	htmlBody.WriteString("<h2>New order placed</h2>")
	fmt.Fprintf(&htmlBody, "<p><strong>Customer:</strong> %s</p>", html.EscapeString(name))
	if order.Customer.Email != "" {
		fmt.Fprintf(&htmlBody, "<p><strong>Email:</strong> %s</p>", html.EscapeString(order.Customer.Email))
	}
	if address != "" {
		fmt.Fprintf(&htmlBody, "<p><strong>Address:</strong> %s</p>", html.EscapeString(address))
	}
	if order.Date != "" {
		fmt.Fprintf(&htmlBody, "<p><strong>Date:</strong> %s</p>", html.EscapeString(order.Date))
	}
	htmlBody.WriteString("<h3>Items</h3>")
	fmt.Fprintf(&htmlBody, "<ul>%s</ul>", orDefault(itemsHTML, "<li>(no items)</li>"))
	fmt.Fprintf(&htmlBody, "<p><strong>Total:</strong> %s</p>", formatMoney(order.Total))

	return message{
		To:      notifyTo,
		Subject: subject,
		Text:    strings.Join(textLines, "\n"),
		HTML:    htmlBody.String(),
	}
}

func buildCustomerMessage(order models.Order) message {
	name := customerName(order.Customer)
	itemsText := buildItemsText(order.Items)
	itemsHTML := buildItemsHTML(order.Items)

	textLines := []string{
		fmt.Sprintf("Hi %s,", name),
		"",
		"Thanks for your order! Here are the details:",
		"",
		orDefault(itemsText, "- (no items)"),
		"",
		"Total: " + formatMoney(order.Total),
		"",
		"We will contact you soon with delivery updates.",
	}

	var htmlBody strings.Builder
	fmt.Fprintf(&htmlBody, "<p>Hi %s,</p>", html.EscapeString(name))
	htmlBody.WriteString("<p>Thanks for your order! Here are the details:</p>")
	fmt.Fprintf(&htmlBody, "<ul>%s</ul>", orDefault(itemsHTML, "<li>(no items)</li>"))
	fmt.Fprintf(&htmlBody, "<p><strong>Total:</strong> %s</p>", formatMoney(order.Total))
	htmlBody.WriteString("<p>We will contact you soon with delivery updates.</p>")

	return message{
		To:      order.Customer.Email,
		Subject: "Your Magie Skin order is confirmed",
		Text:    strings.Join(textLines, "\n"),
		HTML:    htmlBody.String(),
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
