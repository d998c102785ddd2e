package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"modernshop/internal/domain"
)

// Message is a rendered order email.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string
}

const dateLayout = "2006-01-02 15:04:05 MST"

var orderHTML = template.Must(template.New("order").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #3B82F6;">New Order Received</h2>
  <p>A new order has been placed with the following details:</p>
  <h3>Customer Information:</h3>
  <p>
    <strong>Name:</strong> {{.Order.CustomerName}}<br>
    <strong>Email:</strong> {{.Order.Email}}<br>
    <strong>Phone:</strong> {{.Order.Phone}}<br>
    <strong>Address:</strong> {{.Order.Address}}, {{.Order.City}}, {{.Order.State}} {{.Order.PostalCode}}, {{.Order.Country}}
  </p>
  <h3>Order Details:</h3>
  <table style="width: 100%; border-collapse: collapse;">
    <thead>
      <tr style="background-color: #f3f4f6;">
        <th style="padding: 8px; text-align: left; border-bottom: 1px solid #ddd;">Product</th>
        <th style="padding: 8px; text-align: left; border-bottom: 1px solid #ddd;">Price</th>
        <th style="padding: 8px; text-align: left; border-bottom: 1px solid #ddd;">Quantity</th>
        <th style="padding: 8px; text-align: left; border-bottom: 1px solid #ddd;">Total</th>
      </tr>
    </thead>
    <tbody>
{{- range .Order.Items}}
      <tr>
        <td style="padding: 8px; border-bottom: 1px solid #ddd;">{{.Name}}</td>
        <td style="padding: 8px; border-bottom: 1px solid #ddd;">${{.Price}}</td>
        <td style="padding: 8px; border-bottom: 1px solid #ddd;">{{.Quantity}}</td>
        <td style="padding: 8px; border-bottom: 1px solid #ddd;">${{.LineTotal}}</td>
      </tr>
{{- end}}
    </tbody>
    <tfoot>
      <tr>
        <td colspan="3" style="padding: 8px; text-align: right; font-weight: bold;">Order Total:</td>
        <td style="padding: 8px; font-weight: bold;">${{.Order.TotalAmount}}</td>
      </tr>
    </tfoot>
  </table>
  <p style="margin-top: 20px;">Order ID: {{.Order.ID}}</p>
  <p>Date: {{.Date}}</p>
</div>
`))

// ComposeOrderEmail renders the store manager notification for order. User
// supplied fields are HTML-escaped.
func ComposeOrderEmail(order domain.Order, from, to string) (Message, error) {
	var html bytes.Buffer
	data := struct {
		Order domain.Order
		Date  string
	}{Order: order, Date: order.OrderDate.Format(dateLayout)}
	if err := orderHTML.Execute(&html, data); err != nil {
		return Message{}, fmt.Errorf("render order email: %w", err)
	}
	return Message{
		From:    from,
		To:      to,
		Subject: fmt.Sprintf("New Order #%d - %s", order.ID, order.CustomerName),
		HTML:    html.String(),
		Text:    orderText(order),
	}, nil
}

func orderText(order domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New Order Received\n\n")
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\nPhone: %s\n", order.CustomerName, order.Email, order.Phone)
	fmt.Fprintf(&b, "Address: %s, %s, %s %s, %s\n\n", order.Address, order.City, order.State, order.PostalCode, order.Country)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "%s  $%s x %d = $%s\n", item.Name, item.Price, item.Quantity, item.LineTotal())
	}
	fmt.Fprintf(&b, "\nOrder Total: $%s\nOrder ID: %d\nDate: %s\n", order.TotalAmount, order.ID, order.OrderDate.Format(dateLayout))
	return b.String()
}
