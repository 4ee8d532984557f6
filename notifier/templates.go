package notifier

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/nmihaylov96/sportzone-api/models"
	"github.com/shopspring/decimal"
)

func quantityDecimal(q int) decimal.Decimal {
	return decimal.NewFromInt(int64(q))
}

type orderLineView struct {
	Name     string
	Quantity int
	Price    string
	Subtotal string
}

type confirmationView struct {
	CustomerName string
	OrderID      uint
	Date         string
	Status       string
	Lines        []orderLineView
	Total        string
	Address      string
	City         string
	Phone        string
}

type statusChangeView struct {
	CustomerName string
	OrderID      uint
	OldStatus    string
	NewStatus    string
}

var confirmationTmpl = template.Must(template.New("orderConfirmation").Parse(`
<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Потвърждение на поръчка - SportZone</title></head>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #2563eb;">SportZone</h1>
  <h2>Поръчката ви е потвърдена!</h2>
  <p>Здравейте <strong>{{.CustomerName}}</strong>, благодарим ви за поръчката!</p>
  <table style="width: 100%; margin-bottom: 15px;">
    <tr><td><strong>Номер на поръчка:</strong></td><td style="text-align: right;">#{{.OrderID}}</td></tr>
    <tr><td><strong>Дата:</strong></td><td style="text-align: right;">{{.Date}}</td></tr>
    <tr><td><strong>Статус:</strong></td><td style="text-align: right;">{{.Status}}</td></tr>
  </table>
  <table style="width: 100%; border-collapse: collapse; border: 1px solid #ddd;">
    <thead>
      <tr style="background: #f8f9fa;">
        <th style="padding: 8px; text-align: left;">Продукт</th>
        <th style="padding: 8px; text-align: center;">Кол.</th>
        <th style="padding: 8px; text-align: right;">Цена</th>
        <th style="padding: 8px; text-align: right;">Общо</th>
      </tr>
    </thead>
    <tbody>
      {{range .Lines}}
      <tr style="border-bottom: 1px solid #eee;">
        <td style="padding: 8px;"><strong>{{.Name}}</strong></td>
        <td style="padding: 8px; text-align: center;">{{.Quantity}}</td>
        <td style="padding: 8px; text-align: right;">{{.Price}} лв.</td>
        <td style="padding: 8px; text-align: right;">{{.Subtotal}} лв.</td>
      </tr>
      {{end}}
    </tbody>
    <tfoot>
      <tr style="font-weight: bold;">
        <td colspan="3" style="padding: 8px; text-align: right;">Общо за плащане:</td>
        <td style="padding: 8px; text-align: right; color: #2563eb;">{{.Total}} лв.</td>
      </tr>
    </tfoot>
  </table>
  <h3>Адрес за доставка</h3>
  <p>{{.Address}}<br>{{.City}}<br>Телефон: {{.Phone}}</p>
</body>
</html>
`))

var statusChangeTmpl = template.Must(template.New("statusChange").Parse(`
<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Промяна на статус - SportZone</title></head>
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #2563eb;">SportZone</h1>
  <p>Здравейте <strong>{{.CustomerName}}</strong>,</p>
  <p>Статусът на поръчка <strong>#{{.OrderID}}</strong> беше променен:</p>
  <p style="font-size: 18px;"><strong>{{.OldStatus}}</strong> &rarr; <strong>{{.NewStatus}}</strong></p>
</body>
</html>
`))

// RenderOrderConfirmation builds the confirmation subject and HTML body.
func RenderOrderConfirmation(order models.Order, user models.User) (string, []byte, error) {
	view := confirmationView{
		CustomerName: user.DisplayName(),
		OrderID:      order.ID,
		Date:         order.CreatedAt.Format("02.01.2006"),
		Status:       string(order.Status),
		Total:        order.Total.StringFixed(2),
		Address:      order.Address,
		City:         order.City,
		Phone:        order.Phone,
	}
	for _, item := range order.Items {
		view.Lines = append(view.Lines, orderLineView{
			Name:     item.Product.Name,
			Quantity: item.Quantity,
			Price:    item.Price.StringFixed(2),
			Subtotal: item.Price.Mul(quantityDecimal(item.Quantity)).StringFixed(2),
		})
	}

	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, view); err != nil {
		return "", nil, err
	}
	subject := fmt.Sprintf("Потвърждение на поръчка #%d - SportZone", order.ID)
	return subject, buf.Bytes(), nil
}

// RenderStatusChange builds the status-change subject and HTML body.
func RenderStatusChange(order models.Order, user models.User, old, next models.OrderStatus) (string, []byte, error) {
	view := statusChangeView{
		CustomerName: user.DisplayName(),
		OrderID:      order.ID,
		OldStatus:    string(old),
		NewStatus:    string(next),
	}

	var buf bytes.Buffer
	if err := statusChangeTmpl.Execute(&buf, view); err != nil {
		return "", nil, err
	}
	subject := fmt.Sprintf("Поръчка #%d: нов статус %s - SportZone", order.ID, next)
	return subject, buf.Bytes(), nil
}
