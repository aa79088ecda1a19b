package order

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	ticketWidth = 32

	// TicketTimeLayout is the date format printed on tickets.
	TicketTimeLayout = "2006-01-02 15:04"
)

var (
	doubleRule = strings.Repeat("=", ticketWidth)
	singleRule = strings.Repeat("-", ticketWidth)
)

// FormatTicket renders the plain text receipt for o. The layout is fixed: field order and
// the right aligned amount on item lines are relied on by the ticket printers.
func FormatTicket(restaurantName string, o *Order) string {
	var b strings.Builder
	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}

	line(doubleRule)
	line(strings.ToUpper(restaurantName))
	line(doubleRule)
	line("")
	line("Comanda: " + o.Label)
	line("Mesa: " + o.TableID)
	line("Cliente: " + o.DisplayCustomer())
	line("Fecha: " + o.CreatedAt.Format(TicketTimeLayout))
	line("")
	line(singleRule)
	line("DETALLE DE LA ORDEN")
	line(singleRule)
	for _, l := range o.Lines {
		line(itemLine(l))
	}
	line("")
	line(singleRule)
	line("TOTAL: $" + o.Total().StringFixed(2))
	line(singleRule)
	line("")
	line("Estado: " + o.Status.Label())
	line("Pago: " + o.PaymentStatus.Label())
	line("")
	line("¡Gracias por su visita!")
	line(doubleRule)

	return b.String()
}

// itemLine left aligns "<qty>x <name>" and right aligns "$<subtotal>", truncating the name
// so at least one space separates them.
func itemLine(l LineItem) string {
	left := []rune(fmt.Sprintf("%dx %s", l.Quantity, l.Name))
	right := "$" + l.Subtotal.StringFixed(2)
	rightWidth := utf8.RuneCountInString(right)

	room := ticketWidth - rightWidth - 1
	if room < 1 {
		room = 1
	}
	if len(left) > room {
		left = left[:room]
	}

	pad := ticketWidth - len(left) - rightWidth
	if pad < 1 {
		pad = 1
	}
	return string(left) + strings.Repeat(" ", pad) + right
}
