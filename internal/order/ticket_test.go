package order

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatTicket(t *testing.T) {
	name := "Carlos García"
	o := &Order{
		Label:        "#001",
		TableID:      "5",
		CustomerName: &name,
		CreatedAt:    time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC),
		Lines: []LineItem{
			newLine("1", "Hamburguesa Clásica", decimal.RequireFromString("12.50"), 2),
			newLine("2", "Papas Fritas", decimal.RequireFromString("5.00"), 1),
		},
		Status:        StatusInPreparation,
		PaymentStatus: PaymentPending,
	}

	expected := `================================
MI RESTAURANTE
================================

Comanda: #001
Mesa: 5
Cliente: Carlos García
Fecha: 2024-01-15 14:30

--------------------------------
DETALLE DE LA ORDEN
--------------------------------
2x Hamburguesa Clásica    $25.00
1x Papas Fritas            $5.00

--------------------------------
TOTAL: $30.00
--------------------------------

Estado: En preparación
Pago: Pendiente

¡Gracias por su visita!
================================
`

	assert.Equal(t, expected, FormatTicket("Mi Restaurante", o))
}

func TestFormatTicket_DefaultCustomer(t *testing.T) {
	o := &Order{Label: "#002", TableID: "1", Status: StatusPending, PaymentStatus: PaymentPaid}

	ticket := FormatTicket("La Esquina", o)

	assert.Contains(t, ticket, "LA ESQUINA\n")
	assert.Contains(t, ticket, "Cliente: Cliente\n")
	assert.Contains(t, ticket, "TOTAL: $0.00\n")
	assert.Contains(t, ticket, "Pago: Pagado\n")
}

func TestItemLine(t *testing.T) {
	t.Run("RightAligned", func(t *testing.T) {
		l := itemLine(newLine("1", "Café", decimal.RequireFromString("2.50"), 3))
		assert.Equal(t, 32, len([]rune(l)))
		assert.True(t, strings.HasPrefix(l, "3x Café "))
		assert.True(t, strings.HasSuffix(l, " $7.50"))
	})

	t.Run("TruncatesLongNames", func(t *testing.T) {
		l := itemLine(newLine("1", "Parrillada Mixta Especial de la Casa", decimal.RequireFromString("45.00"), 10))
		assert.Equal(t, 32, len([]rune(l)))
		assert.True(t, strings.HasSuffix(l, " $450.00"))
		assert.True(t, strings.HasPrefix(l, "10x Parrillada Mixta"))
	})
}
