package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
//
// Stock y AverageCost son estado derivado del libro de compras y ventas:
// solo los modifica el motor de valoración (crear/eliminar Purchase y Sale)
// y la importación de respaldos. La edición directa de producto nunca los toca.
type Product struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	Stock       int64           // puede quedar negativo: la salida no está protegida contra sobreventa
	Price       decimal.Decimal // precio de venta unitario
	AverageCost decimal.Decimal // costo promedio ponderado de adquisición (inicia en 0)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
