package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BackupSchemaVersion versión del formato del documento de respaldo.
const BackupSchemaVersion = 1

// BackupDocument instantánea completa del libro: las cinco colecciones más
// metadatos de exportación. La importación reinserta cada registro por su
// clave primaria en orden de dependencias, sin pasar por el motor de
// valoración (stock y average_cost viajan tal cual en los productos).
type BackupDocument struct {
	ExportedAt    time.Time `json:"exported_at"`
	SchemaVersion int       `json:"schema_version"`
	RecordCount   int       `json:"record_count"`

	Categories []BackupCategory `json:"categories"`
	Products   []BackupProduct  `json:"products"`
	Purchases  []BackupPurchase `json:"purchases"`
	Sales      []BackupSale     `json:"sales"`
	Expenses   []BackupExpense  `json:"expenses"`
}

// BackupCategory registro de categoría en el respaldo.
type BackupCategory struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// BackupProduct registro de producto en el respaldo (incluye el estado derivado).
type BackupProduct struct {
	ID          string          `json:"id"`
	CategoryID  string          `json:"category_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Stock       int64           `json:"stock"`
	Price       decimal.Decimal `json:"price"`
	AverageCost decimal.Decimal `json:"average_cost"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BackupPurchase registro de compra en el respaldo.
type BackupPurchase struct {
	ID        string          `json:"id"`
	Date      time.Time       `json:"date"`
	Supplier  string          `json:"supplier"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Cost      decimal.Decimal `json:"cost"`
	CreatedAt time.Time       `json:"created_at"`
}

// BackupSale registro de venta en el respaldo (con sus snapshots congelados).
type BackupSale struct {
	ID        string          `json:"id"`
	Date      time.Time       `json:"date"`
	Customer  string          `json:"customer"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Cost      decimal.Decimal `json:"cost"`
	CreatedAt time.Time       `json:"created_at"`
}

// BackupExpense registro de gasto en el respaldo.
type BackupExpense struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ImportSummary resultado de una importación de respaldo.
type ImportSummary struct {
	Categories int `json:"categories"`
	Products   int `json:"products"`
	Purchases  int `json:"purchases"`
	Sales      int `json:"sales"`
	Expenses   int `json:"expenses"`
	Total      int `json:"total"`
}
