package entity

import "time"

// Settings perfil de la empresa que compra (fila única). Se lee una vez por
// llamada de reporte/PDF y se pasa explícito a quien lo necesite; no existe
// un singleton global.
type Settings struct {
	ID             string
	CompanyName    string
	CompanyGST     string
	CompanyAddress string
	CurrencySymbol string
	UpdatedAt      time.Time
}
