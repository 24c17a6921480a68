package dto

import "time"

// CreateSupplierRequest cuerpo de POST /api/suppliers.
type CreateSupplierRequest struct {
	Name    string `json:"name"`
	GST     string `json:"gst"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

// UpdateSupplierRequest cuerpo de PUT /api/suppliers/:id.
type UpdateSupplierRequest struct {
	Name    string `json:"name"`
	GST     string `json:"gst"`
	Contact string `json:"contact"`
}

// ToggleSupplierRequest cuerpo de PATCH /api/suppliers/:id/status.
type ToggleSupplierRequest struct {
	Active bool `json:"active"`
}

// SupplierResponse proveedor en respuestas.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	GST       string    `json:"gst,omitempty"`
	Contact   string    `json:"contact,omitempty"`
	Address   string    `json:"address,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// SupplierListResponse respuesta de GET /api/suppliers.
type SupplierListResponse struct {
	Items []SupplierResponse `json:"items"`
}
