package dto

// UpdateSettingsRequest cuerpo de PUT /api/settings.
type UpdateSettingsRequest struct {
	CompanyName    string `json:"company_name"`
	CompanyGST     string `json:"company_gst"`
	CompanyAddress string `json:"company_address"`
	CurrencySymbol string `json:"currency_symbol"`
}

// SettingsResponse perfil de la empresa.
type SettingsResponse struct {
	CompanyName    string `json:"company_name"`
	CompanyGST     string `json:"company_gst,omitempty"`
	CompanyAddress string `json:"company_address,omitempty"`
	CurrencySymbol string `json:"currency_symbol"`
}
