package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tu-usuario/textil-ops/internal/domain/entity"
	"github.com/tu-usuario/textil-ops/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// Valores por defecto del perfil de empresa creado en el primer Get.
const (
	defaultCompanyName    = "My Company"
	defaultCurrencySymbol = "₹"
)

// SettingsRepo implementación del puerto SettingsRepository (fila única).
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devuelve el perfil de empresa; si la tabla está vacía crea la fila con
// valores por defecto y la devuelve, así el caller nunca recibe nil sin error.
func (r *SettingsRepo) Get(ctx context.Context) (*entity.Settings, error) {
	const query = `
	SELECT id, company_name, COALESCE(company_gst, ''), COALESCE(company_address, ''), currency_symbol, updated_at
	FROM settings LIMIT 1`

	var s entity.Settings
	err := r.q.QueryRow(ctx, query).Scan(
		&s.ID, &s.CompanyName, &s.CompanyGST, &s.CompanyAddress, &s.CurrencySymbol, &s.UpdatedAt,
	)
	if err == nil {
		return &s, nil
	}
	if !isNoRows(err) {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return r.createDefault(ctx)
}

// Update modifica el perfil de empresa.
func (r *SettingsRepo) Update(ctx context.Context, settings *entity.Settings) error {
	const query = `
	UPDATE settings SET company_name = $2, company_gst = $3, company_address = $4, currency_symbol = $5, updated_at = $6
	WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		settings.ID, settings.CompanyName, settings.CompanyGST,
		settings.CompanyAddress, settings.CurrencySymbol, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}

func (r *SettingsRepo) createDefault(ctx context.Context) (*entity.Settings, error) {
	const query = `
	INSERT INTO settings (id, company_name, company_gst, company_address, currency_symbol, updated_at)
	VALUES ($1, $2, '', '', $3, now())
	RETURNING id, company_name, company_gst, company_address, currency_symbol, updated_at`

	var s entity.Settings
	err := r.q.QueryRow(ctx, query, uuid.New().String(), defaultCompanyName, defaultCurrencySymbol).Scan(
		&s.ID, &s.CompanyName, &s.CompanyGST, &s.CompanyAddress, &s.CurrencySymbol, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create default settings: %w", err)
	}
	return &s, nil
}
