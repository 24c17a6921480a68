package repository

import (
	"context"

	"github.com/tu-usuario/textil-ops/internal/domain/entity"
)

// SettingsRepository puerto del perfil de empresa (fila única). Get crea la
// fila con valores por defecto si aún no existe, de modo que el caller nunca
// recibe nil sin error. El perfil se pasa explícito a quien lo consume; no
// hay estado global.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.Settings, error)
	Update(ctx context.Context, settings *entity.Settings) error
}
