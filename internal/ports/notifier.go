package ports

import (
	"context"

	"github.com/alejandrodnm/lottodraw/internal/domain"
)

// Notifier presenta los resultados de un sorteo al usuario.
type Notifier interface {
	// Notify muestra el resultado completo de un sorteo. En la
	// implementación de consola, imprime una línea compacta o las tablas
	// completas según el modo configurado.
	Notify(ctx context.Context, result *domain.DrawResult) error
}
