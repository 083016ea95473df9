package inventario

import (
	"context"

	"github.com/his-bodega/bodega-api/internal/application/dto"
	"github.com/his-bodega/bodega-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción. Los repositorios que recibe
// fn operan sobre la misma transacción, de modo que GetForUpdate bloquea la
// fila del insumo hasta el commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		entradaRepo repository.EntradaRepository,
		salidaRepo repository.SalidaRepository,
		insumoRepo repository.InsumoRepository,
	) error) error
}

// KardexPDFGenerator genera el documento PDF de un kardex.
type KardexPDFGenerator interface {
	Generate(insumoNombre string, kardex dto.KardexResponse) ([]byte, error)
}
