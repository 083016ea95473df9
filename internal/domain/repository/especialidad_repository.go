package repository

import "github.com/his-bodega/bodega-api/internal/domain/entity"

// EspecialidadRepository puerto de persistencia para especialidades.
type EspecialidadRepository interface {
	Create(e *entity.Especialidad) error
	GetByID(id int64) (*entity.Especialidad, error)
	GetByIDs(ids []int64) (map[int64]*entity.Especialidad, error)
	List(limit, offset int) ([]*entity.Especialidad, error)
}
