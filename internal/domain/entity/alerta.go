package entity

import "time"

// Alerta almacena un aviso generado para un insumo. El tipo de alerta va
// codificado en el prefijo del mensaje ("Stock bajo" / "Insumo vence pronto");
// las alertas no se borran: decaen en lectura vía el filtro de vigencia.
type Alerta struct {
	ID        int64
	InsumoID  int64
	Mensaje   string
	Fecha     time.Time
	CreatedAt time.Time
}
