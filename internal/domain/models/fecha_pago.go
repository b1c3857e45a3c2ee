package models

import "time"

// Estado classifies a payment due date relative to the consultation moment.
type Estado string

const (
	// EstadoNormal is any date outside the warning window (including past dates).
	EstadoNormal Estado = "normal"
	// EstadoWarning is a date falling today or within the warning window.
	EstadoWarning Estado = "warning"
	// EstadoSuccess marks the single next upcoming due date.
	EstadoSuccess Estado = "success"
)

// FechaPago is one PILA payment due date inside a consulted period.
//
// ID is the 1-based position in chronological order. Fecha is a naive local
// calendar date (midnight, time.Local). MesTexto is the Spanish "month year"
// label shown to the user.
type FechaPago struct {
	ID       int
	Fecha    time.Time
	Estado   Estado
	MesTexto string
}

// ResultadoPila is the full outcome of a due-date consultation.
type ResultadoPila struct {
	Fechas        []FechaPago
	SufijoNIT     string
	DiasHabiles   int  // business days required by the NIT bracket
	PorDefecto    bool // true when the suffix was missing and the default applied
	PeriodoInicio time.Time
	PeriodoFin    time.Time
}

// Consulta is the audit record persisted for each due-date consultation.
type Consulta struct {
	SufijoNIT     string
	PeriodoInicio time.Time
	PeriodoFin    time.Time
	TotalFechas   int
	PorDefecto    bool
}
