package dto

// FechaPagoDTO is one due date as serialized at the API boundary.
// The date format is fixed by contract: DD/MM/YYYY, zero-padded.
type FechaPagoDTO struct {
	ID            int    `json:"id" example:"1"`
	Fecha         string `json:"fecha" example:"03/01/2025"`
	Estado        string `json:"estado" example:"success" enums:"success,warning,normal"`
	MesTexto      string `json:"mesTexto" example:"enero 2025"`
	DiasRestantes *int   `json:"diasRestantes,omitempty" example:"2"` // only for today-or-future dates
}

// FechasMetadata describes how the due dates were resolved.
type FechasMetadata struct {
	SufijoNIT       string `json:"nit_sufijo" example:"56"`
	Total           int    `json:"total" example:"3"`
	PeriodoInicio   string `json:"periodo_inicio" example:"01/01/2025"`
	PeriodoFin      string `json:"periodo_fin" example:"31/03/2025"`
	ValorPorDefecto bool   `json:"valor_por_defecto" example:"false"` // NIT suffix missing, default day-count applied
}

// FechasResponse is the JSON body of GET /api/v1/pila/fechas.
type FechasResponse struct {
	Success  bool           `json:"success" example:"true"`
	Fechas   []FechaPagoDTO `json:"fechas"`
	Metadata FechasMetadata `json:"metadata"`
}
