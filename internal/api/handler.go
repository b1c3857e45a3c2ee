package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/acceso-plantas/pila-api/internal/domain/dto"
	"github.com/acceso-plantas/pila-api/internal/domain/models"
	"github.com/acceso-plantas/pila-api/internal/service"
)

const (
	queryDateLayout  = "2006-01-02" // YYYY-MM-DD at the query string
	outputDateLayout = "02/01/2006" // DD/MM/YYYY at the response, fixed by contract
)

// Handler provides HTTP handlers for the PILA due-date endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters (nit and period ordering).
//   - Delegate the computation to the service layer.
//   - Translate the result into the Spanish-facing response DTO.
type Handler struct {
	svc service.PilaService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.PilaService) *Handler {
	return &Handler{svc: svc}
}

// GetFechasPila handles GET /api/v1/pila/fechas requests.
//
// Query Parameters:
//   - nit (string, required): company tax ID; only its last two digits matter.
//   - fecha_inicio (string, required): period start in YYYY-MM-DD format.
//   - fecha_fin (string, required): period end in YYYY-MM-DD format, after fecha_inicio.
//
// GetFechasPila godoc
// @Summary      Get PILA payment due dates
// @Description  Returns one social-security payment due date per month in the period, derived from the NIT suffix and the Colombian business-day calendar
// @Tags         pila
// @Accept       json
// @Produce      json
// @Param        nit           query     string  true   "Company NIT" example(900123456)
// @Param        fecha_inicio  query     string  true   "Period start in YYYY-MM-DD" example(2025-01-01)
// @Param        fecha_fin     query     string  true   "Period end in YYYY-MM-DD" example(2025-03-31)
// @Success      200           {object}  dto.FechasResponse  "Success"
// @Failure      400           {object}  dto.ErrorResponse   "Bad Request"
// @Failure      500           {object}  dto.ErrorResponse   "Internal Error"
// @Router       /api/v1/pila/fechas [get]
func (h *Handler) GetFechasPila(c *gin.Context) {
	// ─── Validate "nit" param ─────────────────────────────────
	nit := strings.TrimSpace(c.Query("nit"))
	if nit == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("nit is required", nil))
		return
	}

	// ─── Parse and order the period ───────────────────────────
	inicio, err := time.ParseInLocation(queryDateLayout, c.Query("fecha_inicio"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid fecha_inicio, expected YYYY-MM-DD", err))
		return
	}
	fin, err := time.ParseInLocation(queryDateLayout, c.Query("fecha_fin"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid fecha_fin, expected YYYY-MM-DD", err))
		return
	}
	if !inicio.Before(fin) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("fecha_inicio must be before fecha_fin", nil))
		return
	}

	// ─── Query service (with request context) ─────────────────
	res, err := h.svc.ConsultarFechas(c.Request.Context(), nit, inicio, fin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute due dates", err))
		return
	}

	c.JSON(http.StatusOK, toFechasResponse(res))
}

// toFechasResponse maps the domain result onto the wire contract.
func toFechasResponse(res *models.ResultadoPila) dto.FechasResponse {
	today := time.Now()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)

	fechas := make([]dto.FechaPagoDTO, 0, len(res.Fechas))
	for _, f := range res.Fechas {
		d := dto.FechaPagoDTO{
			ID:       f.ID,
			Fecha:    f.Fecha.Format(outputDateLayout),
			Estado:   string(f.Estado),
			MesTexto: f.MesTexto,
		}
		if !f.Fecha.Before(today) {
			rest := int(f.Fecha.Sub(today).Hours() / 24)
			d.DiasRestantes = &rest
		}
		fechas = append(fechas, d)
	}

	return dto.FechasResponse{
		Success: true,
		Fechas:  fechas,
		Metadata: dto.FechasMetadata{
			SufijoNIT:       res.SufijoNIT,
			Total:           len(fechas),
			PeriodoInicio:   res.PeriodoInicio.Format(outputDateLayout),
			PeriodoFin:      res.PeriodoFin.Format(outputDateLayout),
			ValorPorDefecto: res.PorDefecto,
		},
	}
}
