package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/acceso-plantas/pila-api/internal/domain/dto"
	"github.com/acceso-plantas/pila-api/internal/domain/models"
	"github.com/acceso-plantas/pila-api/internal/service"
)

type mockPilaService struct {
	resp *models.ResultadoPila
	err  error
}

func (m *mockPilaService) ConsultarFechas(_ context.Context, _ string, _, _ time.Time) (*models.ResultadoPila, error) {
	return m.resp, m.err
}

var _ service.PilaService = (*mockPilaService)(nil)

func setupRouterWithMock(s service.PilaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s)
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.GET("/pila/fechas", h.GetFechasPila)
	return r
}

func sampleResultado() *models.ResultadoPila {
	return &models.ResultadoPila{
		Fechas: []models.FechaPago{
			{ID: 1, Fecha: time.Date(2025, 1, 3, 0, 0, 0, 0, time.Local), Estado: models.EstadoNormal, MesTexto: "enero 2025"},
			{ID: 2, Fecha: time.Date(2025, 2, 4, 0, 0, 0, 0, time.Local), Estado: models.EstadoSuccess, MesTexto: "febrero 2025"},
		},
		SufijoNIT:     "00",
		DiasHabiles:   2,
		PeriodoInicio: time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local),
		PeriodoFin:    time.Date(2025, 2, 28, 0, 0, 0, 0, time.Local),
	}
}

func TestGetFechasPila_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockPilaService
		query  string
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "missing nit",
			svc:    &mockPilaService{},
			query:  "/api/v1/pila/fechas?fecha_inicio=2025-01-01&fecha_fin=2025-03-31",
			status: http.StatusBadRequest,
		},
		{
			name:   "invalid start date",
			svc:    &mockPilaService{},
			query:  "/api/v1/pila/fechas?nit=900123456&fecha_inicio=01/01/2025&fecha_fin=2025-03-31",
			status: http.StatusBadRequest,
		},
		{
			name:   "invalid end date",
			svc:    &mockPilaService{},
			query:  "/api/v1/pila/fechas?nit=900123456&fecha_inicio=2025-01-01&fecha_fin=never",
			status: http.StatusBadRequest,
		},
		{
			name:   "start equals end",
			svc:    &mockPilaService{},
			query:  "/api/v1/pila/fechas?nit=900123456&fecha_inicio=2025-01-01&fecha_fin=2025-01-01",
			status: http.StatusBadRequest,
		},
		{
			name:   "start after end",
			svc:    &mockPilaService{},
			query:  "/api/v1/pila/fechas?nit=900123456&fecha_inicio=2025-06-01&fecha_fin=2025-01-01",
			status: http.StatusBadRequest,
		},
		{
			name:   "service error",
			svc:    &mockPilaService{err: errors.New("boom")},
			query:  "/api/v1/pila/fechas?nit=900123456&fecha_inicio=2025-01-01&fecha_fin=2025-03-31",
			status: http.StatusInternalServerError,
		},
		{
			name:   "success",
			svc:    &mockPilaService{resp: sampleResultado()},
			query:  "/api/v1/pila/fechas?nit=12345600&fecha_inicio=2025-01-01&fecha_fin=2025-02-28",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.FechasResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if !out.Success {
					t.Fatal("success flag not set")
				}
				if len(out.Fechas) != 2 {
					t.Fatalf("want 2 fechas, got %d", len(out.Fechas))
				}
				if out.Fechas[0].Fecha != "03/01/2025" || out.Fechas[1].Fecha != "04/02/2025" {
					t.Fatalf("dates not DD/MM/YYYY: %+v", out.Fechas)
				}
				if out.Fechas[1].Estado != "success" || out.Fechas[1].MesTexto != "febrero 2025" {
					t.Fatalf("unexpected entry: %+v", out.Fechas[1])
				}
				if out.Metadata.SufijoNIT != "00" || out.Metadata.Total != 2 {
					t.Fatalf("unexpected metadata: %+v", out.Metadata)
				}
				if out.Metadata.PeriodoInicio != "01/01/2025" || out.Metadata.PeriodoFin != "28/02/2025" {
					t.Fatalf("period not DD/MM/YYYY: %+v", out.Metadata)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			req := httptest.NewRequest(http.MethodGet, tc.query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}

func TestToFechasResponse_DiasRestantes(t *testing.T) {
	today := time.Now()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)

	res := &models.ResultadoPila{
		Fechas: []models.FechaPago{
			{ID: 1, Fecha: today.AddDate(0, 0, -5), Estado: models.EstadoNormal, MesTexto: "x"},
			{ID: 2, Fecha: today.AddDate(0, 0, 3), Estado: models.EstadoSuccess, MesTexto: "y"},
		},
		PeriodoInicio: today.AddDate(0, 0, -30),
		PeriodoFin:    today.AddDate(0, 0, 30),
	}

	out := toFechasResponse(res)
	if out.Fechas[0].DiasRestantes != nil {
		t.Fatal("past dates must not carry diasRestantes")
	}
	if out.Fechas[1].DiasRestantes == nil || *out.Fechas[1].DiasRestantes != 3 {
		t.Fatalf("future date diasRestantes=%v, want 3", out.Fechas[1].DiasRestantes)
	}
}
