package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReport is the end-of-day collector report: cash totals, the
// reconciliation line, and the client/loan/renewal/transfer summaries
// with their detail sections.
type DailyReport struct {
	Fecha          time.Time `json:"fecha"`
	NombreCobrador string    `json:"nombreCobrador"`
	NumeroRuta     string    `json:"numeroRuta"`

	TotalCobrado        decimal.Decimal `json:"totalCobrado"`
	MoraCobrada         decimal.Decimal `json:"moraCobrada"`
	DineroTransferencia decimal.Decimal `json:"dineroTransferencia"`
	TotalPrestado       decimal.Decimal `json:"totalPrestado"`
	TotalGastos         decimal.Decimal `json:"totalGastos"`
	SaldoInicial        decimal.Decimal `json:"saldoInicial"`
	SaldoEfectivo       decimal.Decimal `json:"saldoEfectivo"`

	Cerrado  bool   `json:"cerrado"`
	CierreID string `json:"cierreId,omitempty"`

	CantidadPagos     int `json:"cantidadPagos"`
	CantidadPrestamos int `json:"cantidadPrestamos"`
	CantidadGastos    int `json:"cantidadGastos"`

	ResumenClientes       ClientSummary   `json:"resumenClientes"`
	ResumenPrestamos      LoanSummary     `json:"resumenPrestamos"`
	ResumenRenovaciones   RenewalSummary  `json:"resumenRenovaciones"`
	ResumenTransferencias TransferSummary `json:"resumenTransferencias"`

	DetallePagos          []PaymentLine `json:"detallePagos"`
	DetallePrestamos      []LoanLine    `json:"detallePrestamos"`
	DetalleGastos         []ExpenseLine `json:"detalleGastos"`
	DetalleClientesNuevos []ClientLine  `json:"detalleClientesNuevos"`
}

type ClientSummary struct {
	ClientesNuevos     int `json:"clientesNuevos"`
	ClientesVisitados  int `json:"clientesVisitados"`
	ClientesPendientes int `json:"clientesPendientes"`
	ClientesPorVisitar int `json:"clientesPorVisitar"`
}

type LoanSummary struct {
	NuevosPrestamos     int `json:"nuevosPrestamos"`
	PrestamosRealizados int `json:"prestamosRealizados"`
}

type RenewalSummary struct {
	RenovacionClientes     int `json:"renovacionClientes"`
	ClientesPorRenovar     int `json:"clientesPorRenovar"`
	RenovacionesPendientes int `json:"renovacionesPendientes"`
	RenovacionesRealizadas int `json:"renovacionesRealizadas"`
}

type TransferSummary struct {
	TotalTransferencia       decimal.Decimal `json:"totalTransferencia"`
	TransferenciasRealizadas int             `json:"transferenciasRealizadas"`
	TransferenciasPendientes int64           `json:"transferenciasPendientes"`
}

type PaymentLine struct {
	ID            string          `json:"id"`
	Monto         decimal.Decimal `json:"monto"`
	Fecha         time.Time       `json:"fecha"`
	Observaciones string          `json:"observaciones,omitempty"`
	Cliente       PaymentClient   `json:"cliente"`
}

type PaymentClient struct {
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Documento string `json:"documento"`
}

type LoanLine struct {
	ID          string          `json:"id"`
	Monto       decimal.Decimal `json:"monto"`
	Interes     decimal.Decimal `json:"interes"`
	FechaInicio time.Time       `json:"fechaInicio"`
	Cliente     PaymentClient   `json:"cliente"`
}

type ExpenseLine struct {
	ID            string          `json:"id"`
	Concepto      string          `json:"concepto"`
	Monto         decimal.Decimal `json:"monto"`
	Fecha         time.Time       `json:"fecha"`
	Observaciones string          `json:"observaciones,omitempty"`
}

type ClientLine struct {
	ID        string `json:"id"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Documento string `json:"documento"`
}

// VisitReport is the route-coverage report: who paid today, who still
// holds an active loan without a visit, and which loans are past due.
type VisitReport struct {
	Fecha    string       `json:"fecha"`
	Resumen  VisitSummary `json:"resumen"`
	Detalles VisitDetails `json:"detalles"`
}

type VisitSummary struct {
	TotalClientes          int             `json:"totalClientes"`
	TotalPrestamosActivos  int             `json:"totalPrestamosActivos"`
	TotalPrestamosVencidos int             `json:"totalPrestamosVencidos"`
	TotalCobradoHoy        decimal.Decimal `json:"totalCobradoHoy"`
	ClientesVisitados      int             `json:"clientesVisitados"`
	ClientesNoVisitados    int             `json:"clientesNoVisitados"`
}

type VisitDetails struct {
	ClientesVisitados   []ClientVisitLine `json:"clientesVisitados"`
	ClientesNoVisitados []ClientVisitLine `json:"clientesNoVisitados"`
	PrestamosVencidos   []OverdueLoan     `json:"prestamosVencidos"`
	CobrosHoy           []CollectionLine  `json:"cobrosHoy"`
}

type ClientVisitLine struct {
	ID               string          `json:"id"`
	Nombre           string          `json:"nombre"`
	PrestamosActivos int             `json:"prestamosActivos"`
	TotalPrestado    decimal.Decimal `json:"totalPrestado"`
	TotalPagado      decimal.Decimal `json:"totalPagado"`
	SaldoPendiente   decimal.Decimal `json:"saldoPendiente"`
}

type OverdueLoan struct {
	ID               string          `json:"id"`
	Cliente          string          `json:"cliente"`
	Documento        string          `json:"documento"`
	Telefono         string          `json:"telefono"`
	Monto            decimal.Decimal `json:"monto"`
	ValorCuota       decimal.Decimal `json:"valorCuota"`
	Cuotas           int32           `json:"cuotas"`
	FechaVencimiento time.Time       `json:"fechaVencimiento"`
	DiasVencido      int             `json:"diasVencido"`
	TotalPagado      decimal.Decimal `json:"totalPagado"`
	SaldoPendiente   decimal.Decimal `json:"saldoPendiente"`
}

type CollectionLine struct {
	ID      string          `json:"id"`
	Cliente string          `json:"cliente"`
	Monto   decimal.Decimal `json:"monto"`
	Fecha   time.Time       `json:"fecha"`
}
