package services

import (
	"context"
	"sync"

	"backend_tigo/config"
	"backend_tigo/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	// ReportLimit is the number of rows shown per report section
	ReportLimit = 5
	// NoDataMessage replaces a report section with no rows
	NoDataMessage = "No hay datos disponibles"
)

// ReportSection is one dashboard report, limited to the first rows of its source
type ReportSection[T any] struct {
	Items   []T    `json:"items"`
	Empty   bool   `json:"empty"`
	Message string `json:"message,omitempty"`
}

func newSection[T any](items []T) ReportSection[T] {
	if len(items) == 0 {
		return ReportSection[T]{Items: []T{}, Empty: true, Message: NoDataMessage}
	}
	return ReportSection[T]{Items: items}
}

// ZoneBar is a critical zone with its bar width relative to the worst visible zone
type ZoneBar struct {
	models.ZonaCritica
	Ratio float64 `json:"ratio"`
}

// RevenueLine is a month of revenue with its display amount
type RevenueLine struct {
	models.IngresoMensual
	TotalLabel string `json:"total_label"`
}

// DebtorLine is a delinquent customer with its display debt
type DebtorLine struct {
	models.ClienteMoroso
	DeudaLabel string `json:"deuda_label"`
}

// ReportDashboard holds the five report sections
type ReportDashboard struct {
	ZonasCriticas     ReportSection[ZoneBar]            `json:"zonas_criticas"`
	RankingPlanes     ReportSection[models.PlanRanking] `json:"ranking_planes"`
	TopTecnicos       ReportSection[models.TecnicoTop]  `json:"top_tecnicos"`
	IngresosMensuales ReportSection[RevenueLine]        `json:"ingresos_mensuales"`
	ClientesMorosos   ReportSection[DebtorLine]         `json:"clientes_morosos"`
}

// DashboardCounts are the exact row counts shown on the dashboard
type DashboardCounts struct {
	Clientes      int64 `json:"clientes"`
	Contratos     int64 `json:"contratos"`
	Instalaciones int64 `json:"instalaciones"`
	Pagos         int64 `json:"pagos"`
	Incidencias   int64 `json:"incidencias"`
	Acciones      int64 `json:"acciones"`
}

// ReportAggregator shapes the store's precomputed report sources for display.
// Grouping, sums and ranking belong to the store; rows are never re-sorted here.
type ReportAggregator struct {
	store  Store
	logger *logrus.Logger
}

func NewReportAggregator(store Store, logger *logrus.Logger) *ReportAggregator {
	return &ReportAggregator{store: store, logger: logger}
}

func limit[T any](rows []T) []T {
	if len(rows) > ReportLimit {
		return rows[:ReportLimit]
	}
	return rows
}

// ZoneBars computes each zone's ratio against the largest count in zones.
// A largest count of zero yields ratio 0.
func ZoneBars(zones []models.ZonaCritica) []ZoneBar {
	var highest int64
	for _, z := range zones {
		if z.TotalFallas > highest {
			highest = z.TotalFallas
		}
	}

	bars := make([]ZoneBar, len(zones))
	for i, z := range zones {
		bars[i] = ZoneBar{ZonaCritica: z}
		if highest > 0 {
			bars[i].Ratio = float64(z.TotalFallas) / float64(highest)
		}
	}
	return bars
}

// FormatDebt renders an estimated debt with one decimal
func FormatDebt(amount decimal.Decimal) string {
	return "S/ " + amount.StringFixed(1)
}

// readReport reads a source; a failure is logged and reads as no rows
func readReport[T any](ctx context.Context, a *ReportAggregator, source string) []T {
	var rows []T
	if err := a.store.Report(ctx, source, &rows); err != nil {
		config.LogError(a.logger, "services", "ReportAggregator.Build", source, nil, err)
		return nil
	}
	return limit(rows)
}

// Build reads the five report sources concurrently. A failing source renders
// as an empty section and never affects the others.
func (a *ReportAggregator) Build(ctx context.Context) *ReportDashboard {
	var (
		zonas    []models.ZonaCritica
		planes   []models.PlanRanking
		tecnicos []models.TecnicoTop
		ingresos []models.IngresoMensual
		morosos  []models.ClienteMoroso
		wg       sync.WaitGroup
	)

	read := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}
	read(func() { zonas = readReport[models.ZonaCritica](ctx, a, models.ReporteZonasCriticas) })
	read(func() { planes = readReport[models.PlanRanking](ctx, a, models.ReporteRankingPlanes) })
	read(func() { tecnicos = readReport[models.TecnicoTop](ctx, a, models.ReporteTopTecnicos) })
	read(func() { ingresos = readReport[models.IngresoMensual](ctx, a, models.ReporteIngresosMensuales) })
	read(func() { morosos = readReport[models.ClienteMoroso](ctx, a, models.ReporteClientesMorosos) })
	wg.Wait()

	revenue := make([]RevenueLine, len(ingresos))
	for i, r := range ingresos {
		revenue[i] = RevenueLine{IngresoMensual: r, TotalLabel: models.FormatSoles(r.Total)}
	}

	debtors := make([]DebtorLine, len(morosos))
	for i, m := range morosos {
		debtors[i] = DebtorLine{ClienteMoroso: m, DeudaLabel: FormatDebt(m.DeudaEstimada)}
	}

	return &ReportDashboard{
		ZonasCriticas:     newSection(ZoneBars(zonas)),
		RankingPlanes:     newSection(planes),
		TopTecnicos:       newSection(tecnicos),
		IngresosMensuales: newSection(revenue),
		ClientesMorosos:   newSection(debtors),
	}
}

// Counts reads the six dashboard counts concurrently. If any count fails
// the failure is logged and all counts stay at zero.
func (a *ReportAggregator) Counts(ctx context.Context) DashboardCounts {
	var counts DashboardCounts
	targets := []struct {
		table string
		dest  *int64
	}{
		{"clientes", &counts.Clientes},
		{"contratos", &counts.Contratos},
		{"instalaciones", &counts.Instalaciones},
		{"pagos", &counts.Pagos},
		{"incidencias", &counts.Incidencias},
		{"acciones_preventivas", &counts.Acciones},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, t := range targets {
		t := t
		g.Go(func() error {
			total, err := a.store.Count(gctx, t.table)
			if err != nil {
				return &FetchError{Table: t.table, Err: err}
			}
			*t.dest = total
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		config.LogError(a.logger, "services", "ReportAggregator.Counts", "dashboard counts", nil, err)
		return DashboardCounts{}
	}
	return counts
}
