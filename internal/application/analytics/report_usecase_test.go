package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-api/internal/application/analytics"
	"github.com/jhoicas/pos-api/internal/application/dto"
)

type fakePDF struct {
	gotStats *dto.DashboardStatsDTO
	gotAt    time.Time
	err      error
}

func (f *fakePDF) GenerateDashboardPDF(_ context.Context, stats *dto.DashboardStatsDTO, at time.Time) ([]byte, error) {
	f.gotStats = stats
	f.gotAt = at
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.3 fake"), nil
}

func TestExportPDF(t *testing.T) {
	uc, _ := newUseCase(sampleRepo())
	gen := &fakePDF{}
	report := analytics.NewReportUseCase(uc, gen)

	pdf, filename, err := report.ExportPDF(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "dashboard_2025-03-15.pdf", filename)
	assert.Equal(t, []byte("%PDF-1.3 fake"), pdf)
	require.NotNil(t, gen.gotStats)
	assert.Equal(t, int64(5), gen.gotStats.TotalSales.Value)
	assert.True(t, fixedNow.Equal(gen.gotAt))
}

func TestExportPDF_ErrorDelGenerador(t *testing.T) {
	uc, _ := newUseCase(sampleRepo())
	report := analytics.NewReportUseCase(uc, &fakePDF{err: errors.New("fuente no disponible")})

	_, _, err := report.ExportPDF(context.Background())

	assert.ErrorContains(t, err, "fuente no disponible")
}

func TestExportPDF_ErrorDePersistencia(t *testing.T) {
	dbErr := errors.New("timeout")
	uc, _ := newUseCase(&memRepo{err: dbErr})
	gen := &fakePDF{}
	report := analytics.NewReportUseCase(uc, gen)

	_, _, err := report.ExportPDF(context.Background())

	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, gen.gotStats, "no se debe renderizar sin datos")
}
