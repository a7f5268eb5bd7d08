package craxml_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Vivienda-api/internal/domain/entity"
	"github.com/jhoicas/Vivienda-api/internal/infrastructure/craxml"
)

func TestExportCRAXML_Estructura(t *testing.T) {
	exporter := craxml.NewExporter()
	company := &entity.Company{Name: "First Community Bank", Key: "fcb"}
	metrics := []*entity.CRAMetric{
		{
			ID:             "cra-1",
			Period:         "2026-Q1",
			AssessmentArea: "Oakland MSA",
			LMILoans:       42,
			TotalLoans:     120,
			LMIAmount:      decimal.NewFromInt(8_400_000),
			TotalAmount:    decimal.NewFromInt(31_000_000),
		},
	}

	out, err := exporter.ExportCRAXML(company, "2026-Q1", metrics)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.SelectElement("CRAReport")
	require.NotNil(t, root)
	assert.Equal(t, "2026-Q1", root.SelectAttrValue("period", ""))

	lender := root.SelectElement("Lender")
	require.NotNil(t, lender)
	assert.Equal(t, "First Community Bank", lender.SelectElement("Name").Text())
	assert.Equal(t, "fcb", lender.SelectElement("Key").Text())

	ms := root.SelectElement("Metrics").SelectElements("Metric")
	require.Len(t, ms, 1)
	assert.Equal(t, "cra-1", ms[0].SelectAttrValue("id", ""))
	assert.Equal(t, "Oakland MSA", ms[0].SelectElement("AssessmentArea").Text())
	assert.Equal(t, "42", ms[0].SelectElement("LMILoans").Text())
	assert.Equal(t, "8400000.00", ms[0].SelectElement("LMIAmount").Text())
}

func TestExportCRAXML_SinCompany(t *testing.T) {
	_, err := craxml.NewExporter().ExportCRAXML(nil, "2026-Q1", nil)
	assert.Error(t, err)
}

func TestExportCRAXML_SinMetricas(t *testing.T) {
	out, err := craxml.NewExporter().ExportCRAXML(&entity.Company{Name: "FCB"}, "2026-Q1", nil)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	ms := doc.SelectElement("CRAReport").SelectElement("Metrics")
	require.NotNil(t, ms)
	assert.Empty(t, ms.SelectElements("Metric"))
}
