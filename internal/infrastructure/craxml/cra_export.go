// Package craxml genera el export XML de métricas CRA que consumen los
// sistemas de reporte regulatorio del lender.
package craxml

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/Vivienda-api/internal/domain/entity"
)

// Exporter implementa reporting.CRAExporter usando etree.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// ExportCRAXML arma el documento:
//
//	<CRAReport period="...">
//	  <Lender><Name/><Key/></Lender>
//	  <Metrics>
//	    <Metric id="...">
//	      <AssessmentArea/> <LMILoans/> <TotalLoans/> <LMIAmount/> <TotalAmount/>
//	    </Metric>
//	  </Metrics>
//	</CRAReport>
func (e *Exporter) ExportCRAXML(company *entity.Company, period string, metrics []*entity.CRAMetric) ([]byte, error) {
	if company == nil {
		return nil, fmt.Errorf("craxml: company requerida")
	}
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("CRAReport")
	root.CreateAttr("period", period)
	root.CreateAttr("generatedAt", time.Now().UTC().Format(time.RFC3339))

	lender := root.CreateElement("Lender")
	lender.CreateElement("Name").SetText(company.Name)
	lender.CreateElement("Key").SetText(company.Key)

	ms := root.CreateElement("Metrics")
	for _, m := range metrics {
		el := ms.CreateElement("Metric")
		el.CreateAttr("id", m.ID)
		el.CreateElement("AssessmentArea").SetText(m.AssessmentArea)
		el.CreateElement("Period").SetText(m.Period)
		el.CreateElement("LMILoans").SetText(strconv.Itoa(m.LMILoans))
		el.CreateElement("TotalLoans").SetText(strconv.Itoa(m.TotalLoans))
		el.CreateElement("LMIAmount").SetText(m.LMIAmount.StringFixed(2))
		el.CreateElement("TotalAmount").SetText(m.TotalAmount.StringFixed(2))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("craxml: serializar documento: %w", err)
	}
	return out, nil
}
