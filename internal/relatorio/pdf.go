package relatorio

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/prontuario/importador/internal/legado"
)

// BuildImportPDF gera o resumo em PDF de uma execução do importador:
// identificação da execução, contagens e quantas linhas foram descartadas em
// cada etapa. As fontes padrão do PDF não cobrem acentos, então os textos
// ficam sem acentuação.
func BuildImportPDF(runID string, geradoEm time.Time, stats legado.Stats) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Importacao de dados legados - resumo", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Execucao: "+runID, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Gerado em: "+geradoEm.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, "Pacientes", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	linha(pdf, "Pessoas no arquivo legado", stats.TotalPessoas)
	linha(pdf, "Profissionais (apenas indice, nao exportados)", stats.TotalProfissionais)
	linha(pdf, "Pacientes exportados", stats.TotalPacientes)
	linha(pdf, "Descartados (sem nome)", stats.TotalPessoas-stats.TotalProfissionais-stats.TotalPacientes)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, "Prontuarios", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	linha(pdf, "Anotacoes no arquivo legado", stats.TotalProntuarios)
	linha(pdf, "Prontuarios vinculados e exportados", stats.ProntuariosVinculados)
	linha(pdf, "Descartados (cliente nao resolvido ou sem data)", stats.TotalProntuarios-stats.ProntuariosVinculados)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func linha(pdf *fpdf.Fpdf, rotulo string, valor int) {
	pdf.CellFormat(0, 6, fmt.Sprintf("%s: %d", rotulo, valor), "", 1, "L", false, 0, "")
}
