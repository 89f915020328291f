package exportar

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/prontuario/importador/internal/legado"
)

// Planilha monta um XLSX com duas abas (Pacientes e Prontuários) para a
// clínica conferir o resultado da conversão antes da importação definitiva.
func Planilha(res *legado.Result) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), "Pacientes"); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet("Prontuários"); err != nil {
		return nil, err
	}

	linhasPacientes := make([]map[string]string, 0, len(res.Pacientes))
	for _, p := range res.Pacientes {
		linhasPacientes = append(linhasPacientes, p.Row())
	}
	if err := escreverAba(f, "Pacientes", legado.PatientColumns, linhasPacientes); err != nil {
		return nil, err
	}

	linhasProntuarios := make([]map[string]string, 0, len(res.Prontuarios))
	for _, m := range res.Prontuarios {
		linhasProntuarios = append(linhasProntuarios, m.Row())
	}
	if err := escreverAba(f, "Prontuários", legado.MedicalRecordColumns, linhasProntuarios); err != nil {
		return nil, err
	}
	return f, nil
}

// SalvarPlanilha grava a planilha de conferência no caminho dado, criando o
// diretório se preciso.
func SalvarPlanilha(res *legado.Result, outputPath string) error {
	f, err := Planilha(res)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}

func escreverAba(f *excelize.File, aba string, colunas []string, linhas []map[string]string) error {
	for i, c := range colunas {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(aba, cell, c); err != nil {
			return err
		}
	}
	for r, linha := range linhas {
		for i, c := range colunas {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(aba, cell, linha[c]); err != nil {
				return err
			}
		}
	}
	return nil
}
