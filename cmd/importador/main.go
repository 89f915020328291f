package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/prontuario/importador/internal/config"
	"github.com/prontuario/importador/internal/exportar"
	"github.com/prontuario/importador/internal/legado"
	"github.com/prontuario/importador/internal/relatorio"
)

// Os CSVs gerados saem com BOM para abrirem com acentuação correta no Excel.
const bomUTF8 = "\uFEFF"

func main() {
	root := &cobra.Command{
		Use:   "importador",
		Short: "Converte exports do sistema legado para o formato do Prontuario Saude",
	}
	root.AddCommand(converterCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func converterCmd() *cobra.Command {
	cfg := config.Load()
	var (
		saida     string
		gerarXLSX bool
		gerarPDF  bool
	)
	cmd := &cobra.Command{
		Use:   "converter <pessoas.csv> <prontuarios.csv>",
		Short: "Normaliza os dois exports legados e gera os CSVs de importacao",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
			execID := uuid.NewString()

			pessoas, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("ler arquivo de pessoas: %w", err)
			}
			anotacoes, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("ler arquivo de prontuários: %w", err)
			}

			res := legado.Process(string(pessoas), string(anotacoes))

			if err := os.MkdirAll(saida, 0o755); err != nil {
				return fmt.Errorf("criar diretório de saída: %w", err)
			}
			pacPath := filepath.Join(saida, cfg.ArquivoPacientes)
			if err := os.WriteFile(pacPath, []byte(bomUTF8+res.PacientesCSV), 0o644); err != nil {
				return fmt.Errorf("gravar %s: %w", pacPath, err)
			}
			prontPath := filepath.Join(saida, cfg.ArquivoProntuarios)
			if err := os.WriteFile(prontPath, []byte(bomUTF8+res.ProntuariosCSV), 0o644); err != nil {
				return fmt.Errorf("gravar %s: %w", prontPath, err)
			}

			logger.Info().
				Str("execucao", execID).
				Int("pessoas", res.Stats.TotalPessoas).
				Int("pacientes", res.Stats.TotalPacientes).
				Int("profissionais", res.Stats.TotalProfissionais).
				Int("prontuarios", res.Stats.TotalProntuarios).
				Int("vinculados", res.Stats.ProntuariosVinculados).
				Str("pacientes_csv", pacPath).
				Str("prontuarios_csv", prontPath).
				Msg("conversão concluída")

			if gerarXLSX {
				planilhaPath := filepath.Join(saida, cfg.ArquivoPlanilha)
				if err := exportar.SalvarPlanilha(res, planilhaPath); err != nil {
					return fmt.Errorf("gravar planilha: %w", err)
				}
				logger.Info().Str("planilha", planilhaPath).Msg("planilha de conferência gerada")
			}
			if gerarPDF {
				pdfBytes, err := relatorio.BuildImportPDF(execID, time.Now(), res.Stats)
				if err != nil {
					return fmt.Errorf("gerar relatório: %w", err)
				}
				pdfPath := filepath.Join(saida, cfg.ArquivoRelatorio)
				if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
					return fmt.Errorf("gravar %s: %w", pdfPath, err)
				}
				logger.Info().Str("relatorio", pdfPath).Msg("resumo em PDF gerado")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&saida, "saida", cfg.SaidaDir, "diretório de saída dos arquivos gerados")
	cmd.Flags().BoolVar(&gerarXLSX, "xlsx", false, "gera também planilha XLSX para conferência")
	cmd.Flags().BoolVar(&gerarPDF, "relatorio", false, "gera resumo da importação em PDF")
	return cmd
}
