package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config reúne os padrões do importador vindos do ambiente. Tudo aqui tem
// default utilizável: o binário funciona sem nenhuma variável definida.
type Config struct {
	SaidaDir           string
	ArquivoPacientes   string
	ArquivoProntuarios string
	ArquivoPlanilha    string
	ArquivoRelatorio   string
}

// Load lê o .env do diretório atual (se existir) e monta a configuração.
func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		SaidaDir:           getEnv("IMPORTADOR_SAIDA", "."),
		ArquivoPacientes:   getEnv("IMPORTADOR_ARQUIVO_PACIENTES", "pacientes.csv"),
		ArquivoProntuarios: getEnv("IMPORTADOR_ARQUIVO_PRONTUARIOS", "prontuarios.csv"),
		ArquivoPlanilha:    getEnv("IMPORTADOR_ARQUIVO_PLANILHA", "importacao.xlsx"),
		ArquivoRelatorio:   getEnv("IMPORTADOR_ARQUIVO_RELATORIO", "relatorio-importacao.pdf"),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
