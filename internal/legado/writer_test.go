package legado

import (
	"encoding/csv"
	"strings"
	"testing"
)

func TestGenerateCSV_Basico(t *testing.T) {
	rows := []map[string]string{
		{"nome": "Maria", "cpf": "123.456.789-01"},
		{"nome": "João", "cpf": ""},
	}
	out := GenerateCSV(rows, []string{"nome", "cpf"})
	want := "nome;cpf\nMaria;123.456.789-01\nJoão;"
	if out != want {
		t.Fatalf("csv=%q, esperava %q", out, want)
	}
}

func TestGenerateCSV_AspasSoQuandoPrecisa(t *testing.T) {
	rows := []map[string]string{
		{"a": "com;ponto", "b": `com "aspas"`, "c": "com\nquebra", "d": "simples"},
	}
	out := GenerateCSV(rows, []string{"a", "b", "c", "d"})
	linhas := strings.SplitN(out, "\n", 2)
	if linhas[0] != "a;b;c;d" {
		t.Fatalf("cabeçalho=%q", linhas[0])
	}
	if !strings.Contains(out, `"com;ponto"`) {
		t.Fatalf("campo com ; devia sair entre aspas: %q", out)
	}
	if !strings.Contains(out, `"com ""aspas"""`) {
		t.Fatalf("aspas internas deviam ser dobradas: %q", out)
	}
	if strings.Contains(out, `"simples"`) {
		t.Fatalf("campo simples não devia ganhar aspas: %q", out)
	}
}

func TestGenerateCSV_SemLinhas(t *testing.T) {
	if out := GenerateCSV(nil, []string{"a"}); out != "" {
		t.Fatalf("sem linhas devia dar string vazia, veio %q", out)
	}
}

func TestGenerateCSV_ColunasDerivadasEmOrdemAlfabetica(t *testing.T) {
	out := GenerateCSV([]map[string]string{{"b": "2", "a": "1"}}, nil)
	if out != "a;b\n1;2" {
		t.Fatalf("csv=%q", out)
	}
}

// Ida e volta: o CSV gerado é consumido pelo pipeline de importação de
// destino, que lê aspas de verdade – por isso a releitura aqui usa um
// leitor com suporte a aspas, não o parser posicional do legado.
func TestGenerateCSV_IdaEVolta(t *testing.T) {
	valores := []string{
		"com;ponto e vírgula",
		`com "aspas" internas`,
		"com\nquebra de linha",
		`tudo junto; "aspas"` + "\n" + `e quebra`,
	}
	for _, v := range valores {
		out := GenerateCSV([]map[string]string{{"valor": v}}, []string{"valor"})
		r := csv.NewReader(strings.NewReader(out))
		r.Comma = ';'
		registros, err := r.ReadAll()
		if err != nil {
			t.Fatalf("releitura de %q: %v", v, err)
		}
		if len(registros) != 2 || registros[1][0] != v {
			t.Fatalf("ida e volta perdeu conteúdo: %q -> %v", v, registros)
		}
	}
}
