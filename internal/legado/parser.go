package legado

import "strings"

// Table é o resultado do parse de um export legado: os cabeçalhos na ordem
// original do arquivo e uma linha por registro, indexada pelo nome da coluna.
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// ParseCSV interpreta o texto de um export legado separado por ponto e vírgula.
// Remove o BOM UTF-8, descarta linhas em branco, remove uma camada de aspas
// envolventes por campo e converte o literal NULL em vazio. O split é
// posicional: o formato legado não escapa ponto e vírgula dentro de campos,
// e um campo com ; embutido desalinha as colunas daquela linha. Colunas
// ausentes no fim da linha viram string vazia. Nunca retorna erro; entrada
// vazia produz uma Table vazia.
func ParseCSV(text string) Table {
	text = strings.TrimPrefix(text, "\uFEFF")
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	if len(lines) == 0 {
		return Table{Headers: []string{}, Rows: []map[string]string{}}
	}
	headers := strings.Split(lines[0], ";")
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}
	rows := make([]map[string]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		parts := strings.Split(line, ";")
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			v := ""
			if i < len(parts) {
				v = parts[i]
			}
			row[h] = cleanValue(v)
		}
		rows = append(rows, row)
	}
	return Table{Headers: headers, Rows: rows}
}

func cleanValue(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		v = v[1 : len(v)-1]
	}
	if v == "NULL" || v == "null" {
		return ""
	}
	return strings.TrimSpace(v)
}
