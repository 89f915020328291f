package legado

import (
	"sort"
	"strings"
)

// GenerateCSV serializa linhas já normalizadas em texto separado por ponto e
// vírgula, com o cabeçalho na primeira linha. Um campo só ganha aspas quando
// contém ponto e vírgula, aspas ou quebra de linha; aspas internas são
// dobradas. columns define a ordem das colunas; se vier vazio, usa as chaves
// da primeira linha em ordem alfabética. Sem linhas, retorna vazio (nem o
// cabeçalho é emitido).
func GenerateCSV(rows []map[string]string, columns []string) string {
	if len(rows) == 0 {
		return ""
	}
	if len(columns) == 0 {
		columns = make([]string, 0, len(rows[0]))
		for k := range rows[0] {
			columns = append(columns, k)
		}
		sort.Strings(columns)
	}
	var b strings.Builder
	for i, c := range columns {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(escapeCSV(c))
	}
	for _, row := range rows {
		b.WriteByte('\n')
		for i, c := range columns {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(escapeCSV(row[c]))
		}
	}
	return b.String()
}

func escapeCSV(v string) string {
	if !strings.ContainsAny(v, ";\"\n") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}
