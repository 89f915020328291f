package legado

// PersonRef é a entrada do índice de pessoas: o que um prontuário precisa
// para resolver suas referências de cliente e profissional.
type PersonRef struct {
	Nome string
	CPF  string // formatado com pontuação; vazio se ausente ou inválido
}

// BuildLookup indexa as linhas de pessoas pelo id legado. Linhas sem id são
// ignoradas; em caso de id duplicado a última linha vence. O mapa é montado
// uma vez por execução e só lido depois disso.
func BuildLookup(rows []map[string]string) map[string]PersonRef {
	lookup := make(map[string]PersonRef, len(rows))
	for _, row := range rows {
		id := row["id"]
		if id == "" {
			continue
		}
		lookup[id] = PersonRef{
			Nome: row["nome"],
			CPF:  cpfFormatadoOuVazio(row["cnpj_cpf"]),
		}
	}
	return lookup
}

// cpfFormatadoOuVazio difere de FormatCPF: no índice, um documento que não
// tem 11 dígitos (CNPJ, vazio) vira vazio em vez de passar direto.
func cpfFormatadoOuVazio(doc string) string {
	d := CleanCPF(doc)
	if len(d) != 11 {
		return ""
	}
	return FormatCPF(d)
}
