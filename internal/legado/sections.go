package legado

import "regexp"

// Rótulos de seção usados nos prontuários legados. Cada rótulo é buscado de
// forma independente sobre o HTML original completo; a captura vai até o
// próximo <p>, a próxima abertura de negrito ou o fim do texto. O importador
// antigo funcionava assim e os exports reais dependem desse comportamento,
// inclusive com rótulos fora de ordem.
var secoesProntuario = []struct {
	chave string
	re    *regexp.Regexp
}{
	{"queixa", padraoSecao("Queixa principal:")},
	{"historia", padraoSecao("História:")},
	{"diagnostico", padraoSecao("Diagnóstico:")},
	{"tratamento", padraoSecao("Tratamento:")},
	{"prescricao", padraoSecao("Prescrição:")},
}

func padraoSecao(rotulo string) *regexp.Regexp {
	return regexp.MustCompile(`(?is)` + regexp.QuoteMeta(rotulo) + `(.*?)(?:<p|<b>|$)`)
}

// ExtractSections localiza as seções rotuladas de um prontuário legado e
// devolve cada uma já limpa de HTML, indexada pela chave semântica. Quando
// nenhum rótulo é encontrado, o texto inteiro (limpo) vai para "observacoes",
// para que nenhum conteúdo clínico se perca em notas fora do modelo.
func ExtractSections(html string) map[string]string {
	secoes := make(map[string]string)
	for _, s := range secoesProntuario {
		if m := s.re.FindStringSubmatch(html); m != nil {
			secoes[s.chave] = CleanHTML(m[1])
		}
	}
	if len(secoes) == 0 {
		secoes["observacoes"] = CleanHTML(html)
	}
	return secoes
}
