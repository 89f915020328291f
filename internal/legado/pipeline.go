package legado

// Stats resume uma execução do importador. É a única visibilidade sobre
// linhas descartadas: a diferença entre os totais brutos e os exportados.
type Stats struct {
	TotalPessoas          int `json:"totalPessoas"`
	TotalPacientes        int `json:"totalPacientes"`
	TotalProfissionais    int `json:"totalProfissionais"`
	TotalProntuarios      int `json:"totalProntuarios"`
	ProntuariosVinculados int `json:"prontuariosVinculados"`
}

// Result agrega os registros transformados, suas serializações CSV nas
// ordens de coluna fixas e as estatísticas da execução.
type Result struct {
	Pacientes      []Patient
	Prontuarios    []MedicalRecord
	PacientesCSV   string
	ProntuariosCSV string
	Stats          Stats
}

// Process executa o pipeline completo sobre os dois exports legados: parse
// dos dois arquivos, índice de pessoas, transformação de pacientes e
// prontuários e serialização CSV. Tudo síncrono e em memória; cada chamada
// trabalha sobre dados próprios. Dado sujo nunca vira erro: a linha é
// descartada e aparece só na aritmética de Stats.
func Process(pessoasTexto, prontuariosTexto string) *Result {
	pessoas := ParseCSV(pessoasTexto)
	anotacoes := ParseCSV(prontuariosTexto)

	lookup := BuildLookup(pessoas.Rows)

	profissionais := 0
	for _, row := range pessoas.Rows {
		if IsProfissional(row) {
			profissionais++
		}
	}

	pacientes := TransformPacientes(pessoas.Rows)
	prontuarios := TransformProntuarios(anotacoes.Rows, lookup)

	return &Result{
		Pacientes:      pacientes,
		Prontuarios:    prontuarios,
		PacientesCSV:   GenerateCSV(patientRows(pacientes), PatientColumns),
		ProntuariosCSV: GenerateCSV(recordRows(prontuarios), MedicalRecordColumns),
		Stats: Stats{
			TotalPessoas:          len(pessoas.Rows),
			TotalPacientes:        len(pacientes),
			TotalProfissionais:    profissionais,
			TotalProntuarios:      len(anotacoes.Rows),
			ProntuariosVinculados: len(prontuarios),
		},
	}
}

func patientRows(pacientes []Patient) []map[string]string {
	rows := make([]map[string]string, 0, len(pacientes))
	for _, p := range pacientes {
		rows = append(rows, p.Row())
	}
	return rows
}

func recordRows(registros []MedicalRecord) []map[string]string {
	rows := make([]map[string]string, 0, len(registros))
	for _, m := range registros {
		rows = append(rows, m.Row())
	}
	return rows
}
