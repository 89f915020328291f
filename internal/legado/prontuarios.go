package legado

// MedicalRecord é o prontuário normalizado, com as referências de pessoa já
// resolvidas e a data no formato brasileiro.
type MedicalRecord struct {
	CPFPaciente      string
	NomePaciente     string
	NomeProfissional string
	DataRegistro     string
	Queixa           string
	Diagnostico      string
	Tratamento       string
	Prescricao       string
	Observacoes      string
}

// MedicalRecordColumns é a ordem fixa das colunas no CSV de prontuários.
var MedicalRecordColumns = []string{
	"cpf_paciente", "nome_paciente", "nome_profissional", "data_registro",
	"queixa", "diagnostico", "tratamento", "prescricao", "observacoes",
}

// TransformProntuarios resolve cada anotação legada contra o índice de
// pessoas e extrai as seções narrativas da descrição. Linhas cujo cliente
// não resolve (id ausente do índice ou pessoa sem nome) ou cuja data não
// vira DD/MM/YYYY são descartadas. O profissional não é obrigatório: se o
// id não resolve, o nome sai vazio. A ordem de entrada é preservada.
func TransformProntuarios(rows []map[string]string, lookup map[string]PersonRef) []MedicalRecord {
	registros := make([]MedicalRecord, 0, len(rows))
	for _, row := range rows {
		cliente, ok := lookup[row["id_cliente"]]
		if !ok || cliente.Nome == "" {
			continue
		}
		data := FormatDate(row["data"])
		if !dataBR.MatchString(data) {
			continue
		}
		secoes := ExtractSections(row["descricao"])
		obs, temObs := secoes["observacoes"]
		if !temObs {
			if historia, temHist := secoes["historia"]; temHist {
				obs = "História: " + historia
			} else {
				obs = CleanHTML(row["descricao"])
			}
		}
		registros = append(registros, MedicalRecord{
			CPFPaciente:      cliente.CPF,
			NomePaciente:     cliente.Nome,
			NomeProfissional: lookup[row["id_profissional"]].Nome,
			DataRegistro:     data,
			Queixa:           secoes["queixa"],
			Diagnostico:      secoes["diagnostico"],
			Tratamento:       secoes["tratamento"],
			Prescricao:       secoes["prescricao"],
			Observacoes:      obs,
		})
	}
	return registros
}

// Row converte o prontuário para o formato consumido pelo serializador CSV e
// pelos exports de conferência.
func (m MedicalRecord) Row() map[string]string {
	return map[string]string{
		"cpf_paciente":      m.CPFPaciente,
		"nome_paciente":     m.NomePaciente,
		"nome_profissional": m.NomeProfissional,
		"data_registro":     m.DataRegistro,
		"queixa":            m.Queixa,
		"diagnostico":       m.Diagnostico,
		"tratamento":        m.Tratamento,
		"prescricao":        m.Prescricao,
		"observacoes":       m.Observacoes,
	}
}
