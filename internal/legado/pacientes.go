package legado

import "strings"

// Patient é o registro normalizado aceito pelo cadastro de pacientes.
type Patient struct {
	Nome           string
	CPF            string
	RG             string
	Telefone       string
	TelefoneFixo   string
	Email          string
	DataNascimento string
	Sexo           string
	EstadoCivil    string
	Profissao      string
	NomeMae        string
	NomePai        string
	CEP            string
	Endereco       string
	Numero         string
	Complemento    string
	Bairro         string
	TipoSanguineo  string
	Escolaridade   string
	Observacoes    string
}

// PatientColumns é a ordem fixa das colunas no CSV de pacientes.
var PatientColumns = []string{
	"nome", "cpf", "rg", "telefone", "telefone_fixo", "email",
	"data_nascimento", "sexo", "estado_civil", "profissao",
	"nome_mae", "nome_pai", "cep", "endereco", "numero", "complemento",
	"bairro", "tipo_sanguineo", "escolaridade", "observacoes",
}

// IsProfissional informa se a linha legada é de um profissional da clínica.
// Profissionais entram só no índice de pessoas, nunca no export de pacientes.
func IsProfissional(row map[string]string) bool {
	return strings.EqualFold(strings.TrimSpace(row["tipo"]), "profissional")
}

// TransformPacientes converte as linhas do export de pessoas em pacientes
// normalizados, na ordem de entrada. Profissionais e linhas sem nome ficam
// de fora. O celular é o telefone principal; o fixo entra como fallback e é
// mantido também na sua própria coluna.
func TransformPacientes(rows []map[string]string) []Patient {
	pacientes := make([]Patient, 0, len(rows))
	for _, row := range rows {
		if IsProfissional(row) {
			continue
		}
		nome := strings.TrimSpace(row["nome"])
		if nome == "" {
			continue
		}
		celular := CleanPhone(row["celular"])
		fixo := CleanPhone(row["telefone"])
		telefone := celular
		if telefone == "" {
			telefone = fixo
		}
		pacientes = append(pacientes, Patient{
			Nome:           nome,
			CPF:            FormatCPF(row["cnpj_cpf"]),
			RG:             row["ie_rg"],
			Telefone:       telefone,
			TelefoneFixo:   fixo,
			Email:          row["email"],
			DataNascimento: FormatDate(row["nascimento"]),
			Sexo:           MapSexo(row["sexo"]),
			EstadoCivil:    MapEstadoCivil(row["estado_civil"]),
			Profissao:      row["profissao"],
			NomeMae:        row["mae_nome"],
			NomePai:        row["pai_nome"],
			CEP:            row["CEP"],
			Endereco:       row["endereco"],
			Numero:         row["numero"],
			Complemento:    row["complemento"],
			Bairro:         row["bairro"],
			TipoSanguineo:  row["tipo_sanguineo"],
			Escolaridade:   row["escolaridade"],
			Observacoes:    CleanHTML(row["observacao"]),
		})
	}
	return pacientes
}

// Row converte o paciente para o formato consumido pelo serializador CSV e
// pelos exports de conferência.
func (p Patient) Row() map[string]string {
	return map[string]string{
		"nome":            p.Nome,
		"cpf":             p.CPF,
		"rg":              p.RG,
		"telefone":        p.Telefone,
		"telefone_fixo":   p.TelefoneFixo,
		"email":           p.Email,
		"data_nascimento": p.DataNascimento,
		"sexo":            p.Sexo,
		"estado_civil":    p.EstadoCivil,
		"profissao":       p.Profissao,
		"nome_mae":        p.NomeMae,
		"nome_pai":        p.NomePai,
		"cep":             p.CEP,
		"endereco":        p.Endereco,
		"numero":          p.Numero,
		"complemento":     p.Complemento,
		"bairro":          p.Bairro,
		"tipo_sanguineo":  p.TipoSanguineo,
		"escolaridade":    p.Escolaridade,
		"observacoes":     p.Observacoes,
	}
}
