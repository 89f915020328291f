package legado

import "testing"

func lookupDeTeste() map[string]PersonRef {
	return map[string]PersonRef{
		"1": {Nome: "Maria Silva", CPF: "123.456.789-01"},
		"2": {Nome: "Dr. João"},
		"3": {Nome: ""}, // pessoa sem nome: não resolve como cliente
	}
}

func TestTransformProntuarios_ResolucaoDeCliente(t *testing.T) {
	rows := []map[string]string{
		{"id_cliente": "1", "id_profissional": "2", "data": "2024-03-15", "descricao": "<b>Queixa principal:</b> dor de cabeça<p>"},
		{"id_cliente": "99", "data": "2024-03-15", "descricao": "x"}, // id fora do índice
		{"id_cliente": "3", "data": "2024-03-15", "descricao": "x"},  // pessoa sem nome
	}
	registros := TransformProntuarios(rows, lookupDeTeste())
	if len(registros) != 1 {
		t.Fatalf("só a linha resolvível devia sair: %+v", registros)
	}
	r := registros[0]
	if r.NomePaciente != "Maria Silva" || r.CPFPaciente != "123.456.789-01" {
		t.Fatalf("paciente mal resolvido: %+v", r)
	}
	if r.NomeProfissional != "Dr. João" {
		t.Fatalf("profissional mal resolvido: %+v", r)
	}
	if r.DataRegistro != "15/03/2024" {
		t.Fatalf("data_registro=%q", r.DataRegistro)
	}
	if r.Queixa != "dor de cabeça" {
		t.Fatalf("queixa=%q", r.Queixa)
	}
}

func TestTransformProntuarios_ProfissionalOpcional(t *testing.T) {
	rows := []map[string]string{
		{"id_cliente": "1", "id_profissional": "99", "data": "2024-01-02", "descricao": "nota"},
	}
	registros := TransformProntuarios(rows, lookupDeTeste())
	if len(registros) != 1 || registros[0].NomeProfissional != "" {
		t.Fatalf("profissional não resolvido devia sair vazio, não derrubar a linha: %+v", registros)
	}
}

func TestTransformProntuarios_DataObrigatoria(t *testing.T) {
	rows := []map[string]string{
		{"id_cliente": "1", "data": "", "descricao": "sem data"},
		{"id_cliente": "1", "data": "ontem", "descricao": "data inválida"},
		{"id_cliente": "1", "data": "2024-03-15", "descricao": "ok"},
	}
	registros := TransformProntuarios(rows, lookupDeTeste())
	if len(registros) != 1 {
		t.Fatalf("linhas sem data válida deviam cair: %+v", registros)
	}
	if registros[0].DataRegistro != "15/03/2024" {
		t.Fatalf("data_registro=%q", registros[0].DataRegistro)
	}
}

func TestTransformProntuarios_ObservacoesFallback(t *testing.T) {
	// Sem marcadores: a descrição limpa inteira vira observações.
	rows := []map[string]string{
		{"id_cliente": "1", "data": "2024-03-15", "descricao": "<p>Paciente tranquilo</p>"},
	}
	registros := TransformProntuarios(rows, lookupDeTeste())
	if registros[0].Observacoes != "Paciente tranquilo" {
		t.Fatalf("observacoes=%q", registros[0].Observacoes)
	}

	// Só história: entra em observações com o rótulo.
	rows = []map[string]string{
		{"id_cliente": "1", "data": "2024-03-15", "descricao": "<b>História:</b> parto normal"},
	}
	registros = TransformProntuarios(rows, lookupDeTeste())
	if registros[0].Observacoes != "História: parto normal" {
		t.Fatalf("observacoes=%q", registros[0].Observacoes)
	}

	// Outro marcador sem história: a descrição limpa inteira vira observações.
	rows = []map[string]string{
		{"id_cliente": "1", "data": "2024-03-15", "descricao": "<b>Queixa principal:</b> tosse"},
	}
	registros = TransformProntuarios(rows, lookupDeTeste())
	if registros[0].Queixa != "tosse" {
		t.Fatalf("queixa=%q", registros[0].Queixa)
	}
	if registros[0].Observacoes != "Queixa principal: tosse" {
		t.Fatalf("observacoes=%q", registros[0].Observacoes)
	}
}

func TestTransformProntuarios_PreservaOrdem(t *testing.T) {
	rows := []map[string]string{
		{"id_cliente": "1", "data": "2024-03-15", "descricao": "primeira"},
		{"id_cliente": "2", "data": "2024-03-16", "descricao": "segunda"},
		{"id_cliente": "1", "data": "2024-03-17", "descricao": "terceira"},
	}
	registros := TransformProntuarios(rows, lookupDeTeste())
	if len(registros) != 3 {
		t.Fatalf("esperava 3 registros, veio %d", len(registros))
	}
	if registros[0].DataRegistro != "15/03/2024" || registros[2].DataRegistro != "17/03/2024" {
		t.Fatalf("ordem de entrada não preservada: %+v", registros)
	}
}
