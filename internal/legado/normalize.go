package legado

import (
	"regexp"
	"strings"
)

var (
	naoDigitos   = regexp.MustCompile(`[^0-9]`)
	dataISO      = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
	dataBR       = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	foneLixo     = regexp.MustCompile(`[^0-9()\-\s]`)
	foneSemNada  = regexp.MustCompile(`^[0()\-\s]*$`)
	tagQuebra    = regexp.MustCompile(`(?i)<br\s*/?>|</p>`)
	tagQualquer  = regexp.MustCompile(`<[^>]*>`)
	quebrasTripl = regexp.MustCompile(`\n{3,}`)
	espacoRepet  = regexp.MustCompile(`[ \t]{2,}`)
)

var entidadesHTML = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
)

// CleanCPF remove tudo que não for dígito.
func CleanCPF(cpf string) string {
	return naoDigitos.ReplaceAllString(cpf, "")
}

// FormatCPF formata um CPF de 11 dígitos como ###.###.###-##.
// Entradas com outra quantidade de dígitos (CNPJ, vazio, lixo) voltam como
// vieram.
func FormatCPF(cpf string) string {
	d := CleanCPF(cpf)
	if len(d) != 11 {
		return cpf
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// FormatDate converte datas YYYY-MM-DD (com ou sem sufixo de hora) para
// DD/MM/YYYY. Datas já em DD/MM/YYYY passam direto; qualquer outro formato
// volta sem alteração.
func FormatDate(data string) string {
	if data == "" {
		return ""
	}
	if dataBR.MatchString(data) {
		return data
	}
	if m := dataISO.FindStringSubmatch(data); m != nil {
		return m[3] + "/" + m[2] + "/" + m[1]
	}
	return data
}

// CleanPhone mantém apenas dígitos, parênteses, hífen e espaço. Se o que
// sobrar não tiver nenhum dígito diferente de zero, trata como "sem telefone"
// e retorna vazio.
func CleanPhone(fone string) string {
	if fone == "" {
		return ""
	}
	limpo := foneLixo.ReplaceAllString(fone, "")
	if foneSemNada.MatchString(limpo) {
		return ""
	}
	return limpo
}

// MapSexo expande as abreviações do sistema legado. Valores fora do
// vocabulário passam direto.
func MapSexo(sexo string) string {
	switch strings.ToUpper(strings.TrimSpace(sexo)) {
	case "M":
		return "Masculino"
	case "F":
		return "Feminino"
	}
	return sexo
}

var estadosCivis = map[string]string{
	"solteiro":      "Solteiro",
	"casado":        "Casado",
	"divorciado":    "Divorciado",
	"viuvo":         "Viúvo",
	"viúvo":         "Viúvo",
	"separado":      "Separado",
	"uniao estavel": "União Estável",
	"uniao estável": "União Estável",
	"união estavel": "União Estável",
	"união estável": "União Estável",
}

// MapEstadoCivil traduz o estado civil do legado para os rótulos do cadastro.
// Valores fora do vocabulário passam direto.
func MapEstadoCivil(estado string) string {
	if v, ok := estadosCivis[strings.ToLower(strings.TrimSpace(estado))]; ok {
		return v
	}
	return estado
}

// CleanHTML reduz o HTML dos campos de texto livre a texto puro: <br> e </p>
// viram quebra de linha, as demais tags caem, entidades comuns são
// decodificadas e espaço repetido é colapsado.
func CleanHTML(s string) string {
	if s == "" {
		return ""
	}
	s = tagQuebra.ReplaceAllString(s, "\n")
	s = tagQualquer.ReplaceAllString(s, "")
	s = entidadesHTML.Replace(s)
	s = quebrasTripl.ReplaceAllString(s, "\n\n")
	s = espacoRepet.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
