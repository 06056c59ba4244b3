package classifier

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/jonesrussell/mail-triage/internal/domain"
)

// DeferredDateMarker is the placeholder every productive template
// embeds. Downstream consumers (a human or a scheduling system) resolve
// it; this component never does.
const DeferredDateMarker = "{DATA/PRAZO}"

// Reply templates, selected by label and keyword category.
const (
	replyStatus = "Olá! Obrigado pela atualização. Vamos verificar o status e retornamos até {DATA/PRAZO} " +
		"com os próximos passos."
	replyDiagnostic = "Olá! Obrigado pelo relato. Para agilizar, poderia informar prints, horário aproximado " +
		"do erro e o número do chamado (se houver)? Abriremos/atualizaremos o ticket e " +
		"retornaremos até {DATA/PRAZO}."
	replyFileReceipt = "Olá! Recebemos o arquivo. Vamos validar o conteúdo e retornamos com a confirmação " +
		"ou próximos passos até {DATA/PRAZO}."
	replyAcknowledgment = "Olá! Obrigado pela mensagem. Registramos sua solicitação e retornaremos com os próximos " +
		"passos até {DATA/PRAZO}. Caso tenha informações adicionais, responda a este e-mail."
	replyThankYou = "Muito obrigado pela mensagem! Ficamos à disposição quando precisar."
	replyClosing  = "Obrigado pelo contato! Caso precise de ajuda ou tenha alguma solicitação específica, " +
		"é só responder este e-mail."
)

// Keyword categories checked in fixed priority order; first match wins.
// Aho-Corasick gives a single pass over the text per category.
var (
	statusKeywords     = ahocorasick.NewStringMatcher([]string{"chamado", "ticket", "status", "andamento"})
	diagnosticKeywords = ahocorasick.NewStringMatcher([]string{"erro", "bug", "não consigo", "nao consigo", "problema", "falha"})
	fileKeywords       = ahocorasick.NewStringMatcher([]string{"anexo", "arquivo", "documento"})
	gratitudeKeywords  = ahocorasick.NewStringMatcher([]string{"parabéns", "felicitações", "obrigado", "agradeço"})
)

// Suggest maps (text, label) to exactly one reply template. Pure and
// deterministic: lowercases the original text, checks the label's
// keyword categories in priority order, falls through to the generic
// template for that label.
func Suggest(text string, label domain.Label) string {
	lower := []byte(strings.ToLower(text))

	if label == domain.LabelProdutivo {
		switch {
		case hits(statusKeywords, lower):
			return replyStatus
		case hits(diagnosticKeywords, lower):
			return replyDiagnostic
		case hits(fileKeywords, lower):
			return replyFileReceipt
		default:
			return replyAcknowledgment
		}
	}

	if hits(gratitudeKeywords, lower) {
		return replyThankYou
	}
	return replyClosing
}

func hits(m *ahocorasick.Matcher, text []byte) bool {
	return len(m.Match(text)) > 0
}
