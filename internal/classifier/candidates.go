package classifier

import (
	"github.com/jonesrussell/mail-triage/internal/domain"
)

// Candidate hypothesis sentences shown to the NLI model in place of the
// bare labels. Descriptive domain wording anchors the entailment query
// far better than an abstract adjective would. Fixed once per process.
const (
	candidateProdutivo = "relacionado a trabalho: tarefas, prazos, reuniões, suporte, chamados, " +
		"projetos, entregas ou alinhamentos profissionais"
	candidateImprodutivo = "conteúdo pessoal ou social, felicitações, correntes, marketing, newsletter, " +
		"promoções, spam, memes, convites informais"
)

// CandidateSentences returns the two hypothesis sentences in a stable
// order, ready to hand to the zero-shot client.
func CandidateSentences() []string {
	return []string{candidateProdutivo, candidateImprodutivo}
}

// labelForSentence is the closed inverse mapping from a candidate
// sentence back to its label. An unmapped sentence falls back to
// Produtivo: a config mismatch must not silently manufacture spam
// classifications.
func labelForSentence(sentence string) domain.Label {
	switch sentence {
	case candidateProdutivo:
		return domain.LabelProdutivo
	case candidateImprodutivo:
		return domain.LabelImprodutivo
	default:
		return domain.LabelProdutivo
	}
}
