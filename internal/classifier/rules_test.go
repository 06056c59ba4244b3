package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesStrongImprodutivo_Hits(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"congratulations", "parabéns pelo novo cargo"},
		{"congratulations unaccented", "parabens pela conquista"},
		{"birthday", "feliz aniversário, tudo de bom"},
		{"birthday unaccented", "feliz aniversario!"},
		{"holidays", "boas festas a todos"},
		{"newsletter", "confira nossa newsletter semanal"},
		{"unsubscribe", "click here to unsubscribe"},
		{"offer", "oferta imperdível só hoje"},
		{"offers plural", "as melhores ofertas do ano"},
		{"promotion", "promoção válida até sexta"},
		{"promotions unaccented", "promocoes de fim de ano"},
		{"discount", "desconto de 50% na assinatura"},
		{"raffle", "participe do sorteio"},
		{"marketing", "equipe de marketing da empresa"},
		{"happy hour invite", "convite para o happy hour de sexta"},
		{"meme", "olha esse meme que me mandaram"},
		{"invite", "convite para a festa"},
		{"enrollment", "sua inscrição foi confirmada"},
		{"webinar", "não perca o webinar de amanhã"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, MatchesStrongImprodutivo(tt.text))
		})
	}
}

func TestMatchesStrongImprodutivo_Misses(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"support ticket", "segue o status do chamado #1234"},
		{"bug report", "encontrei um bug no sistema, não consigo finalizar"},
		{"meeting", "podemos marcar uma reunião amanhã?"},
		{"empty", ""},
		{"substring not word", "descontosx não é palavra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, MatchesStrongImprodutivo(tt.text))
		})
	}
}

func TestMatchesMildProdutivo(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"chamado", "sobre o chamado de ontem", true},
		{"projeto", "andamento do projeto x", true},
		{"meeting accented", "pauta da reunião", true},
		{"meeting unaccented", "pauta da reuniao", true},
		{"deadline", "o deadline é sexta", true},
		{"status", "qual o status?", true},
		{"delivery", "a entrega atrasou", true},
		{"deliveries", "as entregas do mês", true},
		{"ticket", "abri um ticket", true},
		{"support", "preciso de suporte", true},
		{"social text", "obrigado pela ajuda", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesMildProdutivo(tt.text))
		})
	}
}
