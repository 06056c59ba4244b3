package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "Segue o status do chamado", "Segue o status do chamado"},
		{"newlines and tabs", "Olá,\n\n\tsegue  o   relatório\r\n", "Olá, segue o relatório"},
		{"leading and trailing", "   bom dia   ", "bom dia"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_NFKCFolding(t *testing.T) {
	// Fullwidth forms and the ﬁ ligature fold to their compatibility
	// equivalents under NFKC.
	assert.Equal(t, "ticket 123", Normalize("ｔｉｃｋｅｔ １２３"))
	assert.Equal(t, "fila", Normalize("ﬁla"))
}

func TestNormalize_StripsDisclaimer(t *testing.T) {
	input := "Segue o relatório em anexo.\n" +
		"This message and its attachments are confidential. Please do not share it with third parties."
	assert.Equal(t, "Segue o relatório em anexo.", Normalize(input))
}

func TestNormalize_DisclaimerCaseInsensitive(t *testing.T) {
	input := "Oi. THIS MESSAGE IS STRICTLY CONFIDENTIAL, DO NOT SHARE."
	assert.Equal(t, "Oi.", Normalize(input))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"   spaced   out   ",
		"Feliz aniversário!\nParabéns!",
		"relatório This message is confidential do not share anything",
		"ｔｉｃｋｅｔ\t#42",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}
