package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeText_UTF8(t *testing.T) {
	input := []byte("Olá, segue o relatório em anexo.")
	assert.Equal(t, "Olá, segue o relatório em anexo.", DecodeText(input))
}

func TestDecodeText_Latin1Fallback(t *testing.T) {
	// "relatório" in ISO-8859-1: ó is the single byte 0xF3, which is
	// invalid as UTF-8.
	input := []byte{'r', 'e', 'l', 'a', 't', 0xF3, 'r', 'i', 'o'}
	require.False(t, strings.Contains(string(input), "ó"))
	assert.Equal(t, "relatório", DecodeText(input))
}

func TestDecodeText_Empty(t *testing.T) {
	assert.Equal(t, "", DecodeText(nil))
	assert.Equal(t, "", DecodeText([]byte{}))
}

func TestFromFile_TXT(t *testing.T) {
	text, err := FromFile(strings.NewReader("status do chamado"), "email.txt")
	require.NoError(t, err)
	assert.Equal(t, "status do chamado", text)
}

func TestFromFile_ExtensionCaseInsensitive(t *testing.T) {
	text, err := FromFile(strings.NewReader("conteúdo"), "EMAIL.TXT")
	require.NoError(t, err)
	assert.Equal(t, "conteúdo", text)
}

func TestFromFile_UnsupportedFormat(t *testing.T) {
	for _, name := range []string{"email.docx", "email.eml", "email", "archive.zip"} {
		_, err := FromFile(strings.NewReader("x"), name)
		assert.ErrorIs(t, err, ErrUnsupportedFormat, "filename %s", name)
	}
}

func TestFromFile_InvalidPDF(t *testing.T) {
	_, err := FromFile(strings.NewReader("not a pdf at all"), "email.pdf")
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "txt", Format("a.txt"))
	assert.Equal(t, "pdf", Format("b.PDF"))
	assert.Equal(t, "", Format("c.docx"))
}
