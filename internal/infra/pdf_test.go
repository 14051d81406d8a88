package infra

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncarNombre(t *testing.T) {
	t.Run("corto queda igual", func(t *testing.T) {
		assert.Equal(t, "Bidón 20L", truncarNombre("Bidón 20L", 28))
	})

	t.Run("recorta sobre runas sin romper acentos", func(t *testing.T) {
		// El acento cae justo en el borde del corte.
		largo := "Bidón retornable de agua mineral natural ó soda"
		got := truncarNombre(largo, 28)

		assert.True(t, utf8.ValidString(got), "UTF-8 inválido: %q", got)
		assert.Equal(t, 28, utf8.RuneCountInString(got))
		assert.True(t, strings.HasSuffix(got, "…"))
	})

	t.Run("limite exacto no recorta", func(t *testing.T) {
		exacto := strings.Repeat("ñ", 28)
		assert.Equal(t, exacto, truncarNombre(exacto, 28))
	})
}
