package textfold

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Acción", want: "accion"},
		{in: "ACCIÓN", want: "accion"},
		{in: "  Simulación   Espacial ", want: "simulacion espacial"},
		{in: "RPG", want: "rpg"},
		{in: "Ñandú Studio", want: "nandu studio"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.in))
		})
	}
}

func TestFold_CanGrowPastSourceLength(t *testing.T) {
	in := strings.Repeat("ß", 50)
	got := Fold(in)

	assert.Equal(t, strings.Repeat("ss", 50), got)
	assert.Greater(t, utf8.RuneCountInString(got), utf8.RuneCountInString(in))
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%retro%", LikePattern("Retro"))
	assert.Equal(t, `%100\% acci\_n%`, LikePattern("100% Acci_n"))
}
