package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestT_Translates(t *testing.T) {
	prev := GetLang()
	t.Cleanup(func() { SetLang(prev) })

	SetLang("pt")
	assert.Equal(t, "Pausar", T("Pause"))
	assert.Equal(t, "pt", GetLang())

	SetLang("es")
	assert.Equal(t, "Reanudar", T("Resume"))
}

func TestT_FallsBackToKey(t *testing.T) {
	prev := GetLang()
	t.Cleanup(func() { SetLang(prev) })

	SetLang("en")
	assert.Equal(t, "Pause", T("Pause"))

	SetLang("ru")
	assert.Equal(t, "Not translated", T("Not translated"))
}

func TestTranslations_CoverEveryLanguage(t *testing.T) {
	for source, byLang := range translations {
		for _, l := range []string{"pt", "es", "ru"} {
			assert.NotEmpty(t, byLang[l], "%q has no %s translation", source, l)
		}
	}
}
