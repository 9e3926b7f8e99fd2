package faces

import (
	"testing"

	"aurafocus/internal/core/model"
	"aurafocus/internal/core/timekeeper"

	"github.com/stretchr/testify/assert"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		code string
		want Language
		ok   bool
	}{
		{"en", English, true},
		{" PT ", Portuguese, true},
		{"", English, false},
		{"fr", English, false},
	}
	for _, tt := range tests {
		lang, ok := ParseLanguage(tt.code)
		assert.Equal(t, tt.want, lang, tt.code)
		assert.Equal(t, tt.ok, ok, tt.code)
	}
}

func TestEveryLanguageHasAllLabels(t *testing.T) {
	for _, lang := range Languages {
		text := lang.Labels()
		for _, value := range []string{
			text.Focus, text.ShortBreak, text.LongBreak, text.Settings,
			text.Start, text.Pause, text.Resume, text.Reset,
			text.Complete, text.SessionOne, text.SessionMany,
		} {
			assert.NotEmpty(t, value, lang)
		}
	}
}

func TestPortugueseLabels(t *testing.T) {
	assert.Equal(t, "Foco", FaceFocus.Title(Portuguese))
	assert.Equal(t, "Pausa Curta", FaceShortBreak.Title(Portuguese))
	assert.Equal(t, "Pausa Longa", FaceLongBreak.Title(Portuguese))
	assert.Equal(t, "Configurações", FaceSettings.Title(Portuguese))
	assert.Equal(t, "Iniciar", ToggleLabel(timekeeper.PhaseIdle, Portuguese))
	assert.Equal(t, "Pausar", ToggleLabel(timekeeper.PhaseRunning, Portuguese))
	assert.Equal(t, "Continuar", ToggleLabel(timekeeper.PhasePaused, Portuguese))
	assert.Equal(t, "1 sessão de foco", CounterText(1, Portuguese))
	assert.Equal(t, "3 sessões de foco", CounterText(3, Portuguese))
	assert.Equal(t, "Pausa Longa concluída", Portuguese.CompleteTitle(model.SessionLongBreak))
}

func TestUnknownLanguageUsesEnglish(t *testing.T) {
	lang := Language("xx")

	assert.Equal(t, "Focus", FaceFocus.Title(lang))
	assert.Equal(t, "Focus complete", lang.CompleteTitle(model.SessionFocus))
	assert.Equal(t, "English", lang.Name())
	assert.Equal(t, "Português", Portuguese.Name())
}
