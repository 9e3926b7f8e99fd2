package faces

import (
	"fmt"
	"strings"

	"aurafocus/internal/core/model"
)

// Language selects the text shown on faces and controls.
// Notification titles are not translated.
type Language string

const (
	English    Language = "en"
	Portuguese Language = "pt"
)

// Languages lists the supported languages in picker order.
var Languages = []Language{English, Portuguese}

// Labels is the translated text for one language.
type Labels struct {
	Focus      string
	ShortBreak string
	LongBreak  string
	Settings   string
	Start      string
	Pause      string
	Resume     string
	Reset      string
	// Complete formats a finished session title from its session name.
	Complete string
	// SessionOne and SessionMany format the completed focus session counter.
	SessionOne  string
	SessionMany string
}

var labels = map[Language]Labels{
	English: {
		Focus:       "Focus",
		ShortBreak:  "Short Break",
		LongBreak:   "Long Break",
		Settings:    "Settings",
		Start:       "Start",
		Pause:       "Pause",
		Resume:      "Resume",
		Reset:       "Reset",
		Complete:    "%s complete",
		SessionOne:  "1 focus session",
		SessionMany: "%d focus sessions",
	},
	Portuguese: {
		Focus:       "Foco",
		ShortBreak:  "Pausa Curta",
		LongBreak:   "Pausa Longa",
		Settings:    "Configurações",
		Start:       "Iniciar",
		Pause:       "Pausar",
		Resume:      "Continuar",
		Reset:       "Reiniciar",
		Complete:    "%s concluída",
		SessionOne:  "1 sessão de foco",
		SessionMany: "%d sessões de foco",
	},
}

// ParseLanguage reads a language code. Unknown codes fall back to English.
func ParseLanguage(code string) (Language, bool) {
	lang := Language(strings.ToLower(strings.TrimSpace(code)))
	if _, ok := labels[lang]; ok {
		return lang, true
	}
	return English, false
}

// Labels returns the text for lang, or English when lang is unknown.
func (lang Language) Labels() Labels {
	if text, ok := labels[lang]; ok {
		return text
	}
	return labels[English]
}

// Name is the language's own name, as shown in the picker.
func (lang Language) Name() string {
	switch lang {
	case Portuguese:
		return "Português"
	default:
		return "English"
	}
}

// SessionName returns the translated name of session.
func (lang Language) SessionName(session model.SessionType) string {
	text := lang.Labels()
	switch session {
	case model.SessionShortBreak:
		return text.ShortBreak
	case model.SessionLongBreak:
		return text.LongBreak
	default:
		return text.Focus
	}
}

// CompleteTitle is the heading of a finished session.
func (lang Language) CompleteTitle(session model.SessionType) string {
	return fmt.Sprintf(lang.Labels().Complete, lang.SessionName(session))
}
