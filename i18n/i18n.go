package i18n

import (
	"log"
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var (
	lang      string
	bundle    *goi18n.Bundle
	localizer *goi18n.Localizer
)

// translations maps English source text to its translations.
var translations = map[string]map[string]string{
	"Menubar Countdown": {
		"pt": "Contagem na Barra de Menus",
		"es": "Cuenta atrás en la barra de menús",
		"ru": "Обратный отсчёт",
	},
	"Start Countdown...": {
		"pt": "Iniciar contagem...",
		"es": "Iniciar cuenta atrás...",
		"ru": "Начать отсчёт...",
	},
	"Start": {
		"pt": "Iniciar",
		"es": "Iniciar",
		"ru": "Старт",
	},
	"Stop": {
		"pt": "Parar",
		"es": "Parar",
		"ru": "Стоп",
	},
	"Pause": {
		"pt": "Pausar",
		"es": "Pausar",
		"ru": "Пауза",
	},
	"Resume": {
		"pt": "Retomar",
		"es": "Reanudar",
		"ru": "Продолжить",
	},
	"Cancel": {
		"pt": "Cancelar",
		"es": "Cancelar",
		"ru": "Отмена",
	},
	"OK": {
		"pt": "OK",
		"es": "Aceptar",
		"ru": "ОК",
	},
	"Preferences...": {
		"pt": "Preferências...",
		"es": "Preferencias...",
		"ru": "Настройки...",
	},
	"About Menubar Countdown": {
		"pt": "Sobre o Menubar Countdown",
		"es": "Acerca de Menubar Countdown",
		"ru": "О Menubar Countdown",
	},
	"hh:mm:ss, mm:ss or seconds": {
		"pt": "hh:mm:ss, mm:ss ou segundos",
		"es": "hh:mm:ss, mm:ss o segundos",
		"ru": "чч:мм:сс, мм:сс или секунды",
	},
	"Time's up!": {
		"pt": "O tempo acabou!",
		"es": "¡Se acabó el tiempo!",
		"ru": "Время вышло!",
	},
	"Restart Countdown": {
		"pt": "Reiniciar contagem",
		"es": "Reiniciar cuenta atrás",
		"ru": "Перезапустить отсчёт",
	},
	"The Menubar Countdown timer has reached zero.": {
		"pt": "O cronômetro do Menubar Countdown chegou a zero.",
		"es": "El temporizador de Menubar Countdown ha llegado a cero.",
		"ru": "Таймер Menubar Countdown достиг нуля.",
	},
	"Show seconds": {
		"pt": "Mostrar segundos",
		"es": "Mostrar segundos",
		"ru": "Показывать секунды",
	},
	"Blink when timer expires": {
		"pt": "Piscar quando o tempo acabar",
		"es": "Parpadear al terminar",
		"ru": "Мигать по окончании",
	},
	"Play alert sound": {
		"pt": "Tocar som de alerta",
		"es": "Reproducir sonido de alerta",
		"ru": "Проигрывать звук",
	},
	"Repeat alert sound": {
		"pt": "Repetir som de alerta",
		"es": "Repetir sonido de alerta",
		"ru": "Повторять звук",
	},
	"Speak announcement": {
		"pt": "Falar anúncio",
		"es": "Leer anuncio en voz alta",
		"ru": "Произносить объявление",
	},
	"Show alert window": {
		"pt": "Mostrar janela de alerta",
		"es": "Mostrar ventana de alerta",
		"ru": "Показывать окно оповещения",
	},
	"Show start dialog on launch": {
		"pt": "Mostrar diálogo ao iniciar",
		"es": "Mostrar diálogo al iniciar",
		"ru": "Показывать диалог при запуске",
	},
	"Display": {
		"pt": "Exibição",
		"es": "Pantalla",
		"ru": "Отображение",
	},
	"Sound": {
		"pt": "Som",
		"es": "Sonido",
		"ru": "Звук",
	},
	"Repeat every (s)": {
		"pt": "Repetir a cada (s)",
		"es": "Repetir cada (s)",
		"ru": "Повторять каждые (с)",
	},
	"Speech": {
		"pt": "Fala",
		"es": "Voz",
		"ru": "Речь",
	},
	"Announcement": {
		"pt": "Anúncio",
		"es": "Anuncio",
		"ru": "Объявление",
	},
	"Alert": {
		"pt": "Alerta",
		"es": "Alerta",
		"ru": "Оповещение",
	},
	"Launch": {
		"pt": "Inicialização",
		"es": "Inicio",
		"ru": "Запуск",
	},
}

func init() {
	lang = detectLang()
	log.Printf("Language set to: %s", lang)

	bundle = goi18n.NewBundle(language.English)
	for source, byLang := range translations {
		for l, text := range byLang {
			tag, err := language.Parse(l)
			if err != nil {
				log.Printf("Skipping translation for %q: %v", l, err)
				continue
			}
			if err := bundle.AddMessages(tag, &goi18n.Message{ID: source, Other: text}); err != nil {
				log.Printf("Failed to add %s translation of %q: %v", l, source, err)
			}
		}
	}
	localizer = goi18n.NewLocalizer(bundle, lang)
}

func detectLang() string {
	// Check for override environment variable
	if forcedLang := strings.TrimSpace(os.Getenv("MENUBAR_COUNTDOWN_LANG")); forcedLang != "" {
		log.Printf("MENUBAR_COUNTDOWN_LANG is set to: '%s'", forcedLang)
		return forcedLang
	}

	userLocales, err := locale.GetLocales()
	if err != nil {
		log.Println("Could not get user locale, defaulting to english")
		return "en"
	}
	if len(userLocales) == 0 {
		log.Println("No user locale detected, defaulting to english")
		return "en"
	}

	userLocale := userLocales[0]
	log.Printf("Detected user locale: %s", userLocale)
	for _, l := range []string{"pt", "es", "ru"} {
		if strings.HasPrefix(userLocale, l) {
			return l
		}
	}
	return "en"
}

// T returns the translation of the English text key, or key itself.
func T(key string) string {
	translated, err := localizer.Localize(&goi18n.LocalizeConfig{MessageID: key})
	if err != nil || translated == "" {
		return key
	}
	return translated
}

// SetLang switches the active language.
func SetLang(l string) {
	lang = l
	localizer = goi18n.NewLocalizer(bundle, l)
}

// GetLang returns the active language.
func GetLang() string {
	return lang
}
