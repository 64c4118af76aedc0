package ui

// Lang is a UI language code.
type Lang string

const (
	LangNorwegian Lang = "nb"
	LangEnglish   Lang = "en"
)

// Text keys for localization
const (
	KeyTitle       = "title"
	KeyPlaceholder = "placeholder"
	KeyButton      = "button"
	KeyValidation  = "validation"
	KeyBusy        = "busy"
	KeySuccess     = "success"
	KeyFailure     = "failure"
	KeyDownload    = "download"
	KeySavedTo     = "saved_to"
	KeyHelpConvert = "help_convert"
	KeyHelpFocus   = "help_focus"
	KeyHelpLang    = "help_lang"
	KeyHelpQuit    = "help_quit"
	KeyQuitTitle   = "quit_title"
	KeyQuitBusy    = "quit_busy"
	KeyQuitHelp    = "quit_help"
)

var texts = map[Lang]map[string]string{
	LangNorwegian: {
		KeyTitle:       "Dagen Reels",
		KeyPlaceholder: "Lim inn artikkel-URL",
		KeyButton:      "Lag video",
		KeyValidation:  "Vennligst lim inn en URL.",
		KeyBusy:        "Lager video, vennligst vent…",
		KeySuccess:     "Video klar!",
		KeyFailure:     "Noe gikk galt. Prøv igjen senere.",
		KeyDownload:    "Last ned video",
		KeySavedTo:     "lagret i",
		KeyHelpConvert: "lag video",
		KeyHelpFocus:   "bytt felt",
		KeyHelpLang:    "språk",
		KeyHelpQuit:    "avslutt",
		KeyQuitTitle:   "Avslutte?",
		KeyQuitBusy:    "En video lages fortsatt. Den går tapt hvis du avslutter.",
		KeyQuitHelp:    "y/enter: avslutt  esc: vent",
	},
	LangEnglish: {
		KeyTitle:       "Dagen Reels",
		KeyPlaceholder: "Paste article URL",
		KeyButton:      "Make video",
		KeyValidation:  "Please paste a URL.",
		KeyBusy:        "Generating video, please wait…",
		KeySuccess:     "Video ready!",
		KeyFailure:     "Something went wrong. Please try again later.",
		KeyDownload:    "Download video",
		KeySavedTo:     "saved to",
		KeyHelpConvert: "make video",
		KeyHelpFocus:   "switch field",
		KeyHelpLang:    "language",
		KeyHelpQuit:    "quit",
		KeyQuitTitle:   "Quit?",
		KeyQuitBusy:    "A video is still being generated. It will be lost if you quit.",
		KeyQuitHelp:    "y/enter: quit  esc: keep waiting",
	},
}

// Localization resolves text keys for the current language.
type Localization struct {
	current Lang
}

// NewLocalization returns a Localization for lang; unknown languages fall back to Norwegian.
func NewLocalization(lang Lang) *Localization {
	l := &Localization{current: LangNorwegian}
	l.SetLanguage(lang)
	return l
}

// SetLanguage switches language. Unknown languages are ignored.
func (l *Localization) SetLanguage(lang Lang) {
	if _, ok := texts[lang]; ok {
		l.current = lang
	}
}

// Language returns the current language.
func (l *Localization) Language() Lang {
	return l.current
}

// Toggle switches between Norwegian and English.
func (l *Localization) Toggle() {
	if l.current == LangNorwegian {
		l.current = LangEnglish
	} else {
		l.current = LangNorwegian
	}
}

// T returns the text for key, falling back to Norwegian, then to the key itself.
func (l *Localization) T(key string) string {
	if s, ok := texts[l.current][key]; ok {
		return s
	}
	if s, ok := texts[LangNorwegian][key]; ok {
		return s
	}
	return key
}
