// Package i18n maps stable machine identifiers to display strings so that
// classification logic never depends on the presentation language.
package i18n

// Language represents a supported language.
type Language string

const (
	// Norwegian is the Norwegian (bokmål) language.
	Norwegian Language = "nb"
	// English is the English language.
	English Language = "en"
)

// DefaultLanguage is the fallback language.
const DefaultLanguage = Norwegian

// translations maps language codes to translation keys and their values.
var translations = map[Language]map[string]string{
	Norwegian: {
		"muscle.chest":     "Bryst",
		"muscle.back":      "Rygg",
		"muscle.legs":      "Bein",
		"muscle.shoulders": "Skuldre",
		"muscle.arms":      "Armer",
		"muscle.core":      "Kjerne",
		"muscle.cardio":    "Kondisjon",
		"muscle.full_body": "Helkropp",

		"recovery.trained_today":     "Trent i dag",
		"recovery.trained_yesterday": "Trent i går",
		"recovery.trained_days_ago":  "Trent for %d dager siden",
		"recovery.never_trained":     "Aldri trent",

		"advisory.neglected":       "%s er ikke trent på %d dager",
		"advisory.neglected_never": "%s er aldri trent",
		"advisory.overtrained":     "%s ble trent i går – vurder hvile eller en annen muskelgruppe i dag",

		"strength.tier.beginner":      "Nybegynner",
		"strength.tier.beginner_plus": "Nybegynner+",
		"strength.tier.intermediate":  "Middels",
		"strength.tier.advanced":      "Avansert",

		"suggest.starter":      "Start med en enkel helkroppsøkt for å komme i gang!",
		"suggest.group":        "På tide å trene %s – prøv %s",
		"suggest.group_plain":  "På tide å trene %s",
		"suggest.cardio":       "Få inn mer kondisjon denne uken – minst to økter hjelper deg mot målet ditt",
		"suggest.legs":         "Ikke hopp over beindag! Du har ikke trent bein denne uken",
		"suggest.pull_balance": "Mye pressøvelser i det siste – gi ryggen litt ekstra fokus",
		"suggest.rest":         "Tett program denne uken – vurder en hviledag eller en rolig mobilitetsøkt",
		"suggest.keep_it_up":   "Fortsett den gode jobben – du er i rute!",
	},
	English: {
		"muscle.chest":     "Chest",
		"muscle.back":      "Back",
		"muscle.legs":      "Legs",
		"muscle.shoulders": "Shoulders",
		"muscle.arms":      "Arms",
		"muscle.core":      "Core",
		"muscle.cardio":    "Cardio",
		"muscle.full_body": "Full body",

		"recovery.trained_today":     "Trained today",
		"recovery.trained_yesterday": "Trained yesterday",
		"recovery.trained_days_ago":  "Trained %d days ago",
		"recovery.never_trained":     "Never trained",

		"advisory.neglected":       "%s has not been trained for %d days",
		"advisory.neglected_never": "%s has never been trained",
		"advisory.overtrained":     "%s was trained yesterday – consider rest or a different focus today",

		"strength.tier.beginner":      "Beginner",
		"strength.tier.beginner_plus": "Beginner+",
		"strength.tier.intermediate":  "Intermediate",
		"strength.tier.advanced":      "Advanced",

		"suggest.starter":      "Start with a simple full-body session to get going!",
		"suggest.group":        "Time to train %s – try %s",
		"suggest.group_plain":  "Time to train %s",
		"suggest.cardio":       "Fit in more cardio this week – at least two sessions help towards your goal",
		"suggest.legs":         "Don't skip leg day! You haven't trained legs this week",
		"suggest.pull_balance": "Lots of pressing lately – give your back some extra attention",
		"suggest.rest":         "Busy week – consider a rest day or an easy mobility session",
		"suggest.keep_it_up":   "Keep up the good work – you're on track!",
	},
}

// SupportedLanguages returns a list of all supported languages.
func SupportedLanguages() []Language {
	return []Language{Norwegian, English}
}

// IsSupported checks if a language is supported.
func IsSupported(lang Language) bool {
	_, ok := translations[lang]
	return ok
}

// Translate returns the translation for the given key in the specified language.
// If the key is not found, it falls back to the default language.
// If still not found, it returns the key itself.
func Translate(lang Language, key string) string {
	if langTranslations, ok := translations[lang]; ok {
		if translation, ok := langTranslations[key]; ok {
			return translation
		}
	}

	// Fallback to default language.
	if lang != DefaultLanguage {
		if translation, ok := translations[DefaultLanguage][key]; ok {
			return translation
		}
	}

	// Return the key itself if no translation found.
	return key
}

// T returns the translation for the given key in the default language.
func T(key string) string {
	return Translate(DefaultLanguage, key)
}
