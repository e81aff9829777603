package model

// ModelSize is a speed/accuracy tier of the speech recognition engine
type ModelSize string

const (
	ModelTiny   ModelSize = "tiny"
	ModelBase   ModelSize = "base"
	ModelSmall  ModelSize = "small"
	ModelMedium ModelSize = "medium"
	ModelLarge  ModelSize = "large"
)

// String returns the string representation of ModelSize
func (ms ModelSize) String() string {
	return string(ms)
}

// ModelSizeOptions returns the closed set of recognition model tiers
func ModelSizeOptions() []ModelSize {
	return []ModelSize{ModelTiny, ModelBase, ModelSmall, ModelMedium, ModelLarge}
}

// IsValidModelSize reports whether size is one of the known tiers
func IsValidModelSize(size string) bool {
	for _, ms := range ModelSizeOptions() {
		if string(ms) == size {
			return true
		}
	}
	return false
}

// Language is a spoken-language hint for the speech recognition engine
type Language string

const (
	LanguageSpanish    Language = "es"
	LanguageEnglish    Language = "en"
	LanguageFrench     Language = "fr"
	LanguageGerman     Language = "de"
	LanguageItalian    Language = "it"
	LanguagePortuguese Language = "pt"
	LanguageRussian    Language = "ru"
	LanguageJapanese   Language = "ja"
	LanguageKorean     Language = "ko"
	LanguageChinese    Language = "zh"
)

// String returns the string representation of Language
func (l Language) String() string {
	return string(l)
}

// LanguageOptions returns the closed set of supported language hints
func LanguageOptions() []Language {
	return []Language{
		LanguageSpanish,
		LanguageEnglish,
		LanguageFrench,
		LanguageGerman,
		LanguageItalian,
		LanguagePortuguese,
		LanguageRussian,
		LanguageJapanese,
		LanguageKorean,
		LanguageChinese,
	}
}

// IsValidLanguage reports whether code is one of the supported hints
func IsValidLanguage(code string) bool {
	for _, l := range LanguageOptions() {
		if string(l) == code {
			return true
		}
	}
	return false
}
