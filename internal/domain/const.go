package domain

// Language is a supported UI language code.
type Language string

const (
	LangEnglish Language = "en"
	LangSomali  Language = "so"
	LangArabic  Language = "ar"
)

// ParseLanguage maps a raw language code to a supported Language.
// Unknown codes resolve to English.
func ParseLanguage(code string) Language {
	switch Language(code) {
	case LangEnglish, LangSomali, LangArabic:
		return Language(code)
	default:
		return LangEnglish
	}
}

// LanguageName returns the English name of a language, used when
// instructing the archivist which language to reply in.
func LanguageName(lang Language) string {
	switch lang {
	case LangSomali:
		return "Somali"
	case LangArabic:
		return "Arabic"
	default:
		return "English"
	}
}

// Category is the editorial category of a dossier. The raw value from
// the backend is preserved even when it falls outside the known set.
type Category string

const (
	CategoryPolitics Category = "Politics"
	CategoryBusiness Category = "Business"
	CategoryHistory  Category = "History"
	CategoryArts     Category = "Arts & Culture"
)

var categoryLabels = map[Language]map[Category]string{
	LangEnglish: {
		CategoryPolitics: "Politics",
		CategoryBusiness: "Business",
		CategoryHistory:  "History",
		CategoryArts:     "Arts & Culture",
	},
	LangSomali: {
		CategoryPolitics: "Siyaasadda",
		CategoryBusiness: "Ganacsiga",
		CategoryHistory:  "Taariikhda",
		CategoryArts:     "Fanka & Dhaqanka",
	},
	LangArabic: {
		CategoryPolitics: "السياسة",
		CategoryBusiness: "الأعمال",
		CategoryHistory:  "التاريخ",
		CategoryArts:     "الفنون والثقافة",
	},
}

// CategoryLabel resolves the display label for a category in the given
// language. Unknown categories borrow the Politics label; the raw
// category value itself is never rewritten.
func CategoryLabel(category Category, lang Language) string {
	labels, ok := categoryLabels[lang]
	if !ok {
		labels = categoryLabels[LangEnglish]
	}
	if label, ok := labels[category]; ok {
		return label
	}
	return labels[CategoryPolitics]
}

// VerificationLevel is an editorial trust ranking, independent of the
// binary verified flag.
type VerificationLevel string

const (
	VerificationStandard VerificationLevel = "Standard"
	VerificationGolden   VerificationLevel = "Golden"
	VerificationHero     VerificationLevel = "Hero"
)

// ProfileStatus is the lifecycle status of a profile.
type ProfileStatus string

const (
	StatusActive   ProfileStatus = "ACTIVE"
	StatusDeceased ProfileStatus = "DECEASED"
	StatusRetired  ProfileStatus = "RETIRED"
	StatusClosed   ProfileStatus = "CLOSED"
)

// DossierStatus is the backend verification status of a raw record.
type DossierStatus string

const (
	DossierVerified   DossierStatus = "Verified"
	DossierUnverified DossierStatus = "Unverified"
)

// Fixed archivist fallback sentences. The unavailable sentences are
// returned when no summarization credential is configured; the retry
// sentence covers every other archivist failure.
var summaryUnavailable = map[Language]string{
	LangEnglish: "The archive intelligence service is currently unavailable (API Key missing).",
	LangSomali:  "Adeegga sirdoonka kaydka hadda ma shaqaynayo (Furaha API ayaa maqan).",
	LangArabic:  "خدمة ذكاء الأرشيف غير متاحة حاليًا (مفتاح API مفقود).",
}

// SummaryRetryMessage is returned when a configured archivist call
// fails for any reason other than missing configuration.
const SummaryRetryMessage = "The archive service is currently unavailable. Please try again later."

// SummaryUnavailableMessage returns the pre-localized unavailable
// sentence for a language, falling back to English.
func SummaryUnavailableMessage(lang Language) string {
	if msg, ok := summaryUnavailable[lang]; ok {
		return msg
	}
	return summaryUnavailable[LangEnglish]
}
