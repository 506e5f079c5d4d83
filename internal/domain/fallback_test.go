package domain

import "testing"

func TestFallbackProfilesNeverEmpty(t *testing.T) {
	for _, lang := range []Language{LangEnglish, LangSomali, LangArabic} {
		profiles := FallbackProfiles(lang)
		if len(profiles) == 0 {
			t.Fatalf("%s: fallback dataset must not be empty", lang)
		}
		for _, p := range profiles {
			if p.ID == "" || p.Name == "" || p.Category == "" {
				t.Fatalf("%s: fallback profile missing identity fields: %+v", lang, p)
			}
		}
	}
}

func TestFallbackProfilesLocalized(t *testing.T) {
	en := FallbackProfiles(LangEnglish)
	so := FallbackProfiles(LangSomali)

	if en[0].Name != so[0].Name {
		t.Fatalf("names must be stable across languages")
	}
	if en[0].CategoryLabel == so[0].CategoryLabel {
		t.Fatalf("category labels must localize")
	}
	if en[0].FullBio == so[0].FullBio {
		t.Fatalf("full bios must localize")
	}
}

func TestParseLanguageDefaultsToEnglish(t *testing.T) {
	if ParseLanguage("so") != LangSomali {
		t.Fatalf("known codes must pass through")
	}
	if ParseLanguage("fr") != LangEnglish {
		t.Fatalf("unknown codes must default to english")
	}
	if ParseLanguage("") != LangEnglish {
		t.Fatalf("empty code must default to english")
	}
}

func TestCategoryLabelFallsBackToPolitics(t *testing.T) {
	if CategoryLabel("Sports", LangSomali) != CategoryLabel(CategoryPolitics, LangSomali) {
		t.Fatalf("unknown category must borrow the politics label")
	}
	if CategoryLabel(CategoryArts, LangArabic) == CategoryLabel(CategoryArts, LangEnglish) {
		t.Fatalf("labels must differ per language")
	}
}
