package domain

// pick resolves one of three translations for the active language.
func pick(lang Language, en, so, ar string) string {
	switch lang {
	case LangSomali:
		return so
	case LangArabic:
		return ar
	default:
		return en
	}
}

// FallbackProfiles returns the bundled directory used whenever no
// usable backend data is available. The set is fixed, non-empty and
// pre-localized for the requested language, so the directory is never
// blank in a demo or degraded environment. All entries are
// illustrative, not records of real persons.
func FallbackProfiles(lang Language) []Profile {
	return []Profile{
		{
			ID:                "fallback-1",
			Name:              "Amina Yusuf",
			Title:             pick(lang, "Member of Parliament", "Xildhibaan", "عضو البرلمان"),
			Category:          CategoryPolitics,
			CategoryLabel:     CategoryLabel(CategoryPolitics, lang),
			Verified:          true,
			VerificationLevel: VerificationGolden,
			ImageURL:          "/images/amina-yusuf.jpg",
			ShortBio: pick(lang,
				"Legislator focused on coastal development and education reform.",
				"Sharci-dejiye diiradda saaraya horumarinta xeebaha iyo dib-u-habaynta waxbarashada.",
				"مُشرّعة تركز على تنمية السواحل وإصلاح التعليم."),
			FullBio: pick(lang,
				"Amina Yusuf entered public service after a decade of community organizing in the coastal districts. Her legislative work centres on school access, fisheries policy and municipal finance.",
				"Amina Yusuf waxay gashay adeegga dadweynaha ka dib toban sano oo abaabul bulsho ah oo ka socday degmooyinka xeebaha. Shaqadeeda sharci-dejin waxay xuddun u tahay helitaanka dugsiyada, siyaasadda kalluumeysiga iyo maaliyadda degmooyinka.",
				"دخلت أمينة يوسف الخدمة العامة بعد عقد من العمل المجتمعي في المناطق الساحلية. يتركز عملها التشريعي على التعليم وسياسة مصايد الأسماك ومالية البلديات."),
			Timeline: []TimelineEvent{
				{Year: "2016", Title: pick(lang, "First elected", "Markii ugu horreysay la doortay", "انتخبت لأول مرة"), Description: pick(lang, "Won the coastal district seat.", "Waxay ku guulaysatay kursiga degmada xeebta.", "فازت بمقعد الدائرة الساحلية.")},
				{Year: "2021", Title: pick(lang, "Education act", "Xeerka waxbarashada", "قانون التعليم"), Description: pick(lang, "Sponsored the rural schools funding act.", "Waxay kafaala-qaaday xeerka maalgelinta dugsiyada miyiga.", "رعت قانون تمويل مدارس الأرياف.")},
			},
			Location:       pick(lang, "Mogadishu", "Muqdisho", "مقديشو"),
			Archives:       []ArchiveItem{{ID: "a1", Type: "PDF", Title: pick(lang, "Education act draft", "Qabyada xeerka waxbarashada", "مسودة قانون التعليم"), Date: "2021-03-12"}},
			News:           []NewsItem{{ID: "n1", Title: pick(lang, "Coastal schools reopen", "Dugsiyada xeebta ayaa dib u furmay", "إعادة افتتاح مدارس الساحل"), Source: "Radio Daljir", Date: "2022-09-01", Summary: pick(lang, "Twelve schools reopened under the new funding act.", "Laba iyo toban dugsi ayaa dib loo furay sida uu dhigayo xeerka cusub.", "أعيد افتتاح اثنتي عشرة مدرسة بموجب قانون التمويل الجديد.")}},
			Influence:      InfluenceStats{Support: 72, Neutral: 28, Opposition: 0},
			IsOrganization: false,
			Status:         StatusActive,
			DateStart:      "2016",
		},
		{
			ID:                "fallback-2",
			Name:              "Maxamed Warsame Dheeg",
			Title:             pick(lang, "Independence-era organizer", "Abaabule xilligii gobannimada", "منظم من حقبة الاستقلال"),
			Category:          CategoryHistory,
			CategoryLabel:     CategoryLabel(CategoryHistory, lang),
			Verified:          true,
			VerificationLevel: VerificationHero,
			ImageURL:          "/images/maxamed-warsame.jpg",
			ShortBio: pick(lang,
				"Organizer and pamphleteer of the late 1950s independence movement.",
				"Abaabule iyo qoraa buug-yare oo ka tirsanaa dhaqdhaqaaqii gobannimada dabayaaqadii 1950-meeyadii.",
				"منظم وكاتب منشورات في حركة الاستقلال أواخر الخمسينيات."),
			FullBio: pick(lang,
				"Maxamed Warsame Dheeg printed and distributed independence pamphlets across three regions, and later taught civics in the first national teachers college.",
				"Maxamed Warsame Dheeg wuxuu daabacay oo uu ku faafiyay buug-yarayaal gobannimo saddex gobol, kadibna wuxuu dhigi jiray cashar muwaadinnimo kulliyaddii ugu horreysay ee macallimiinta qaranka.",
				"طبع محمد ورسمه دهيج منشورات الاستقلال ووزعها في ثلاث مناطق، ثم درّس التربية الوطنية في أول كلية وطنية للمعلمين."),
			Timeline: []TimelineEvent{
				{Year: "1958", Title: pick(lang, "Pamphlet press", "Madbacadda buug-yarayaasha", "مطبعة المنشورات"), Description: pick(lang, "Founded a small independence press.", "Wuxuu aasaasay madbacad yar oo gobannimo.", "أسس مطبعة صغيرة للاستقلال.")},
				{Year: "1964", Title: pick(lang, "Teachers college", "Kulliyadda macallimiinta", "كلية المعلمين"), Description: pick(lang, "Joined the founding faculty.", "Wuxuu ku biiray macallimiintii aasaasay.", "انضم إلى الهيئة التأسيسية.")},
			},
			Location:       pick(lang, "Hargeisa", "Hargeysa", "هرجيسا"),
			Archives:       []ArchiveItem{{ID: "a2", Type: "IMAGE", Title: pick(lang, "Press photograph, 1958", "Sawirka madbacadda, 1958", "صورة المطبعة، 1958"), Date: "1958-06-26"}},
			News:           []NewsItem{},
			Influence:      InfluenceStats{Support: 88, Neutral: 12, Opposition: 0},
			IsOrganization: false,
			Status:         StatusDeceased,
			DateStart:      "1931",
			DateEnd:        "1998",
		},
		{
			ID:            "fallback-3",
			Name:          "Somali National Theatre",
			Title:         pick(lang, "National cultural institution", "Hay'ad dhaqameed qaran", "مؤسسة ثقافية وطنية"),
			Category:      CategoryArts,
			CategoryLabel: CategoryLabel(CategoryArts, lang),
			Verified:      true,
			ImageURL:      "/images/national-theatre.jpg",
			ShortBio: pick(lang,
				"The country's principal stage for drama, music and poetry since 1967.",
				"Masraxa ugu weyn ee dalka ee riwaayadaha, muusigga iyo gabayada tan iyo 1967.",
				"المسرح الرئيسي في البلاد للدراما والموسيقى والشعر منذ 1967."),
			FullBio: pick(lang,
				"Opened in 1967, the National Theatre hosted the golden era of Somali plays and concerts, closed during the civil war, and reopened after an extensive restoration.",
				"Waxaa la furay 1967, Masraxa Qaranku wuxuu martigeliyay xilligii dahabiga ahaa ee riwaayadaha iyo heesaha Soomaalida, wuu xirmay intii dagaalkii sokeeye, dibna waa la furay ka dib dayactir ballaaran.",
				"افتتح المسرح الوطني عام 1967 واحتضن العصر الذهبي للمسرحيات والحفلات الصومالية، وأغلق خلال الحرب الأهلية ثم أعيد افتتاحه بعد ترميم واسع."),
			Timeline: []TimelineEvent{
				{Year: "1967", Title: pick(lang, "Opening night", "Habeenkii furitaanka", "ليلة الافتتاح"), Description: pick(lang, "Inaugural national performance.", "Bandhigii ugu horreeyay ee qaran.", "العرض الوطني الافتتاحي.")},
				{Year: "2020", Title: pick(lang, "Restoration", "Dayactir", "الترميم"), Description: pick(lang, "Full restoration completed.", "Dayactir buuxa ayaa la dhammeeyay.", "اكتمل الترميم الكامل.")},
			},
			Location:       pick(lang, "Mogadishu", "Muqdisho", "مقديشو"),
			Archives:       []ArchiveItem{{ID: "a3", Type: "AWARD", Title: pick(lang, "Cultural heritage award", "Abaalmarinta hidaha dhaqanka", "جائزة التراث الثقافي"), Date: "2021-07-01"}},
			News:           []NewsItem{},
			Influence:      InfluenceStats{Support: 64, Neutral: 36, Opposition: 0},
			IsOrganization: true,
			Status:         StatusActive,
			DateStart:      "1967",
		},
		{
			ID:            "fallback-4",
			Name:          "Geeddi Trading Group",
			Title:         pick(lang, "Import and logistics company", "Shirkad dhoofin iyo saadaal", "شركة استيراد وخدمات لوجستية"),
			Category:      CategoryBusiness,
			CategoryLabel: CategoryLabel(CategoryBusiness, lang),
			Verified:      false,
			ImageURL:      "/images/geeddi-trading.jpg",
			ShortBio: pick(lang,
				"Family-run trading house operating across the Berbera corridor.",
				"Shirkad ganacsi oo qoys ka shaqeysa marinka Berbera.",
				"بيت تجاري عائلي يعمل عبر ممر بربرة."),
			FullBio: pick(lang,
				"Founded as a single dhow operation, Geeddi Trading Group now moves dry goods and construction material through the Berbera corridor to inland markets.",
				"Waxay ku bilaabatay doon keliya, Geeddi Trading Group waxay hadda ka qaaddaa badeecooyin iyo qalab dhisme marinka Berbera ilaa suuqyada gudaha.",
				"بدأت المجموعة بقارب واحد، وتنقل الآن البضائع الجافة ومواد البناء عبر ممر بربرة إلى الأسواق الداخلية."),
			Timeline:       []TimelineEvent{{Year: "1984", Title: pick(lang, "Founded", "La aasaasay", "التأسيس"), Description: pick(lang, "First vessel acquired.", "Markabkii ugu horreeyay la iibsaday.", "اقتناء أول سفينة.")}},
			Location:       pick(lang, "Berbera", "Berbera", "بربرة"),
			Archives:       []ArchiveItem{},
			News:           []NewsItem{},
			Influence:      InfluenceStats{Support: 45, Neutral: 55, Opposition: 0},
			IsOrganization: true,
			Status:         StatusActive,
			DateStart:      "1984",
		},
		{
			ID:                "fallback-5",
			Name:              "Xaliimo Cabdi Guuleed",
			Title:             pick(lang, "Poet and playwright", "Gabayaa iyo riwaayad-qore", "شاعرة وكاتبة مسرحية"),
			Category:          CategoryArts,
			CategoryLabel:     CategoryLabel(CategoryArts, lang),
			Verified:          true,
			VerificationLevel: VerificationStandard,
			ImageURL:          "/images/xaliimo-cabdi.jpg",
			ShortBio: pick(lang,
				"Voice of the buraanbur revival of the 1970s stage.",
				"Codkii soo nooleeyay buraanburka masraxa 1970-meeyadii.",
				"صوت إحياء شعر البرانبور على مسرح السبعينيات."),
			FullBio: pick(lang,
				"Xaliimo Cabdi Guuleed wrote and performed buraanbur for the national stage for two decades before retiring to teach composition.",
				"Xaliimo Cabdi Guuleed waxay qortay oo ay masraxa qaranka ku tirin jirtay buraanbur muddo labaatan sano ah ka hor inta aysan fariisan si ay u barto curinta.",
				"كتبت حليمة عبدي جوليد وأدّت شعر البرانبور على المسرح الوطني لعقدين قبل أن تتقاعد لتدريس التأليف."),
			Timeline:       []TimelineEvent{{Year: "1974", Title: pick(lang, "National stage debut", "Bandhigii ugu horreeyay ee masraxa qaranka", "أول ظهور على المسرح الوطني"), Description: pick(lang, "First buraanbur performance at the National Theatre.", "Buraanburkii ugu horreeyay ee Masraxa Qaranka.", "أول أداء للبرانبور في المسرح الوطني.")}},
			Location:       pick(lang, "Mogadishu", "Muqdisho", "مقديشو"),
			Archives:       []ArchiveItem{},
			News:           []NewsItem{},
			Influence:      InfluenceStats{Support: 58, Neutral: 42, Opposition: 0},
			IsOrganization: false,
			Status:         StatusRetired,
			DateStart:      "1951",
		},
	}
}
