package language

import "strings"

// flagPrefix is the emoji naming convention for country flags ("flag-jp").
const flagPrefix = "flag-"

// countryToLang maps a flag emoji country suffix to a DeepL target language.
// Loaded once, never mutated, safe for concurrent reads.
var countryToLang = map[string]string{
	"ar": "ES",
	"at": "DE",
	"au": "EN",
	"bg": "BG",
	"br": "PT",
	"ca": "EN",
	"cl": "ES",
	"cn": "ZH",
	"co": "ES",
	"cz": "CS",
	"de": "DE",
	"dk": "DA",
	"ee": "ET",
	"es": "ES",
	"fi": "FI",
	"fr": "FR",
	"gb": "EN",
	"gr": "EL",
	"hk": "ZH",
	"hu": "HU",
	"id": "ID",
	"ie": "EN",
	"it": "IT",
	"jp": "JA",
	"kr": "KO",
	"lt": "LT",
	"lv": "LV",
	"mx": "ES",
	"nl": "NL",
	"no": "NB",
	"nz": "EN",
	"pe": "ES",
	"pl": "PL",
	"pt": "PT",
	"ro": "RO",
	"ru": "RU",
	"se": "SV",
	"si": "SL",
	"sk": "SK",
	"tr": "TR",
	"tw": "ZH",
	"ua": "UK",
	"us": "EN",
}

// shorthandToLang maps bare language-shorthand reactions ("jp", "fr") to a
// target language, without requiring the flag- prefix.
var shorthandToLang = map[string]string{
	"bg": "BG",
	"cn": "ZH",
	"cs": "CS",
	"da": "DA",
	"de": "DE",
	"el": "EL",
	"en": "EN",
	"es": "ES",
	"et": "ET",
	"fi": "FI",
	"fr": "FR",
	"hu": "HU",
	"id": "ID",
	"it": "IT",
	"ja": "JA",
	"jp": "JA",
	"ko": "KO",
	"kr": "KO",
	"lt": "LT",
	"lv": "LV",
	"nl": "NL",
	"pl": "PL",
	"pt": "PT",
	"ro": "RO",
	"ru": "RU",
	"sv": "SV",
	"tr": "TR",
	"zh": "ZH",
}

// Resolve maps a reaction emoji name to a target language code. A flag
// reaction is looked up by its country suffix; anything else is treated as a
// direct language shorthand. Unknown reactions return ok=false, which the
// caller treats as an expected no-op rather than an error.
func Resolve(reaction string) (string, bool) {
	if country, isFlag := strings.CutPrefix(reaction, flagPrefix); isFlag {
		lang, ok := countryToLang[country]
		return lang, ok
	}
	lang, ok := shorthandToLang[reaction]
	return lang, ok
}
