package main

// Country calling codes backing the signature phone composer. Keyed by
// display name because that is what the country selector submits.

type country struct {
	Name string
	Code string
	Flag string
}

var countries = []country{
	{"Argentina", "54", "🇦🇷"},
	{"Australia", "61", "🇦🇺"},
	{"Bolivia", "591", "🇧🇴"},
	{"Brazil", "55", "🇧🇷"},
	{"Canada", "1", "🇨🇦"},
	{"Chile", "56", "🇨🇱"},
	{"China", "86", "🇨🇳"},
	{"Colombia", "57", "🇨🇴"},
	{"Costa Rica", "506", "🇨🇷"},
	{"Dominican Republic", "1", "🇩🇴"},
	{"Ecuador", "593", "🇪🇨"},
	{"El Salvador", "503", "🇸🇻"},
	{"France", "33", "🇫🇷"},
	{"Germany", "49", "🇩🇪"},
	{"Guatemala", "502", "🇬🇹"},
	{"Honduras", "504", "🇭🇳"},
	{"India", "91", "🇮🇳"},
	{"Italy", "39", "🇮🇹"},
	{"Japan", "81", "🇯🇵"},
	{"Mexico", "52", "🇲🇽"},
	{"Netherlands", "31", "🇳🇱"},
	{"Nicaragua", "505", "🇳🇮"},
	{"Panama", "507", "🇵🇦"},
	{"Paraguay", "595", "🇵🇾"},
	{"Peru", "51", "🇵🇪"},
	{"Portugal", "351", "🇵🇹"},
	{"Spain", "34", "🇪🇸"},
	{"United Kingdom", "44", "🇬🇧"},
	{"United States", "1", "🇺🇸"},
	{"Uruguay", "598", "🇺🇾"},
	{"Venezuela", "58", "🇻🇪"},
}

func countryByName(name string) (country, bool) {
	for _, c := range countries {
		if c.Name == name {
			return c, true
		}
	}
	return country{}, false
}

// composePhone builds the displayed phone number as
// "+<calling code><raw digits>". An unknown country contributes no code.
func composePhone(countryName, rawPhone string) string {
	code := ""
	if c, ok := countryByName(countryName); ok {
		code = c.Code
	}
	return "+" + code + rawPhone
}
