package table

// Currency is a fiat wallet shown in the fiat tooltip.
type Currency struct {
	Code string `json:"code"`
	Flag string `json:"flag"`
	Name string `json:"name"`
}

const unknownCurrencyFlag = "💵"

var fiatCurrencies = map[string]Currency{
	"USD": {Code: "USD", Flag: "🇺🇸", Name: "US Dollar"},
	"EUR": {Code: "EUR", Flag: "🇪🇺", Name: "Euro"},
	"GBP": {Code: "GBP", Flag: "🇬🇧", Name: "British Pound"},
	"JPY": {Code: "JPY", Flag: "🇯🇵", Name: "Japanese Yen"},
	"CHF": {Code: "CHF", Flag: "🇨🇭", Name: "Swiss Franc"},
	"AUD": {Code: "AUD", Flag: "🇦🇺", Name: "Australian Dollar"},
	"CAD": {Code: "CAD", Flag: "🇨🇦", Name: "Canadian Dollar"},
	"NZD": {Code: "NZD", Flag: "🇳🇿", Name: "New Zealand Dollar"},
	"SGD": {Code: "SGD", Flag: "🇸🇬", Name: "Singapore Dollar"},
	"HKD": {Code: "HKD", Flag: "🇭🇰", Name: "Hong Kong Dollar"},
	"CNY": {Code: "CNY", Flag: "🇨🇳", Name: "Chinese Yuan"},
	"KRW": {Code: "KRW", Flag: "🇰🇷", Name: "South Korean Won"},
	"INR": {Code: "INR", Flag: "🇮🇳", Name: "Indian Rupee"},
	"IDR": {Code: "IDR", Flag: "🇮🇩", Name: "Indonesian Rupiah"},
	"MYR": {Code: "MYR", Flag: "🇲🇾", Name: "Malaysian Ringgit"},
	"PHP": {Code: "PHP", Flag: "🇵🇭", Name: "Philippine Peso"},
	"THB": {Code: "THB", Flag: "🇹🇭", Name: "Thai Baht"},
	"VND": {Code: "VND", Flag: "🇻🇳", Name: "Vietnamese Dong"},
	"TWD": {Code: "TWD", Flag: "🇹🇼", Name: "Taiwan Dollar"},
	"SEK": {Code: "SEK", Flag: "🇸🇪", Name: "Swedish Krona"},
	"NOK": {Code: "NOK", Flag: "🇳🇴", Name: "Norwegian Krone"},
	"DKK": {Code: "DKK", Flag: "🇩🇰", Name: "Danish Krone"},
	"PLN": {Code: "PLN", Flag: "🇵🇱", Name: "Polish Zloty"},
	"CZK": {Code: "CZK", Flag: "🇨🇿", Name: "Czech Koruna"},
	"HUF": {Code: "HUF", Flag: "🇭🇺", Name: "Hungarian Forint"},
	"RON": {Code: "RON", Flag: "🇷🇴", Name: "Romanian Leu"},
	"BGN": {Code: "BGN", Flag: "🇧🇬", Name: "Bulgarian Lev"},
	"HRK": {Code: "HRK", Flag: "🇭🇷", Name: "Croatian Kuna"},
	"BRL": {Code: "BRL", Flag: "🇧🇷", Name: "Brazilian Real"},
	"MXN": {Code: "MXN", Flag: "🇲🇽", Name: "Mexican Peso"},
	"ARS": {Code: "ARS", Flag: "🇦🇷", Name: "Argentine Peso"},
	"CLP": {Code: "CLP", Flag: "🇨🇱", Name: "Chilean Peso"},
	"COP": {Code: "COP", Flag: "🇨🇴", Name: "Colombian Peso"},
	"PEN": {Code: "PEN", Flag: "🇵🇪", Name: "Peruvian Sol"},
	"AED": {Code: "AED", Flag: "🇦🇪", Name: "UAE Dirham"},
	"SAR": {Code: "SAR", Flag: "🇸🇦", Name: "Saudi Riyal"},
	"ILS": {Code: "ILS", Flag: "🇮🇱", Name: "Israeli Shekel"},
	"TRY": {Code: "TRY", Flag: "🇹🇷", Name: "Turkish Lira"},
	"ZAR": {Code: "ZAR", Flag: "🇿🇦", Name: "South African Rand"},
	"NGN": {Code: "NGN", Flag: "🇳🇬", Name: "Nigerian Naira"},
	"KES": {Code: "KES", Flag: "🇰🇪", Name: "Kenyan Shilling"},
	"EGP": {Code: "EGP", Flag: "🇪🇬", Name: "Egyptian Pound"},
	"RUB": {Code: "RUB", Flag: "🇷🇺", Name: "Russian Ruble"},
	"UAH": {Code: "UAH", Flag: "🇺🇦", Name: "Ukrainian Hryvnia"},
	"KZT": {Code: "KZT", Flag: "🇰🇿", Name: "Kazakh Tenge"},
	"FJD": {Code: "FJD", Flag: "🇫🇯", Name: "Fijian Dollar"},
	"PKR": {Code: "PKR", Flag: "🇵🇰", Name: "Pakistani Rupee"},
	"BDT": {Code: "BDT", Flag: "🇧🇩", Name: "Bangladeshi Taka"},
	"LKR": {Code: "LKR", Flag: "🇱🇰", Name: "Sri Lankan Rupee"},
	"NPR": {Code: "NPR", Flag: "🇳🇵", Name: "Nepalese Rupee"},
}

// CurrencyInfo looks up a currency code, falling back to a banknote and the
// code itself.
func CurrencyInfo(code string) Currency {
	if c, ok := fiatCurrencies[code]; ok {
		return c
	}
	return Currency{Code: code, Flag: unknownCurrencyFlag, Name: code}
}

// Currencies resolves a list of codes in order.
func Currencies(codes []string) []Currency {
	if len(codes) == 0 {
		return nil
	}
	out := make([]Currency, len(codes))
	for i, code := range codes {
		out[i] = CurrencyInfo(code)
	}
	return out
}
