package services

import (
	"github.com/SscSPs/pricex_locale/internal/core/domain"
)

var defaultRegions = []domain.RegionInfo{
	{ID: domain.RegionNorthAmerica, Name: "North America", NameAr: "أمريكا الشمالية"},
	{ID: domain.RegionSouthAmerica, Name: "South America", NameAr: "أمريكا الجنوبية"},
	{ID: domain.RegionEurope, Name: "Europe", NameAr: "أوروبا"},
	{ID: domain.RegionMENA, Name: "MENA", NameAr: "الشرق الأوسط وشمال أفريقيا"},
	{ID: domain.RegionAsia, Name: "Asia", NameAr: "آسيا"},
	{ID: domain.RegionAfrica, Name: "Africa", NameAr: "أفريقيا"},
	{ID: domain.RegionAustralia, Name: "Australia", NameAr: "أستراليا"},
	{ID: domain.RegionRussia, Name: "Russia", NameAr: "روسيا"},
}

var defaultCurrencies = []domain.CurrencyConfig{
	{Code: "USD", Symbol: "$", DisplayName: "US Dollar", FlagGlyph: "🇺🇸", DecimalPlaces: 2, SymbolPosition: domain.SymbolPrefix},
	{Code: "EUR", Symbol: "€", DisplayName: "Euro", FlagGlyph: "🇪🇺", DecimalPlaces: 2, SymbolPosition: domain.SymbolSuffix},
	{Code: "GBP", Symbol: "£", DisplayName: "British Pound", FlagGlyph: "🇬🇧", DecimalPlaces: 2, SymbolPosition: domain.SymbolPrefix},
	{Code: "JPY", Symbol: "¥", DisplayName: "Japanese Yen", FlagGlyph: "🇯🇵", DecimalPlaces: 0, SymbolPosition: domain.SymbolPrefix},
	{Code: "CNY", Symbol: "¥", DisplayName: "Chinese Yuan", FlagGlyph: "🇨🇳", DecimalPlaces: 0, SymbolPosition: domain.SymbolSuffix},
	{Code: "AED", Symbol: "د.إ", DisplayName: "UAE Dirham", FlagGlyph: "🇦🇪", DecimalPlaces: 2, SymbolPosition: domain.SymbolSuffix},
	{Code: "SAR", Symbol: "﷼", DisplayName: "Saudi Riyal", FlagGlyph: "🇸🇦", DecimalPlaces: 2, SymbolPosition: domain.SymbolSuffix},
	{Code: "TRY", Symbol: "₺", DisplayName: "Turkish Lira", FlagGlyph: "🇹🇷", DecimalPlaces: 2, SymbolPosition: domain.SymbolSuffix},
	{Code: "RUB", Symbol: "₽", DisplayName: "Russian Ruble", FlagGlyph: "🇷🇺", DecimalPlaces: 2, SymbolPosition: domain.SymbolPrefix},
	{Code: "INR", Symbol: "₹", DisplayName: "Indian Rupee", FlagGlyph: "🇮🇳", DecimalPlaces: 2, SymbolPosition: domain.SymbolPrefix},
	{Code: "PKR", Symbol: "₨", DisplayName: "Pakistani Rupee", FlagGlyph: "🇵🇰", DecimalPlaces: 2, SymbolPosition: domain.SymbolPrefix},
	{Code: "KRW", Symbol: "₩", DisplayName: "South Korean Won", FlagGlyph: "🇰🇷", DecimalPlaces: 0, SymbolPosition: domain.SymbolSuffix},
	{Code: "BRL", Symbol: "R$", DisplayName: "Brazilian Real", FlagGlyph: "🇧🇷", DecimalPlaces: 2, SymbolPosition: domain.SymbolSuffix},
	{Code: "MXN", Symbol: "$", DisplayName: "Mexican Peso", FlagGlyph: "🇲🇽", DecimalPlaces: 2, SymbolPosition: domain.SymbolPrefix},
	{Code: "CAD", Symbol: "C$", DisplayName: "Canadian Dollar", FlagGlyph: "🇨🇦", DecimalPlaces: 2, SymbolPosition: domain.SymbolPrefix},
	{Code: "AUD", Symbol: "A$", DisplayName: "Australian Dollar", FlagGlyph: "🇦🇺", DecimalPlaces: 2, SymbolPosition: domain.SymbolPrefix},
	{Code: "ZAR", Symbol: "R", DisplayName: "South African Rand", FlagGlyph: "🇿🇦", DecimalPlaces: 2, SymbolPosition: domain.SymbolPrefix},
	{Code: "EGP", Symbol: "E£", DisplayName: "Egyptian Pound", FlagGlyph: "🇪🇬", DecimalPlaces: 2, SymbolPosition: domain.SymbolSuffix},
}

// Catalog order matters: the first country of a region is the one auto-selected for it.
var defaultCountries = []domain.Country{
	{Code: "US", Name: "United States", Flag: "🇺🇸", Region: domain.RegionNorthAmerica, DefaultCurrency: "USD", Language: "en"},
	{Code: "CA", Name: "Canada", Flag: "🇨🇦", Region: domain.RegionNorthAmerica, DefaultCurrency: "CAD", Language: "en"},
	{Code: "MX", Name: "Mexico", Flag: "🇲🇽", Region: domain.RegionNorthAmerica, DefaultCurrency: "MXN", Language: "es"},

	{Code: "BR", Name: "Brazil", Flag: "🇧🇷", Region: domain.RegionSouthAmerica, DefaultCurrency: "BRL", Language: "pt"},
	{Code: "AR", Name: "Argentina", Flag: "🇦🇷", Region: domain.RegionSouthAmerica, DefaultCurrency: "USD", Language: "es"},
	{Code: "CL", Name: "Chile", Flag: "🇨🇱", Region: domain.RegionSouthAmerica, DefaultCurrency: "USD", Language: "es"},

	{Code: "GB", Name: "United Kingdom", Flag: "🇬🇧", Region: domain.RegionEurope, DefaultCurrency: "GBP", Language: "en"},
	{Code: "DE", Name: "Germany", Flag: "🇩🇪", Region: domain.RegionEurope, DefaultCurrency: "EUR", Language: "en"},
	{Code: "FR", Name: "France", Flag: "🇫🇷", Region: domain.RegionEurope, DefaultCurrency: "EUR", Language: "fr"},
	{Code: "IT", Name: "Italy", Flag: "🇮🇹", Region: domain.RegionEurope, DefaultCurrency: "EUR", Language: "it"},
	{Code: "ES", Name: "Spain", Flag: "🇪🇸", Region: domain.RegionEurope, DefaultCurrency: "EUR", Language: "es"},

	{Code: "SA", Name: "Saudi Arabia", Flag: "🇸🇦", Region: domain.RegionMENA, DefaultCurrency: "SAR", Language: "ar"},
	{Code: "AE", Name: "UAE", Flag: "🇦🇪", Region: domain.RegionMENA, DefaultCurrency: "AED", Language: "ar"},
	{Code: "EG", Name: "Egypt", Flag: "🇪🇬", Region: domain.RegionMENA, DefaultCurrency: "EGP", Language: "ar"},
	{Code: "TR", Name: "Turkey", Flag: "🇹🇷", Region: domain.RegionMENA, DefaultCurrency: "TRY", Language: "tr"},

	{Code: "CN", Name: "China", Flag: "🇨🇳", Region: domain.RegionAsia, DefaultCurrency: "CNY", Language: "zh"},
	{Code: "JP", Name: "Japan", Flag: "🇯🇵", Region: domain.RegionAsia, DefaultCurrency: "JPY", Language: "en"},
	{Code: "IN", Name: "India", Flag: "🇮🇳", Region: domain.RegionAsia, DefaultCurrency: "INR", Language: "hi"},
	{Code: "KR", Name: "South Korea", Flag: "🇰🇷", Region: domain.RegionAsia, DefaultCurrency: "KRW", Language: "ko"},
	{Code: "PK", Name: "Pakistan", Flag: "🇵🇰", Region: domain.RegionAsia, DefaultCurrency: "PKR", Language: "ur"},

	{Code: "ZA", Name: "South Africa", Flag: "🇿🇦", Region: domain.RegionAfrica, DefaultCurrency: "ZAR", Language: "en"},
	{Code: "NG", Name: "Nigeria", Flag: "🇳🇬", Region: domain.RegionAfrica, DefaultCurrency: "USD", Language: "en"},
	{Code: "KE", Name: "Kenya", Flag: "🇰🇪", Region: domain.RegionAfrica, DefaultCurrency: "USD", Language: "en"},

	{Code: "AU", Name: "Australia", Flag: "🇦🇺", Region: domain.RegionAustralia, DefaultCurrency: "AUD", Language: "en"},
	{Code: "NZ", Name: "New Zealand", Flag: "🇳🇿", Region: domain.RegionAustralia, DefaultCurrency: "AUD", Language: "en"},

	{Code: "RU", Name: "Russia", Flag: "🇷🇺", Region: domain.RegionRussia, DefaultCurrency: "RUB", Language: "ru"},
}
