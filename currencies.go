package genkin

// Bundled ISO 4217 currency descriptors. The table covers the major
// trading currencies plus the zero- and three-digit outliers; callers
// needing anything else register their own descriptors with a [Registry].
var (
	AED = Currency{Code: "AED", Numeric: 784, Precision: 2, Name: "UAE Dirham", Base: 10}
	AUD = Currency{Code: "AUD", Numeric: 36, Precision: 2, Symbol: "A$", Name: "Australian Dollar", Base: 10}
	BHD = Currency{Code: "BHD", Numeric: 48, Precision: 3, Name: "Bahraini Dinar", Base: 10}
	BRL = Currency{Code: "BRL", Numeric: 986, Precision: 2, Symbol: "R$", Name: "Brazilian Real", Base: 10}
	CAD = Currency{Code: "CAD", Numeric: 124, Precision: 2, Symbol: "CA$", Name: "Canadian Dollar", Base: 10}
	CHF = Currency{Code: "CHF", Numeric: 756, Precision: 2, Name: "Swiss Franc", Base: 10}
	CLP = Currency{Code: "CLP", Numeric: 152, Precision: 0, Name: "Chilean Peso", Base: 10}
	CNY = Currency{Code: "CNY", Numeric: 156, Precision: 2, Symbol: "CN¥", Name: "Yuan Renminbi", Base: 10}
	CZK = Currency{Code: "CZK", Numeric: 203, Precision: 2, Name: "Czech Koruna", Base: 10}
	DKK = Currency{Code: "DKK", Numeric: 208, Precision: 2, Name: "Danish Krone", Base: 10}
	EUR = Currency{Code: "EUR", Numeric: 978, Precision: 2, Symbol: "€", Name: "Euro", Base: 10}
	GBP = Currency{Code: "GBP", Numeric: 826, Precision: 2, Symbol: "£", Name: "Pound Sterling", Base: 10}
	HKD = Currency{Code: "HKD", Numeric: 344, Precision: 2, Symbol: "HK$", Name: "Hong Kong Dollar", Base: 10}
	IDR = Currency{Code: "IDR", Numeric: 360, Precision: 2, Name: "Rupiah", Base: 10}
	ILS = Currency{Code: "ILS", Numeric: 376, Precision: 2, Symbol: "₪", Name: "New Israeli Sheqel", Base: 10}
	INR = Currency{Code: "INR", Numeric: 356, Precision: 2, Symbol: "₹", Name: "Indian Rupee", Base: 10}
	ISK = Currency{Code: "ISK", Numeric: 352, Precision: 0, Name: "Iceland Krona", Base: 10}
	JOD = Currency{Code: "JOD", Numeric: 400, Precision: 3, Name: "Jordanian Dinar", Base: 10}
	JPY = Currency{Code: "JPY", Numeric: 392, Precision: 0, Symbol: "¥", Name: "Japanese Yen", Base: 10}
	KRW = Currency{Code: "KRW", Numeric: 410, Precision: 0, Symbol: "₩", Name: "Won", Base: 10}
	KWD = Currency{Code: "KWD", Numeric: 414, Precision: 3, Name: "Kuwaiti Dinar", Base: 10}
	MXN = Currency{Code: "MXN", Numeric: 484, Precision: 2, Symbol: "MX$", Name: "Mexican Peso", Base: 10}
	NOK = Currency{Code: "NOK", Numeric: 578, Precision: 2, Name: "Norwegian Krone", Base: 10}
	NZD = Currency{Code: "NZD", Numeric: 554, Precision: 2, Symbol: "NZ$", Name: "New Zealand Dollar", Base: 10}
	OMR = Currency{Code: "OMR", Numeric: 512, Precision: 3, Name: "Rial Omani", Base: 10}
	PLN = Currency{Code: "PLN", Numeric: 985, Precision: 2, Name: "Zloty", Base: 10}
	RUB = Currency{Code: "RUB", Numeric: 643, Precision: 2, Symbol: "₽", Name: "Russian Ruble", Base: 10}
	SAR = Currency{Code: "SAR", Numeric: 682, Precision: 2, Name: "Saudi Riyal", Base: 10}
	SEK = Currency{Code: "SEK", Numeric: 752, Precision: 2, Name: "Swedish Krona", Base: 10}
	SGD = Currency{Code: "SGD", Numeric: 702, Precision: 2, Symbol: "S$", Name: "Singapore Dollar", Base: 10}
	THB = Currency{Code: "THB", Numeric: 764, Precision: 2, Symbol: "฿", Name: "Baht", Base: 10}
	TND = Currency{Code: "TND", Numeric: 788, Precision: 3, Name: "Tunisian Dinar", Base: 10}
	TRY = Currency{Code: "TRY", Numeric: 949, Precision: 2, Symbol: "₺", Name: "Turkish Lira", Base: 10}
	USD = Currency{Code: "USD", Numeric: 840, Precision: 2, Symbol: "$", Name: "US Dollar", Base: 10}
	VND = Currency{Code: "VND", Numeric: 704, Precision: 0, Symbol: "₫", Name: "Dong", Base: 10}
	ZAR = Currency{Code: "ZAR", Numeric: 710, Precision: 2, Name: "Rand", Base: 10}
)

var bundledCurrencies = []Currency{
	AED, AUD, BHD, BRL, CAD, CHF, CLP, CNY, CZK, DKK, EUR, GBP, HKD, IDR,
	ILS, INR, ISK, JOD, JPY, KRW, KWD, MXN, NOK, NZD, OMR, PLN, RUB, SAR,
	SEK, SGD, THB, TND, TRY, USD, VND, ZAR,
}
