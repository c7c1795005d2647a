package units

// Prefix is a named multiplicative scale factor that can be composed with a
// unit via [Unit.WithPrefix]. SI prefixes use base 10, IEC binary prefixes
// use base 2. Prefix values are immutable lookup data.
type Prefix struct {
	Name     string  // e.g. "kilo"
	Symbol   string  // e.g. "k"
	Factor   float64 // multiplicative factor, e.g. 1e3
	Base     int     // 10 for SI, 2 for IEC binary
	Exponent int     // power of Base, e.g. 3
}

// SI decimal prefixes, from quetta (10^30) down to quecto (10^-30).
var (
	Quetta = Prefix{"quetta", "Q", 1e30, 10, 30}
	Ronna  = Prefix{"ronna", "R", 1e27, 10, 27}
	Yotta  = Prefix{"yotta", "Y", 1e24, 10, 24}
	Zetta  = Prefix{"zetta", "Z", 1e21, 10, 21}
	Exa    = Prefix{"exa", "E", 1e18, 10, 18}
	Peta   = Prefix{"peta", "P", 1e15, 10, 15}
	Tera   = Prefix{"tera", "T", 1e12, 10, 12}
	Giga   = Prefix{"giga", "G", 1e9, 10, 9}
	Mega   = Prefix{"mega", "M", 1e6, 10, 6}
	Kilo   = Prefix{"kilo", "k", 1e3, 10, 3}
	Hecto  = Prefix{"hecto", "h", 1e2, 10, 2}
	Deca   = Prefix{"deca", "da", 1e1, 10, 1}
	Deci   = Prefix{"deci", "d", 1e-1, 10, -1}
	Centi  = Prefix{"centi", "c", 1e-2, 10, -2}
	Milli  = Prefix{"milli", "m", 1e-3, 10, -3}
	Micro  = Prefix{"micro", "μ", 1e-6, 10, -6}
	Nano   = Prefix{"nano", "n", 1e-9, 10, -9}
	Pico   = Prefix{"pico", "p", 1e-12, 10, -12}
	Femto  = Prefix{"femto", "f", 1e-15, 10, -15}
	Atto   = Prefix{"atto", "a", 1e-18, 10, -18}
	Zepto  = Prefix{"zepto", "z", 1e-21, 10, -21}
	Yocto  = Prefix{"yocto", "y", 1e-24, 10, -24}
	Ronto  = Prefix{"ronto", "r", 1e-27, 10, -27}
	Quecto = Prefix{"quecto", "q", 1e-30, 10, -30}
)

// IEC binary prefixes.
var (
	Kibi = Prefix{"kibi", "Ki", 1 << 10, 2, 10}
	Mebi = Prefix{"mebi", "Mi", 1 << 20, 2, 20}
	Gibi = Prefix{"gibi", "Gi", 1 << 30, 2, 30}
	Tebi = Prefix{"tebi", "Ti", 1 << 40, 2, 40}
	Pebi = Prefix{"pebi", "Pi", 1 << 50, 2, 50}
	Exbi = Prefix{"exbi", "Ei", 1 << 60, 2, 60}
	Zebi = Prefix{"zebi", "Zi", 1180591620717411303424, 2, 70}
	Yobi = Prefix{"yobi", "Yi", 1208925819614629174706176, 2, 80}
)

// SIPrefixes lists all SI decimal prefixes, largest first.
var SIPrefixes = []Prefix{
	Quetta, Ronna, Yotta, Zetta, Exa, Peta, Tera, Giga, Mega, Kilo,
	Hecto, Deca, Deci, Centi, Milli, Micro, Nano, Pico,
	Femto, Atto, Zepto, Yocto, Ronto, Quecto,
}

// BinaryPrefixes lists all IEC binary prefixes, smallest first.
var BinaryPrefixes = []Prefix{Kibi, Mebi, Gibi, Tebi, Pebi, Exbi, Zebi, Yobi}

// PrefixBySymbol looks up a prefix (SI or binary) by its symbol.
func PrefixBySymbol(symbol string) (Prefix, bool) {
	for _, p := range SIPrefixes {
		if p.Symbol == symbol {
			return p, true
		}
	}
	for _, p := range BinaryPrefixes {
		if p.Symbol == symbol {
			return p, true
		}
	}
	return Prefix{}, false
}

// PrefixByName looks up a prefix (SI or binary) by its lowercase name.
func PrefixByName(name string) (Prefix, bool) {
	for _, p := range SIPrefixes {
		if p.Name == name {
			return p, true
		}
	}
	for _, p := range BinaryPrefixes {
		if p.Name == name {
			return p, true
		}
	}
	return Prefix{}, false
}
