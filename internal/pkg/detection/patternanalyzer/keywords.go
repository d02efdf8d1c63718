package patternanalyzer

// Keyword tables for lexical spam signals. Immutable once handed to an
// Analyzer; swap the whole table to change behavior.
type Keywords struct {
	Money         []string
	Urgency       []string
	LinkPromotion []string
}

// Default keyword tables, tuned for the gambling/promo campaigns seen on
// Indonesian video platforms plus the common English equivalents.
func DefaultKeywords() Keywords {
	return Keywords{
		Money: []string{
			"maxwin", "jackpot", "jp", "wd", "depo", "deposit", "bonus",
			"cuan", "saldo", "dana", "profit", "gratis", "cashback",
			"free money", "modal", "untung", "menang", "win rate",
		},
		Urgency: []string{
			"buruan", "cepat", "sekarang", "hari ini", "jangan sampai",
			"terbatas", "langsung", "segera", "limited", "hurry",
			"last chance", "don't miss", "now or never",
		},
		LinkPromotion: []string{
			"klik", "link", "bio", "daftar", "register", "join", "gabung",
			"kunjungi", "cek profil", "situs", "website", "visit",
			"wa.me", "t.me", "linktree", "check my", "click here",
		},
	}
}
