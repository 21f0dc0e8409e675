package catalog

// Table maps a vehicle platform key to the turbo codes scraped from vendor
// listings for that platform. Produced offline by the ingest job; consumed
// read-only here.
type Table map[string][]Turbo

// Evidence ties one scraped (turbo, platform) pair back to the listing it
// came from, for traceability.
type Evidence struct {
	Turbo    Turbo  `json:"turbo"`
	Platform string `json:"platform"`
	Listing  string `json:"listing"`
}

// Resolve merges the scraped codes for a platform with a variant's
// hand-authored allow-list. The result is {baseline} followed by scraped
// codes in listing order, deduplicated and filtered to the allow-list. A
// platform absent from the table degrades to the baseline alone.
func Resolve(tbl Table, platform string, allow []Turbo) []Turbo {
	allowed := make(map[Turbo]bool, len(allow))
	for _, t := range allow {
		allowed[t] = true
	}

	out := []Turbo{TurboStock}
	seen := map[Turbo]bool{TurboStock: true}
	for _, t := range tbl[platform] {
		if seen[t] || !allowed[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// DefaultFitment is the frozen output of the last catalog scrape, used when
// no fitment database is available.
var DefaultFitment = Table{
	"vw-golf-mk4-19tdi":       {TurboGTB1756VK, TurboGTB2260VK, TurboGTB2871R},
	"vw-golf-mk5-20tdi":       {TurboGTB2260VK, TurboGTB2260VK, TurboGTB2871R},
	"skoda-octavia-mk2-19tdi": {TurboGTB1756VK},
	"audi-a4-b8-20tdi":        {TurboGTB2871R, TurboGTD3076R},
	"vw-t5-25tdi":             {TurboGTB2260VK},
}
