package catalog

// Turbo identifies a turbocharger unit. TurboStock is the non-forced
// baseline every variant carries.
type Turbo string

const (
	TurboStock     Turbo = "stock"
	TurboGTB1756VK Turbo = "gtb1756vk"
	TurboGTB2260VK Turbo = "gtb2260vk"
	TurboGTB2871R  Turbo = "gtb2871r"
	TurboGTD3076R  Turbo = "gtd3076r"
)

// TurbosByCapacity lists every known code ordered smallest to largest.
var TurbosByCapacity = []Turbo{
	TurboStock,
	TurboGTB1756VK,
	TurboGTB2260VK,
	TurboGTB2871R,
	TurboGTD3076R,
}

var turboDisplay = map[Turbo]string{
	TurboStock:     "Stock",
	TurboGTB1756VK: "GTB1756VK",
	TurboGTB2260VK: "GTB2260VK",
	TurboGTB2871R:  "GTB2871R",
	TurboGTD3076R:  "GTD3076R",
}

// Display returns the human-readable name for a turbo code.
func (t Turbo) Display() string {
	if d, ok := turboDisplay[t]; ok {
		return d
	}
	return string(t)
}

// KnownTurbo reports whether the code belongs to the closed turbo set.
func KnownTurbo(t Turbo) bool {
	_, ok := turboDisplay[t]
	return ok
}
