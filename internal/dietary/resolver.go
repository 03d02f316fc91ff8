package dietary

import (
	"regexp"
	"strings"

	"dnalab/internal/domain"
)

// FallbackDescription is used for images that do not match a known product
const FallbackDescription = "Informational overview. Consult a qualified professional for suitability, protocols, and safe, supervised use."

type product struct {
	name        string
	priceGBP    float64
	description string
}

var (
	creatine = product{
		name:        "Creatine Monohydrate (Mango Flavour)",
		priceGBP:    25,
		description: "Creatine Monohydrate (Mango Flavour) is a staple performance supplement discussed for supporting high‑intensity efforts and training volume. Typical use pairs with adequate hydration and carbohydrate intake. This overview is educational only; consult a qualified professional for suitability, timing, and dose under supervised, safety‑first guidance.",
	}
	wheyBlend = product{
		name:        "Whey Protein Blend",
		priceGBP:    70,
		description: "Whey Protein Blend is commonly used to help meet daily protein targets that support muscle repair and recovery. Quality outcomes rely on total diet and training consistency. This information is educational only. Consult a qualified professional for personalized advice, intolerances, and safe usage.",
	}
)

// known maps a normalized file key to its product record
var known = map[string]product{
	"creatinemonohydratemangoflavor":  creatine,
	"creatinemonohydratemangoflavour": creatine,
	"ecaburn": {
		name:        "ECA Burn",
		priceGBP:    30,
		description: "ECA Burn is presented as a thermogenic support formula for disciplined cutting phases. Emphasis is placed on responsible use, hydration, sleep, and a structured nutrition plan. This information is not advice. Always consult a qualified professional regarding risks, interactions, and appropriate supervised protocols.",
	},
	"lcarnitine": {
		name:        "L‑Carnitine",
		priceGBP:    30,
		description: "L‑Carnitine is often referenced for its role in fatty acid transport and general energy metabolism, typically alongside a balanced diet and training. Responses vary by individual. The description here is informational only; seek professional guidance for suitability and safe, responsible incorporation if appropriate.",
	},
	"lcarnitineliquid": {
		name:        "L‑Carnitine (Liquid)",
		priceGBP:    45,
		description: "L‑Carnitine (Liquid) offers a convenient format frequently discussed in weight‑management and energy‑support contexts. Outcomes depend on overall nutrition, activity, and recovery. This is educational material, not medical advice. Consult a qualified professional to evaluate use, dosing, and any contraindications.",
	},
	"massgainer": {
		name:        "Mass Gainer",
		priceGBP:    60,
		description: "Mass Gainer products are typically designed to help increase daily calories and protein during size‑focused phases. Effective use hinges on consistent training, recovery, and macronutrient planning. This content is informational only. Discuss suitability, timing, and serving sizes with a qualified professional.",
	},
	"waterout": {
		name:        "Water Out",
		priceGBP:    30,
		description: "Water Out blends are generally discussed for short‑term water balance support. Users emphasize hydration, electrolyte awareness, and responsible, time‑limited use. This summary is educational only and not a recommendation. Seek professional guidance to determine appropriateness and to supervise safe practices.",
	},
	"isowheyprotein": {
		name:        "ISO Whey Protein",
		priceGBP:    90,
		description: "ISO Whey Protein is a highly filtered whey isolate discussed for lean protein intake with minimal carbs and fats. Typical considerations include timing around workouts and daily protein targets. This is educational content only. Consult a qualified professional for suitability, intolerances, and safe, individualized use.",
	},
	"wheyprotineblend": wheyBlend,
	"wheyprotinblend":  wheyBlend,
	"wheyproteinblend": wheyBlend,
}

var (
	nonAlnum   = regexp.MustCompile(`[^a-z0-9]+`)
	separators = regexp.MustCompile(`[-_]+`)
	wordStart  = regexp.MustCompile(`\b[a-z]`)
	extension  = regexp.MustCompile(`\.[^.]+$`)
)

// baseName keeps the last path segment without its extension
func baseName(src string) string {
	if i := strings.LastIndex(src, "/"); i >= 0 {
		src = src[i+1:]
	}
	return extension.ReplaceAllString(src, "")
}

// Key normalizes an image path into the lookup key used by the product table
func Key(src string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(baseName(src)), "")
}

func humanize(base string) string {
	spaced := separators.ReplaceAllString(base, " ")
	return wordStart.ReplaceAllStringFunc(spaced, strings.ToUpper)
}

// Resolve derives the display record for a dietary image path.
// Unknown images still produce a complete record from fallbacks.
func Resolve(src string) domain.DietaryEntry {
	entry := domain.DietaryEntry{Image: src}

	p, ok := known[Key(src)]
	if !ok {
		entry.Name = humanize(baseName(src))
		entry.Description = FallbackDescription
		return entry
	}

	price := p.priceGBP
	entry.Name = p.name
	entry.PriceGBP = &price
	entry.Description = p.description
	return entry
}

// ResolveAll resolves every path, preserving order
func ResolveAll(srcs []string) []domain.DietaryEntry {
	entries := make([]domain.DietaryEntry, 0, len(srcs))
	for _, src := range srcs {
		entries = append(entries, Resolve(src))
	}
	return entries
}
