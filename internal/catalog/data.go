package catalog

import "dnalab/internal/domain"

var products = []domain.ProductItem{
	{
		Name:        "AMP",
		PriceGBP:    50,
		Category:    domain.CategoryAnabolics,
		Image:       "/assets/products/AMP.49ed8230d4f06b18668f.jpeg",
		Description: "AMP is positioned as a high-performance support blend. It is commonly included in cutting or performance phases to complement disciplined nutrition and training. Information here is educational only; always consult a qualified professional to determine suitability, dosage, and timing within a structured protocol.",
	},
	{
		Name:        "Bolda",
		PriceGBP:    55,
		Category:    domain.CategoryAnabolics,
		Image:       "/assets/products/Bolda.865f5ba0774f53d2192f.jpeg",
		Description: "Bolda is often discussed for steady support over longer phases. Users typically highlight a focus on quality routines, adequate protein intake, and responsible periodization. This overview is informational only and not guidance; seek professional advice for any use, monitoring, and safety considerations.",
	},
	{
		Name:        "Cut Mix",
		PriceGBP:    51,
		Category:    domain.CategoryAnabolics,
		Image:       "/assets/products/CutMix.0007fee8e08d5a16a1f6.jpeg",
		Description: "Cut Mix blends are commonly referenced in contexts emphasizing definition phases. Effective outcomes rely on nutrition, hydration, and rest. This description is purely educational and not a recommendation. Engage a qualified professional to evaluate risks, interactions, and appropriate strategies before considering any product.",
	},
	{
		Name:        "DEC-A",
		PriceGBP:    56,
		Category:    domain.CategoryAnabolics,
		Image:       "/assets/products/DecA.b16e48904271234c543d.jpeg",
		Description: "DEC-A is associated with structured plans that prioritize recovery, mobility, and consistent training. Outcomes are highly individual and depend on lifestyle. This information is not medical advice. Consult a qualified professional for personalized assessment, contraindications, and safe, responsible use under supervision.",
	},
	{
		Name:        "Gain Blend",
		PriceGBP:    60,
		Category:    domain.CategoryAnabolics,
		Image:       "/assets/products/GainBlend.423f5bc7c8ac53a7f8b3.jpeg",
		Description: "Gain Blend products are typically mentioned for phases focused on strength and size, alongside adequate calories and protein. Results depend on compliance and recovery. This educational summary is not a recommendation. Always consult a qualified professional before use to understand risks and appropriate programming.",
	},
	{
		Name:        "Masterone",
		PriceGBP:    64,
		Category:    domain.CategoryAnabolics,
		Image:       "/assets/products/Masterone.56f10a2a01e4947e9d34.jpeg",
		Description: "Masterone is often described in definition-oriented contexts emphasizing responsible planning and close monitoring. Outcomes vary based on individual factors. This page provides information only and is not a substitute for professional guidance. Discuss suitability and safe practices with a qualified professional.",
	},
	{
		Name:        "Primobolan",
		PriceGBP:    53,
		Category:    domain.CategoryAnabolics,
		Image:       "/assets/products/Primobolan.19734eae68fa841e2fb4.jpeg",
		Description: "Primobolan is referenced in literature for measured approaches with focus on nutrition and long-term consistency. Individual responses can differ. This content is educational and not medical advice. Always consult a qualified professional for suitability, monitoring, and safe, responsible use within a supervised plan.",
	},
	{
		Name:        "TEST-C",
		PriceGBP:    74,
		Category:    domain.CategoryAnabolics,
		Image:       "/assets/products/TestC.d8a1524adfeb440bf34f.jpeg",
		Description: "TEST-C is discussed in contexts that emphasize individualized protocols and periodic assessments. Lifestyle, recovery, and nutrition are critical to outcomes. This description is for information only. Seek guidance from a qualified professional before considering use, and ensure supervision for safety and compliance.",
	},
	{
		Name:        "TEST-P",
		PriceGBP:    77,
		Category:    domain.CategoryAnabolics,
		Image:       "/assets/products/TestP.bae9c9e3260e36c67f9e.jpeg",
		Description: "TEST-P is frequently associated with structured routines demanding precise timing, nutrition, and rest. Effects are influenced by individual context. This is not a recommendation or medical guidance. Consult a qualified professional to evaluate risks, interactions, and appropriate application under supervision.",
	},
	{
		Name:        "Tren-A",
		PriceGBP:    80,
		Category:    domain.CategoryAnabolics,
		Image:       "/assets/products/TrenA.39b19a8f2ba03420deaf.jpeg",
		Description: "Tren-A appears in advanced discussions emphasizing careful planning and close oversight. Lifestyle and recovery habits significantly affect outcomes. The details here are informational and not advice. Seek a qualified professional to determine suitability and to supervise safe, responsible use.",
	},
	{
		Name:        "Tren-E",
		PriceGBP:    52,
		Category:    domain.CategoryAnabolics,
		Image:       "/assets/products/TrenE.e59bdcccd7101bf058ac.jpeg",
		Description: "Tren-E is generally referenced for experienced users within comprehensive programs that prioritize monitoring, nutrition, and recovery. Results vary. This text is educational only and not a recommendation. Always consult a qualified professional and proceed only under appropriate supervision.",
	},
	{
		Name:        "Tren-H",
		PriceGBP:    54,
		Category:    domain.CategoryAnabolics,
		Image:       "/assets/products/TrenH.5bc2084181edc8449f6a.jpeg",
		Description: "Tren-H discussions frequently underscore responsibility, adherence, and professional oversight. Progress depends on habits, nutrition, and rest. This summary is not medical advice. Consult a qualified professional to evaluate suitability, risks, and safe protocols tailored to individual circumstances.",
	},
	{
		Name:        "Tri Tren",
		PriceGBP:    61,
		Category:    domain.CategoryAnabolics,
		Image:       "/assets/products/TriTren.2d6466cc271eee1efa20.jpeg",
		Description: "Tri Tren references appear in contexts requiring experience and structured planning, emphasizing dietary discipline and regular monitoring. Outcomes are individual. This content is for information only. Engage a qualified professional to discuss suitability, safety, and responsible use within a supervised plan.",
	},
	{
		Name:        "Winstrol",
		PriceGBP:    65,
		Category:    domain.CategoryAnabolics,
		Image:       "/assets/products/Winstrol.a2f120efc16688820337.jpeg",
		Description: "Winstrol is commonly mentioned for definition-focused phases supported by nutrition and recovery strategies. Responses vary widely. This is not guidance or medical advice. Consult a qualified professional for individualized evaluation, potential risks, and supervised application where appropriate.",
	},
	{
		Name:        "Cardarine",
		PriceGBP:    77,
		Category:    domain.CategorySARMs,
		Image:       "/assets/products/Cardarine.fd1c77bca569050859a7.jpg",
		Description: "Cardarine is discussed in performance and conditioning contexts in conjunction with responsible training and nutrition. Results can differ by individual. The overview here is informational only. Always consult a qualified professional before any use and follow supervised, safety-first practices.",
	},
	{
		Name:        "LGD-4033",
		PriceGBP:    78,
		Category:    domain.CategorySARMs,
		Image:       "/assets/products/LGD4033.53cc515fc89947fe7890.jpg",
		Description: "LGD-4033 is often referenced for strength and preservation phases under structured programs. Outcomes depend on consistency, nutrition, and recovery. This information is not medical advice. Consult a qualified professional to evaluate suitability, risks, and appropriate protocols under supervision.",
	},
	{
		Name:        "MK-677",
		PriceGBP:    56,
		Category:    domain.CategorySARMs,
		Image:       "/assets/products/MK677.e9ca52fcd568293c2c00.jpg",
		Description: "MK-677 is discussed regarding appetite and recovery contexts, typically within comprehensive plans. Responses differ by individual and routine. This description is educational only, not a recommendation. Engage a qualified professional for personalized guidance and safety oversight.",
	},
	{
		Name:        "MK-2866",
		PriceGBP:    80,
		Category:    domain.CategorySARMs,
		Image:       "/assets/products/MK2866.d400f9ce63bbe9ac248a.jpg",
		Description: "MK-2866 appears in literature for support during recomposition-style approaches. Effects are highly dependent on training, nutrition, and rest. This content is informational only. Consult a qualified professional to assess suitability, potential risks, and responsible supervised use.",
	},
	{
		Name:        "RAD",
		PriceGBP:    65,
		Category:    domain.CategorySARMs,
		Image:       "/assets/products/RAD.29f74fabd3673468688c.jpg",
		Description: "RAD is referenced for performance-focused plans that emphasize progressive training and adequate recovery. Outcomes vary by individual context. This page provides educational information only. Seek qualified professional advice before considering use, and ensure appropriate supervision.",
	},
	{
		Name:        "S-23",
		PriceGBP:    79,
		Category:    domain.CategorySARMs,
		Image:       "/assets/products/S23.ca5bf438e0c8507e446f.jpg",
		Description: "S-23 is typically discussed for experienced contexts with strict adherence to programming and monitoring. Lifestyle and nutrition remain crucial. This information is not medical guidance. Consult a qualified professional regarding suitability, safety, and responsible use under supervision.",
	},
	{
		Name:        "SR-9009",
		PriceGBP:    80,
		Category:    domain.CategorySARMs,
		Image:       "/assets/products/SR9009.d18d8d09b579751370b9.jpg",
		Description: "SR-9009 appears in conditioning-oriented discussions highlighting consistency, rest, and nutrition. Individual responses vary. This summary is for educational purposes only. Always consult a qualified professional before any use, and proceed only with appropriate supervision and safety measures.",
	},
}

var categories = []domain.Category{
	{Slug: "anabolics-steroid", Name: "Anabolics Steroid", Key: domain.CategoryAnabolics},
	{Slug: "sarms", Name: "SARMs", Key: domain.CategorySARMs},
	{Slug: "dietary-supplements", Name: "Dietary supplements", Key: domain.CategoryDietary},
}

// trendingNames drives the home page carousel order
var trendingNames = []string{
	"SR-9009", "AMP", "Bolda", "Cut Mix", "DEC-A", "Gain Blend", "Masterone", "Primobolan",
	"TEST-C", "TEST-P", "Tren-A", "Tren-E", "Tren-H", "Tri Tren", "Winstrol",
	"Cardarine", "LGD-4033", "MK-677", "MK-2866", "RAD", "S-23",
}
