package prompt

import "fmt"

// starterRecommendations maps the assessment main concern to a fixed block
// of Markdown starter advice embedded in the welcome message.
var starterRecommendations = map[string]string{
	"Acne": `### Quick Recommendations for Acne Concerns

1. **Cleanser:** Neutrogena Oil-Free Acne Wash (contains salicylic acid to clear pores)
2. **Treatment:** Clean & Clear Advantage Spot Treatment (for targeted application)
3. **Moisturizer:** Simple Oil-Free Moisturizer (won't clog pores)
4. **Habit:** Change pillowcases 2-3 times weekly to reduce bacteria contact`,

	"Aging": `### Quick Recommendations for Aging Concerns

1. **Cleanser:** L'Oreal Men Expert Anti-Aging Face Wash
2. **Treatment:** Pond's Age Miracle Day Cream (contains retinol alternatives)
3. **Protection:** Neutrogena Ultra Sheer Dry-Touch Sunscreen SPF 50+
4. **Habit:** Apply moisturizer immediately after washing while skin is still slightly damp`,

	"Sensitivity": `### Quick Recommendations for Sensitive Skin

1. **Cleanser:** Cetaphil Gentle Skin Cleanser (fragrance-free, non-irritating)
2. **Moisturizer:** QV Face Sensitive Moisturizer (hypoallergenic)
3. **Shaving:** Gillette SkinGuard Sensitive Razor with Nivea Sensitive Shaving Gel
4. **Habit:** Patch test new products on your inner arm for 24 hours before facial application`,

	"Uneven Tone": `### Quick Recommendations for Uneven Skin Tone

1. **Cleanser:** Garnier Men PowerWhite Anti-Pollution Double Action Face Wash
2. **Treatment:** Fair & Lovely Men (contains niacinamide for brightening)
3. **Protection:** Vaseline Healthy Bright Sun + Pollution Protection SPF 30
4. **Habit:** Exfoliate gently twice weekly to remove dead skin cells`,

	"Oiliness": `### Quick Recommendations for Oily Skin

1. **Cleanser:** Himalaya Purifying Neem Face Wash (controls excess oil)
2. **Treatment:** Clean & Clear Oil Control Film (for midday oil absorption)
3. **Moisturizer:** Neutrogena Hydro Boost Water Gel (oil-free hydration)
4. **Habit:** Use clay masks weekly to deep clean and reduce sebum production`,
}

// StarterRecommendations returns the canned block for a known main concern,
// falling back to a generic template parameterized by skin type.
func StarterRecommendations(mainConcern, skinType string) string {
	if block, ok := starterRecommendations[mainConcern]; ok {
		return block
	}

	if skinType == "" {
		skinType = "skin type"
	}
	return fmt.Sprintf(`### Quick Recommendations Based on Your Profile

1. **Cleanser:** A gentle face wash suited for your %s
2. **Protection:** Daily sunscreen with at least SPF 30
3. **Hydration:** Lightweight moisturizer appropriate for Pakistani climate
4. **Habit:** Drink at least 8 glasses of water daily for skin hydration from within`, skinType)
}
