package prompt_test

import (
	"fmt"
	"strings"
	"testing"

	"dermaglow/internal/model"
	"dermaglow/internal/prompt"
	"dermaglow/internal/weather"
)

func fullAssessment() model.Assessment {
	return model.Assessment{
		SkinType:               "Oily",
		MainConcern:            "Acne",
		AdditionalSkinConcerns: "Blackheads",
		SpecificSkinIssues:     []string{"Whiteheads", "Large pores"},
		CurrentRoutine:         "Cleanser only",
		SunscreenUsage:         "Rarely",
		ClimateType:            "Humid",
		WorkEnvironment:        "Outdoor",
		ProductUsageFrequency:  "Daily",
		SkinTextureDescription: "Rough",
		ExerciseFrequency:      "3x weekly",
		StressLevel:            "High",
	}
}

func TestBuildChatDeterministic(t *testing.T) {
	assessment := fullAssessment()
	history := []model.Message{
		{Role: model.RoleTurnUser, Content: "What cleanser should I use?"},
		{Role: model.RoleTurnAssistant, Content: "Try a salicylic acid wash."},
	}

	first := prompt.BuildChat(assessment, history, "How often?")
	second := prompt.BuildChat(assessment, history, "How often?")

	if len(first) != len(second) {
		t.Fatalf("length mismatch: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("message %d differs between identical renders", i)
		}
	}
}

func TestBuildChatEmptyAssessmentUsesPlaceholders(t *testing.T) {
	messages := prompt.BuildChat(model.Assessment{}, nil, "Help me")

	if len(messages) != 2 {
		t.Fatalf("expected system + user, got %d messages", len(messages))
	}
	system := messages[0].Content
	if !strings.Contains(system, "**Skin Type:** "+prompt.NotSpecified) {
		t.Fatalf("missing skin type placeholder in system prompt")
	}
	if !strings.Contains(system, "**Climate:** "+prompt.NotSpecified) {
		t.Fatalf("missing climate placeholder in system prompt")
	}
	if !strings.Contains(system, "**Additional Concerns:** None mentioned") {
		t.Fatalf("missing additional concerns fallback")
	}
	if !strings.Contains(system, "**Specific Issues:** None specified") {
		t.Fatalf("missing specific issues fallback")
	}
	if messages[1].Role != "user" || messages[1].Content != "Help me" {
		t.Fatalf("unexpected trailing user turn: %+v", messages[1])
	}
}

func TestBuildChatTrimsHistoryWindow(t *testing.T) {
	history := make([]model.Message, 0, 10)
	for i := 0; i < 10; i++ {
		role := model.RoleTurnUser
		if i%2 == 1 {
			role = model.RoleTurnAssistant
		}
		history = append(history, model.Message{Role: role, Content: fmt.Sprintf("turn-%d", i)})
	}

	messages := prompt.BuildChat(fullAssessment(), history, "latest question")

	// system + last 6 turns + new user turn
	if len(messages) != 1+prompt.HistoryWindow+1 {
		t.Fatalf("expected %d messages, got %d", 1+prompt.HistoryWindow+1, len(messages))
	}
	if messages[1].Content != "turn-4" {
		t.Fatalf("expected oldest retained turn to be turn-4, got %q", messages[1].Content)
	}
	if messages[len(messages)-2].Content != "turn-9" {
		t.Fatalf("expected newest history turn last, got %q", messages[len(messages)-2].Content)
	}
}

func TestBuildChatDefaultsBlankRoleToUser(t *testing.T) {
	history := []model.Message{{Role: "", Content: "unlabeled"}}
	messages := prompt.BuildChat(model.Assessment{}, history, "q")
	if messages[1].Role != "user" {
		t.Fatalf("expected blank role to default to user, got %q", messages[1].Role)
	}
}

func TestBuildWelcomeKnownConcern(t *testing.T) {
	welcome := prompt.BuildWelcome(model.Assessment{SkinType: "Oily", MainConcern: "Acne"})

	if !strings.Contains(welcome, "### Quick Recommendations for Acne Concerns") {
		t.Fatalf("welcome missing acne recommendation block")
	}
	if !strings.Contains(welcome, "Neutrogena Oil-Free Acne Wash") {
		t.Fatalf("welcome missing acne product recommendation")
	}
	if !strings.Contains(welcome, "## Your Skin Assessment Analysis") {
		t.Fatalf("welcome missing analysis heading")
	}
}

func TestBuildWelcomeFallbackConcern(t *testing.T) {
	welcome := prompt.BuildWelcome(model.Assessment{SkinType: "Dry", MainConcern: "Something Else"})
	if !strings.Contains(welcome, "suited for your Dry") {
		t.Fatalf("fallback block should be parameterized by skin type")
	}

	blank := prompt.BuildWelcome(model.Assessment{})
	if !strings.Contains(blank, "suited for your skin type") {
		t.Fatalf("fallback block should default when skin type is blank")
	}
	if !strings.Contains(blank, prompt.NotSpecified) {
		t.Fatalf("blank assessment should render placeholders")
	}
}

func TestStarterRecommendationsCoversKnownConcerns(t *testing.T) {
	for _, concern := range []string{"Acne", "Aging", "Sensitivity", "Uneven Tone", "Oiliness"} {
		block := prompt.StarterRecommendations(concern, "")
		if strings.Contains(block, "Based on Your Profile") {
			t.Fatalf("concern %q fell through to the generic template", concern)
		}
	}
}

func TestBuildReportRendersTranscriptLines(t *testing.T) {
	transcript := []model.Message{
		{Role: model.RoleTurnUser, Content: "Is toner necessary?"},
		{Role: model.RoleTurnAssistant, Content: "Not strictly, but it can help."},
		{Role: model.RoleTurnUser, Content: "Which one?"},
	}

	report := prompt.BuildReport(fullAssessment(), transcript)

	wantOrder := []string{
		"User: Is toner necessary?",
		"Assistant: Not strictly, but it can help.",
		"User: Which one?",
	}
	lastIdx := -1
	for _, line := range wantOrder {
		idx := strings.Index(report, line)
		if idx < 0 {
			t.Fatalf("report missing line %q", line)
		}
		if idx < lastIdx {
			t.Fatalf("transcript lines out of order around %q", line)
		}
		lastIdx = idx
	}
	if !strings.Contains(report, "- Skin Type: Oily") {
		t.Fatalf("report missing profile section")
	}
}

func TestBuildWeatherEmbedsConditions(t *testing.T) {
	current := weather.Current{
		Temperature: 34,
		FeelsLike:   38,
		Humidity:    70,
		Condition:   "Sunny",
		WindSpeed:   2.5,
		City:        "Lahore",
		Country:     "Pakistan",
	}

	messages := prompt.BuildWeather(current)
	if len(messages) != 2 {
		t.Fatalf("expected system + user pair, got %d", len(messages))
	}
	if messages[0].Role != "system" || messages[1].Role != "user" {
		t.Fatalf("unexpected roles: %s, %s", messages[0].Role, messages[1].Role)
	}
	system := messages[0].Content
	for _, want := range []string{"Lahore, Pakistan", "34°C", "Feels like 38°C", "70%", "Sunny", "2.5 m/s"} {
		if !strings.Contains(system, want) {
			t.Fatalf("weather prompt missing %q", want)
		}
	}
}
