// Package prompt renders model-facing instructions from a skin assessment,
// a transcript and a new user message. Everything here is a pure
// transformation: identical inputs produce identical output.
package prompt

import (
	"fmt"
	"strings"

	"dermaglow/internal/ai"
	"dermaglow/internal/model"
	"dermaglow/internal/weather"
)

// NotSpecified is substituted for every blank assessment field.
const NotSpecified = "Not specified"

// HistoryWindow bounds how many prior turns the chat instruction carries.
const HistoryWindow = 6

const systemPromptTemplate = `You are an AI Medical Assistant specializing in skincare. Your role is to provide personalized skincare advice based on the user's assessment data and their ongoing queries.

### Key Principles:
1. **Response Format**: Always respond in clean Markdown format. Use markdown for:
   - Headings (##, ###)
   - Bold text (**text**)
   - Lists (- or 1.)
   - Code blocks when needed (` + "`code`" + `)

2. **Solution-First Approach**: Prioritize providing helpful solutions rather than asking excessive questions.

3. **Product Recommendations**: Recommend specific products available in Pakistan with:
   - Product name
   - Key ingredients
   - How to use
   - Price ranges when possible

4. **Response Structure**:
   - Use headings for sections (## Morning Routine, ## Evening Routine)
   - Use numbered lists for steps
   - Use bullet points for features/benefits
   - Keep responses concise but detailed when needed

### User's Assessment Data:
**Skin Type:** %s
**Main Concern:** %s
**Additional Concerns:** %s
**Specific Issues:** %s
**Current Routine:** %s
**Sunscreen Usage:** %s
**Climate:** %s
**Work Environment:** %s
**Product Usage Frequency:** %s
**Skin Texture:** %s

### User's Current Question:
%s

Remember: Format your response in clean Markdown. Use headings, lists, and bold text appropriately for better readability.`

// BuildChat renders the full request for one consultation exchange: the
// assessment-bearing system instruction, at most the last HistoryWindow
// transcript turns, then the new user turn.
func BuildChat(assessment model.Assessment, history []model.Message, userMessage string) []ai.ChatMessage {
	system := fmt.Sprintf(systemPromptTemplate,
		orPlaceholder(assessment.SkinType),
		orPlaceholder(assessment.MainConcern),
		orDefault(assessment.AdditionalSkinConcerns, "None mentioned"),
		orDefault(joinIssues(assessment.SpecificSkinIssues), "None specified"),
		orPlaceholder(assessment.CurrentRoutine),
		orPlaceholder(assessment.SunscreenUsage),
		orPlaceholder(assessment.ClimateType),
		orPlaceholder(assessment.WorkEnvironment),
		orPlaceholder(assessment.ProductUsageFrequency),
		orPlaceholder(assessment.SkinTextureDescription),
		userMessage,
	)

	recent := history
	if len(recent) > HistoryWindow {
		recent = recent[len(recent)-HistoryWindow:]
	}

	messages := make([]ai.ChatMessage, 0, len(recent)+2)
	messages = append(messages, ai.ChatMessage{Role: "system", Content: system})
	for _, turn := range recent {
		role := turn.Role
		if role == "" {
			role = model.RoleTurnUser
		}
		messages = append(messages, ai.ChatMessage{Role: role, Content: turn.Content})
	}
	messages = append(messages, ai.ChatMessage{Role: "user", Content: userMessage})
	return messages
}

// BuildWelcome renders the templated assistant message that opens every
// session. No model call is involved; the starter recommendations come from
// a fixed lookup on the main concern.
func BuildWelcome(assessment model.Assessment) string {
	specificIssues := joinIssues(assessment.SpecificSkinIssues)

	issuesLine := ""
	if specificIssues != "" {
		issuesLine = fmt.Sprintf("**Specific Issues:** %s\n\n", specificIssues)
	}

	focusIssues := specificIssues
	if focusIssues == "" {
		focusIssues = "your specific skin issues"
	}

	return fmt.Sprintf(`## Your Skin Assessment Analysis

Based on your assessment, here's what I understand about your skin profile:

**Skin Type:** %s
**Main Concern:** %s
%s**Current Routine:** %s
**Environment:** %s work environment, %s climate
**Lifestyle:** %s exercise, %s stress levels

---

%s

---

## What would you like to focus on?

You can ask me about:

- Detailed recommendations for your %s
- Daily skincare routine suggestions for your skin type
- Specific products available in Pakistan for your concerns
- How to address %s
- Diet and lifestyle adjustments for better skin

How can I help you improve your skin today?`,
		orPlaceholder(assessment.SkinType),
		orPlaceholder(assessment.MainConcern),
		issuesLine,
		orPlaceholder(assessment.CurrentRoutine),
		orPlaceholder(assessment.WorkEnvironment),
		orDefault(assessment.ClimateType, "unspecified"),
		orDefault(assessment.ExerciseFrequency, "Unspecified"),
		orDefault(assessment.StressLevel, "unspecified"),
		StarterRecommendations(assessment.MainConcern, assessment.SkinType),
		orDefault(assessment.MainConcern, "skin concerns"),
		focusIssues,
	)
}

// BuildReport renders the one-shot report instruction from the assessment
// and the supplied transcript. The transcript is taken as given; it is the
// caller's view of history, not necessarily the persisted one.
func BuildReport(assessment model.Assessment, transcript []model.Message) string {
	lines := make([]string, 0, len(transcript))
	for _, turn := range transcript {
		if turn.IsUser() {
			lines = append(lines, "User: "+turn.Content)
		} else {
			lines = append(lines, "Assistant: "+turn.Content)
		}
	}

	return fmt.Sprintf(`You are a skincare assistant. Based on the following chat context and user profile, generate a detailed skincare report in Markdown format:

### User Profile:
- Skin Type: %s
- Main Concern: %s
- Additional Concerns: %s
- Specific Issues: %s
- Current Routine: %s
- Sunscreen Usage: %s

### Chat History:
%s

### Report:
Generate a comprehensive skincare report including product recommendations, precautionary measures, routines, and tips. Format in clean Markdown.`,
		orPlaceholder(assessment.SkinType),
		orPlaceholder(assessment.MainConcern),
		orPlaceholder(assessment.AdditionalSkinConcerns),
		orDefault(joinIssues(assessment.SpecificSkinIssues), "None specified"),
		orPlaceholder(assessment.CurrentRoutine),
		orPlaceholder(assessment.SunscreenUsage),
		strings.Join(lines, "\n"),
	)
}

// BuildWeather renders the instruction pair for a weather-conditioned
// recommendation request.
func BuildWeather(current weather.Current) []ai.ChatMessage {
	system := fmt.Sprintf(`You are an AI skincare expert providing general skincare advice based on current weather conditions.

### Current Weather Conditions:
- **Location:** %s, %s
- **Temperature:** %d°C (Feels like %d°C)
- **Humidity:** %d%%
- **Condition:** %s
- **Wind Speed:** %.1f m/s

### Your Task:
Provide general skincare recommendations, precautions, and tips based on these weather conditions.

### Guidelines:
1. **Response Format**: Always respond in clean Markdown format with:
   - Headings (##, ###)
   - Bold text (**text**)
   - Bullet points (-)
   - Numbered lists when appropriate

2. **Content Structure**:
   - Start with a brief summary of weather impact on skin
   - Provide specific recommendations (cleansing, moisturizing, protection)
   - Include precautionary measures
   - Mention any product suggestions if relevant
   - Keep it concise but actionable (2-3 short paragraphs max)

3. **Focus Areas**:
   - Sun protection needs
   - Hydration requirements
   - Cleansing frequency
   - Product recommendations (general, not personalized)
   - Precautions to avoid

Remember: Format your response in clean Markdown. Keep it friendly, practical, and easy to read.`,
		current.City,
		current.Country,
		current.Temperature,
		current.FeelsLike,
		current.Humidity,
		current.Condition,
		current.WindSpeed,
	)

	return []ai.ChatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: "Provide skincare recommendations based on the weather conditions provided."},
	}
}

func orPlaceholder(value string) string {
	return orDefault(value, NotSpecified)
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func joinIssues(issues []string) string {
	return strings.Join(issues, ", ")
}
