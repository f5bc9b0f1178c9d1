package analyzer

import "fmt"

const sentimentPromptTemplate = `Analyze the sentiment of the following customer review in detail.

Review: "%s"

You MUST respond with ONLY valid JSON format, no additional text or explanation.

Provide the following as a JSON object:
- "sentiment": Overall sentiment as "Positive", "Negative", or "Neutral"
- "intensity": Sentiment intensity as a number between 0 and 1
- "emotions": Array of detected emotions (e.g., ["Joy", "Satisfaction"] or ["Anger", "Frustration"])
- "confidence": Confidence score as a number between 0 and 1
- "key_phrases": Array of key phrases from the review (minimum 3-4 phrases)

Example JSON format:
{
    "sentiment": "Positive",
    "intensity": 0.95,
    "emotions": ["Joy", "Satisfaction", "Approval"],
    "confidence": 0.98,
    "key_phrases": ["Great service", "fast delivery", "worth it"]
}

Now analyze this review and respond with ONLY the JSON object:`

const aspectsPromptTemplate = `Analyze this customer review and identify specific aspects mentioned.
For each aspect, determine the sentiment.

Review: "%s"

Extract aspects such as:
- Delivery/Shipping
- Product Quality
- Customer Service
- Pricing
- Website/App Experience
- Account Issues
- Other relevant aspects

For each aspect found, provide:
1. Aspect name
2. Sentiment (Positive/Negative/Neutral)
3. Relevant quote from review

Format as JSON list with keys: aspect, sentiment, quote`

const summaryPromptTemplate = `Summarize the following customer review in %d words or less.
Focus on the main points, issues, or praises mentioned.

Review: "%s"

Provide a concise summary highlighting:
- Main complaint or praise
- Key details
- Overall takeaway`

const insightsPromptTemplate = `Analyze the following customer review and extract the top %d key insights.

Review: "%s"

Identify:
1. Most common complaints or praises
2. Recurring themes
3. Patterns or trends
4. Actionable recommendations

Format as a bulleted list of structured insights with examples.`

const sarcasmPromptTemplate = `Analyze if this review contains sarcasm, irony, or is being facetious.

Review: "%s"

Determine:
1. Contains sarcasm/irony: Yes/No
2. Confidence level (0-1)
3. Explanation of why
4. Adjusted sentiment if sarcasm is present

Format as JSON with keys: has_sarcasm, confidence, explanation, adjusted_sentiment`

const categorizePromptTemplate = `Categorize this customer review into one or more of these topics:

Categories:
- Delivery/Shipping Issues
- Product Quality/Defect
- Customer Service
- Billing/Payment Issues
- Account Problems
- Website/Technical Issues
- Pricing Concerns
- Positive Experience
- Other

Review: "%s"

Provide:
1. Primary category
2. Secondary categories (if any)
3. Confidence score

Format as JSON with keys: primary_category, secondary_categories, confidence`

func sentimentPrompt(text string) string {
	return fmt.Sprintf(sentimentPromptTemplate, text)
}

func aspectsPrompt(text string) string {
	return fmt.Sprintf(aspectsPromptTemplate, text)
}

func summaryPrompt(text string, maxWords int) string {
	return fmt.Sprintf(summaryPromptTemplate, maxWords, text)
}

func insightsPrompt(text string, topN int) string {
	return fmt.Sprintf(insightsPromptTemplate, topN, text)
}

func sarcasmPrompt(text string) string {
	return fmt.Sprintf(sarcasmPromptTemplate, text)
}

func categorizePrompt(text string) string {
	return fmt.Sprintf(categorizePromptTemplate, text)
}
