package services

import (
	"fmt"
	"strings"

	"entrelink/investor-match/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// ExtractionSystemPrompt returns the fixed instruction for attribute
// extraction. The model must answer with raw JSON only so the response can
// be unmarshalled directly.
func (pb *PromptBuilder) ExtractionSystemPrompt() string {
	return `You are an analyst that extracts structured investor-search attributes from startup descriptions.
Respond with valid JSON only. Do not include markdown, code fences, or any text outside the JSON object.`
}

// BuildExtractionPrompt creates the user message embedding the startup
// description and the expected response schema.
func (pb *PromptBuilder) BuildExtractionPrompt(query string) string {
	return fmt.Sprintf(`Analyze the following startup description and extract the industries it operates in and its funding stage.

Startup description: "%s"

Return your response in the following JSON format:
{
  "industries": ["<industry keyword>", ...],
  "stage": {
    "startup_stage": "<e.g. pre-seed, seed, series a>",
    "appropriate_investor_title_prefix": ["<keyword describing investors for this stage>", ...]
  }
}

Keep keywords short (one or two words). Both arrays may be empty if nothing applies, but every field must be present.`, query)
}

// EmailWriterSystemPrompt returns the persona for outreach email drafting.
func (pb *PromptBuilder) EmailWriterSystemPrompt() string {
	return `You are a professional email writer helping entrepreneurs craft personalized outreach emails to investors.
Generate a concise, professional email using the provided context. The email should be personalized,
reference the investor's specific background and portfolio when relevant, and clearly communicate
the value proposition. Keep the tone professional but conversational.`
}

// BuildEmailPrompt creates the user message for an introduction email,
// folding in whatever investor context is available.
func (pb *PromptBuilder) BuildEmailPrompt(senderName, subject string, investor models.InvestorDetails) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Write a professional email from %s to an investor named %s", senderName, investor.Name)
	if investor.Company != "" {
		fmt.Fprintf(&sb, " from %s", investor.Company)
	}
	if investor.Industry != "" {
		fmt.Fprintf(&sb, " who focuses on the %s industry", investor.Industry)
	}
	if len(investor.InvestmentFocus) > 0 {
		fmt.Fprintf(&sb, " and invests in %s", strings.Join(investor.InvestmentFocus, ", "))
	}
	if len(investor.Portfolio) > 0 {
		portfolio := investor.Portfolio
		if len(portfolio) > 3 {
			portfolio = portfolio[:3]
		}
		fmt.Fprintf(&sb, ". They have previously invested in %s", strings.Join(portfolio, ", "))
	}
	fmt.Fprintf(&sb, ". The email subject is %q. Make the email approximately 150-200 words.", subject)

	return sb.String()
}
