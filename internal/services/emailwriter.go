package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"entrelink/investor-match/internal/models"
)

type EmailWriterService interface {
	GenerateEmail(ctx context.Context, senderName, subject string, investor models.InvestorDetails) (string, error)
}

type emailWriterService struct {
	completion    CompletionService
	promptBuilder *PromptBuilder
}

func NewEmailWriterService(completion CompletionService) EmailWriterService {
	return &emailWriterService{
		completion:    completion,
		promptBuilder: NewPromptBuilder(),
	}
}

// GenerateEmail implements EmailWriterService. Drafts a short outreach email
// for the given investor context.
func (s *emailWriterService) GenerateEmail(ctx context.Context, senderName, subject string, investor models.InvestorDetails) (string, error) {
	response, err := s.completion.Complete(
		ctx,
		s.promptBuilder.EmailWriterSystemPrompt(),
		s.promptBuilder.BuildEmailPrompt(senderName, subject, investor),
		0.7,
		300,
	)
	if err != nil {
		log.Printf("❌ Email generation failed: %v\n", err)
		return "", fmt.Errorf("%w: completion call failed", ErrEmailGenerationFailed)
	}

	email := strings.TrimSpace(response)
	if email == "" {
		return "", fmt.Errorf("%w: empty response", ErrEmailGenerationFailed)
	}

	return email, nil
}
