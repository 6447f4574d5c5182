package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"entrelink/investor-match/internal/models"
	"entrelink/investor-match/internal/repositories"
	"entrelink/investor-match/internal/services"
)

type EmailHandler struct {
	emailWriter      services.EmailWriterService
	emailRequestRepo repositories.EmailRequestRepository
}

func NewEmailHandler(
	emailWriter services.EmailWriterService,
	emailRequestRepo repositories.EmailRequestRepository,
) *EmailHandler {
	return &EmailHandler{
		emailWriter:      emailWriter,
		emailRequestRepo: emailRequestRepo,
	}
}

// HandleGenerateEmail handles POST /generate-email.
func (h *EmailHandler) HandleGenerateEmail(c *fiber.Ctx) error {
	var req models.GenerateEmailRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Subject == "" || req.SenderName == "" || req.InvestorDetails.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	email, err := h.emailWriter.GenerateEmail(c.UserContext(), req.SenderName, req.Subject, req.InvestorDetails)
	if err != nil {
		log.Printf("❌ Failed to generate email: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate email",
		})
	}

	return c.JSON(models.GenerateEmailResponse{GeneratedEmail: email})
}

// HandleRequestEmail handles POST /request-email. Persists the request for
// manual review.
func (h *EmailHandler) HandleRequestEmail(c *fiber.Ctx) error {
	var req models.RequestEmailRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.InvestorID == "" || req.Subject == "" || req.EmailBody == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing required fields",
		})
	}

	request := &models.EmailRequest{
		ID:              uuid.New(),
		InvestorID:      req.InvestorID,
		InvestorName:    req.InvestorName,
		InvestorEmail:   req.InvestorEmail,
		InvestorCompany: req.InvestorCompany,
		Subject:         req.Subject,
		EmailBody:       req.EmailBody,
		Status:          models.EmailRequestPending,
	}

	if err := h.emailRequestRepo.Create(request); err != nil {
		log.Printf("❌ Failed to store email request: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process email request",
		})
	}

	return c.JSON(models.RequestEmailResponse{
		Message: "Email request submitted successfully",
		ID:      request.ID.String(),
	})
}

// HandleRequestEmailAccess handles POST /request-email-access. Log-only
// acknowledgement; actual delivery is handled out of band.
func (h *EmailHandler) HandleRequestEmailAccess(c *fiber.Ctx) error {
	var req models.EmailAccessRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Investor.Name == "" || req.UserEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Investor and user email are required",
		})
	}

	log.Printf("📧 User %s requested email access for investor %s\n", req.UserEmail, req.Investor.Name)

	return c.JSON(fiber.Map{
		"message": "Email access request sent",
	})
}
