package models

type GenerateEmailRequest struct {
	Subject         string          `json:"subject"`
	SenderName      string          `json:"sender_name"`
	InvestorDetails InvestorDetails `json:"investor_details"`
}

type InvestorDetails struct {
	Name            string   `json:"name"`
	Company         string   `json:"company,omitempty"`
	Industry        string   `json:"industry,omitempty"`
	InvestmentFocus []string `json:"investment_focus,omitempty"`
	Portfolio       []string `json:"portfolio,omitempty"`
}

type GenerateEmailResponse struct {
	GeneratedEmail string `json:"generated_email"`
}

type RequestEmailRequest struct {
	InvestorID      string `json:"investor_id"`
	InvestorName    string `json:"investor_name"`
	InvestorEmail   string `json:"investor_email"`
	InvestorCompany string `json:"investor_company"`
	Subject         string `json:"subject"`
	EmailBody       string `json:"email_body"`
}

type RequestEmailResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type EmailAccessRequest struct {
	Investor  InvestorDetails `json:"investor"`
	UserEmail string          `json:"user_email"`
}
