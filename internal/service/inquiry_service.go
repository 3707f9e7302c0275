package service

import (
	"context"
	"fmt"

	"foodfleet/internal/domain"
)

const msgMissingInquiryInfo = "Name, email, and message are required."

type InquiryService struct {
	repo InquiryRepository
}

func NewInquiryService(repo InquiryRepository) *InquiryService {
	return &InquiryService{repo: repo}
}

func ValidateInquiry(inquiry *domain.HelpInquiry) error {
	var missing []string
	if inquiry.Name == "" {
		missing = append(missing, "name")
	}
	if inquiry.Email == "" {
		missing = append(missing, "email")
	}
	if inquiry.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return &ValidationError{Message: msgMissingInquiryInfo, Fields: missing}
	}
	return nil
}

func (s *InquiryService) SubmitInquiry(ctx context.Context, inquiry *domain.HelpInquiry) error {
	if err := ValidateInquiry(inquiry); err != nil {
		return err
	}
	if err := s.repo.InsertHelpInquiry(ctx, inquiry); err != nil {
		return fmt.Errorf("%w: insert help inquiry: %w", ErrStore, err)
	}
	return nil
}
