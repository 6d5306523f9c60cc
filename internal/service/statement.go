package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/lennonhrmn/AWI-Mobile/internal/infra"
	"github.com/lennonhrmn/AWI-Mobile/internal/model"
)

var ErrSellerHasNoEmail = errors.New("Le vendeur n'a pas d'adresse email")

// StatementMailer is implemented by infra.Mailer.
type StatementMailer interface {
	SendPayoutStatement(to, subject, body, pdfPath string) error
}

// StatementService renders a seller's pending payout as a PDF and optionally
// mails it to the seller.
type StatementService struct {
	shopName string
	dir      string
	mailer   StatementMailer
	now      func() time.Time
}

func NewStatementService(shopName, dir string, mailer StatementMailer) *StatementService {
	return &StatementService{shopName: shopName, dir: dir, mailer: mailer, now: time.Now}
}

// Render writes the statement and returns its path.
func (s *StatementService) Render(summary model.SellerSummary) (string, error) {
	path, err := infra.GeneratePayoutStatementPDF(summary, s.shopName, s.dir, s.now())
	if err != nil {
		return "", fmt.Errorf("statement: %w", err)
	}
	return path, nil
}

// Mail renders the statement and sends it to seller.
func (s *StatementService) Mail(summary model.SellerSummary, seller model.Seller) error {
	if seller.Email == "" {
		return ErrSellerHasNoEmail
	}
	path, err := s.Render(summary)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("%s - relevé de remboursement", s.shopName)
	body := fmt.Sprintf(
		"Bonjour %s,\n\nVous trouverez ci-joint le relevé de vos %d jeux vendus.\nMontant à vous reverser : %s €.\n\n%s",
		seller.FullName(), len(summary.Games), summary.TotalToRefund.StringFixed(2), s.shopName,
	)
	return s.mailer.SendPayoutStatement(seller.Email, subject, body, path)
}
