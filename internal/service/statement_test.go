package service

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/lennonhrmn/AWI-Mobile/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedMail struct {
	to, subject, body, pdfPath string
}

type stubMailer struct{ sent []recordedMail }

func (m *stubMailer) SendPayoutStatement(to, subject, body, pdfPath string) error {
	m.sent = append(m.sent, recordedMail{to, subject, body, pdfPath})
	return nil
}

func newStatementFixture(t *testing.T) (*StatementService, *stubMailer, model.SellerSummary) {
	t.Helper()
	mailer := &stubMailer{}
	svc := NewStatementService("Dépôt-vente", t.TempDir(), mailer)
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC) }
	summary := ComputeSummaries([]model.Game{
		soldGame("A", "S1", "Alice Martin", 20, 2),
		soldGame("B", "S1", "Alice Martin", 30, 3),
	})[0]
	return svc, mailer, summary
}

func TestStatementService_Render(t *testing.T) {
	svc, _, summary := newStatementFixture(t)

	path, err := svc.Render(summary)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "releve_S1_20240315.pdf"))
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestStatementService_Mail(t *testing.T) {
	svc, mailer, summary := newStatementFixture(t)
	seller := model.Seller{ID: "S1", FirstName: "Alice", Name: "Martin", Email: "alice@example.fr"}

	require.NoError(t, svc.Mail(summary, seller))
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "alice@example.fr", mailer.sent[0].to)
	assert.Contains(t, mailer.sent[0].body, "45.00 €")
	assert.Contains(t, mailer.sent[0].body, "2 jeux")
}

func TestStatementService_MailNeedsAddress(t *testing.T) {
	svc, mailer, summary := newStatementFixture(t)
	err := svc.Mail(summary, model.Seller{ID: "S1"})
	assert.ErrorIs(t, err, ErrSellerHasNoEmail)
	assert.Empty(t, mailer.sent)
}
