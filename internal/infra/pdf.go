package infra

// Payout statement ("relevé de remboursement") for one seller,
// rendered with go-pdf/fpdf on A4:
//   - shop header and issue date
//   - seller name and id
//   - table of sold games (id, name, price, commission, net)
//   - totals: sales, commission, amount to refund
//
// The file is written to storagePath/releve_{sellerId}_{yyyymmdd}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lennonhrmn/AWI-Mobile/internal/model"

	"github.com/go-pdf/fpdf"
)

// GeneratePayoutStatementPDF writes the statement for summary and returns the
// path of the generated file.
func GeneratePayoutStatementPDF(summary model.SellerSummary, shopName, storagePath string, issuedAt time.Time) (string, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("releve_%s_%s.pdf", safeFileToken(summary.SellerID), issuedAt.Format("20060102"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, tr(shopName), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, tr("Relevé de remboursement vendeur"), "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 6, issuedAt.Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 6, tr(fmt.Sprintf("Vendeur : %s (n° %s)", summary.SellerName, summary.SellerID)), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// ── Games table ──────────────────────────────────────────────────────────
	colID := contentW * 0.14
	colName := contentW * 0.40
	colPrice := contentW * 0.15
	colComm := contentW * 0.15
	colNet := contentW * 0.16

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(colID, 6, "Id", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colName, 6, "Jeu", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colPrice, 6, "Prix", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colComm, 6, "Commission", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colNet, 6, "Net", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, g := range summary.Games {
		name := g.Name
		if len([]rune(name)) > 40 {
			name = string([]rune(name)[:39]) + "…"
		}
		pdf.CellFormat(colID, 5, tr(g.ID), "", 0, "L", false, 0, "")
		pdf.CellFormat(colName, 5, tr(name), "", 0, "L", false, 0, "")
		pdf.CellFormat(colPrice, 5, tr(euros(g.Price.StringFixed(2))), "", 0, "R", false, 0, "")
		pdf.CellFormat(colComm, 5, tr(euros(g.Commission.StringFixed(2))), "", 0, "R", false, 0, "")
		pdf.CellFormat(colNet, 5, tr(euros(g.Price.Sub(g.Commission).StringFixed(2))), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ───────────────────────────────────────────────────────────────
	labelW := contentW - colNet
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(labelW, 6, "Total des ventes :", "", 0, "R", false, 0, "")
	pdf.CellFormat(colNet, 6, tr(euros(summary.TotalSales.StringFixed(2))), "", 1, "R", false, 0, "")
	pdf.CellFormat(labelW, 6, "Commission :", "", 0, "R", false, 0, "")
	pdf.CellFormat(colNet, 6, tr(euros(summary.TotalCommission.StringFixed(2))), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(labelW, 7, tr("Montant à rembourser :"), "", 0, "R", false, 0, "")
	pdf.CellFormat(colNet, 7, tr(euros(summary.TotalToRefund.StringFixed(2))), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

func euros(amount string) string { return amount + " €" }

// safeFileToken keeps seller ids usable as file name fragments.
func safeFileToken(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
	if s == "" {
		return "inconnu"
	}
	return s
}
