package bankdesk

import (
	"context"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// Statement renders the account's transaction history as a PDF. The
// document is buffered by fpdf and only written out once rendering
// succeeds, so a failed render leaves w untouched.
func (s *serviceImpl) Statement(ctx context.Context, w io.Writer, accNo int64) error {
	acct, err := s.repo.GetAccount(ctx, accNo)
	if err != nil {
		return err
	}
	txns, err := s.repo.ListTransactions(ctx, accNo)
	if err != nil {
		return err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Account statement %d", acct.AccNo))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("%s, current balance %s", acct.Name, acct.Balance.StringFixed(2)))
	pdf.Ln(12)

	colWidths := []float64{20, 28, 32, 36, 36}
	headers := []string{"ID", "Type", "Amount", "Before", "After"}
	pdf.SetFont("Helvetica", "B", 9)
	for i, hd := range headers {
		pdf.CellFormat(colWidths[i], 7, hd, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, txn := range txns {
		cells := []string{
			fmt.Sprintf("%d", txn.ID),
			string(txn.Type),
			txn.Amount.StringFixed(2),
			txn.BeforeBalance.StringFixed(2),
			txn.AfterBalance.StringFixed(2),
		}
		for i, c := range cells {
			pdf.CellFormat(colWidths[i], 6, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
