package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"oasis-backend/booking"
	"oasis-backend/models"
	"oasis-backend/utils"

	"github.com/phpdave11/gofpdf"
)

type BookingSource interface {
	Get(ctx context.Context, id uint) (*models.Booking, error)
}

// ConfirmationService renders the downloadable reservation confirmation.
type ConfirmationService struct {
	Bookings BookingSource
	Now      func() time.Time
}

func NewConfirmationService(bookings BookingSource) *ConfirmationService {
	return &ConfirmationService{Bookings: bookings, Now: time.Now}
}

// Render returns the PDF bytes and a download filename for one booking.
func (s *ConfirmationService) Render(ctx context.Context, id uint) ([]byte, string, error) {
	b, err := s.Bookings.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	issued := time.Now()
	if s.Now != nil {
		issued = s.Now()
	}
	return BuildConfirmationPDF(*b, issued)
}

func BuildConfirmationPDF(b models.Booking, issued time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	writeConfirmation(pdf, b, issued)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("CONFIRMATION_%s_%s.pdf", utils.SafeFilenamePart(b.ReferenceCode), utils.SafeFilenamePart(b.GuestName))
	return buf.Bytes(), filename, nil
}

// writeConfirmation lays out one confirmation page. The core fonts are cp1252, so
// guest-typed UTF-8 goes through the translator before it reaches a cell.
func writeConfirmation(pdf *gofpdf.Fpdf, b models.Booking, issued time.Time) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Reservation confirmation", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RESERVATION CONFIRMATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, tr("Reference : "+utils.SafeText(b.ReferenceCode, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued    : "+issued.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Guest")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Name      : %s", utils.SafeText(b.GuestName, "-")),
		fmt.Sprintf("Email     : %s", utils.SafeText(b.GuestEmail, "-")),
		fmt.Sprintf("Guests    : %d", b.NumGuests),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, tr(line))
		pdf.Ln(7)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Stay")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	lines = []string{
		fmt.Sprintf("Cabin     : %s", utils.SafeText(b.Cabin.Name, "-")),
		fmt.Sprintf("Check-in  : %s", booking.FormatDay(b.Start())),
		fmt.Sprintf("Check-out : %s", booking.FormatDay(b.End())),
		fmt.Sprintf("Nights    : %d", b.NumNights),
		fmt.Sprintf("Status    : %s", utils.SafeText(b.Status, models.StatusUnconfirmed)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, tr(line))
		pdf.Ln(7)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Price")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Cabin     : "+utils.FormatMoney(b.CabinPrice))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Extras    : "+utils.FormatMoney(b.ExtrasPrice))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Total     : "+utils.FormatMoney(b.TotalPrice))
	pdf.Ln(12)

	if b.Observations != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr("Notes: "+b.Observations), "", "", false)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Payment is due on arrival. Please bring this confirmation when you check in.", "", "", false)
}
