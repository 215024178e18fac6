package admitcard

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/fiftyvillagers/seva-portal/internal/app/models"
)

// RenderPDF produces the printable A4 admit card: roll number, candidate
// identity, center details and a QR code of the roll number for gate
// scanning. Photo and signature stay as URL references printed on the card
// (the venue verifies them against the uploaded originals).
func RenderPDF(card *models.AdmitCard) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Fifty Villagers Seva Sansthan", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, "Scholarship Examination - Admit Card", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Roll number, prominent
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Roll Number: "+card.RollNumber, "1", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Candidate details
	pdf.SetFont("Arial", "", 11)
	row := func(label, value string) {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(50, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}

	row("Candidate", card.StudentName)
	row("Email", card.StudentEmail)
	row("Exam Center", card.CenterName)
	row("Location", card.CenterLocation)
	row("Date & Time", card.ExamDate.Format("02 Jan 2006, 03:04 PM"))
	if card.PhotoURL != nil {
		row("Photo", *card.PhotoURL)
	}
	if card.SignatureURL != nil {
		row("Signature", *card.SignatureURL)
	}
	pdf.Ln(6)

	// QR code encoding the roll number
	qrPng, err := qrcode.Encode(card.RollNumber, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate qr code: %w", err)
	}

	imgOptions := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	reader := bytes.NewReader(qrPng)
	pdf.RegisterImageOptionsReader("roll_qr", imgOptions, reader)
	pdf.ImageOptions("roll_qr", 15, pdf.GetY(), 35, 35, false, imgOptions, 0, "")
	pdf.SetXY(55, pdf.GetY()+12)
	pdf.SetFont("Arial", "I", 9)
	pdf.MultiCell(0, 5, "Present this card with a valid photo ID at the exam center. The QR code is scanned at the gate.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render admit card pdf: %w", err)
	}
	return buf.Bytes(), nil
}
