// Package paper turns a secret and a passphrase into a printable PDF: the
// secret is sealed into an age ciphertext, rendered as a QR code on the top
// half of the page and as armored text on the bottom half, with a labeled
// area for writing the passphrase down next to it.
package paper

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	DefaultTitle      = "PaperAge"
	DefaultNotesLabel = "Passphrase:"
	DefaultFileName   = "secret.pdf"
)

// Request carries everything one document needs. Secret and Passphrase are
// only ever read here and in Seal; they must not be logged.
type Request struct {
	Title      string
	Secret     []byte
	Passphrase string
	NotesLabel string
	PageSize   PageSize
	Verbose    bool
	Plaintext  bool
}

// Generator builds paper backup documents. It is stateless and safe to call
// from any goroutine.
type Generator struct{}

// Generate produces the PDF bytes for req. Payloads too large to fit a QR
// symbol are rejected with a readable error.
func (Generator) Generate(ctx context.Context, req Request) ([]byte, error) {
	payload := string(req.Secret)
	if !req.Plaintext {
		sealed, err := Seal(req.Secret, req.Passphrase)
		if err != nil {
			return nil, err
		}
		payload = sealed
	}
	if req.Verbose {
		log.Printf("paper: payload is %d characters", len(payload))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	qrPNG, err := qrcode.Encode(payload, qrcode.Medium, 512)
	if err != nil {
		return nil, fmt.Errorf("secret does not fit in a QR code: %w", err)
	}
	if req.Verbose {
		log.Printf("paper: QR image is %d bytes", len(qrPNG))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return render(req, payload, qrPNG)
}

func render(req Request, payload string, qrPNG []byte) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", req.PageSize.String(), "")
	pdf.SetTitle(req.Title, true)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	w, h := pdf.GetPageSize()
	fold := h / 2

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetXY(15, 18)
	pdf.CellFormat(w-30, 10, req.Title, "", 1, "C", false, 0, "")

	const qrSide = 90.0
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", (w-qrSide)/2, 34, qrSide, qrSide, false, opts, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetXY(15, fold-14)
	pdf.CellFormat(60, 7, req.NotesLabel, "", 0, "L", false, 0, "")
	pdf.SetDrawColor(60, 60, 60)
	pdf.Line(52, fold-8, w-15, fold-8)

	// fold line between the public half and the payload half
	pdf.SetDrawColor(170, 170, 170)
	pdf.SetDashPattern([]float64{2, 2}, 0)
	pdf.Line(10, fold, w-10, fold)
	pdf.SetDashPattern([]float64{}, 0)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(15, fold+1)
	pdf.CellFormat(w-30, 4, "Fold here, payload inside", "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Courier", "", 8)
	pdf.SetXY(15, fold+10)
	pdf.MultiCell(w-30, 3.4, payload, "", "L", false)

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(15, h-14)
	pdf.CellFormat(w-30, 5, "Scan the QR code or retype the text above to recover the secret with age.", "", 0, "C", false, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return out.Bytes(), nil
}
