// Package qrpay builds EPC bank-transfer payment payloads and renders them as
// QR codes in SVG, for embedding into invoice documents. Banking apps scan
// the code to pre-fill a SEPA credit transfer, so the payload's field order
// and newlines must not change.
package qrpay

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"time"

	svg "github.com/ajstarks/svgo"
	"github.com/boombuler/barcode/qr"
)

// ErrPayloadEncoding is returned when the assembled payment text cannot be
// encoded into a QR symbol, e.g. because it exceeds the symbol capacity.
var ErrPayloadEncoding = errors.New("payment payload cannot be encoded")

// BankDetails is the beneficiary side of the payment payload. The values come
// from configuration and are passed through verbatim.
type BankDetails struct {
	BIC  string
	IBAN string
	Name string
}

// moduleSize is the rendered edge length of one QR module in SVG user units.
const moduleSize = 4

// BuildPayload assembles the EPC payment descriptor. Line order: service tag,
// version, character set, identification code, BIC, beneficiary name, IBAN,
// amount with currency prefix, purpose placeholder, remittance marker, and
// the reference line "RE <invoice number> vom <dd.mm.yyyy>".
func BuildPayload(bank BankDetails, amountDisplay string, billDate time.Time, invoiceNumber string) string {
	subject := fmt.Sprintf("RE %s vom %s", invoiceNumber, billDate.Format("02.01.2006"))

	return fmt.Sprintf(
		"BCD\n001\n2\nSCT\n%s\n%s\n%s\nEUR%s\nSCVE\n%s\n",
		bank.BIC,
		bank.Name,
		bank.IBAN,
		amountDisplay,
		subject,
	)
}

// Render encodes the payment payload as a QR code (error-correction level M)
// and renders it as an SVG image. Dark modules are drawn in strokeColor,
// light modules stay transparent.
func Render(bank BankDetails, amountDisplay string, billDate time.Time, invoiceNumber, strokeColor string) ([]byte, error) {
	payload := BuildPayload(bank, amountDisplay, billDate, invoiceNumber)

	code, err := qr.Encode(payload, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayloadEncoding, err)
	}

	bounds := code.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width*moduleSize, height*moduleSize)

	style := fmt.Sprintf("fill:%s", strokeColor)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if isDark(code.At(x, y)) {
				canvas.Rect((x-bounds.Min.X)*moduleSize, (y-bounds.Min.Y)*moduleSize, moduleSize, moduleSize, style)
			}
		}
	}
	canvas.End()

	return buf.Bytes(), nil
}

func isDark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0 && g == 0 && b == 0
}
