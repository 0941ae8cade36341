package qrpay

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var testBank = BankDetails{
	BIC:  "GENODEF1M03",
	IBAN: "DE02120300000000202051",
	Name: "Erika Musterfrau",
}

func TestBuildPayload(t *testing.T) {
	billDate := time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC)

	payload := BuildPayload(testBank, "238.00", billDate, "2024-0701")

	// Field order and newlines are load-bearing: banking apps reject any
	// deviation from this exact layout.
	expected := "BCD\n" +
		"001\n" +
		"2\n" +
		"SCT\n" +
		"GENODEF1M03\n" +
		"Erika Musterfrau\n" +
		"DE02120300000000202051\n" +
		"EUR238.00\n" +
		"SCVE\n" +
		"RE 2024-0701 vom 31.07.2024\n"

	if payload != expected {
		t.Errorf("BuildPayload = %q, expected %q", payload, expected)
	}
}

func TestBuildPayloadDateFormat(t *testing.T) {
	billDate := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	payload := BuildPayload(testBank, "47.60", billDate, "2025-0103")

	if !strings.Contains(payload, "RE 2025-0103 vom 02.01.2025\n") {
		t.Errorf("payload reference line wrong: %q", payload)
	}
}

func TestRender(t *testing.T) {
	billDate := time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC)

	svg, err := Render(testBank, "238.00", billDate, "2024-0701", "#1a1a2e")
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	image := string(svg)
	if !strings.Contains(image, "<svg") || !strings.Contains(image, "</svg>") {
		t.Errorf("output is not an SVG document: %q", image)
	}
	if !strings.Contains(image, "fill:#1a1a2e") {
		t.Errorf("dark modules not drawn in stroke color: %q", image)
	}
}

func TestRenderEncodingError(t *testing.T) {
	billDate := time.Date(2024, 7, 31, 0, 0, 0, 0, time.UTC)

	// A reference far beyond QR capacity cannot be encoded
	_, err := Render(testBank, "238.00", billDate, strings.Repeat("9", 8000), "#000000")
	if !errors.Is(err, ErrPayloadEncoding) {
		t.Errorf("expected ErrPayloadEncoding, got %v", err)
	}
}
