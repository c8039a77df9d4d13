package paper

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestSealUnsealRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("scrypt is slow")
	}
	secret := []byte("correct horse battery staple")

	armored, err := Seal(secret, "pw")
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if !strings.HasPrefix(armored, "-----BEGIN AGE ENCRYPTED FILE-----") {
		t.Fatalf("payload is not armored: %q", armored[:40])
	}

	got, err := Unseal([]byte(armored), "pw")
	if err != nil {
		t.Fatalf("Unseal: %v", err)
	}
	if !bytes.Equal(got, secret) {
		t.Errorf("round trip = %q, want %q", got, secret)
	}

	// retyped payloads often carry stray leading whitespace
	got, err = Unseal([]byte("\n  "+armored), "pw")
	if err != nil {
		t.Fatalf("Unseal with leading whitespace: %v", err)
	}
	if !bytes.Equal(got, secret) {
		t.Errorf("round trip = %q, want %q", got, secret)
	}
}

func TestUnsealWrongPassphrase(t *testing.T) {
	if testing.Short() {
		t.Skip("scrypt is slow")
	}
	armored, err := Seal([]byte("s"), "right")
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if _, err := Unseal([]byte(armored), "wrong"); err == nil {
		t.Fatal("wrong passphrase decrypted successfully")
	}
}

func TestGenerateProducesPDF(t *testing.T) {
	if testing.Short() {
		t.Skip("scrypt is slow")
	}
	data, err := Generator{}.Generate(context.Background(), Request{
		Title:      DefaultTitle,
		Secret:     []byte("the launch codes"),
		Passphrase: "pw",
		NotesLabel: DefaultNotesLabel,
		PageSize:   A4,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", data[:8])
	}
}

func TestGeneratePlaintext(t *testing.T) {
	data, err := Generator{}.Generate(context.Background(), Request{
		Title:      "Plain",
		Secret:     []byte("not actually secret"),
		NotesLabel: DefaultNotesLabel,
		PageSize:   Letter,
		Plaintext:  true,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", data[:8])
	}
}

func TestGenerateSecretTooLarge(t *testing.T) {
	// a QR symbol tops out below 3 KB of byte-mode data; the armored
	// ciphertext of an 8 KB secret is far past that
	big := bytes.Repeat([]byte("a"), 8192)
	_, err := Generator{}.Generate(context.Background(), Request{
		Secret:    big,
		PageSize:  A4,
		Plaintext: true,
	})
	if err == nil {
		t.Fatal("oversized secret produced a document")
	}
	if !strings.Contains(err.Error(), "QR") {
		t.Errorf("err = %v, want a QR capacity error", err)
	}
}

func TestGenerateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Generator{}.Generate(ctx, Request{
		Secret:    []byte("s"),
		Plaintext: true,
	})
	if err == nil {
		t.Fatal("cancelled context still generated")
	}
}

func TestParsePageSize(t *testing.T) {
	tests := []struct {
		in      string
		want    PageSize
		wantErr bool
	}{
		{"A4", A4, false},
		{"a4", A4, false},
		{" letter ", Letter, false},
		{"Letter", Letter, false},
		{"legal", A4, true},
		{"", A4, true},
	}
	for _, tt := range tests {
		got, err := ParsePageSize(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePageSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePageSize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPageSizeDimensions(t *testing.T) {
	if w, h := A4.Dimensions(); w != 210 || h != 297 {
		t.Errorf("A4 = %gx%g", w, h)
	}
	if w, h := Letter.Dimensions(); w != 215.9 || h != 279.4 {
		t.Errorf("Letter = %gx%g", w, h)
	}
}
