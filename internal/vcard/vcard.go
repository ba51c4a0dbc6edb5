// Package vcard renders the contact block as an RFC 6350 vCard and as a QR
// code for the printed version of the CV.
package vcard

import (
	"errors"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/pkoehler/cvsite/internal/content"
)

var (
	// ErrIncompleteContact indicates contact info too sparse for a card.
	ErrIncompleteContact = errors.New("vcard: incomplete contact")
	// ErrEncode indicates QR code generation failed.
	ErrEncode = errors.New("vcard: failed to encode QR code")
)

// defaultQRSize is the PNG edge length in pixels when none is given.
const defaultQRSize = 256

// Build renders c as a vCard 4.0. Empty optional fields are omitted.
func Build(c content.Contact) (string, error) {
	if c.Name == "" {
		return "", ErrIncompleteContact
	}

	var b strings.Builder
	b.WriteString("BEGIN:VCARD\r\n")
	b.WriteString("VERSION:4.0\r\n")
	writeProp(&b, "FN", c.Name)
	writeProp(&b, "TITLE", c.Title)
	writeProp(&b, "EMAIL", c.Email)
	if c.Phone != "" {
		writeProp(&b, "TEL;TYPE=cell", c.Phone)
	}
	if c.Location != "" {
		// ADR is structured; only the locality component is filled.
		writeProp(&b, "ADR;TYPE=home", ";;;"+escape(c.Location)+";;;")
	}
	writeProp(&b, "URL", c.Website)
	if c.GitHub != "" {
		writeProp(&b, "URL;TYPE=github", c.GitHub)
	}
	if c.LinkedIn != "" {
		writeProp(&b, "URL;TYPE=linkedin", c.LinkedIn)
	}
	b.WriteString("END:VCARD\r\n")
	return b.String(), nil
}

// QRPNG renders the vCard for c as a PNG image. size <= 0 uses the default.
func QRPNG(c content.Contact, size int) ([]byte, error) {
	card, err := Build(c)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = defaultQRSize
	}
	png, err := qrcode.Encode(card, qrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return png, nil
}

func writeProp(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	// ADR values arrive pre-escaped; everything else is escaped here.
	if !strings.HasPrefix(name, "ADR") {
		value = escape(value)
	}
	fmt.Fprintf(b, "%s:%s\r\n", name, value)
}

// escape applies RFC 6350 §3.4 value escaping.
func escape(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return r.Replace(s)
}
