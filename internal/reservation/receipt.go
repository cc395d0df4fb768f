package reservation

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed template/*.html
var templates embed.FS

var receiptTemplate = template.Must(template.ParseFS(templates, "template/receipt.html"))

// Receipt is built on the client after a booking and is never sent to the server.
type Receipt struct {
	Name      string
	Email     string
	Date      string
	Time      string
	PaymentID string
	Amount    int64
	Currency  string
}

func (r Receipt) Render(w io.Writer) error {
	if err := receiptTemplate.Execute(w, r); err != nil {
		return fmt.Errorf("failed to execute receipt template: %w", err)
	}

	return nil
}
