package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/quotallc/grabbit-rewards/internal/domain"
)

// Filename is the attachment name offered to the browser on download.
const Filename = "grabbit-codes.csv"

// ToCSV serializes results as CSV with an "email,code" header, one row per
// result in input order. Fields containing commas, quotes or newlines are
// quoted per RFC 4180. Empty input yields header-only output.
func ToCSV(results []domain.DiscountResult) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"email", "code"}); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range results {
		if err := w.Write([]string{r.CustomerEmail, r.Code}); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return buf.String(), nil
}
