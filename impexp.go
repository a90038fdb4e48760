package bankbook

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Export writes the current registry to an arbitrary CSV file, using the
// same record format as the registry file itself.
func (b *Bank) Export(path string) error {
	return SaveAccounts(path, b.Accounts())
}

// Import reads account rows from CSV and re-creates them through Create, so
// each imported account gets a fresh number from the sequence and goes
// through the usual validation. Only the name, age, type and balance columns
// are read; an account_number present in the file is ignored, which keeps
// imported numbers from colliding with allocated ones. Rows that fail to
// parse or violate creation rules are skipped. It returns the number of
// accounts created.
//
// PINs are not imported: the imported accounts start without one.
func (b *Bank) Import(r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read import header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	created := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return created, fmt.Errorf("failed to read import row: %w", err)
		}
		name := strings.TrimSpace(field(row, "name"))
		age, err := strconv.Atoi(field(row, "age"))
		if err != nil {
			continue
		}
		t := Savings
		if s := field(row, "type"); s != "" {
			if t, err = ParseAccountType(s); err != nil {
				continue
			}
		}
		balance := Money{}
		if s := field(row, "balance"); s != "" {
			if balance, err = ParseMoney(s); err != nil {
				continue
			}
		}
		if _, err := b.Create(name, age, t, balance, nil); err != nil {
			continue
		}
		created++
	}
	return created, nil
}

// ImportFile is Import reading from a file path.
func (b *Bank) ImportFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()
	return b.Import(f)
}
