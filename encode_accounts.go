package bankbook

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// accountFields is the stable field set of a persisted account record.
// Readers resolve columns by header name, so column order does not matter.
var accountFields = []string{"account_number", "name", "age", "balance", "type", "status", "pin"}

// EncodeAccounts writes the registry as CSV, one row per account. An empty
// registry still gets the header row.
func EncodeAccounts(w io.Writer, accounts []Account) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(accountFields); err != nil {
		return fmt.Errorf("failed to write accounts header: %w", err)
	}
	for _, a := range accounts {
		pin := ""
		if a.PIN != nil {
			pin = strconv.Itoa(*a.PIN)
		}
		row := []string{
			strconv.Itoa(a.Number),
			a.Name,
			strconv.Itoa(a.Age),
			a.Balance.Text(),
			a.Type.String(),
			a.Status.String(),
			pin,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write account %d: %w", a.Number, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeAccounts reads a CSV registry. It tolerates the quirks of files
// written by earlier versions: a missing type column defaults to Savings, a
// missing status to Active, and a pin of "" or "None" means no PIN. Rows with
// an empty account_number are skipped.
func DecodeAccounts(r io.Reader) ([]Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts header: %w", err)
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

	var accounts []Account
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read accounts row: %w", err)
		}
		numText := field(row, "account_number")
		if numText == "" {
			continue
		}
		number, err := strconv.Atoi(numText)
		if err != nil {
			return nil, fmt.Errorf("invalid account number %q: %w", numText, err)
		}
		age, err := strconv.Atoi(field(row, "age"))
		if err != nil {
			return nil, fmt.Errorf("invalid age for account %d: %w", number, err)
		}
		balance, err := ParseMoney(field(row, "balance"))
		if err != nil {
			return nil, fmt.Errorf("invalid balance for account %d: %w", number, err)
		}

		t := Savings
		if s := field(row, "type"); s != "" {
			if t, err = ParseAccountType(s); err != nil {
				return nil, fmt.Errorf("account %d: %w", number, err)
			}
		}
		status := Active
		if s := field(row, "status"); s != "" {
			if status, err = ParseStatus(s); err != nil {
				return nil, fmt.Errorf("account %d: %w", number, err)
			}
		}
		var pin *int
		if s := field(row, "pin"); s != "" && s != "None" {
			p, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("invalid pin for account %d: %w", number, err)
			}
			pin = &p
		}

		accounts = append(accounts, Account{
			Number:  number,
			Name:    field(row, "name"),
			Age:     age,
			Balance: balance,
			Type:    t,
			Status:  status,
			PIN:     pin,
		})
	}
	return accounts, nil
}

// SaveAccounts writes the registry to a file atomically: the CSV is written
// to a temporary file in the same directory and renamed over the target, so
// a crash mid-write never leaves a half-written registry behind.
func SaveAccounts(path string, accounts []Account) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".accounts-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create temporary registry file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeAccounts(tmp, accounts); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary registry file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace registry file: %w", err)
	}
	return nil
}

// LoadAccounts reads the registry from a file. A missing file is an empty registry.
func LoadAccounts(path string) ([]Account, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open registry file: %w", err)
	}
	defer f.Close()
	return DecodeAccounts(f)
}
