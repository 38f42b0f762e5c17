package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
)

type currency struct {
	Name       string
	Ident      string
	Code       string
	Precision  int64
	Scale      int
	Symbol     string
	HTMLSymbol string
	Cash       bool
	Singular   string
	Plural     string
	Subunit    string
	Aliases    []string
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "currency", "currency_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to a list of Currency objects.
	// Registration order is the order of the CSV file.
	currs, err := convertDataToCurrencies(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	// Generate Go code from the Currency objects using a template
	code, err := generateGoCode(filepath.Join("scripts", "currency", "currency_data.tmpl"), currs)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("currency_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	// Open the CSV file
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	// Read the CSV records
	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	recs, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return recs, nil
}

func convertDataToCurrencies(data [][]string) ([]currency, error) {
	currs := []currency{}
	seen := map[string]bool{}
	for _, rec := range data {
		prec, err := strconv.ParseInt(rec[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%v: precision: %w", rec[1], err)
		}
		scale, err := scaleOf(prec)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", rec[1], err)
		}
		cash, err := strconv.ParseBool(rec[5])
		if err != nil {
			return nil, fmt.Errorf("%v: cash flag: %w", rec[1], err)
		}
		curr := currency{
			Name:       rec[0],
			Ident:      identOf(rec[1], rec[7]),
			Code:       rec[1],
			Precision:  prec,
			Scale:      scale,
			Symbol:     rec[3],
			HTMLSymbol: rec[4],
			Cash:       cash,
			Singular:   rec[6],
			Plural:     rec[7],
			Subunit:    rec[8],
		}
		if rec[9] != "" {
			curr.Aliases = strings.Split(rec[9], " ")
		}
		for _, code := range append([]string{curr.Code}, curr.Aliases...) {
			if seen[code] {
				return nil, fmt.Errorf("duplicate code %q", code)
			}
			seen[code] = true
		}
		currs = append(currs, curr)
	}
	if len(currs) > 256 {
		return nil, fmt.Errorf("too many currencies: %v", len(currs))
	}
	return currs, nil
}

// scaleOf returns the number of decimal digits of a precision.
// Only positive powers of ten are accepted.
func scaleOf(prec int64) (int, error) {
	if prec < 1 {
		return 0, fmt.Errorf("precision must be positive, got %v", prec)
	}
	scale := 0
	for p := prec; p > 1; p /= 10 {
		if p%10 != 0 {
			return 0, fmt.Errorf("precision must be a power of ten, got %v", prec)
		}
		scale++
	}
	return scale, nil
}

// identOf returns the Go identifier of a currency constant.
// Alphabetic codes in upper case are used as is, otherwise the plural noun.
func identOf(code, plural string) string {
	if code == strings.ToUpper(code) {
		return code
	}
	return plural
}

func generateGoCode(filename string, currs []currency) ([]byte, error) {
	// Create a new template object from the template file
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, currs)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	// Write the content to a file
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	err = writer.Flush()
	if err != nil {
		return err
	}
	return nil
}
