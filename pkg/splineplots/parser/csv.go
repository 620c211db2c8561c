package parser

import (
	"encoding/csv"
	"errors"
	"io"

	"github.com/thomasbiekoetter/cubicsplines/pkg/splineplots/models"
)

// ReadDelimited reads a delimited text table whose first record is the header.
// Header names are kept verbatim.
func ReadDelimited(path string, comma rune) (*models.Table, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = comma

	header, err := reader.Read()
	if err == io.EOF {
		return nil, NewMalformedTableError(path, "", 0, errors.New("no header row"))
	}
	if err != nil {
		return nil, classifyReadError(path, err)
	}

	var records [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, classifyReadError(path, err)
		}
		records = append(records, rec)
	}

	return buildTable(path, header, records)
}

// classifyReadError separates syntax problems in the file from I/O failures.
func classifyReadError(path string, err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		row := perr.Line - 1 // line 1 is the header
		if row < 0 {
			row = 0
		}
		return NewMalformedTableError(path, "", row, perr.Err)
	}
	return NewMissingInputError(path, err)
}
