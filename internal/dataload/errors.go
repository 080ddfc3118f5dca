package dataload

import "errors"

var (
	// ErrDataRead is returned when the data file cannot be read.
	ErrDataRead = errors.New("data: read failed")

	// ErrDataParse is returned when the data document is not valid JSON.
	ErrDataParse = errors.New("data: parse failed")
)
