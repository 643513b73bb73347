package estimate_price

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных калькулятора
	ErrInvalidInput = errors.New("estimate_price: invalid input data")

	// ErrAreaOutOfRange возвращается, когда площадь вне допустимого диапазона
	ErrAreaOutOfRange = errors.New("estimate_price: area is out of range")
)
