package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// base58 alphabet, no 0/O/I/l
const addressAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const (
	minAddressLen = 32
	maxAddressLen = 44
)

var addressChars = func() map[rune]bool {
	m := make(map[rune]bool, len(addressAlphabet))
	for _, c := range addressAlphabet {
		m[c] = true
	}
	return m
}()

// IsValidAddress returns is an account address valid or not
func IsValidAddress(address string) bool {
	if len(address) < minAddressLen || len(address) > maxAddressLen {
		return false
	}
	for _, c := range address {
		if !addressChars[c] {
			return false
		}
	}
	return true
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
