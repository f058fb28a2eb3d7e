package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Pesan 400 harus menyebut field yang bermasalah.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return "Field wajib diisi atau tidak valid: " + strings.ToLower(verrs[0].Field())
	}
	return "Data tidak valid"
}
