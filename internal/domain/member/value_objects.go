package member

import (
	"strings"
	"unicode/utf8"

	"fitness-booking/internal/pkg/errs"
)

const maxNameLength = 100

var ErrInvalidName = errs.Mark(errs.New("member name must be 1 to 100 characters"), errs.ErrInvalidArgument)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if n := utf8.RuneCountInString(s); n == 0 || n > maxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}
