package fitnessclass

import (
	"math"
	"strings"
	"unicode/utf8"

	"fitness-booking/internal/pkg/errs"
)

const (
	maxTextLength = 100
	MinCapacity   = 1
	MaxCapacity   = 200
	MaxBasePrice  = 10000.0
)

var (
	ErrInvalidName       = errs.Mark(errs.New("class name must be 1 to 100 characters"), errs.ErrInvalidArgument)
	ErrInvalidInstructor = errs.Mark(errs.New("instructor must be 1 to 100 characters"), errs.ErrInvalidArgument)
	ErrInvalidCapacity   = errs.Mark(errs.New("capacity must be between 1 and 200"), errs.ErrInvalidArgument)
	ErrInvalidBasePrice  = errs.Mark(errs.New("base_price must be between 0 and 10000"), errs.ErrInvalidArgument)
	ErrMissingStartTime  = errs.Mark(errs.New("starts_at is required"), errs.ErrInvalidArgument)
)

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	v, ok := boundedText(s)
	if !ok {
		return Title{}, ErrInvalidName
	}
	return Title{value: v}, nil
}

func (t Title) Value() string { return t.value }

type Instructor struct {
	value string
}

func NewInstructor(s string) (Instructor, error) {
	v, ok := boundedText(s)
	if !ok {
		return Instructor{}, ErrInvalidInstructor
	}
	return Instructor{value: v}, nil
}

func (i Instructor) Value() string { return i.value }

type Capacity struct {
	value int
}

func NewCapacity(n int) (Capacity, error) {
	if n < MinCapacity || n > MaxCapacity {
		return Capacity{}, ErrInvalidCapacity
	}
	return Capacity{value: n}, nil
}

func (c Capacity) Value() int { return c.value }

type BasePrice struct {
	value float64
}

func NewBasePrice(v float64) (BasePrice, error) {
	if math.IsNaN(v) || v < 0 || v > MaxBasePrice {
		return BasePrice{}, ErrInvalidBasePrice
	}
	return BasePrice{value: v}, nil
}

func (p BasePrice) Value() float64 { return p.value }

func boundedText(s string) (string, bool) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	return s, n > 0 && n <= maxTextLength
}
