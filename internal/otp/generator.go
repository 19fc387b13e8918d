package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Generator создаёт коды подтверждения
type Generator interface {
	Generate() (string, error)
}

// FixedGenerator всегда возвращает один и тот же код. Только для разработки и тестов.
type FixedGenerator struct {
	Code string
}

func (g FixedGenerator) Generate() (string, error) {
	return g.Code, nil
}

// RandomGenerator создаёт случайный код из Digits цифр
type RandomGenerator struct {
	Digits int
}

func (g RandomGenerator) Generate() (string, error) {
	digits := g.Digits
	if digits <= 0 {
		digits = 6
	}
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%0*d", digits, n), nil
}

// NewGenerator возвращает фиксированный генератор, если код задан, иначе случайный шестизначный
func NewGenerator(fixedCode string) Generator {
	if fixedCode != "" {
		return FixedGenerator{Code: fixedCode}
	}
	return RandomGenerator{Digits: 6}
}
