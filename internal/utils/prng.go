// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — обёртка над генератором случайных чисел, чтобы вся игра
// брала случайность из одного (при желании детерминированного) источника.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создаёт сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn возвращает случайное целое в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Between возвращает случайное целое в диапазоне [min, max] включительно.
// Границы можно передавать в любом порядке.
func (s *PRNGService) Between(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + s.rng.Intn(max-min+1)
}

// BetweenSpeed — Between для дробной скорости: границы усекаются к нулю,
// результат всегда целое значение в [-speed, speed].
func (s *PRNGService) BetweenSpeed(speed float64) float64 {
	limit := int(speed)
	return float64(s.Between(-limit, limit))
}
