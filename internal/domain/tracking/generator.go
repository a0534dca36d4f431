// Package tracking genera números de guía públicos para envíos.
package tracking

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	letters     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits      = "0123456789"
	letterCount = 3
	digitCount  = 9
)

// Generator produce números de guía de la forma AAA000000000 (3 letras
// mayúsculas + 9 dígitos) desde una fuente criptográficamente segura.
// No reserva códigos: la unicidad la garantiza el índice único de la
// tabla de envíos y el caller reintenta ante colisión.
type Generator struct{}

// NewGenerator construye el generador.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate devuelve un número de guía nuevo. El espacio de códigos es
// 26^3 × 10^9 ≈ 17.6 mil millones, así que las colisiones son raras
// pero posibles; ver ConsignmentUseCase.Create.
func (g *Generator) Generate() (string, error) {
	buf := make([]byte, 0, letterCount+digitCount)
	for i := 0; i < letterCount; i++ {
		c, err := pick(letters)
		if err != nil {
			return "", err
		}
		buf = append(buf, c)
	}
	for i := 0; i < digitCount; i++ {
		c, err := pick(digits)
		if err != nil {
			return "", err
		}
		buf = append(buf, c)
	}
	return string(buf), nil
}

func pick(alphabet string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
	if err != nil {
		return 0, fmt.Errorf("tracking: fuente aleatoria: %w", err)
	}
	return alphabet[n.Int64()], nil
}
