package otp

import (
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// Generator produces 6-digit one-time codes. Codes land in
// [100000, 999999], so a generated code never starts with zero.
type Generator struct {
	mu   sync.Mutex
	intn func(n int) int
}

// NewGenerator returns a Generator seeded from the clock.
func NewGenerator() *Generator {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Generator{intn: r.Intn}
}

// NewGeneratorWithSource returns a Generator driven by the given draw
// function. Tests inject a fixed sequence here.
func NewGeneratorWithSource(intn func(n int) int) *Generator {
	return &Generator{intn: intn}
}

// Generate returns a fresh 6-digit code.
func (g *Generator) Generate() string {
	g.mu.Lock()
	n := 100000 + g.intn(900000)
	g.mu.Unlock()
	return strconv.Itoa(n)
}

// Verify compares the entered code against the generated one. Exact
// string equality — no normalization, no expiry, no attempt limit.
func Verify(entered, generated string) bool {
	return generated != "" && entered == generated
}
