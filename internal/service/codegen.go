package service

import (
	"math/rand"
	"strings"
	"time"
)

const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// codeSuffixLength keeps collisions negligible across a run of a few hundred
// codes (36^8 combinations). Uniqueness against existing store codes is not
// checked.
const codeSuffixLength = 8

// RandomSource supplies randomness for code generation. math/rand satisfies
// it; tests inject a deterministic source.
type RandomSource interface {
	Intn(n int) int
}

// CodeGenerator produces discount code strings of the form
// "<PREFIX>-<SUFFIX>" with an uppercase base-36 suffix.
type CodeGenerator struct {
	prefix string
	rand   RandomSource
}

// NewCodeGenerator creates a code generator. A nil src falls back to a
// time-seeded math/rand source.
func NewCodeGenerator(prefix string, src RandomSource) *CodeGenerator {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &CodeGenerator{
		prefix: prefix,
		rand:   src,
	}
}

// Generate returns a new pseudo-random discount code
func (g *CodeGenerator) Generate() string {
	var sb strings.Builder
	sb.Grow(len(g.prefix) + 1 + codeSuffixLength)
	sb.WriteString(g.prefix)
	sb.WriteByte('-')
	for i := 0; i < codeSuffixLength; i++ {
		sb.WriteByte(codeAlphabet[g.rand.Intn(len(codeAlphabet))])
	}
	return sb.String()
}
