package utils

import "github.com/google/uuid"

// UUIDGenerator produces the per-process instance identifiers that correlate
// runtime diagnostics and usage events of a single run.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new identifier. Version 7 identifiers sort by creation
// time; if the clock-based generator fails, a random identifier is returned
// instead.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
