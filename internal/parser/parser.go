package parser

import "mtc/internal/domain"

// Parser turns document text into a validated test case
type Parser interface {
	Parse(content string) (*domain.TestCase, error)
}
