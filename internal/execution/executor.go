package execution

import "mtc/internal/domain"

// Executor hands a validated test case to the mobile automation layer
type Executor interface {
	Execute(doc *domain.Document) error
}
