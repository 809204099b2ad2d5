package domain

// Document is a test case file as read from disk
type Document struct {
	Path     string    // Full path to the file
	FileName string    // Just the filename
	Raw      string    // Original file content, byte for byte
	TestCase *TestCase // Parsed and validated content
}

// SuiteEntry is one resolved test case inside a suite report
type SuiteEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"` // Filename the test case was loaded from
	Content string `json:"content"`
}
