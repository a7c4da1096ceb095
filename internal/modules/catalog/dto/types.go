package dto

type ProgramOutput struct {
	ID            int64
	Name          string
	Type          string
	CatalogYearID int64
}

type CourseOutput struct {
	ID      int64
	Subject string
	CataNum string
	Code    string
	Title   string
	Credits float64
}

type AdvisorOutput struct {
	ID    int64
	Name  string
	Email string
}

type SearchInput struct {
	Query   string
	Subject string
	Level   string
}

// MajorOutput is empty (ID 0) when no major is chosen.
type MajorOutput struct {
	ID   int64
	Name string
	Type string
}

type SaveMajorInput struct {
	StudentID int64
	ProgramID int64
}
