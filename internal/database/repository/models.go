package repository

// Project represents a projects row with its technology and application tags.
type Project struct {
	ID           string
	Title        string
	Description  string
	Theme        string
	Icon         string
	KeyFeature   string
	SortOrder    int
	Technologies []string
	Applications []string
}

// Demo represents a demos row with its feature tags.
type Demo struct {
	ID             string
	ProjectID      string
	Number         int
	Title          string
	Description    string
	Media          string
	MediaKind      string
	Accuracy       int
	Speed          int
	Implementation int
	SortOrder      int
	Features       []string
}
