package teams

// CatalogEntry maps a team identifier to its display name.
type CatalogEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
