package movies

// Movie is a catalog entry.
type Movie struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Director string   `json:"director"`
	Year     int      `json:"year"`
	Rating   float64  `json:"rating"`
	Genres   []string `json:"genres,omitempty"`
}

// Filter carries optional search criteria for the catalog. A nil field
// means the criterion was not supplied.
type Filter struct {
	DirectorEq  *string  `json:"director_eq,omitempty"`
	RatingGte   *float64 `json:"rating_gte,omitempty"`
	ReleaseYear *int     `json:"release_year,omitempty"`
	TitleLike   *string  `json:"title_like,omitempty"`
}
