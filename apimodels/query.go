package apimodels

// Query is the body posted to the verification endpoint.
type Query struct {
	// Query is the trimmed user text
	Query string `json:"query"`

	// UserID is reserved for per-user verification. It is always sent as null.
	UserID *string `json:"userid"`
}

// NewQuery builds an anonymous query for text.
func NewQuery(text string) Query {
	return Query{Query: text}
}
