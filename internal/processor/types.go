package processor

// Token is a word after edge punctuation stripping and lowercasing.
// The empty string is a valid token.
type Token string

type RankedEntry struct {
	Word  Token
	Count int
}

// Analysis holds every intermediate result of a single run.
type Analysis struct {
	Filename string
	Content  string
	Tokens   []Token
	Table    *FrequencyTable
	Ranked   []RankedEntry
}

func (a *Analysis) Total() int {
	return len(a.Tokens)
}
