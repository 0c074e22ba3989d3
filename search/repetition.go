package search

// IsRepetition reports whether key — the position about to be searched,
// not yet pushed onto path — has already occurred at least twice across
// history and path combined. Twofold (not FIDE threefold) is used
// intentionally as a cheap proxy that short-circuits cycling lines.
func IsRepetition(history GameHistory, path SearchPath, key uint64) bool {
	return countOccurrences(history, path, key) >= 2
}
