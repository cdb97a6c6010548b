package bending

// IsVowel reports whether r is a vowel letter, accented variants included.
func IsVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'y', 'o', 'u', 'ø',
		'á', 'æ', 'í', 'ý', 'ó', 'ú':
		return true
	default:
		return false
	}
}

// SkerpingCluster returns the consonant cluster a skerping root inserts
// after its stem-final vowel. The second result is false for vowels that
// never trigger skerping.
func SkerpingCluster(vowel rune) (string, bool) {
	switch vowel {
	case 'ó', 'ú':
		return "gv", true
	case 'í', 'ý', 'y', 'i':
		return "ggj", true
	default:
		return "", false
	}
}

// IsPlaceholder reports whether r stands in for the stem in a templated
// ending such as "-ar" or "~s".
func IsPlaceholder(r rune) bool {
	return r == '-' || r == '~'
}
