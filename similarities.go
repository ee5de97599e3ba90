package vlazba

// similarities maps each consonant to the set of consonants a listener
// could plausibly confuse it with, used by the similar-gismu matcher's
// structural-match rule (spec.md §4.G).
var similarities = map[byte]string{
	'b': "pv",
	'c': "js",
	'd': "t",
	'f': "pv",
	'g': "kx",
	'j': "cz",
	'k': "gx",
	'l': "r",
	'm': "n",
	'n': "m",
	'p': "bf",
	'r': "l",
	's': "cz",
	't': "d",
	'v': "bf",
	'x': "gk",
	'z': "js",
}
