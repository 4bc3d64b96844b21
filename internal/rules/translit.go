package rules

import (
	"context"
	"strings"

	"kvizgrad/internal/table"
)

// serbianCyrillicToLatin is the fixed transliteration table. Uppercase
// digraph letters carry their own cased expansions (Lj, Nj, Dž) instead of a
// generic upper transform.
var serbianCyrillicToLatin = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'ђ': "đ", 'е': "e", 'ж': "ž", 'з': "z", 'и': "i",
	'ј': "j", 'к': "k", 'л': "l", 'љ': "lj", 'м': "m",
	'н': "n", 'њ': "nj", 'о': "o", 'п': "p", 'р': "r",
	'с': "s", 'т': "t", 'ћ': "ć", 'у': "u", 'ф': "f",
	'х': "h", 'ц': "c", 'ч': "č", 'џ': "dž", 'ш': "š",
	'А': "A", 'Б': "B", 'В': "V", 'Г': "G", 'Д': "D",
	'Ђ': "Đ", 'Е': "E", 'Ж': "Ž", 'З': "Z", 'И': "I",
	'Ј': "J", 'К': "K", 'Л': "L", 'Љ': "Lj", 'М': "M",
	'Н': "N", 'Њ': "Nj", 'О': "O", 'П': "P", 'Р': "R",
	'С': "S", 'Т': "T", 'Ћ': "Ć", 'У': "U", 'Ф': "F",
	'Х': "H", 'Ц': "C", 'Ч': "Č", 'Џ': "Dž", 'Ш': "Š",
}

// Transliterate converts Serbian Cyrillic text to Latin, rune by rune. Runes
// outside the table pass through, so Latin input is a fixpoint.
type Transliterate struct{}

func (Transliterate) Name() string { return "transliterate" }

func (Transliterate) Transform(ctx context.Context, t *table.Table) (*table.Table, error) {
	return applyCells(t, transliterate)
}

func transliterate(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if lat, ok := serbianCyrillicToLatin[r]; ok {
			b.WriteString(lat)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
