package section

// The ten syllabary rows, keyed by the first katakana of each row. Hiragana
// is normalized to katakana before bucketing. Runes outside every row
// (ヴ ヵ ヶ, the prolonged sound mark) fall to the catch-all section.
var kanaRows = []struct {
	lo, hi rune
	header string
}{
	{'ァ', 'オ', "ア"},
	{'カ', 'ゴ', "カ"},
	{'サ', 'ゾ', "サ"},
	{'タ', 'ド', "タ"},
	{'ナ', 'ノ', "ナ"},
	{'ハ', 'ポ', "ハ"},
	{'マ', 'モ', "マ"},
	{'ャ', 'ヨ', "ヤ"},
	{'ラ', 'ロ', "ラ"},
	{'ヮ', 'ン', "ワ"},
}

const (
	hiraganaLo = 'ぁ' // ぁ
	hiraganaHi = 'ゖ' // ゖ
	katakanaLo = 'ァ' // ァ
	katakanaHi = 'ヺ' // ヺ

	// Hiragana and katakana blocks are parallel, 0x60 apart.
	kanaOffset = katakanaLo - hiraganaLo
)

func isKana(r rune) bool {
	return (r >= hiraganaLo && r <= hiraganaHi) || (r >= katakanaLo && r <= katakanaHi)
}

// kanaRow returns the row header for a kana rune, or ok=false for kana
// outside the ten rows.
func kanaRow(r rune) (string, bool) {
	if r >= hiraganaLo && r <= hiraganaHi {
		r += kanaOffset
	}
	for _, row := range kanaRows {
		if r >= row.lo && r <= row.hi {
			return row.header, true
		}
	}
	return "", false
}
