package markup

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark-emoji/definition"
)

var shortcodePattern = regexp.MustCompile(`:([a-zA-Z0-9_+\-]+):`)

// emojiAliases maps extra short names onto GitHub short names.
var emojiAliases = map[string]string{
	"thumbs_up":   "+1",
	"thumbs_down": "-1",
	"check":       "white_check_mark",
	"check_mark":  "heavy_check_mark",
	"cross_mark":  "x",
	"sun":         "sunny",
	"thunder":     "zap",
	"tree":        "deciduous_tree",
	"flower":      "cherry_blossom",
	"leaf":        "leaves",
	"terminal":    "computer",
	"code":        "computer",
	"database":    "file_cabinet",
	"api":         "electric_plug",
	"game":        "video_game",
	"dice":        "game_die",
	"atom":        "atom_symbol",
}

// Emoji returns the emoji for a short name such as "rocket" or "thumbs_up".
func Emoji(name string) (string, bool) {
	key := strings.ToLower(name)
	if alias, ok := emojiAliases[key]; ok {
		key = alias
	}
	e, ok := definition.Github().Get(key)
	if !ok || !e.IsUnicode() {
		return "", false
	}
	return string(e.Unicode), true
}

// HasEmoji reports whether name is a known short name.
func HasEmoji(name string) bool {
	_, ok := Emoji(name)
	return ok
}

// ReplaceEmoji substitutes ":name:" codes with their emoji. Unknown codes are
// left as written.
func ReplaceEmoji(text string) string {
	if strings.IndexByte(text, ':') < 0 {
		return text
	}
	return shortcodePattern.ReplaceAllStringFunc(text, func(code string) string {
		if e, ok := Emoji(code[1 : len(code)-1]); ok {
			return e
		}
		return code
	})
}
