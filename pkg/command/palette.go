package command

// Preset is a canned command offered as a one-click shortcut. Running a
// preset is the same as submitting its Command as free text.
type Preset struct {
	Key     string
	Label   string
	Command string
}

var palette = []Preset{
	{"bigger", "大きく", "文字を大きく"},
	{"smaller", "小さく", "文字を小さく"},
	{"bold", "太字", "太字にして"},
	{"center", "中央揃え", "中央揃え"},
	{"red", "赤", "赤にして"},
	{"blue", "青", "青にして"},
	{"spacing-up", "余白を広げる", "余白を広げて"},
	{"spacing-down", "余白を狭める", "余白を狭めて"},
	{"button-left", "ボタン左寄せ", "ボタンを左寄せ"},
	{"button-center", "ボタン中央", "ボタンを中央に"},
	{"button-right", "ボタン右寄せ", "ボタンを右寄せ"},
	{"insert-below-heading", "見出しの下にテキスト①", "見出しの下にテキスト①を追加"},
	{"insert-before-button", "ボタンの前にテキスト②", "ボタンの前にテキスト②を追加"},
	{"insert-bottom", "一番下にテキスト③", "一番下にテキスト③を追加"},
}

// Palette returns the canned commands in display order.
func Palette() []Preset {
	out := make([]Preset, len(palette))
	copy(out, palette)
	return out
}
