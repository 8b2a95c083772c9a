package command

import "regexp"

// Keyword patterns. Japanese terms match as substrings, English terms on
// word boundaries so that e.g. "centered" does not read as "red".
var (
	// insertion
	labelPattern     = regexp.MustCompile(`(?i)(?:テキスト|\btext)\s*([0-9０-９]+)|([①-⑳])`)
	addVerbPattern   = regexp.MustCompile(`(?i)追加|挿入|加え|足し|\badd\b|\binsert\b`)
	contentJPPattern = regexp.MustCompile(`(?s)(?:テキスト|文言|内容|本文)\s*を(.*)$`)
	contentENPattern = regexp.MustCompile(`(?is)\b(?:set|change)\s+(?:the\s+)?(?:text|content)\s+to\s+(.*)$`)

	// bare digits only right before/after the verb, so "24pxを追加" or "120" never read as labels
	bareLabelPattern = regexp.MustCompile(`(?i)(?:^|[^0-9０-９])([0-9０-９]{1,2})\s*を?\s*(?:追加|挿入|加え|足し)|\b(?:add|insert)\s+([0-9]{1,2})(?:\s|$)`)

	// font size
	biggerPattern     = regexp.MustCompile(`(?i)大きく|大きい|拡大|\bbigger\b|\blarger\b`)
	smallerPattern    = regexp.MustCompile(`(?i)小さく|小さい|縮小|\bsmaller\b`)
	explicitPxPattern = regexp.MustCompile(`(?i)([0-9]{2,3})\s*(?:px|ピクセル)`)

	// weight
	boldPattern  = regexp.MustCompile(`(?i)太く|太字|ボールド|\bbold(?:er)?\b`)
	lightPattern = regexp.MustCompile(`(?i)細く|細字|ライト|\blight(?:er)?\b`)

	// alignment
	alignLeftPattern   = regexp.MustCompile(`(?i)左|\bleft\b`)
	alignCenterPattern = regexp.MustCompile(`(?i)中央|真ん中|センター|\bcent(?:er|re)(?:ed)?\b`)
	alignRightPattern  = regexp.MustCompile(`(?i)右|\bright\b`)

	// spacing
	spacingUpPattern   = regexp.MustCompile(`(?i)(?:余白|間隔|マージン|スペース).*?(?:広げ|広く|増や|空け)|\b(?:increase|more|add|widen)\s+(?:the\s+)?(?:spacing|margins?|space)\b`)
	spacingDownPattern = regexp.MustCompile(`(?i)(?:余白|間隔|マージン|スペース).*?(?:狭め|狭く|減ら|詰め)|\b(?:decrease|reduce|less|tighten)\s+(?:the\s+)?(?:spacing|margins?|space)\b`)
	extremePattern     = regexp.MustCompile(`(?i)すごく|かなり|とても|めちゃ|思いっきり|\ba lot\b|\bmuch\b|\bway\b|\bvery\b|\bextremely\b`)
	morePattern        = regexp.MustCompile(`(?i)もっと|もう少し|\bmore\b`)

	// anchors
	topPattern       = regexp.MustCompile(`(?i)一番上|先頭|最初|冒頭|\btop\b|\bfirst\b|\bbeginning\b`)
	bottomPattern    = regexp.MustCompile(`(?i)一番下|末尾|最後|\bbottom\b|\blast\b|\bend\b`)
	headingPattern   = regexp.MustCompile(`(?i)見出し|タイトル|\bheading\b|\btitle\b`)
	paragraphPattern = regexp.MustCompile(`(?i)段落|本文|文章|\bparagraph\b|テキストの(?:前|後|上|下)|\b(?:before|after|above|below)\s+(?:the\s+)?text\b`)
	buttonPattern    = regexp.MustCompile(`(?i)ボタン|\bbutton\b`)
	beforePattern    = regexp.MustCompile(`(?i)前|上|\bbefore\b|\babove\b`)
)

type colorKeyword struct {
	pattern *regexp.Regexp
	hex     string
}

// colorKeywords are checked in this order; the last match wins.
var colorKeywords = []colorKeyword{
	{regexp.MustCompile(`(?i)赤|\bred\b`), "#e11d48"},
	{regexp.MustCompile(`(?i)青|\bblue\b`), "#2563eb"},
	{regexp.MustCompile(`(?i)緑|\bgreen\b`), "#16a34a"},
	{regexp.MustCompile(`(?i)黒|\bblack\b`), "#111827"},
	{regexp.MustCompile(`(?i)白|\bwhite\b`), "#ffffff"},
}

const (
	fontStep    = 6
	fontMin     = 10
	fontMax     = 72
	weightBold  = 700
	weightLight = 300

	defaultMargin = 16
	marginStep    = 8
	marginMore    = 20
	marginExtreme = 32

	minLabel = 1
	maxLabel = 20
)
