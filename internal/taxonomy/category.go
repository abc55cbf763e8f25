// Package taxonomy defines the fixed application category set and its
// two-level hierarchy. The set is closed at compile time: every query is a
// total function and the parent table is built once at init.
package taxonomy

// Category identifies one application category. The zero value is
// Communication; Other is the classifier fallback.
type Category int

const (
	// Top-level categories, in navigation order.
	Communication Category = iota
	Money
	Work
	Transport
	Shopping
	News
	Media
	Game
	Health
	Tool
	Learn
	Other

	// Sub-categories, grouped by parent.
	Messaging
	VideoCall
	Email
	Payment
	Banking
	Invest
	Food
	Fashion
	EC
	Streaming
	Music
	Photo
	SNS
	Office
	Collaboration
	Browser
	System

	categoryCount
)

type categoryInfo struct {
	name  string
	label string
	glyph string
}

var infos = [categoryCount]categoryInfo{
	Communication: {"communication", "連絡", "💬"},
	Money:         {"money", "お金", "💰"},
	Work:          {"work", "仕事", "💼"},
	Transport:     {"transport", "移動", "🚃"},
	Shopping:      {"shopping", "買い物", "🛒"},
	News:          {"news", "ニュース", "📰"},
	Media:         {"media", "写真・動画", "📷"},
	Game:          {"game", "ゲーム", "🎮"},
	Health:        {"health", "健康", "❤️"},
	Tool:          {"tool", "便利ツール", "🔧"},
	Learn:         {"learn", "学び", "📚"},
	Other:         {"other", "その他", "📱"},

	Messaging:     {"messaging", "メッセージ", "💬"},
	VideoCall:     {"video_call", "ビデオ通話", "📹"},
	Email:         {"email", "メール", "📧"},
	Payment:       {"payment", "決済", "💳"},
	Banking:       {"banking", "銀行", "🏦"},
	Invest:        {"invest", "投資・資産", "📈"},
	Food:          {"food", "フード", "🍔"},
	Fashion:       {"fashion", "ファッション", "👗"},
	EC:            {"ec", "ネット通販", "📦"},
	Streaming:     {"streaming", "動画配信", "🎬"},
	Music:         {"music", "音楽", "🎵"},
	Photo:         {"photo", "写真", "📸"},
	SNS:           {"sns", "SNS", "📱"},
	Office:        {"office", "オフィス", "📝"},
	Collaboration: {"collaboration", "コラボ", "👥"},
	Browser:       {"browser", "ブラウザ", "🌐"},
	System:        {"system", "システム", "⚙️"},
}

// parents maps each sub-category to its single top-level owner. A category
// never appears as both key and value; the hierarchy is depth two.
var parents = map[Category]Category{
	Messaging: Communication,
	VideoCall: Communication,
	Email:     Communication,

	Payment: Money,
	Banking: Money,
	Invest:  Money,

	Food:    Shopping,
	Fashion: Shopping,
	EC:      Shopping,

	Streaming: Media,
	Music:     Media,
	Photo:     Media,
	SNS:       Media,

	Office:        Work,
	Collaboration: Work,

	Browser: Tool,
	System:  Tool,
}

var byName = func() map[string]Category {
	m := make(map[string]Category, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		m[infos[c].name] = c
	}
	return m
}()

// String returns the stable name used for persistence.
func (c Category) String() string {
	if !c.Valid() {
		return "other"
	}
	return infos[c].name
}

// Label returns the display label.
func (c Category) Label() string {
	if !c.Valid() {
		return infos[Other].label
	}
	return infos[c].label
}

// Glyph returns the display glyph.
func (c Category) Glyph() string {
	if !c.Valid() {
		return infos[Other].glyph
	}
	return infos[c].glyph
}

// Valid reports whether c is a member of the category set.
func (c Category) Valid() bool {
	return c >= 0 && c < categoryCount
}

// Parse resolves a persisted name back to its Category.
func Parse(name string) (Category, bool) {
	c, ok := byName[name]
	return c, ok
}

// ParentOf returns the top-level owner of a sub-category, or ok=false when
// c is already top-level.
func ParentOf(c Category) (Category, bool) {
	p, ok := parents[c]
	return p, ok
}

// IsTopLevel reports whether c has no parent.
func IsTopLevel(c Category) bool {
	_, sub := parents[c]
	return !sub
}

// TopLevelOf returns c itself for top-level categories, else its parent.
func TopLevelOf(c Category) Category {
	if p, ok := parents[c]; ok {
		return p
	}
	return c
}

// TopLevel returns every top-level category in declaration order.
func TopLevel() []Category {
	out := make([]Category, 0, 12)
	for c := Category(0); c < categoryCount; c++ {
		if IsTopLevel(c) {
			out = append(out, c)
		}
	}
	return out
}

// All returns every category in declaration order.
func All() []Category {
	out := make([]Category, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		out[c] = c
	}
	return out
}
