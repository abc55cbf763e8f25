package classify

import (
	"strings"

	"github.com/harmonic/launchkit/internal/registry"
	"github.com/harmonic/launchkit/internal/taxonomy"
)

// KeywordEntry pairs a lower-case substring with the category it implies.
type KeywordEntry struct {
	Keyword  string
	Category taxonomy.Category
}

// KeywordTable scans the lower-cased package identifier against its entries
// in order. The first entry whose keyword is a substring wins — list order
// is the only precedence. Short generic keywords must therefore be listed
// after the longer ones they would shadow ("paypay" before "pay").
type KeywordTable []KeywordEntry

// Apply implements Rule.
func (t KeywordTable) Apply(pkg string, _ registry.Metadata) (taxonomy.Category, bool) {
	lower := strings.ToLower(pkg)
	for _, e := range t {
		if strings.Contains(lower, e.Keyword) {
			return e.Category, true
		}
	}
	return 0, false
}

var defaultKeywords = KeywordTable{
	{"bank", taxonomy.Banking},
	{"ginko", taxonomy.Banking},
	{"invest", taxonomy.Invest},
	{"stock", taxonomy.Invest},
	{"trade", taxonomy.Invest},
	{"sec", taxonomy.Invest},
	{"crypto", taxonomy.Invest},
	{"coin", taxonomy.Invest},
	{"paypay", taxonomy.Payment},
	{"pay", taxonomy.Payment},
	{"wallet", taxonomy.Payment},
	{"money", taxonomy.Payment},
	{"finance", taxonomy.Money},

	{"email", taxonomy.Email},
	{"mail", taxonomy.Email},
	{"meet", taxonomy.VideoCall},
	{"zoom", taxonomy.VideoCall},
	{"call", taxonomy.VideoCall},
	{"messenger", taxonomy.Messaging},
	{"message", taxonomy.Messaging},
	{"messag", taxonomy.Messaging},
	{"chat", taxonomy.Messaging},

	{"camera", taxonomy.Photo},
	{"photo", taxonomy.Photo},
	{"gallery", taxonomy.Photo},
	{"image", taxonomy.Photo},
	{"stream", taxonomy.Streaming},
	{"video", taxonomy.Streaming},
	{"movie", taxonomy.Streaming},
	{"tv", taxonomy.Streaming},
	{"music", taxonomy.Music},
	{"audio", taxonomy.Music},
	{"radio", taxonomy.Music},
	{"podcast", taxonomy.Music},
	{"player", taxonomy.Music},
	{"instagram", taxonomy.SNS},
	{"twitter", taxonomy.SNS},
	{"social", taxonomy.SNS},
	{"thread", taxonomy.SNS},

	{"food", taxonomy.Food},
	{"eat", taxonomy.Food},
	{"gourmet", taxonomy.Food},
	{"restaurant", taxonomy.Food},
	{"delivery", taxonomy.Food},
	{"demae", taxonomy.Food},
	{"cook", taxonomy.Food},
	{"recipe", taxonomy.Food},
	{"fashion", taxonomy.Fashion},
	{"cloth", taxonomy.Fashion},
	{"wear", taxonomy.Fashion},
	{"uniqlo", taxonomy.Fashion},
	{"zozo", taxonomy.Fashion},
	{"shop", taxonomy.EC},
	{"store", taxonomy.EC},
	{"market", taxonomy.EC},
	{"amazon", taxonomy.EC},
	{"rakuten", taxonomy.EC},
	{"auction", taxonomy.EC},
	{"mercari", taxonomy.EC},

	{"office", taxonomy.Office},
	{"docs", taxonomy.Office},
	{"sheet", taxonomy.Office},
	{"slide", taxonomy.Office},
	{"word", taxonomy.Office},
	{"excel", taxonomy.Office},
	{"pdf", taxonomy.Office},
	{"note", taxonomy.Office},
	{"slack", taxonomy.Collaboration},
	{"teams", taxonomy.Collaboration},
	{"jira", taxonomy.Collaboration},
	{"task", taxonomy.Collaboration},

	{"browser", taxonomy.Browser},
	{"chrome", taxonomy.Browser},
	{"firefox", taxonomy.Browser},
	{"brave", taxonomy.Browser},
	{"webview", taxonomy.Browser},
	{"clock", taxonomy.System},
	{"calc", taxonomy.System},
	{"file", taxonomy.System},
	{"setting", taxonomy.System},
	{"keyboard", taxonomy.System},
	{"input", taxonomy.System},
	{"launcher", taxonomy.System},
	{"weather", taxonomy.Tool},
	{"translate", taxonomy.Tool},
	{"vpn", taxonomy.Tool},
	{"auth", taxonomy.Tool},

	{"game", taxonomy.Game},
	{"puzzle", taxonomy.Game},
	{"health", taxonomy.Health},
	{"fit", taxonomy.Health},
	{"meditat", taxonomy.Health},
	{"workout", taxonomy.Health},
	{"map", taxonomy.Transport},
	{"navi", taxonomy.Transport},
	{"taxi", taxonomy.Transport},
	{"transit", taxonomy.Transport},
	{"train", taxonomy.Transport},
	{"suica", taxonomy.Transport},
	{"news", taxonomy.News},
	{"learn", taxonomy.Learn},
	{"edu", taxonomy.Learn},
	{"study", taxonomy.Learn},
	{"school", taxonomy.Learn},
	{"language", taxonomy.Learn},
}
