package classify

import (
	"github.com/harmonic/launchkit/internal/registry"
	"github.com/harmonic/launchkit/internal/taxonomy"
)

// OverrideTable maps exact package identifiers to categories. It sits first
// in the chain: entries are verified ground truth for applications whose
// identifier and metadata carry no reliable automatic signal.
type OverrideTable map[string]taxonomy.Category

// Apply implements Rule.
func (t OverrideTable) Apply(pkg string, _ registry.Metadata) (taxonomy.Category, bool) {
	c, ok := t[pkg]
	return c, ok
}

// knownApps covers apps the keyword table cannot classify, mostly Japanese
// services whose package names say nothing about what they do.
var knownApps = OverrideTable{
	"jp.naver.line.android": taxonomy.Messaging,

	"jp.ne.paypay.android.app": taxonomy.Payment,
	"jp.d_payment.app":         taxonomy.Payment,
	"jp.aupay.wallet":          taxonomy.Payment,
	"com.mercari":              taxonomy.EC,

	"com.zhiliaoapp.musically": taxonomy.SNS,
	"com.facebook.katana":      taxonomy.SNS,
	"com.threads.android":      taxonomy.SNS,

	"com.yahoo.android.yjtop": taxonomy.News,
	"jp.smartnews.android":    taxonomy.News,
	"jp.gocro.smartnews":      taxonomy.News,
	"com.gunosy.android":      taxonomy.News,
	"com.newspicks":           taxonomy.News,

	"com.netflix.mediaclient":            taxonomy.Streaming,
	"com.abema":                          taxonomy.Streaming,
	"jp.co.tver":                         taxonomy.Streaming,
	"jp.happyon.android":                 taxonomy.Streaming,
	"com.disney.disneyplus":              taxonomy.Streaming,
	"jp.co.u_next.android":               taxonomy.Streaming,
	"com.dazn":                           taxonomy.Streaming,
	"jp.co.dwango.niconico":              taxonomy.Streaming,
	"com.amazon.avod.thirdpartyclient":   taxonomy.Streaming,

	"com.spotify.music": taxonomy.Music,

	"com.instagram.android": taxonomy.Photo,
	"com.pinterest":         taxonomy.Photo,

	"jp.co.jorudan.nrkj":      taxonomy.Transport,
	"com.sonyericsson.suica":  taxonomy.Transport,
	"jp.co.jreast.mobilesuica": taxonomy.Transport,
	"jp.co.pasmo.android":     taxonomy.Transport,
	"com.ubercab":             taxonomy.Transport,
	"jp.co.ekitan.android":    taxonomy.Transport,

	"com.ubereats.waiter":              taxonomy.Food,
	"com.demaecan.android":             taxonomy.Food,
	"com.tabelog.android":              taxonomy.Food,
	"jp.gurunavi.android":              taxonomy.Food,
	"com.wolt.android":                 taxonomy.Food,
	"jp.co.recruit.hotpepper.gourmet":  taxonomy.Food,
	"jp.co.cookpad":                    taxonomy.Food,
	"com.mcdonalds.mobileapp.jp":       taxonomy.Food,
	"com.starbucks.jp":                 taxonomy.Food,

	"com.miHoYo.GenshinImpact":    taxonomy.Game,
	"jp.co.mixi.monsterstrike":    taxonomy.Game,
	"jp.gungho.padEN":             taxonomy.Game,
	"com.aniplex.fategrandorder":  taxonomy.Game,
	"jp.co.cygames.umamusume":     taxonomy.Game,
	"jp.co.craftegg.band":         taxonomy.Game,
	"com.supercell.clashofclans":  taxonomy.Game,
	"com.supercell.clashroyale":   taxonomy.Game,

	"jp.mufg.bk.applisp.app": taxonomy.Banking,
	"jp.co.smbc.direct":      taxonomy.Banking,
	"jp.co.netbk":            taxonomy.Banking,

	"com.notion.id":       taxonomy.Office,
	"com.evernote":        taxonomy.Office,
	"com.todoist":         taxonomy.Collaboration,
	"com.dropbox.android": taxonomy.Office,
	"com.adobe.reader":    taxonomy.Office,

	"com.android.vending":                    taxonomy.System,
	"com.google.android.apps.walletnfcrel":   taxonomy.Payment,
	"jp.co.yahoo.android.yweather":           taxonomy.Tool,

	"jp.co.fincorporation.finc":            taxonomy.Health,
	"jp.co.linkandcommunication.calendar":  taxonomy.Health,

	"com.duolingo":      taxonomy.Learn,
	"jp.studyplus":      taxonomy.Learn,
	"jp.mikan.and.mikan": taxonomy.Learn,
}
