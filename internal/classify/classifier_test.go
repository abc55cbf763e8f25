package classify

import (
	"testing"

	"github.com/harmonic/launchkit/internal/registry"
	"github.com/harmonic/launchkit/internal/taxonomy"
)

func TestOverrideBeatsEverything(t *testing.T) {
	c := New()
	// Package name contains "pay" and metadata says game; the override
	// table still wins.
	got := c.Classify("jp.ne.paypay.android.app", registry.Metadata{OSCategory: registry.OSCategoryGame})
	if got != taxonomy.Payment {
		t.Errorf("Classify = %s, want payment", got)
	}
}

func TestOSCategoryBeatsKeywords(t *testing.T) {
	c := New()
	// "music" keyword would say Music; the platform hint says social.
	got := c.Classify("com.example.music.box", registry.Metadata{OSCategory: registry.OSCategorySocial})
	if got != taxonomy.SNS {
		t.Errorf("Classify = %s, want sns", got)
	}
}

func TestUndefinedOSCategoryFallsThrough(t *testing.T) {
	c := New()
	got := c.Classify("com.example.music.box", registry.Metadata{})
	if got != taxonomy.Music {
		t.Errorf("Classify = %s, want music", got)
	}
}

func TestKeywordFirstListedWins(t *testing.T) {
	// "pay" listed before "paypay": the earlier, shorter keyword matches
	// first. No longest-match, no scoring.
	table := KeywordTable{
		{"pay", taxonomy.Payment},
		{"paypay", taxonomy.Money},
	}
	c := NewWithRules(table)
	if got := c.Classify("mypaypay.app", registry.Metadata{}); got != taxonomy.Payment {
		t.Errorf("Classify = %s, want payment (first-listed match)", got)
	}
}

func TestKeywordMatchesLowercasedIdentifier(t *testing.T) {
	c := New()
	if got := c.Classify("com.Example.CHROME", registry.Metadata{}); got != taxonomy.Browser {
		t.Errorf("Classify = %s, want browser", got)
	}
}

func TestFallbackIsOther(t *testing.T) {
	c := New()
	if got := c.Classify("com.example.unclassifiable", registry.Metadata{}); got != taxonomy.Other {
		t.Errorf("Classify = %s, want other", got)
	}
}

func TestDeterministic(t *testing.T) {
	c := New()
	meta := registry.Metadata{OSCategory: registry.OSCategoryMaps}
	first := c.Classify("com.example.something", meta)
	for i := 0; i < 10; i++ {
		if got := c.Classify("com.example.something", meta); got != first {
			t.Fatalf("run %d: Classify = %s, first run gave %s", i, got, first)
		}
	}
}

func TestKnownAppsSpotChecks(t *testing.T) {
	c := New()
	cases := []struct {
		pkg  string
		want taxonomy.Category
	}{
		{"jp.naver.line.android", taxonomy.Messaging},
		{"com.netflix.mediaclient", taxonomy.Streaming},
		{"jp.co.jorudan.nrkj", taxonomy.Transport},
		{"com.duolingo", taxonomy.Learn},
		{"com.android.vending", taxonomy.System},
	}
	for _, tc := range cases {
		if got := c.Classify(tc.pkg, registry.Metadata{}); got != tc.want {
			t.Errorf("Classify(%s) = %s, want %s", tc.pkg, got, tc.want)
		}
	}
}

func TestOSCategoryMapping(t *testing.T) {
	cases := []struct {
		os   registry.OSCategory
		want taxonomy.Category
	}{
		{registry.OSCategorySocial, taxonomy.SNS},
		{registry.OSCategoryProductivity, taxonomy.Office},
		{registry.OSCategoryGame, taxonomy.Game},
		{registry.OSCategoryAudio, taxonomy.Music},
		{registry.OSCategoryVideo, taxonomy.Streaming},
		{registry.OSCategoryImage, taxonomy.Photo},
		{registry.OSCategoryNews, taxonomy.News},
		{registry.OSCategoryMaps, taxonomy.Transport},
	}
	var rule OSCategoryRule
	for _, tc := range cases {
		got, ok := rule.Apply("com.example.opaque", registry.Metadata{OSCategory: tc.os})
		if !ok || got != tc.want {
			t.Errorf("OSCategoryRule(%s) = %s, %v; want %s", tc.os, got, ok, tc.want)
		}
	}
	if _, ok := rule.Apply("com.example.opaque", registry.Metadata{OSCategory: "holography"}); ok {
		t.Error("unmapped OS category should fall through")
	}
}
