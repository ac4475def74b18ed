// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package genesis

import (
	"github.com/bitmark-inc/karmad/chain"
)

// char traits shipped with every chain
var defaultTraits = []TraitConfiguration{
	{ID: 1, Name: "a Karma Grace Member", Emoji: "🙏"},
	{ID: 2, Name: "a Karma Spender", Emoji: "💸"},
	{ID: 3, Name: "a Karma Ambassador", Emoji: "🥇"},
	{ID: 4, Name: "Helpful", Emoji: "🤗"},
	{ID: 5, Name: "an Uber Geek", Emoji: "🤓"},
	{ID: 6, Name: "Awesome", Emoji: "🤩"},
	{ID: 7, Name: "Smart", Emoji: "🧠"},
	{ID: 8, Name: "Sexy", Emoji: "🔥"},
	{ID: 9, Name: "Patient", Emoji: "🐛"},
	{ID: 10, Name: "Grateful", Emoji: "🦒"},
	{ID: 11, Name: "Spiritual", Emoji: "🕊️"},
	{ID: 12, Name: "Funny", Emoji: "🤣"},
	{ID: 13, Name: "Caring", Emoji: "🤲"},
	{ID: 14, Name: "Loving", Emoji: "💕"},
	{ID: 15, Name: "Generous", Emoji: "🎁"},
	{ID: 16, Name: "Honest", Emoji: "🤝"},
	{ID: 17, Name: "Refined", Emoji: "🎩"},
	{ID: 18, Name: "Appreciative", Emoji: "🙏"},
	{ID: 19, Name: "Creative", Emoji: "🎨"},
	{ID: 20, Name: "Inspiring", Emoji: "💡"},
	{ID: 21, Name: "Kind", Emoji: "💝"},
	{ID: 22, Name: "a Grateful Giraffe", Emoji: "🦒"},
}

var defaultCommunities = []CommunityConfiguration{
	{
		ID:            1,
		Name:          "Grateful Giraffes",
		Description:   "A global community of of leaders that come together for powerful wellness experiences",
		Emoji:         "🦒",
		WebsiteURL:    "https://www.gratefulgiraffes.com",
		TwitterURL:    "https://twitter.com/TheGratefulDAO",
		InstaURL:      "https://www.instagram.com/gratefulgiraffes",
		DiscordURL:    "https://discord.gg/7FMTXavy8N",
		Closed:        true,
		AllowedTraits: []uint32{4, 5, 6, 7, 9, 10, 13, 15, 16, 19, 20, 21, 22},
	},
}

// development keys for the test chains
const (
	localVerifier = "4vJ9JU1bJJE96FWSJKvHsmmFADCg4gpZQff4P3bkLKi"
	localAdmin    = "8qbHbw2BbbTHBW1sbeqakYXVKRQM8Ne7pLK7m6CVfeR"
)

// Default - genesis tables of a chain
//
// the main chain ships only definitions, verifiers and funds come
// from the configuration file
func Default(chainName string) Configuration {
	c := Configuration{
		Traits:      append([]TraitConfiguration{}, defaultTraits...),
		Communities: make([]CommunityConfiguration, 0, len(defaultCommunities)),
	}
	for _, cc := range defaultCommunities {
		cc.AllowedTraits = append([]uint32{}, cc.AllowedTraits...)
		c.Communities = append(c.Communities, cc)
	}

	switch chainName {
	case chain.Testing, chain.Local:
		c.Verifiers = []string{localVerifier}
		c.Users = []UserConfiguration{
			{Account: localAdmin, UserName: "giraffe-admin", Phone: "+972549805380"},
		}
		c.Communities[0].Admins = []string{localAdmin}
		c.Balances = []BalanceConfiguration{
			{Account: localVerifier, Amount: 1_000_000_000},
			{Account: localAdmin, Amount: 1_000_000_000},
		}
	}
	return c
}
