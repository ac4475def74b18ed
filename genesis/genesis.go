// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package genesis - the initial state of a chain
//
// the tables are given in configuration form (plain strings and
// numbers) and converted to typed values before they are applied
package genesis

import (
	"github.com/bitmark-inc/karmad/account"
	"github.com/bitmark-inc/karmad/community"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/identity"
)

// TraitConfiguration - one char trait
type TraitConfiguration struct {
	ID    uint32 `gluamapper:"id" json:"id"`
	Name  string `gluamapper:"name" json:"name"`
	Emoji string `gluamapper:"emoji" json:"emoji"`
}

// CommunityConfiguration - one community with its first admins
type CommunityConfiguration struct {
	ID            uint32   `gluamapper:"id" json:"id"`
	Name          string   `gluamapper:"name" json:"name"`
	Description   string   `gluamapper:"description" json:"description"`
	Emoji         string   `gluamapper:"emoji" json:"emoji"`
	WebsiteURL    string   `gluamapper:"website_url" json:"website_url"`
	TwitterURL    string   `gluamapper:"twitter_url" json:"twitter_url"`
	InstaURL      string   `gluamapper:"insta_url" json:"insta_url"`
	FaceURL       string   `gluamapper:"face_url" json:"face_url"`
	DiscordURL    string   `gluamapper:"discord_url" json:"discord_url"`
	Closed        bool     `gluamapper:"closed" json:"closed"`
	AllowedTraits []uint32 `gluamapper:"allowed_traits" json:"allowed_traits"`
	Admins        []string `gluamapper:"admins" json:"admins"`
}

// UserConfiguration - a user registered at genesis
type UserConfiguration struct {
	Account  string `gluamapper:"account" json:"account"`
	UserName string `gluamapper:"user_name" json:"user_name"`
	Phone    string `gluamapper:"phone" json:"phone"`
}

// BalanceConfiguration - initial funds
type BalanceConfiguration struct {
	Account string `gluamapper:"account" json:"account"`
	Amount  uint64 `gluamapper:"amount" json:"amount"`
}

// Configuration - genesis tables as read from the configuration file
type Configuration struct {
	Traits      []TraitConfiguration     `gluamapper:"traits" json:"traits"`
	Communities []CommunityConfiguration `gluamapper:"communities" json:"communities"`
	Users       []UserConfiguration      `gluamapper:"users" json:"users"`
	Verifiers   []string                 `gluamapper:"verifiers" json:"verifiers"`
	Balances    []BalanceConfiguration   `gluamapper:"balances" json:"balances"`
}

// Community - a community and its admins
type Community struct {
	community.Community
	Admins []account.Key
}

// Balance - initial funds of an account
type Balance struct {
	Account account.Key
	Amount  uint64
}

// Genesis - typed genesis state
type Genesis struct {
	Traits      []community.Trait
	Communities []Community
	Users       []identity.Identity
	Verifiers   []account.Key
	Balances    []Balance
}

// Genesis - convert and validate the configuration tables
func (c *Configuration) Genesis() (*Genesis, error) {
	g := &Genesis{}

	for _, t := range c.Traits {
		if community.NoTrait == community.TraitID(t.ID) || "" == t.Name {
			return nil, fault.MissingParameters
		}
		g.Traits = append(g.Traits, community.Trait{
			ID:    community.TraitID(t.ID),
			Name:  t.Name,
			Emoji: t.Emoji,
		})
	}

	for _, cc := range c.Communities {
		allowed := make([]community.TraitID, 0, len(cc.AllowedTraits))
		for _, t := range cc.AllowedTraits {
			allowed = append(allowed, community.TraitID(t))
		}
		admins, err := keys(cc.Admins)
		if nil != err {
			return nil, err
		}
		g.Communities = append(g.Communities, Community{
			Community: community.Community{
				ID:            community.ID(cc.ID),
				Name:          cc.Name,
				Description:   cc.Description,
				Emoji:         cc.Emoji,
				WebsiteURL:    cc.WebsiteURL,
				TwitterURL:    cc.TwitterURL,
				InstaURL:      cc.InstaURL,
				FaceURL:       cc.FaceURL,
				DiscordURL:    cc.DiscordURL,
				Closed:        cc.Closed,
				AllowedTraits: allowed,
			},
			Admins: admins,
		})
	}

	for _, u := range c.Users {
		key, err := account.KeyFromBase58(u.Account)
		if nil != err {
			return nil, err
		}
		phone, err := identity.HashPhoneNumber(u.Phone)
		if nil != err {
			return nil, err
		}
		g.Users = append(g.Users, identity.Identity{
			Account:   key,
			UserName:  u.UserName,
			PhoneHash: phone,
		})
	}

	verifiers, err := keys(c.Verifiers)
	if nil != err {
		return nil, err
	}
	g.Verifiers = verifiers

	for _, b := range c.Balances {
		key, err := account.KeyFromBase58(b.Account)
		if nil != err {
			return nil, err
		}
		g.Balances = append(g.Balances, Balance{
			Account: key,
			Amount:  b.Amount,
		})
	}

	return g, nil
}

func keys(list []string) ([]account.Key, error) {
	result := make([]account.Key, 0, len(list))
	for _, s := range list {
		key, err := account.KeyFromBase58(s)
		if nil != err {
			return nil, err
		}
		result = append(result, key)
	}
	return result, nil
}
