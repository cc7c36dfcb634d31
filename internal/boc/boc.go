// Package boc bootstraps the Birthday On-Chain platform: it deploys the BOC
// token and every facet, then performs the single cut that routes all
// selectors and seeds storage defaults in one transaction.
package boc

import (
	"math/big"
	"time"

	"github.com/birthday-onchain/boc-api/internal/chain"
	"github.com/birthday-onchain/boc-api/internal/diamond"
	"github.com/birthday-onchain/boc-api/internal/facet"
	"github.com/birthday-onchain/boc-api/internal/model"
	"github.com/birthday-onchain/boc-api/internal/state"
	"github.com/birthday-onchain/boc-api/internal/token"
)

// DefaultFeePercent matches the value the deployment seeds the platform
// with. It is stored but not applied to transfers.
const DefaultFeePercent uint8 = 3

// defaultSupply is one million whole tokens at 18 decimals.
func defaultSupply() *big.Int {
	supply := big.NewInt(1_000_000)
	return supply.Mul(supply, new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
}

// Config controls a deployment. Zero values fall back to sane defaults.
type Config struct {
	Deployer      chain.Address
	FeePercent    uint8
	InitialSupply *big.Int
	Clock         func() time.Time
}

// Chain is a fully bootstrapped platform instance: the proxy, the token
// ledger, the shared storage, and the deployed facets.
type Chain struct {
	Diamond *diamond.Diamond
	Token   *token.Token
	State   *state.State

	Users      *facet.Users
	Birthdays  *facet.Birthdays
	Activities *facet.Activities
	Subscribe  *facet.Subscribe
	Platform   *facet.Platform
	Access     *facet.Access
}

// Deploy stands the platform up: token first, then the proxy, then every
// facet, then one cut adding all selectors with the init call attached. The
// token's initial supply goes to the deployer.
func Deploy(cfg Config) (*Chain, error) {
	if cfg.Deployer == "" {
		cfg.Deployer = chain.NewAddress()
	}
	if cfg.FeePercent == 0 {
		cfg.FeePercent = DefaultFeePercent
	}
	if cfg.InitialSupply == nil {
		cfg.InitialSupply = defaultSupply()
	}

	st := state.New()
	tok := token.New(cfg.Deployer, cfg.InitialSupply)

	var opts []diamond.Option
	if cfg.Clock != nil {
		opts = append(opts, diamond.WithClock(cfg.Clock))
	}
	d := diamond.New(cfg.Deployer, st, tok, opts...)

	c := &Chain{
		Diamond:    d,
		Token:      tok,
		State:      st,
		Users:      facet.NewUsers(),
		Birthdays:  facet.NewBirthdays(),
		Activities: facet.NewActivities(),
		Subscribe:  facet.NewSubscribe(),
		Platform:   facet.NewPlatform(),
		Access:     facet.NewAccess(),
	}

	initFacet := facet.NewInit()
	d.Deploy(c.Users)
	d.Deploy(c.Birthdays)
	d.Deploy(c.Activities)
	d.Deploy(c.Subscribe)
	d.Deploy(c.Platform)
	d.Deploy(c.Access)
	d.Deploy(initFacet)

	cuts := make([]diamond.FacetCut, 0, 6)
	for _, f := range []diamond.Facet{c.Users, c.Birthdays, c.Activities, c.Subscribe, c.Platform, c.Access} {
		cuts = append(cuts, diamond.FacetCut{
			Target:    f.Address(),
			Action:    diamond.Add,
			Selectors: diamond.SelectorsOf(f),
		})
	}

	init := &diamond.InitCall{
		Target:   initFacet.Address(),
		Selector: facet.SelInit,
		Arg: model.InitArgs{
			Owner:      cfg.Deployer,
			FeeToken:   tok.Address(),
			FeePercent: cfg.FeePercent,
		},
	}
	if err := d.Cut(cfg.Deployer, cuts, init); err != nil {
		return nil, err
	}
	return c, nil
}
