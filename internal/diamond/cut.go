package diamond

import (
	"github.com/birthday-onchain/boc-api/internal/chain"
)

// CutAction selects what a cut entry does to its selectors.
type CutAction uint8

const (
	Add CutAction = iota
	Replace
	Remove
)

// FacetCut is one entry of a diamondCut: route these selectors to Target.
// Remove entries must use the zero address as Target.
type FacetCut struct {
	Target    chain.Address    `json:"target"`
	Action    CutAction        `json:"action"`
	Selectors []chain.Selector `json:"selectors"`
}

// InitCall names the one-time setup invoked atomically with a cut, used to
// seed shared storage defaults so there is never a window where facets are
// live over uninitialized state.
type InitCall struct {
	Target   chain.Address
	Selector chain.Selector
	Arg      any
}

// Cut applies selector mapping changes and, if init is non-nil, runs the
// init call in the same transaction. Owner only. Either every cut plus the
// init lands, or nothing does.
func (d *Diamond) Cut(caller chain.Address, cuts []FacetCut, init *InitCall) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if caller != d.ownerAddr() {
		return ErrOwnerOnly
	}

	// Build the new routing table on a copy; adopt it only after init
	// succeeds.
	next := make(map[chain.Selector]chain.Address, len(d.routes))
	for sel, facetAddr := range d.routes {
		next[sel] = facetAddr
	}

	for _, cut := range cuts {
		if err := d.applyCut(next, cut); err != nil {
			return err
		}
	}

	if init != nil {
		facet, ok := d.facets[init.Target]
		if !ok {
			return ErrUnknownFacet
		}
		handler, ok := facet.Handlers()[init.Selector]
		if !ok {
			return selErr(ErrSelectorMissing, init.Selector)
		}
		if _, err := d.transact(caller, nil, handler, init.Arg); err != nil {
			return err
		}
	}

	d.routes = next
	return nil
}

func (d *Diamond) applyCut(routes map[chain.Selector]chain.Address, cut FacetCut) error {
	if len(cut.Selectors) == 0 {
		return ErrNoSelectors
	}

	switch cut.Action {
	case Add:
		if _, ok := d.facets[cut.Target]; !ok {
			return ErrUnknownFacet
		}
		for _, sel := range cut.Selectors {
			if _, mapped := routes[sel]; mapped {
				return selErr(ErrSelectorExists, sel)
			}
			routes[sel] = cut.Target
		}
	case Replace:
		if _, ok := d.facets[cut.Target]; !ok {
			return ErrUnknownFacet
		}
		for _, sel := range cut.Selectors {
			if _, mapped := routes[sel]; !mapped {
				return selErr(ErrSelectorMissing, sel)
			}
			routes[sel] = cut.Target
		}
	case Remove:
		if cut.Target != chain.ZeroAddress {
			return ErrRemoveTarget
		}
		for _, sel := range cut.Selectors {
			if _, mapped := routes[sel]; !mapped {
				return selErr(ErrSelectorMissing, sel)
			}
			delete(routes, sel)
		}
	}
	return nil
}
