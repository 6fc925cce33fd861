// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/rpgsack/backpack"
	"github.com/katalvlaran/rpgsack/catalog"
	"github.com/katalvlaran/rpgsack/item"
	"github.com/katalvlaran/rpgsack/loot"
	"github.com/katalvlaran/rpgsack/persona"
)

// runSolve packs the best backpack from one copy of every catalog item.
func runSolve(_ context.Context, a *app, _ []string) error {
	res, err := a.rec.Reconcile(nil, a.cat.Items(), a.persona, a.cfg.Capacity)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Persona: %s\n", a.persona)
	printLoad(a.out, res.Weight(), a.cfg.Capacity, res.TotalScore)
	printItems(a.out, "Chosen items", res.Kept)
	return nil
}

// runLoot loads the configured slot (or starts one from the starter kit),
// draws loot, reconciles and saves the kept items back.
func runLoot(ctx context.Context, a *app, _ []string) error {
	store, err := backpack.Open(a.cfg.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	src := loot.NewCatalogSource(a.cat.Items(), loot.NewRand(a.cfg.Seed))

	var s *loot.Session
	snap, err := store.Load(ctx, a.cfg.Slot)
	switch {
	case errors.Is(err, backpack.ErrSlotNotFound):
		a.log.Info("starting new backpack", "slot", a.cfg.Slot)
		s, err = loot.NewSession(a.rec, src, a.persona, a.cfg.Capacity, catalog.Starter(a.cat))
	case err != nil:
		return err
	default:
		if snap.Persona != a.persona {
			a.log.Info("persona changed", "slot", a.cfg.Slot, "from", snap.Persona.String(), "to", a.persona.String())
		}
		s, err = loot.Resume(a.rec, src, a.persona, a.cfg.Capacity, snap.Items)
	}
	if err != nil {
		return err
	}

	res, err := s.Step(a.cfg.Quantity)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Slot: %s  Persona: %s\n", a.cfg.Slot, a.persona)
	printItems(a.out, "Found", res.Loot)
	printItems(a.out, "Kept", res.Kept)
	printItems(a.out, "Discarded", res.Discarded)
	printLoad(a.out, res.Weight(), a.cfg.Capacity, res.TotalScore)

	return store.Save(ctx, backpack.Snapshot{
		Slot:     a.cfg.Slot,
		Persona:  a.persona,
		Capacity: a.cfg.Capacity,
		Items:    s.Backpack(),
	})
}

// runCatalog lists every item, or looks up the named ones.
func runCatalog(_ context.Context, a *app, names []string) error {
	if len(names) == 0 {
		for _, it := range a.cat.Items() {
			printRaw(a.out, it)
		}
		return nil
	}

	found := make([]item.ScoredItem, 0, len(names))
	for _, n := range names {
		it, err := a.cat.Lookup(n)
		if err != nil {
			return err
		}
		sc, err := persona.ScoreItem(it, a.persona)
		if err != nil {
			return err
		}
		found = append(found, sc)
	}
	printItems(a.out, "Items for "+a.persona.String(), found)
	return nil
}

// runSlots lists saved backpacks.
func runSlots(ctx context.Context, a *app, _ []string) error {
	store, err := backpack.Open(a.cfg.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	slots, err := store.Slots(ctx)
	if err != nil {
		return err
	}
	for _, slot := range slots {
		snap, err := store.Load(ctx, slot)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s\t%s\t%d/%d\n", slot, snap.Persona, item.TotalWeight(snap.Items), snap.Capacity)
	}
	return nil
}
