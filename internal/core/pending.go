package core

// pending.go computes the "pending setup" advisories: catalog-wide gaps
// that are not row errors but incomplete configuration a user should
// finish. Pure function of the two full catalogs, no I/O; an empty result
// means nothing is pending.
//
// The rule list is business configuration, not fixed algorithmic logic;
// rules are added and re-weighted as the operations team asks for them.

import "fmt"

// AnalyzePendingSetup cross-references the full item and BoM catalogs and
// returns advisories in a deterministic order: findings follow item order
// for item-scoped rules and BoM order for reference checks.
func AnalyzePendingSetup(items []Item, boms []BoMEntry) []Finding {
	findings := []Finding{}

	itemByID := make(map[string]Item, len(items))
	usedAsComponent := make(map[string]bool, len(boms))
	usedAsParent := make(map[string]bool, len(boms))
	for _, it := range items {
		if !it.IsDeleted {
			itemByID[it.ID] = it
		}
	}
	for _, b := range boms {
		usedAsComponent[b.ComponentID] = true
		usedAsParent[b.ItemID] = true
	}

	for _, it := range items {
		if it.IsDeleted {
			continue
		}
		switch it.Type {
		case TypeComponent:
			if !usedAsComponent[it.ID] {
				findings = append(findings, Finding{
					Title:       fmt.Sprintf("Component '%s' is not used in any BoM", it.InternalItemName),
					Description: fmt.Sprintf("Item %s is a component but no Bill of Materials references it. Add it to a BoM or review whether it is still needed.", it.ID),
					Severity:    SeverityHigh,
				})
			}
		case TypeSell:
			if !usedAsParent[it.ID] {
				findings = append(findings, Finding{
					Title:       fmt.Sprintf("Sell item '%s' has no BoM", it.InternalItemName),
					Description: fmt.Sprintf("Item %s is sellable but has no Bill of Materials, so it cannot be manufactured.", it.ID),
					Severity:    SeverityLow,
				})
			}
		}

		if it.Type != TypeComponent && (it.MinBuffer == nil || it.MaxBuffer == nil) {
			findings = append(findings, Finding{
				Title:       fmt.Sprintf("Item '%s' is missing buffer configuration", it.InternalItemName),
				Description: fmt.Sprintf("Item %s requires min and max buffers for its type (%s).", it.ID, it.Type),
				Severity:    SeverityLow,
			})
		}
	}

	for _, b := range boms {
		_, itemOK := itemByID[b.ItemID]
		_, componentOK := itemByID[b.ComponentID]
		if itemOK && componentOK {
			continue
		}
		missing := b.ItemID
		if itemOK {
			missing = b.ComponentID
		}
		findings = append(findings, Finding{
			Title:       fmt.Sprintf("BoM %s references a missing item", b.ID),
			Description: fmt.Sprintf("Item %s no longer exists in the catalog. Delete the BoM entry or restore the item.", missing),
			Severity:    SeverityHigh,
		})
	}

	return findings
}
