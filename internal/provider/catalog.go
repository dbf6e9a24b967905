package provider

// CatalogEntry is one row of the static classification catalogs the
// scraping backend reports ids from.
type CatalogEntry struct {
	ProviderID uint
	Name       string
}

// Types returns the operation type catalog. It is seeded into the
// database at startup; the synchronizer maps the provider's numeric ids
// through the resulting rows.
func Types() []CatalogEntry {
	return []CatalogEntry{
		{0, "type.unknown"},
		{1, "type.transfer"},
		{2, "type.order"},
		{3, "type.check"},
		{4, "type.deposit"},
		{5, "type.payback"},
		{6, "type.withdrawal"},
		{7, "type.card"},
		{8, "type.loan_payment"},
		{9, "type.bankfee"},
		{10, "type.cash_deposit"},
		{11, "type.deferred_card"},
	}
}

// Categories returns the category catalog.
func Categories() []CatalogEntry {
	return []CatalogEntry{
		{0, "category.none"},
		{1, "category.groceries"},
		{2, "category.housing"},
		{3, "category.transport"},
		{4, "category.leisure"},
		{5, "category.health"},
		{6, "category.salary"},
		{7, "category.taxes"},
		{8, "category.insurance"},
	}
}
