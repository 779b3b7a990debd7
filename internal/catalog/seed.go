package catalog

// DefaultMenu is the dish card written on first run when no menu document
// exists yet.
func DefaultMenu() []Entry {
	return []Entry{
		{Name: "Duo Marino", Price: 15.0},
		{Name: "Causa de Pescado", Price: 10.0},
		{Name: "Causa de Langostinos", Price: 15.0},
		{Name: "Causa acevichada", Price: 18.0},
		{Name: "Ceviche", Price: 12.0},
		{Name: "Ceviche Mixto", Price: 15.0},
		{Name: "Trio Marino", Price: 20.0},
		{Name: "Chicharron de Pescado", Price: 15.0},
		{Name: "Sudado de Pescado", Price: 18.0},
	}
}

// DefaultCostItems seeds the cost-item dictionary used by the expenses
// ledger.
func DefaultCostItems() []Entry {
	return []Entry{
		{Name: "Pescado", Price: 18.0},
		{Name: "Langostinos", Price: 25.0},
		{Name: "Limon", Price: 4.5},
		{Name: "Cebolla", Price: 3.0},
		{Name: "Papa", Price: 2.5},
		{Name: "Camote", Price: 2.8},
		{Name: "Aji limo", Price: 6.0},
		{Name: "Gas", Price: 55.0},
	}
}
