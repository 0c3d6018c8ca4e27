package viewmodel

// User represents the connected wallet context exposed to templates.
type User struct {
	Wallet      string
	WalletShort string
	Role        string
}

// Layout captures shared chrome metadata (titles, navigation state, auth flags).
type Layout struct {
	Title           string
	PageTitle       string
	CurrentPage     string
	IsAuthenticated bool
	User            *User
}

// LayoutProvider exposes layout metadata for renderer utilities.
type LayoutProvider interface {
	LayoutData() *Layout
}
