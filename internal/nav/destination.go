package nav

import "github.com/heelin/finfolio/internal/domain"

// Kind discriminates the closed set of navigation destinations.
type Kind int

const (
	KindLogin Kind = iota
	KindUserAccounts
	KindRegistration
	KindAddAccount
	KindUpdateAccountHistory
	KindSheet
	KindModal
	KindAlert
)

// Destination is a tagged union: Kind selects which of the remaining
// fields are meaningful. Sheet and Modal wrap another destination one
// level deep; no deeper nesting exists in practice.
type Destination struct {
	Kind    Kind
	Account *domain.Account // KindUpdateAccountHistory
	Inner   *Destination    // KindSheet, KindModal
	Title   string          // KindAlert
	Message string          // KindAlert
}

func Login() Destination        { return Destination{Kind: KindLogin} }
func UserAccounts() Destination { return Destination{Kind: KindUserAccounts} }
func Registration() Destination { return Destination{Kind: KindRegistration} }
func AddAccount() Destination   { return Destination{Kind: KindAddAccount} }

func UpdateAccountHistory(acct domain.Account) Destination {
	return Destination{Kind: KindUpdateAccountHistory, Account: &acct}
}

func Sheet(inner Destination) Destination {
	return Destination{Kind: KindSheet, Inner: &inner}
}

func Modal(inner Destination) Destination {
	return Destination{Kind: KindModal, Inner: &inner}
}

func Alert(title, message string) Destination {
	return Destination{Kind: KindAlert, Title: title, Message: message}
}
