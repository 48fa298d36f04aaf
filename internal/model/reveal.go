package model

// RevealKind tells the shell how a RevealMessage is shown.
type RevealKind int

const (
	// RevealNone means there is no message to show.
	RevealNone RevealKind = iota
	// RevealPlain is shown as ordinary text.
	RevealPlain
	// RevealGated is hidden under the scratch card.
	RevealGated
)

// RevealMessage is the message produced from the secret-code input.
type RevealMessage struct {
	Text string
	Kind RevealKind
}

// Empty reports whether there is nothing to show.
func (r RevealMessage) Empty() bool {
	return r.Kind == RevealNone || r.Text == ""
}
