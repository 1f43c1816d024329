package ports

// Confirmer asks the user to approve a destructive operation
type Confirmer interface {
	// Confirm returns true only when the user explicitly agreed
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface
type ConfirmFunc func(prompt string) bool

// Confirm implements Confirmer
func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }
