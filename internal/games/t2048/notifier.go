package t2048

// Notifier is told about every move that changes the game or locks an axis.
// Calls are synchronous and happen after the state is fully updated.
type Notifier interface {
	OnStateChanged()
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func()

// OnStateChanged calls f.
func (f NotifierFunc) OnStateChanged() {
	f()
}

type nopNotifier struct{}

func (nopNotifier) OnStateChanged() {}
